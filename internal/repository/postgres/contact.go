package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	msg.CreatedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt).Scan(&msg.ID)
}

func (r *contactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, created_at FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("contact message", strconv.Itoa(int(id)))
	}
	return nil
}
