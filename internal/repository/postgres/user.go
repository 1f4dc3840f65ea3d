package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, mobile, password_hash, role, passport_first_page, passport_second_page, favorites, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, mobile, password_hash, role, passport_first_page, passport_second_page, favorites, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.Mobile, u.PasswordHash, u.Role,
		u.PassportFirstPage, u.PassportSecondPage, pq.Array(u.FavoriteIDs), now, now,
	).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.NewValidationError("user with email %s already exists", u.Email)
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", strconv.Itoa(int(id)))
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", email)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users
	          SET name = $1, email = $2, mobile = $3, password_hash = $4, role = $5, passport_first_page = $6, passport_second_page = $7, updated_at = $8
	          WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		u.Name, u.Email, u.Mobile, u.PasswordHash, u.Role,
		u.PassportFirstPage, u.PassportSecondPage, time.Now(), u.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("user", strconv.Itoa(int(u.ID)))
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role,
			&u.PassportFirstPage, &u.PassportSecondPage, pq.Array(&u.FavoriteIDs), &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// AddFavorite appends the property id if it is not already present; the
// whole operation is one statement against the store.
func (r *userRepository) AddFavorite(ctx context.Context, userID, propertyID int32) error {
	query := `UPDATE users
	          SET favorites = array_append(favorites, $1), updated_at = NOW()
	          WHERE id = $2 AND NOT ($1 = ANY (favorites))`
	_, err := r.db.ExecContext(ctx, query, propertyID, userID)
	return err
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role,
		&u.PassportFirstPage, &u.PassportSecondPage, pq.Array(&u.FavoriteIDs), &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
