package postgres

import (
	"context"
	"database/sql"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (transaction_id, amount_cents, currency, email, status, plan_id, user_id, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		tx.TransactionID, tx.AmountCents, tx.Currency, tx.Email, tx.Status, tx.PlanID, tx.UserID, tx.Date,
	).Scan(&tx.ID)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT id, transaction_id, amount_cents, currency, email, status, plan_id, user_id, date
	          FROM transactions WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.TransactionID, &tx.AmountCents, &tx.Currency, &tx.Email,
			&tx.Status, &tx.PlanID, &tx.UserID, &tx.Date); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
