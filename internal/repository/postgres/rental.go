package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, property_id, user_id, start_date, end_date, year, status, before_pictures, after_pictures, condition_report, created_at, completed_at`

// Create inserts the rental row and appends its interval to the property's
// rental history in one transaction, so the availability read model never
// observes one without the other. The unique index on
// (property_id, user_id, year) is the authoritative yearly-uniqueness
// check: a concurrent duplicate insert loses here regardless of what the
// optimistic pre-check saw, and is surfaced as *domain.DuplicateError.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rentals (property_id, user_id, start_date, end_date, year, status, before_pictures, after_pictures, condition_report, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rt.PropertyID, rt.UserID, rt.StartDate, rt.EndDate, rt.Year, rt.Status,
		pq.Array(rt.BeforePictures), pq.Array(rt.AfterPictures), rt.ConditionReport, rt.CreatedAt,
	).Scan(&rt.ID)
	if err != nil {
		return translateRentalError(err, rt)
	}

	history := `INSERT INTO property_rental_history (property_id, user_id, start_date, end_date, rental_id)
	            VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, history, rt.PropertyID, rt.UserID, rt.StartDate, rt.EndDate, rt.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("rental", strconv.Itoa(int(id)))
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ExistsForYear(ctx context.Context, propertyID, userID int32, year int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE property_id = $1 AND user_id = $2 AND year = $3)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, propertyID, userID, year).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Complete writes the completion fields as a single UPDATE, so a racing
// status change serializes at the row and the record ends in exactly one of
// the two states. Year is deliberately not part of the statement.
func (r *rentalRepository) Complete(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals
	          SET status = $1, before_pictures = $2, after_pictures = $3, condition_report = $4, completed_at = $5
	          WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		rt.Status, pq.Array(rt.BeforePictures), pq.Array(rt.AfterPictures), rt.ConditionReport, rt.CompletedAt, rt.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("rental", strconv.Itoa(int(rt.ID)))
	}
	return nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error) {
	query := `UPDATE rentals SET status = $1 WHERE id = $2 RETURNING ` + rentalColumns
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("rental", strconv.Itoa(int(id)))
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("rental", strconv.Itoa(int(id)))
	}
	return nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE property_id = $1 ORDER BY created_at DESC`
	return r.queryRentals(ctx, query, propertyID)
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_at DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var completedAt sql.NullTime
		if err := rows.Scan(&rt.ID, &rt.PropertyID, &rt.UserID, &rt.StartDate, &rt.EndDate, &rt.Year, &rt.Status,
			pq.Array(&rt.BeforePictures), pq.Array(&rt.AfterPictures), &rt.ConditionReport, &rt.CreatedAt, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t := completedAt.Time
			rt.CompletedAt = &t
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var completedAt sql.NullTime
	err := row.Scan(&rt.ID, &rt.PropertyID, &rt.UserID, &rt.StartDate, &rt.EndDate, &rt.Year, &rt.Status,
		pq.Array(&rt.BeforePictures), pq.Array(&rt.AfterPictures), &rt.ConditionReport, &rt.CreatedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		rt.CompletedAt = &t
	}
	return rt, nil
}

// translateRentalError maps a unique-constraint rejection onto the domain
// duplicate error so racing creators and the pre-check report identically.
func translateRentalError(err error, rt *domain.Rental) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return &domain.DuplicateError{PropertyID: rt.PropertyID, UserID: rt.UserID, Year: rt.Year}
	}
	return err
}
