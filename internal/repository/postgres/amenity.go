package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type amenityRepository struct {
	db *sql.DB
}

func NewAmenityRepository(db *sql.DB) repository.AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	query := `INSERT INTO amenities (name, icon) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.Icon).Scan(&a.ID)
}

func (r *amenityRepository) GetByID(ctx context.Context, id int32) (*domain.Amenity, error) {
	a := &domain.Amenity{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name, icon FROM amenities WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("amenity", strconv.Itoa(int(id)))
		}
		return nil, err
	}
	return a, nil
}

func (r *amenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	res, err := r.db.ExecContext(ctx, `UPDATE amenities SET name = $1, icon = $2 WHERE id = $3`, a.Name, a.Icon, a.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("amenity", strconv.Itoa(int(a.ID)))
	}
	return nil
}

func (r *amenityRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("amenity", strconv.Itoa(int(id)))
	}
	return nil
}

func (r *amenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon FROM amenities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amenities []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon); err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}
