package postgres

import (
	"context"
	"database/sql"
	"errors"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type rentalSettingRepository struct {
	db *sql.DB
}

func NewRentalSettingRepository(db *sql.DB) repository.RentalSettingRepository {
	return &rentalSettingRepository{db: db}
}

func (r *rentalSettingRepository) Create(ctx context.Context, s *domain.RentalSetting) error {
	query := `INSERT INTO rental_settings (country, city, min_duration, max_duration) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Country, s.City, s.MinDuration, s.MaxDuration).Scan(&s.ID)
}

// GetByLocation prefers the city-specific row; a country-wide row (empty
// city) is the fallback. nil means the caller should use its defaults.
func (r *rentalSettingRepository) GetByLocation(ctx context.Context, country, city string) (*domain.RentalSetting, error) {
	query := `SELECT id, country, city, min_duration, max_duration
	          FROM rental_settings
	          WHERE country = $1 AND (city = $2 OR city = '')
	          ORDER BY city DESC
	          LIMIT 1`
	s := &domain.RentalSetting{}
	err := r.db.QueryRowContext(ctx, query, country, city).
		Scan(&s.ID, &s.Country, &s.City, &s.MinDuration, &s.MaxDuration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}
