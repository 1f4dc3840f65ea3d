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

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, owner_id, name, location, description, rent, bed, bath, sqft, furnishing, map, images`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO properties (owner_id, name, location, description, rent, bed, bath, sqft, furnishing, map, images)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		p.OwnerID, p.Name, p.Location, p.Description, p.Rent, p.Bed, p.Bath, p.Sqft, p.Furnishing, p.Map,
		pq.Array(p.Images),
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	for _, amenityID := range p.AmenityIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_amenities (property_id, amenity_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			p.ID, amenityID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := r.scanProperty(ctx, r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("property", strconv.Itoa(int(id)))
		}
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) GetByName(ctx context.Context, name string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE name = $1`
	p, err := r.scanProperty(ctx, r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("property", name)
		}
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE properties
	          SET name = $1, location = $2, description = $3, rent = $4, bed = $5, bath = $6, sqft = $7, furnishing = $8, map = $9, images = $10
	          WHERE id = $11`
	res, err := tx.ExecContext(ctx, query,
		p.Name, p.Location, p.Description, p.Rent, p.Bed, p.Bath, p.Sqft, p.Furnishing, p.Map,
		pq.Array(p.Images), p.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("property", strconv.Itoa(int(p.ID)))
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_amenities WHERE property_id = $1`, p.ID); err != nil {
		return err
	}
	for _, amenityID := range p.AmenityIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_amenities (property_id, amenity_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			p.ID, amenityID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *propertyRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("property", strconv.Itoa(int(id)))
	}
	return nil
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.Description, &p.Rent,
			&p.Bed, &p.Bath, &p.Sqft, &p.Furnishing, &p.Map, pq.Array(&p.Images)); err != nil {
			return nil, err
		}
		if err := r.loadRefs(ctx, &p); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// RemoveImage drops one element from the image list in a single statement;
// there is no read-modify-write of the whole row.
func (r *propertyRepository) RemoveImage(ctx context.Context, propertyID int32, imagePath string) error {
	query := `UPDATE properties SET images = array_remove(images, $1) WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, imagePath, propertyID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("property", strconv.Itoa(int(propertyID)))
	}
	return nil
}

func (r *propertyRepository) scanProperty(ctx context.Context, row rowScanner) (*domain.Property, error) {
	p := &domain.Property{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.Description, &p.Rent,
		&p.Bed, &p.Bath, &p.Sqft, &p.Furnishing, &p.Map, pq.Array(&p.Images))
	if err != nil {
		return nil, err
	}
	if err := r.loadRefs(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) loadRefs(ctx context.Context, p *domain.Property) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT amenity_id FROM property_amenities WHERE property_id = $1 ORDER BY amenity_id`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return err
		}
		p.AmenityIDs = append(p.AmenityIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	hist, err := r.db.QueryContext(ctx,
		`SELECT user_id, start_date, end_date FROM property_rental_history WHERE property_id = $1 ORDER BY start_date`, p.ID)
	if err != nil {
		return err
	}
	defer hist.Close()
	for hist.Next() {
		var iv domain.RentalInterval
		if err := hist.Scan(&iv.UserID, &iv.StartDate, &iv.EndDate); err != nil {
			return err
		}
		p.RentalHistory = append(p.RentalHistory, iv)
	}
	return hist.Err()
}
