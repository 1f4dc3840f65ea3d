package repository

import (
	"context"

	"betak-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	AddFavorite(ctx context.Context, userID, propertyID int32) error
}

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	GetByName(ctx context.Context, name string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Property, error)

	// RemoveImage deletes one element from the property's image list as a
	// single statement against the store, not a read-modify-write.
	RemoveImage(ctx context.Context, propertyID int32, imagePath string) error
}

type RentalRepository interface {
	// Create inserts the rental and appends its interval to the property's
	// rental history in one database transaction. A unique-constraint
	// rejection on (property_id, user_id, year) is returned as
	// *domain.DuplicateError.
	Create(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	ExistsForYear(ctx context.Context, propertyID, userID int32, year int) (bool, error)
	Complete(ctx context.Context, rt *domain.Rental) error
	UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error)
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
}

type RentalSettingRepository interface {
	Create(ctx context.Context, s *domain.RentalSetting) error
	// GetByLocation prefers a (country, city) match and falls back to a
	// country-wide row; returns nil when neither exists.
	GetByLocation(ctx context.Context, country, city string) (*domain.RentalSetting, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id int32) (*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Amenity, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Delete(ctx context.Context, id int32) error
}

// EvidenceFileIndex answers which stored file keys are still referenced by
// any record. Used by the cleanup job; files are never removed while a
// rental, property or user still points at them.
type EvidenceFileIndex interface {
	ReferencedFiles(ctx context.Context) (map[string]struct{}, error)
}
