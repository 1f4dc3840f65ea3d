package service

import (
	"context"
	"time"

	"betak-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.UserRole, passportFirst, passportSecond string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int32, name, email, password string, role domain.UserRole, passportFirst, passportSecond string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID, propertyID int32) error
}

type PropertyService interface {
	CreateProperty(ctx context.Context, p *domain.Property, rule *domain.RentalSetting) (*domain.Property, error)
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id int32) error
	RemovePropertyImage(ctx context.Context, propertyID int32, imagePath string) ([]string, error)
}

type AmenityService interface {
	CreateAmenity(ctx context.Context, name, icon string) (*domain.Amenity, error)
	UpdateAmenity(ctx context.Context, id int32, name, icon string) (*domain.Amenity, error)
	DeleteAmenity(ctx context.Context, id int32) error
	ListAmenities(ctx context.Context) ([]domain.Amenity, error)
}

// RentalService is the booking workflow: it sequences policy checks and
// record mutations, and answers the derived availability question.
type RentalService interface {
	CreateRental(ctx context.Context, userID int32, propertyName string, start, end time.Time, beforePictures []string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, rentalID, requesterID int32, beforePictures, afterPictures []string, conditionReport string) (*domain.Rental, error)
	ListMyRentals(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListAllRentals(ctx context.Context) ([]domain.Rental, error)
	SetRentalStatus(ctx context.Context, rentalID int32, status domain.RentalStatus) (*domain.Rental, error)
	DeleteRental(ctx context.Context, rentalID int32) error
	IsPropertyOccupied(ctx context.Context, propertyID int32, at time.Time) (bool, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
	DeleteMessage(ctx context.Context, id int32) error
}

type PaymentService interface {
	// RecordCheckoutSession persists the outcome of a completed checkout
	// reported by the payment webhook.
	RecordCheckoutSession(ctx context.Context, tx *domain.Transaction) error
	ListUserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type EmailService interface {
	SendRentalRequestReceived(ctx context.Context, email, name, propertyName string, start, end time.Time) error
	SendRentalStatusUpdate(ctx context.Context, email, name, propertyName string, status domain.RentalStatus) error
	SendCheckoutReminder(ctx context.Context, email, name, propertyName string, endDate time.Time) error
	SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error
}
