package service

import (
	"context"
	"strings"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/logger"
	"betak-backend/internal/policy"
	"betak-backend/internal/repository"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	propertyRepo  repository.PropertyRepository
	settingRepo   repository.RentalSettingRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
	defaultBounds policy.Bounds
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	propertyRepo repository.PropertyRepository,
	settingRepo repository.RentalSettingRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	defaultBounds policy.Bounds,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		propertyRepo:  propertyRepo,
		settingRepo:   settingRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
		defaultBounds: defaultBounds,
	}
}

// CreateRental sequences the policy checks and creates the record in
// pending state. The uniqueness pre-check here is optimistic; the store's
// unique constraint on (property, user, year) decides races, and its
// rejection comes back as the same *domain.DuplicateError.
func (s *rentalService) CreateRental(ctx context.Context, userID int32, propertyName string, start, end time.Time, beforePictures []string) (*domain.Rental, error) {
	property, err := s.propertyRepo.GetByName(ctx, propertyName)
	if err != nil {
		return nil, err
	}

	country, city := splitLocation(property.Location)
	setting, err := s.settingRepo.GetByLocation(ctx, country, city)
	if err != nil {
		return nil, err
	}
	bounds := policy.BoundsFor(setting, s.defaultBounds)
	if err := policy.ValidateDuration(start, end, bounds); err != nil {
		return nil, err
	}

	if len(beforePictures) == 0 {
		return nil, domain.NewValidationError("before pictures are required to create a rental")
	}

	year := start.Year()
	exists, err := s.rentalRepo.ExistsForYear(ctx, property.ID, userID, year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{PropertyID: property.ID, UserID: userID, Year: year}
	}

	rental := &domain.Rental{
		PropertyID:     property.ID,
		UserID:         userID,
		StartDate:      start,
		EndDate:        end,
		Year:           year,
		Status:         domain.RentalStatusPending,
		BeforePictures: beforePictures,
		CreatedAt:      time.Now(),
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		if merr := s.emailSvc.SendRentalRequestReceived(ctx, user.Email, user.Name, property.Name, start, end); merr != nil {
			logger.Warn("Failed to send rental request email", "rental_id", rental.ID, "error", merr)
		}
	}

	return rental, nil
}

// CompleteRental is the tenant evidence-upload path. It is not gated on
// prior approval: a pending rental may complete directly. Terminal records
// are refused, and Year is never touched.
func (s *rentalService) CompleteRental(ctx context.Context, rentalID, requesterID int32, beforePictures, afterPictures []string, conditionReport string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != requesterID {
		return nil, domain.NewForbiddenError("only the rental's tenant may complete it")
	}
	if rental.Status.Terminal() {
		return nil, domain.NewValidationError("rental is already %s", rental.Status)
	}
	if len(beforePictures) == 0 || len(afterPictures) == 0 {
		return nil, domain.NewValidationError("both before and after pictures are required")
	}

	now := time.Now()
	rental.Status = domain.RentalStatusCompleted
	rental.BeforePictures = beforePictures
	rental.AfterPictures = afterPictures
	rental.ConditionReport = conditionReport
	rental.CompletedAt = &now

	if err := s.rentalRepo.Complete(ctx, rental); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, rental)

	return rental, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *rentalService) ListAllRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListAll(ctx)
}

// SetRentalStatus is the administrative transition: any of the assignable
// statuses may be set regardless of the current one.
func (s *rentalService) SetRentalStatus(ctx context.Context, rentalID int32, status domain.RentalStatus) (*domain.Rental, error) {
	allowed := false
	for _, st := range domain.AdminAssignableStatuses {
		if status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.NewValidationError("invalid status %q: must be one of approved, rejected, completed", status)
	}

	rental, err := s.rentalRepo.UpdateStatus(ctx, rentalID, status)
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, rental)

	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID int32) error {
	return s.rentalRepo.Delete(ctx, rentalID)
}

// IsPropertyOccupied derives occupancy from the rental records at query
// time; nothing is stored. Only approved and completed rentals occupy a
// property: a pending request or a rejected one holds no claim on it.
func (s *rentalService) IsPropertyOccupied(ctx context.Context, propertyID int32, at time.Time) (bool, error) {
	rentals, err := s.rentalRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}
	intervals := make([]domain.RentalInterval, 0, len(rentals))
	for i := range rentals {
		rt := &rentals[i]
		if rt.Status != domain.RentalStatusApproved && rt.Status != domain.RentalStatusCompleted {
			continue
		}
		intervals = append(intervals, domain.RentalInterval{
			UserID:    rt.UserID,
			StartDate: rt.StartDate,
			EndDate:   rt.EndDate,
		})
	}
	return domain.OccupiedAt(intervals, at), nil
}

// notifyStatusChange emails the tenant about a lifecycle change.
// Notification failures never fail the operation.
func (s *rentalService) notifyStatusChange(ctx context.Context, rental *domain.Rental) {
	user, err := s.userRepo.GetByID(ctx, rental.UserID)
	if err != nil {
		return
	}
	propertyName := ""
	if property, perr := s.propertyRepo.GetByID(ctx, rental.PropertyID); perr == nil {
		propertyName = property.Name
	}
	if err := s.emailSvc.SendRentalStatusUpdate(ctx, user.Email, user.Name, propertyName, rental.Status); err != nil {
		logger.Warn("Failed to send rental status email", "rental_id", rental.ID, "status", rental.Status, "error", err)
	}
}

// splitLocation reads a "City, Country" location string; a value with no
// comma is taken as a country. Rental settings are keyed this way.
func splitLocation(location string) (country, city string) {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return strings.TrimSpace(location), ""
	}
	return strings.TrimSpace(location[idx+1:]), strings.TrimSpace(location[:idx])
}
