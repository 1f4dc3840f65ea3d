package service

import (
	"context"

	"betak-backend/internal/domain"
	"betak-backend/internal/logger"
	"betak-backend/internal/policy"
	"betak-backend/internal/repository"
	"betak-backend/internal/storage"
)

type propertyService struct {
	propertyRepo  repository.PropertyRepository
	settingRepo   repository.RentalSettingRepository
	files         storage.Storage
	defaultBounds policy.Bounds
}

func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	settingRepo repository.RentalSettingRepository,
	files storage.Storage,
	defaultBounds policy.Bounds,
) PropertyService {
	return &propertyService{
		propertyRepo:  propertyRepo,
		settingRepo:   settingRepo,
		files:         files,
		defaultBounds: defaultBounds,
	}
}

// CreateProperty stores the listing and, when the caller supplied a duration
// rule, a rental setting keyed on the property's location. The setting then
// governs duration bounds for every booking at that location; it may narrow
// the default window but never widen it, so an out-of-window rule fails the
// whole request.
func (s *propertyService) CreateProperty(ctx context.Context, p *domain.Property, rule *domain.RentalSetting) (*domain.Property, error) {
	if p.Name == "" || p.Location == "" {
		return nil, domain.NewValidationError("property name and location are required")
	}

	if rule != nil {
		country, city := splitLocation(p.Location)
		rule.Country = country
		rule.City = city
		if err := policy.ValidateRule(rule, s.defaultBounds); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if rule != nil {
		if err := s.settingRepo.Create(ctx, rule); err != nil {
			logger.Warn("Failed to store rental setting for property", "property_id", p.ID, "error", err)
		}
	}

	return p, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx)
}

func (s *propertyService) UpdateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	existing, err := s.propertyRepo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name == "" {
		p.Name = existing.Name
	}
	if p.Location == "" {
		p.Location = existing.Location
	}
	if len(p.Images) == 0 {
		p.Images = existing.Images
	}
	if len(p.AmenityIDs) == 0 {
		p.AmenityIDs = existing.AmenityIDs
	}

	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProperty removes the record first, then its stored images.
// A failed file removal is logged and skipped; the cleanup job sweeps
// whatever is left behind.
func (s *propertyService) DeleteProperty(ctx context.Context, id int32) error {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range property.Images {
		if err := s.files.Delete(ctx, img); err != nil {
			logger.Warn("Failed to delete property image", "property_id", id, "image", img, "error", err)
		}
	}
	return nil
}

func (s *propertyService) RemovePropertyImage(ctx context.Context, propertyID int32, imagePath string) ([]string, error) {
	if imagePath == "" {
		return nil, domain.NewValidationError("image path is required")
	}

	if err := s.propertyRepo.RemoveImage(ctx, propertyID, imagePath); err != nil {
		return nil, err
	}

	if err := s.files.Delete(ctx, imagePath); err != nil {
		logger.Warn("Failed to delete property image file", "property_id", propertyID, "image", imagePath, "error", err)
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return property.Images, nil
}
