package service

import (
	"context"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type amenityService struct {
	amenityRepo repository.AmenityRepository
}

func NewAmenityService(amenityRepo repository.AmenityRepository) AmenityService {
	return &amenityService{amenityRepo: amenityRepo}
}

func (s *amenityService) CreateAmenity(ctx context.Context, name, icon string) (*domain.Amenity, error) {
	if name == "" {
		return nil, domain.NewValidationError("amenity name is required")
	}
	amenity := &domain.Amenity{Name: name, Icon: icon}
	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *amenityService) UpdateAmenity(ctx context.Context, id int32, name, icon string) (*domain.Amenity, error) {
	amenity, err := s.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		amenity.Name = name
	}
	if icon != "" {
		amenity.Icon = icon
	}
	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *amenityService) DeleteAmenity(ctx context.Context, id int32) error {
	return s.amenityRepo.Delete(ctx, id)
}

func (s *amenityService) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return s.amenityRepo.List(ctx)
}
