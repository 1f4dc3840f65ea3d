package service

import (
	"context"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

func NewUserService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser overwrites only the fields the caller supplied; empty values
// keep the stored ones.
func (s *userService) UpdateUser(ctx context.Context, id int32, name, email, password string, role domain.UserRole, passportFirst, passportSecond string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if role != "" {
		if role != domain.UserRoleTenant && role != domain.UserRoleAdmin {
			return nil, domain.NewValidationError("invalid role %q", role)
		}
		user.Role = role
	}
	if passportFirst != "" {
		user.PassportFirstPage = passportFirst
	}
	if passportSecond != "" {
		user.PassportSecondPage = passportSecond
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AddFavorite(ctx context.Context, userID, propertyID int32) error {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return err
	}
	return s.userRepo.AddFavorite(ctx, userID, propertyID)
}
