package service

import (
	"context"
	"errors"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
	"betak-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role domain.UserRole, passportFirst, passportSecond string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.NewValidationError("name, email and password are required")
	}
	if passportFirst == "" || passportSecond == "" {
		return nil, "", domain.NewValidationError("both passport images are required")
	}
	if role == "" {
		role = domain.UserRoleTenant
	}
	if role != domain.UserRoleTenant && role != domain.UserRoleAdmin {
		return nil, "", domain.NewValidationError("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		PassportFirstPage:  passportFirst,
		PassportSecondPage: passportSecond,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
