package service

import (
	"context"
	"strings"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/logger"
	"betak-backend/internal/repository"
)

type contactService struct {
	contactRepo repository.ContactRepository
	emailSvc    EmailService
}

func NewContactService(contactRepo repository.ContactRepository, emailSvc EmailService) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		emailSvc:    emailSvc,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error) {
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, domain.NewValidationError("name, email, subject and message are all required")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("invalid email address")
	}

	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendContactNotification(ctx, msg); err != nil {
		logger.Warn("Failed to forward contact message", "message_id", msg.ID, "error", err)
	}

	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

func (s *contactService) DeleteMessage(ctx context.Context, id int32) error {
	return s.contactRepo.Delete(ctx, id)
}
