package service

import (
	"context"

	"betak-backend/internal/domain"
	"betak-backend/internal/repository"
)

type paymentService struct {
	transactionRepo repository.TransactionRepository
}

func NewPaymentService(transactionRepo repository.TransactionRepository) PaymentService {
	return &paymentService{transactionRepo: transactionRepo}
}

func (s *paymentService) RecordCheckoutSession(ctx context.Context, tx *domain.Transaction) error {
	if tx.TransactionID == "" {
		return domain.NewValidationError("transaction id is required")
	}
	return s.transactionRepo.Create(ctx, tx)
}

func (s *paymentService) ListUserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.transactionRepo.ListByUser(ctx, userID)
}
