package domain

import "time"

// Transaction records the outcome of a payment processed by the payment
// collaborator. The booking engine only stores the result; it never charges.
type Transaction struct {
	ID            int32     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	PlanID        string    `json:"plan_id,omitempty"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
}
