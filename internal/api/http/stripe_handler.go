package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/logger"
	"betak-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const maxWebhookBodyBytes = 65536

type StripeHandler struct {
	paymentSvc    service.PaymentService
	webhookSecret string
}

func NewStripeHandler(paymentSvc service.PaymentService, webhookSecret string) *StripeHandler {
	return &StripeHandler{
		paymentSvc:    paymentSvc,
		webhookSecret: webhookSecret,
	}
}

// Webhook handles POST /api/stripe/webhook. The signature is verified
// against the raw body; only completed checkout sessions are recorded.
func (h *StripeHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := webhook.ConstructEvent(body, r.Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "webhook signature verification failed")
		return
	}

	if event.Type != "checkout.session.completed" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		writeError(w, http.StatusBadRequest, "malformed checkout session payload")
		return
	}

	tx := &domain.Transaction{
		TransactionID: session.ID,
		AmountCents:   session.AmountTotal,
		Currency:      string(session.Currency),
		Status:        string(session.PaymentStatus),
		UserID:        session.ClientReferenceID,
		Date:          time.Now(),
	}
	if session.CustomerDetails != nil {
		tx.Email = session.CustomerDetails.Email
	}
	if session.Metadata != nil {
		tx.PlanID = session.Metadata["plan_id"]
	}

	if err := h.paymentSvc.RecordCheckoutSession(r.Context(), tx); err != nil {
		logger.Error("Failed to record checkout session", "session_id", session.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record transaction")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"received": "true"})
}

// ListTransactions handles GET /api/stripe/user-transactions/{userId}.
// Callers may only read their own history unless they hold the admin role.
func (h *StripeHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != strconv.Itoa(int(claims.UserID)) && !claims.IsAdmin() {
		writeError(w, http.StatusForbidden, "may only list your own transactions")
		return
	}

	transactions, err := h.paymentSvc.ListUserTransactions(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}
