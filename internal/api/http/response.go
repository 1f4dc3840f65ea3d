package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"betak-backend/internal/domain"
	"betak-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an infrastructure fault: it is logged
// and reported as a generic 500 without leaking internals.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		durationErr   *domain.DurationError
		duplicateErr  *domain.DuplicateError
		forbiddenErr  *domain.ForbiddenError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &durationErr):
		writeError(w, http.StatusBadRequest, durationErr.Error())
	case errors.As(err, &duplicateErr):
		writeError(w, http.StatusConflict, duplicateErr.Error())
	case errors.As(err, &forbiddenErr):
		writeError(w, http.StatusForbidden, forbiddenErr.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		logger.Error("Unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
