package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"

	"github.com/gorilla/mux"
)

// StringList accepts either a JSON array of strings or a single string, the
// way picture fields arrive from the web client.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*l = nil
		return nil
	}
	*l = []string{one}
	return nil
}

type RentalHandler struct {
	rentalSvc   service.RentalService
	files       storage.Storage
	maxFileSize int64
}

func NewRentalHandler(rentalSvc service.RentalService, files storage.Storage, maxFileSizeMB int64) *RentalHandler {
	return &RentalHandler{
		rentalSvc:   rentalSvc,
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

type createRentalRequest struct {
	PropertyName   string     `json:"property_name"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	BeforePictures StringList `json:"before_pictures"`
}

// Create handles POST /api/rental.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PropertyName == "" {
		writeError(w, http.StatusBadRequest, "property_name is required")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date: use YYYY-MM-DD or RFC3339")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date: use YYYY-MM-DD or RFC3339")
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), claims.UserID, req.PropertyName, start, end, req.BeforePictures)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// Complete handles PUT /api/rental/{id}/complete. The tenant uploads the
// evidence as multipart form data: before_pictures and after_pictures file
// parts plus a condition_report field.
func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	beforePictures, err := h.saveFormFiles(r, "before_pictures")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store before pictures")
		return
	}
	afterPictures, err := h.saveFormFiles(r, "after_pictures")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store after pictures")
		return
	}
	conditionReport := r.FormValue("condition_report")

	rental, err := h.rentalSvc.CompleteRental(r.Context(), rentalID, claims.UserID, beforePictures, afterPictures, conditionReport)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// MyRentals handles GET /api/rental/my-rentals.
func (h *RentalHandler) MyRentals(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rentals, err := h.rentalSvc.ListMyRentals(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// ListAll handles GET /api/rental. Admin only.
func (h *RentalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListAllRentals(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PUT /api/rental/{id}/status. Admin only.
func (h *RentalHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.SetRentalStatus(r.Context(), rentalID, domain.RentalStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Delete handles DELETE /api/rental/{id}. Admin only.
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), rentalID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rental deleted"})
}

// Occupied handles GET /api/properties/{id}/occupied?at=RFC3339. Occupancy
// is derived from the rental records at the queried instant; omitting at
// queries the present.
func (h *RentalHandler) Occupied(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	at := time.Now()
	if v := r.URL.Query().Get("at"); v != "" {
		at, err = parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid at parameter: use YYYY-MM-DD or RFC3339")
			return
		}
	}

	occupied, err := h.rentalSvc.IsPropertyOccupied(r.Context(), propertyID, at)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"property_id": propertyID,
		"at":          at.Format(time.RFC3339),
		"occupied":    occupied,
	})
}

func (h *RentalHandler) saveFormFiles(r *http.Request, field string) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var keys []string
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		key, err := h.files.Save(r.Context(), header.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
