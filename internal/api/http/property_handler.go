package http

import (
	"net/http"
	"strconv"
	"strings"

	"betak-backend/internal/domain"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"
)

type PropertyHandler struct {
	propertySvc service.PropertyService
	files       storage.Storage
	maxFileSize int64
}

func NewPropertyHandler(propertySvc service.PropertyService, files storage.Storage, maxFileSizeMB int64) *PropertyHandler {
	return &PropertyHandler{
		propertySvc: propertySvc,
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Create handles POST /api/properties. Admin only. Listings arrive as
// multipart form data with image file parts.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	images, err := h.saveImages(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store property images")
		return
	}

	property := &domain.Property{
		Name:        r.FormValue("name"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
		Rent:        r.FormValue("rent"),
		Bed:         r.FormValue("bed"),
		Bath:        r.FormValue("bath"),
		Sqft:        r.FormValue("sqft"),
		Furnishing:  r.FormValue("furnishing"),
		Map:         r.FormValue("map"),
		Images:      images,
		AmenityIDs:  parseIDList(r.FormValue("amenities")),
	}
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		property.OwnerID = claims.UserID
	}

	rule := durationRuleFromForm(r)

	created, err := h.propertySvc.CreateProperty(r.Context(), property, rule)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/properties/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// List handles GET /api/properties.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertySvc.ListProperties(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// Update handles PUT /api/properties/{id}. Admin only. Newly uploaded
// images are appended to the stored list.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	existing, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	newImages, err := h.saveImages(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store property images")
		return
	}

	property := &domain.Property{
		ID:          id,
		OwnerID:     existing.OwnerID,
		Name:        r.FormValue("name"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
		Rent:        r.FormValue("rent"),
		Bed:         r.FormValue("bed"),
		Bath:        r.FormValue("bath"),
		Sqft:        r.FormValue("sqft"),
		Furnishing:  r.FormValue("furnishing"),
		Map:         r.FormValue("map"),
		Images:      append(existing.Images, newImages...),
		AmenityIDs:  parseIDList(r.FormValue("amenities")),
	}

	updated, err := h.propertySvc.UpdateProperty(r.Context(), property)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/properties/{id}. Admin only.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.propertySvc.DeleteProperty(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}

type removeImageRequest struct {
	Image string `json:"image"`
}

// RemoveImage handles DELETE /api/properties/{id}/images. Admin only.
func (h *PropertyHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var req removeImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	images, err := h.propertySvc.RemovePropertyImage(r.Context(), id, req.Image)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

func (h *PropertyHandler) saveImages(r *http.Request) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var keys []string
	for _, header := range r.MultipartForm.File["images"] {
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

// durationRuleFromForm reads the optional per-location duration bounds
// submitted with a listing.
func durationRuleFromForm(r *http.Request) *domain.RentalSetting {
	minStr := r.FormValue("min_duration_days")
	maxStr := r.FormValue("max_duration_days")
	if minStr == "" && maxStr == "" {
		return nil
	}
	rule := &domain.RentalSetting{}
	if v, err := strconv.Atoi(minStr); err == nil {
		rule.MinDuration = v
	}
	if v, err := strconv.Atoi(maxStr); err == nil {
		rule.MaxDuration = v
	}
	return rule
}

func parseIDList(value string) []int32 {
	if value == "" {
		return nil
	}
	var ids []int32
	for _, part := range strings.Split(value, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, int32(id))
	}
	return ids
}
