package http

import (
	"net/http"

	"betak-backend/internal/service"
)

type AmenityHandler struct {
	amenitySvc service.AmenityService
}

func NewAmenityHandler(amenitySvc service.AmenityService) *AmenityHandler {
	return &AmenityHandler{amenitySvc: amenitySvc}
}

type amenityRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Create handles POST /api/amenities. Admin only.
func (h *AmenityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req amenityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amenity, err := h.amenitySvc.CreateAmenity(r.Context(), req.Name, req.Icon)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, amenity)
}

// Update handles PUT /api/amenities/{id}. Admin only.
func (h *AmenityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amenity id")
		return
	}

	var req amenityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amenity, err := h.amenitySvc.UpdateAmenity(r.Context(), id, req.Name, req.Icon)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, amenity)
}

// Delete handles DELETE /api/amenities/{id}. Admin only.
func (h *AmenityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amenity id")
		return
	}

	if err := h.amenitySvc.DeleteAmenity(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "amenity deleted"})
}

// List handles GET /api/amenities.
func (h *AmenityHandler) List(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.amenitySvc.ListAmenities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, amenities)
}
