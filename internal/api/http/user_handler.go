package http

import (
	"net/http"

	"betak-backend/internal/domain"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"
)

type UserHandler struct {
	userSvc     service.UserService
	files       storage.Storage
	maxFileSize int64
}

func NewUserHandler(userSvc service.UserService, files storage.Storage, maxFileSizeMB int64) *UserHandler {
	return &UserHandler{
		userSvc:     userSvc,
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Me handles GET /api/user/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// List handles GET /api/user/all-users. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /api/user/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Update handles PUT /api/user/{id}. Callers may only update themselves
// unless they hold the admin role. Fields left empty keep their stored
// values; replacement passport pages arrive as file parts.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id != claims.UserID && !claims.IsAdmin() {
		writeError(w, http.StatusForbidden, "may only update your own account")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	passportFirst, err := h.saveSingleFile(r, "passport_first_page")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store passport image")
		return
	}
	passportSecond, err := h.saveSingleFile(r, "passport_second_page")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store passport image")
		return
	}

	role := domain.UserRole("")
	if claims.IsAdmin() {
		role = domain.UserRole(r.FormValue("role"))
	}

	user, err := h.userSvc.UpdateUser(r.Context(), id,
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("password"),
		role,
		passportFirst,
		passportSecond,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type addFavoriteRequest struct {
	PropertyID int32 `json:"property_id"`
}

// AddFavorite handles POST /api/user/favorites.
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req addFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userSvc.AddFavorite(r.Context(), claims.UserID, req.PropertyID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "favorite added"})
}

func (h *UserHandler) saveSingleFile(r *http.Request, field string) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return "", nil
	}
	header := r.MultipartForm.File[field][0]
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.files.Save(r.Context(), header.Filename, f)
}
