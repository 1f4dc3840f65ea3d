package http

import (
	"net/http"

	"betak-backend/internal/domain"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"
)

type AuthHandler struct {
	authSvc     service.AuthService
	files       storage.Storage
	maxFileSize int64
}

func NewAuthHandler(authSvc service.AuthService, files storage.Storage, maxFileSizeMB int64) *AuthHandler {
	return &AuthHandler{
		authSvc:     authSvc,
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/auth/register. Registration is multipart: the
// passport pages arrive as file parts alongside the account fields.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
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

	user, token, err := h.authSvc.Register(r.Context(),
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("password"),
		domain.UserRole(r.FormValue("role")),
		passportFirst,
		passportSecond,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (h *AuthHandler) saveSingleFile(r *http.Request, field string) (string, error) {
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
