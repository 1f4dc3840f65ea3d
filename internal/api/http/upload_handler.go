package http

import (
	"io"
	"net/http"
	"path/filepath"

	"betak-backend/internal/storage"

	"github.com/gorilla/mux"
)

// UploadHandler serves stored files and accepts standalone uploads. Picture
// references carried by rentals, properties and users resolve through here.
type UploadHandler struct {
	files       storage.Storage
	maxFileSize int64
}

func NewUploadHandler(files storage.Storage, maxFileSizeMB int64) *UploadHandler {
	return &UploadHandler{
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Upload handles POST /api/uploads: a multipart form with one or more
// "files" parts, returning the storage keys.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		writeError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	var keys []string
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read uploaded file")
			return
		}
		key, err := h.files.Save(r.Context(), header.Filename, f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		keys = append(keys, key)
	}
	writeJSON(w, http.StatusCreated, map[string]any{"keys": keys})
}

// Download handles GET /api/uploads/{key}.
func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing file key")
		return
	}

	file, err := h.files.Open(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
