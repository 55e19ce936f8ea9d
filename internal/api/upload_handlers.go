package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxUploadBytes caps the multipart form read for image uploads (10MB).
const maxUploadBytes = 10 << 20

// HandleUploadImage accepts a multipart "file" field, pushes it to the image
// host and returns the hosted URL and public ID. Returns 503 when no
// CLOUDINARY_URL is configured.
func (s *Server) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	if s.images == nil || !s.images.Enabled() {
		respondError(w, http.StatusServiceUnavailable, "image uploads are not configured", "uploads_disabled")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form", "invalid_input")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required", "invalid_input")
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "sitecms"
	}

	upload, err := s.images.Upload(ctx, file, folder)
	if err != nil {
		s.logger.Error("Image upload failed",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "failed to upload image", "internal_error")
		return
	}

	respondJSON(w, http.StatusCreated, upload)
}

// HandleDestroyImage removes a previously uploaded image by public ID
// (?public_id=, query because public IDs contain slashes)
func (s *Server) HandleDestroyImage(w http.ResponseWriter, r *http.Request) {
	if s.images == nil || !s.images.Enabled() {
		respondError(w, http.StatusServiceUnavailable, "image uploads are not configured", "uploads_disabled")
		return
	}

	publicID := r.URL.Query().Get("public_id")
	if publicID == "" {
		respondError(w, http.StatusBadRequest, "public_id is required", "invalid_input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := s.images.Destroy(ctx, publicID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete image", "internal_error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}
