package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"sitecms/internal/db"
)

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already out; nothing left to do but note it
			return
		}
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondDBError maps store errors onto the HTTP error taxonomy. what names
// the operation for the 500 log line.
func (s *Server) respondDBError(w http.ResponseWriter, err error, what string) {
	if verr, ok := db.AsValidation(err); ok {
		respondError(w, http.StatusBadRequest, verr.Error(), "invalid_input")
		return
	}
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error(), "not_found")
		return
	}
	if errors.Is(err, db.ErrConflict) {
		respondError(w, http.StatusConflict, err.Error(), "conflict")
		return
	}
	s.logger.Error("Request failed", zap.String("operation", what), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "failed to "+what, "internal_error")
}
