package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fintrip-ai/assistant-platform/internal/apperr"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeAppError maps a classified error to an HTTP status. Internal detail
// is never echoed to the client.
func writeAppError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		msg := "invalid request"
		var e *apperr.Error
		if errors.As(err, &e) {
			msg = e.Message
		}
		writeError(w, http.StatusBadRequest, msg)
	case apperr.KindExternalFetch:
		writeError(w, http.StatusBadGateway, "data source unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
