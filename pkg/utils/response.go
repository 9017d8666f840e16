package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes payload as a JSON response. Encoding failures are
// returned so the caller can log them with its own logger.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// RespondError writes a JSON error body.
func RespondError(w http.ResponseWriter, status int, message string) error {
	return RespondJSON(w, status, map[string]string{"error": message})
}
