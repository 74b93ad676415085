package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError sends a machine-readable error code
func respondError(w http.ResponseWriter, statusCode int, code string) {
	respondJSON(w, statusCode, map[string]string{"error": code})
}

// respondErrorDetail sends an error code with an attached detail string
func respondErrorDetail(w http.ResponseWriter, statusCode int, code, detail string) {
	respondJSON(w, statusCode, map[string]string{"error": code, "detail": detail})
}
