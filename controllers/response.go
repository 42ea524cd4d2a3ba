package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-grocery/database"
)

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeData wraps a successful result in the transport envelope.
func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// writeError wraps a failure message in the transport envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeStoreError maps the store's failure taxonomy onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, database.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "No account found")
	case errors.Is(err, database.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, database.ErrPhoneTaken):
		writeError(w, http.StatusConflict, "Phone number already registered")
	case errors.Is(err, database.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Please provide all required fields")
	case errors.Is(err, database.ErrIncorrectPassword):
		writeError(w, http.StatusUnauthorized, "The password you entered is incorrect")
	case errors.Is(err, database.ErrAccountNotSetUp):
		writeError(w, http.StatusForbidden, "Account setup incomplete")
	case errors.Is(err, database.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
