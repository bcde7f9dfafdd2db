package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"crop-exchange/internal/services"
)

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondServiceError maps a service failure onto the error taxonomy.
// Anything unrecognized is masked as a generic 500.
func respondServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "not_found", "User not found")
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, services.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, services.ErrConflict):
		respondWithError(w, http.StatusConflict, "conflict", err.Error())
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, "invalid_request", validationErr.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}
