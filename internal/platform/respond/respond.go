// Package respond escribe respuestas JSON y traduce errores de dominio a status HTTP.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-shelter/internal/domain/apperr"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Message responde {"message": "..."}; lo usan los deletes que confirman con texto.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}

// Error traduce los sentinels de dominio a status HTTP.
// "what" se usa en el 404 (ej. "animal" => "animal not found").
func Error(w http.ResponseWriter, err error, what string) {
	status := StatusOf(err)
	switch status {
	case http.StatusNotFound:
		http.Error(w, what+" not found", status)
	case http.StatusBadRequest, http.StatusConflict:
		http.Error(w, err.Error(), status)
	case http.StatusServiceUnavailable:
		http.Error(w, "service unavailable", status)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrDuplicate),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrBadState):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
