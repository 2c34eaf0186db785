package handler

import (
	"customer-service/internal/api/handler/dto"
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"message":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondError is the single translation point from failure values to the
// documented error contract: {timestamp, status, error, message, path}.
// Client-attributable failures log at info/warn; everything else logs at
// error with full detail and the body carries only a generic phrase.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong"
	var validationError *apperrors.ValidationError

	switch {
	case errors.Is(err, customer.ErrNotFound), errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
		slog.Default().InfoContext(r.Context(), "Not found", "path", r.URL.Path, "error", err)
	case errors.Is(err, customer.ErrDuplicateEmail), errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
		slog.Default().WarnContext(r.Context(), "Conflict", "path", r.URL.Path, "error", err)
	case errors.As(err, &validationError):
		status, message = http.StatusBadRequest, validationError.Error()
		slog.Default().WarnContext(r.Context(), "Validation failed", "path", r.URL.Path, "error", err)
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
		slog.Default().WarnContext(r.Context(), "Bad request", "path", r.URL.Path, "error", err)
	default:
		slog.Default().ErrorContext(r.Context(), "Unhandled internal error", "path", r.URL.Path, "error", err)
	}

	resp := dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	}
	respondJSON(w, status, resp)
}
