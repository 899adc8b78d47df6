package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/services/auth"
)

// ErrorResponse is the wire shape for error bodies
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with an error message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "user not found"}
	case errors.Is(err, model.ErrResourceNotFound):
		return &httpError{http.StatusNotFound, "resource not found"}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, "username already taken"}

	// Credential mismatches are a 400 with a unified message so callers
	// cannot tell an unknown username from a wrong password
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusBadRequest, "invalid credentials"}

	default:
		return &httpError{http.StatusInternalServerError, "internal server error"}
	}
}

// NewValidationError creates a 400 error for a missing or malformed field
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(message string) error {
	return &httpError{http.StatusNotFound, message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "internal server error"}
}
