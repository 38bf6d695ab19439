package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is a sentinel error for "not found" cases
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned by login for an unknown username or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// ErrBadRequest marks errors caused by malformed client input
	ErrBadRequest = errors.New("bad request")

	ErrRequestTooLarge = errors.New("request body too large")
)

// BadRequestf wraps ErrBadRequest with a message that is safe to return to the client
func BadRequestf(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func (e *badRequestError) Unwrap() error { return ErrBadRequest }

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// HTTPStatus maps a service error to the status code returned to the caller
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
