package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models/api"
)

// maxRequestBodyBytes bounds JSON bodies sent by agents and the dashboard
const maxRequestBodyBytes = 1 << 20

func writeJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(r.Context(), "❌ Failed to encode JSON response", zap.Error(err))
	}
}

// writeErrorResponse maps a service error to its status code and a message safe for the client.
// notFoundMessage is used for core.ErrNotFound so each endpoint can name what was missing.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	statusCode := core.HTTPStatus(err)

	var message string
	switch statusCode {
	case http.StatusBadRequest:
		message = err.Error()
	case http.StatusRequestEntityTooLarge:
		message = core.ErrRequestTooLarge.Error()
	case http.StatusNotFound:
		message = notFoundMessage
	case http.StatusUnauthorized:
		message = "Unauthorized"
		if errors.Is(err, core.ErrInvalidCredentials) {
			message = "Invalid credentials"
		}
	default:
		log.Error(r.Context(), "❌ Request failed", zap.Error(err))
		message = "internal server error"
	}

	if statusCode != http.StatusInternalServerError {
		log.Info(r.Context(), "❌ Request rejected", zap.Int("status", statusCode), zap.String("reason", message))
	}
	writeJSONResponse(w, r, statusCode, api.ErrorResponse{Error: message})
}

// decodeJSONBody decodes the request body into dst, reporting malformed input as a bad request
// and a body over maxRequestBodyBytes as core.ErrRequestTooLarge
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("body exceeds %d bytes: %w", maxBytesErr.Limit, core.ErrRequestTooLarge)
		}
		log.Info(r.Context(), "❌ Failed to parse request body", zap.Error(err))
		return core.BadRequestf("invalid request body")
	}
	return nil
}
