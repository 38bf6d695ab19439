package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models/api"
)

func writeErrorResponse(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{Error: message}); err != nil {
		log.Error(r.Context(), "❌ Failed to encode error response", zap.Error(err))
	}
}

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
