package middleware

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/clients"
	"github.com/archanap13u/track-back/core/log"
)

const alertSendTimeout = 15 * time.Second

type AlertConfig struct {
	Environment string
	AppName     string
	LogsURL     string
}

type ErrorAlertMiddleware struct {
	config        AlertConfig
	alertClient   clients.AlertClient // nil disables alerting
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.Mutex
	alertCooldown time.Duration
	now           func() time.Time
}

func NewErrorAlertMiddleware(config AlertConfig, alertClient clients.AlertClient) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		alertClient:   alertClient,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute,
		now:           time.Now,
	}
}

// HTTPMiddleware recovers panics into a 500 response and alerts on panics and server errors
func (m *ErrorAlertMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestContext := fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path)
		recorder := newStatusRecorder(w)

		defer func() {
			if rec := recover(); rec != nil {
				errorMsg := fmt.Sprintf("%s: PANIC - %v", requestContext, rec)
				log.Error(r.Context(), "❌ Recovered from panic", zap.Any("panic", rec), zap.Stack("stack"))
				m.alert(r.Context(), errorMsg, requestContext+" (PANIC)")
				writeErrorResponse(recorder, r, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(recorder, r)

		if recorder.status >= http.StatusInternalServerError {
			m.alert(r.Context(), fmt.Sprintf("%s: responded %d", requestContext, recorder.status), requestContext)
		}
	})
}

// alert posts errorMsg to the alert channel unless the same message was posted within the cooldown
func (m *ErrorAlertMiddleware) alert(ctx context.Context, errorMsg, alertContext string) {
	if m.alertClient == nil {
		return
	}

	hash := fmt.Sprintf("%x", md5.Sum([]byte(errorMsg)))

	m.mutex.Lock()
	now := m.now()
	if lastAlert, exists := m.alertedErrors[hash]; exists && now.Sub(lastAlert) < m.alertCooldown {
		m.mutex.Unlock()
		return
	}
	m.alertedErrors[hash] = now
	m.mutex.Unlock()

	logger := log.Logger(ctx)
	go m.sendAlert(logger, errorMsg, alertContext)
}

func (m *ErrorAlertMiddleware) sendAlert(logger *zap.Logger, errorMsg, alertContext string) {
	envPrefix := ""
	if m.config.Environment == "dev" {
		envPrefix = "[dev] "
	}

	text := fmt.Sprintf("🚨 %s[%s] Error Alert\n*Environment:* %s\n*Context:* %s\n*Error:*\n```%s```",
		envPrefix, m.config.AppName, m.config.Environment, alertContext, errorMsg)
	if m.config.LogsURL != "" {
		text += fmt.Sprintf("\n🔗 <%s|View Logs>", m.config.LogsURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), alertSendTimeout)
	defer cancel()

	if err := m.alertClient.PostAlert(ctx, text); err != nil {
		logger.Error("❌ Failed to send error alert", zap.Error(err))
	}
}
