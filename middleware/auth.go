package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/appctx"
	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/services"
)

// AdminAuthMiddleware authenticates admin requests with the bearer tokens issued at login
type AdminAuthMiddleware struct {
	authService services.AuthService
}

func NewAdminAuthMiddleware(authService services.AuthService) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{authService: authService}
}

// WithAuth wraps an HTTP handler with bearer token authentication
func (m *AdminAuthMiddleware) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			log.Info(r.Context(), "❌ Missing bearer token")
			writeErrorResponse(w, r, "Token is missing", http.StatusUnauthorized)
			return
		}

		admin, err := m.authService.VerifyToken(r.Context(), token)
		switch {
		case errors.Is(err, core.ErrTokenExpired):
			log.Info(r.Context(), "❌ Expired bearer token")
			writeErrorResponse(w, r, "Token expired", http.StatusUnauthorized)
			return
		case errors.Is(err, core.ErrTokenInvalid):
			log.Info(r.Context(), "❌ Invalid bearer token", zap.Error(err))
			writeErrorResponse(w, r, "Invalid token", http.StatusUnauthorized)
			return
		case err != nil:
			log.Error(r.Context(), "❌ Failed to verify bearer token", zap.Error(err))
			writeErrorResponse(w, r, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := appctx.SetAdmin(r.Context(), admin)
		ctx = log.WithFields(ctx, zap.String("admin_id", admin.ID))
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
