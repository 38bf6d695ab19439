package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archanap13u/track-back/appctx"
	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/models/api"
	"github.com/archanap13u/track-back/services/auth"
)

func TestAdminAuthMiddleware_WithAuth(t *testing.T) {
	admin := &models.Admin{ID: core.NewID(core.AdminIDPrefix), Username: "admin"}

	tests := []struct {
		name           string
		header         string
		mockSetup      func(*auth.MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing header",
			header:         "",
			mockSetup:      func(*auth.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is missing",
		},
		{
			name:           "wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			mockSetup:      func(*auth.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is missing",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			mockSetup: func(m *auth.MockAuthService) {
				m.On("VerifyToken", mock.Anything, "expired").Return(nil, core.ErrTokenExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token expired",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			mockSetup: func(m *auth.MockAuthService) {
				m.On("VerifyToken", mock.Anything, "forged").
					Return(nil, fmt.Errorf("%w: signature is invalid", core.ErrTokenInvalid))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:   "verification failure",
			header: "Bearer valid",
			mockSetup: func(m *auth.MockAuthService) {
				m.On("VerifyToken", mock.Anything, "valid").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
		{
			name:   "valid token",
			header: "Bearer valid",
			mockSetup: func(m *auth.MockAuthService) {
				m.On("VerifyToken", mock.Anything, "valid").Return(admin, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := &auth.MockAuthService{}
			tt.mockSetup(authService)
			middleware := NewAdminAuthMiddleware(authService)

			var seenAdmin *models.Admin
			handler := middleware.WithAuth(func(w http.ResponseWriter, r *http.Request) {
				seenAdmin, _ = appctx.GetAdmin(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				var body api.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
				assert.Nil(t, seenAdmin)
			} else {
				assert.Equal(t, admin, seenAdmin)
			}
			authService.AssertExpectations(t)
		})
	}
}
