package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/middleware"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/services/agents"
	"github.com/archanap13u/track-back/services/analytics"
	"github.com/archanap13u/track-back/services/auth"
	"github.com/archanap13u/track-back/services/employees"
)

const validToken = "valid-token"

var testAdmin = &models.Admin{
	ID:       "adm_01HZX3Y8TQ6S5W2R9N4M7K1J0B",
	Username: "admin",
	Email:    "admin@company.com",
	Role:     models.AdminRoleDefault,
}

type testServer struct {
	router    *mux.Router
	auth      *auth.MockAuthService
	agents    *agents.MockAgentsService
	employees *employees.MockEmployeesService
	analytics *analytics.MockAnalyticsService
}

func newTestServer() *testServer {
	s := &testServer{
		router:    mux.NewRouter(),
		auth:      &auth.MockAuthService{},
		agents:    &agents.MockAgentsService{},
		employees: &employees.MockEmployeesService{},
		analytics: &analytics.MockAnalyticsService{},
	}

	s.auth.On("VerifyToken", mock.Anything, validToken).Return(testAdmin, nil).Maybe()
	s.auth.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, core.ErrTokenInvalid).Maybe()

	authMiddleware := middleware.NewAdminAuthMiddleware(s.auth)
	NewAuthHTTPHandler(s.auth).SetupEndpoints(s.router)
	NewAgentHTTPHandler(s.agents).SetupEndpoints(s.router)
	NewDashboardHTTPHandler(NewDashboardAPIHandler(s.employees, s.analytics)).SetupEndpoints(s.router, authMiddleware)
	s.router.HandleFunc("/health", HandleHealth).Methods("GET")
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}
