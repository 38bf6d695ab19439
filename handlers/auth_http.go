package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models/api"
	"github.com/archanap13u/track-back/services"
)

type AuthHTTPHandler struct {
	authService services.AuthService
}

func NewAuthHTTPHandler(authService services.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authService: authService}
}

func (h *AuthHTTPHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log.Info(r.Context(), "🔐 Login request received", zap.String("remote_addr", r.RemoteAddr))

	var req api.LoginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.DomainLoginResultToAPILoginResponse(result))
}

func (h *AuthHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.HandleLogin).Methods("POST")
	zap.L().Info("✅ POST /api/auth/login endpoint registered")
}
