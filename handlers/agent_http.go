package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models/api"
	"github.com/archanap13u/track-back/services"
)

const (
	employeeNotFoundMessage = "Employee not found"
	deviceNotFoundMessage   = "Employee not found for this PC"
)

// AgentHTTPHandler serves the unauthenticated endpoints called by desktop agents
type AgentHTTPHandler struct {
	agentsService services.AgentsService
}

func NewAgentHTTPHandler(agentsService services.AgentsService) *AgentHTTPHandler {
	return &AgentHTTPHandler{agentsService: agentsService}
}

func (h *AgentHTTPHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterAgentRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	employee, err := h.agentsService.RegisterAgent(r.Context(), req.EmployeeID, req.PCIdentifier, req.Consent)
	if err != nil {
		writeErrorResponse(w, r, err, employeeNotFoundMessage)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.RegisterAgentResponse{
		Success:         true,
		EmployeeID:      employee.ID,
		TrackingEnabled: employee.MonitoringConsent,
	})
}

func (h *AgentHTTPHandler) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req api.HeartbeatRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	if err := h.agentsService.ProcessHeartbeat(r.Context(), api.APIHeartbeatToDomain(&req)); err != nil {
		writeErrorResponse(w, r, err, deviceNotFoundMessage)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.HeartbeatResponse{Success: true, Status: "recorded"})
}

func (h *AgentHTTPHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	var req api.ActivityBatchRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	written, err := h.agentsService.LogActivity(r.Context(), api.APIActivityBatchToDomain(&req))
	if err != nil {
		writeErrorResponse(w, r, err, deviceNotFoundMessage)
		return
	}

	log.Debug(r.Context(), "📥 Activity batch accepted", zap.Int("activities", written))
	writeJSONResponse(w, r, http.StatusOK, api.SuccessResponse{Success: true})
}

func (h *AgentHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/api/agent/register", h.HandleRegister).Methods("POST")
	zap.L().Info("✅ POST /api/agent/register endpoint registered")

	router.HandleFunc("/api/agent/heartbeat", h.HandleHeartbeat).Methods("POST")
	zap.L().Info("✅ POST /api/agent/heartbeat endpoint registered")

	router.HandleFunc("/api/agent/activity", h.HandleActivity).Methods("POST")
	zap.L().Info("✅ POST /api/agent/activity endpoint registered")
}
