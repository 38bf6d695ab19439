package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/middleware"
	"github.com/archanap13u/track-back/models/api"
)

type DashboardHTTPHandler struct {
	handler *DashboardAPIHandler
}

func NewDashboardHTTPHandler(handler *DashboardAPIHandler) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		handler: handler,
	}
}

func (h *DashboardHTTPHandler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.handler.ListEmployees(r.Context())
	if err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.DomainEmployeesToAPIEmployees(employees))
}

func (h *DashboardHTTPHandler) HandleGetEmployeeActivity(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["id"]

	date := mo.None[time.Time]()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(api.DateLayout, raw)
		if err != nil {
			writeErrorResponse(w, r, core.BadRequestf("invalid date %q, expected YYYY-MM-DD", raw), "")
			return
		}
		date = mo.Some(parsed)
	}

	daily, err := h.handler.GetEmployeeActivity(r.Context(), employeeID, date)
	if err != nil {
		writeErrorResponse(w, r, err, employeeNotFoundMessage)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.DomainDailyActivityToAPIDailyActivity(daily))
}

func (h *DashboardHTTPHandler) HandleGetProductivity(w http.ResponseWriter, r *http.Request) {
	summary, err := h.handler.GetProductivity(r.Context())
	if err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.DomainProductivityToAPIProductivity(summary))
}

func (h *DashboardHTTPHandler) HandleGetTopApplications(w http.ResponseWriter, r *http.Request) {
	usage, err := h.handler.GetTopApplications(r.Context())
	if err != nil {
		writeErrorResponse(w, r, err, "")
		return
	}

	writeJSONResponse(w, r, http.StatusOK, api.DomainApplicationUsageToAPI(usage))
}

func (h *DashboardHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.AdminAuthMiddleware) {
	logger := zap.L()
	logger.Info("🚀 Registering dashboard API endpoints")

	router.HandleFunc("/api/employees", authMiddleware.WithAuth(h.HandleListEmployees)).Methods("GET")
	logger.Info("✅ GET /api/employees endpoint registered")

	router.HandleFunc("/api/employees/{id}/activity", authMiddleware.WithAuth(h.HandleGetEmployeeActivity)).
		Methods("GET")
	logger.Info("✅ GET /api/employees/{id}/activity endpoint registered")

	router.HandleFunc("/api/analytics/productivity", authMiddleware.WithAuth(h.HandleGetProductivity)).
		Methods("GET")
	logger.Info("✅ GET /api/analytics/productivity endpoint registered")

	router.HandleFunc("/api/analytics/applications", authMiddleware.WithAuth(h.HandleGetTopApplications)).
		Methods("GET")
	logger.Info("✅ GET /api/analytics/applications endpoint registered")

	logger.Info("✅ All dashboard API endpoints registered successfully")
}
