package handlers

import (
	"context"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/appctx"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/services"
)

// DashboardAPIHandler serves the admin dashboard views
type DashboardAPIHandler struct {
	employeesService services.EmployeesService
	analyticsService services.AnalyticsService
}

func NewDashboardAPIHandler(
	employeesService services.EmployeesService,
	analyticsService services.AnalyticsService,
) *DashboardAPIHandler {
	return &DashboardAPIHandler{
		employeesService: employeesService,
		analyticsService: analyticsService,
	}
}

func (h *DashboardAPIHandler) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := h.employeesService.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "✅ Retrieved employees", actingAdmin(ctx), zap.Int("count", len(employees)))
	return employees, nil
}

// GetEmployeeActivity returns the employee's session and activities for date, or for today when absent
func (h *DashboardAPIHandler) GetEmployeeActivity(
	ctx context.Context,
	employeeID string,
	date mo.Option[time.Time],
) (*models.DailyActivity, error) {
	log.Info(ctx, "📋 Getting daily activity", actingAdmin(ctx), zap.String("employee_id", employeeID))
	daily, err := h.employeesService.GetDailyActivity(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "✅ Retrieved daily activity",
		zap.String("employee_id", employeeID),
		zap.Int("activities", len(daily.Activities)),
		zap.Bool("has_session", daily.Session != nil))
	return daily, nil
}

func (h *DashboardAPIHandler) GetProductivity(ctx context.Context) (*models.ProductivitySummary, error) {
	summary, err := h.analyticsService.GetProductivity(ctx)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "✅ Retrieved productivity summary", actingAdmin(ctx), zap.Time("date", summary.Date))
	return summary, nil
}

func (h *DashboardAPIHandler) GetTopApplications(ctx context.Context) ([]*models.ApplicationUsage, error) {
	usage, err := h.analyticsService.GetTopApplications(ctx)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "✅ Retrieved top applications", actingAdmin(ctx), zap.Int("count", len(usage)))
	return usage, nil
}

// actingAdmin names the authenticated admin on dashboard log entries
func actingAdmin(ctx context.Context) zap.Field {
	if admin, ok := appctx.GetAdmin(ctx); ok {
		return zap.String("admin_username", admin.Username)
	}
	return zap.Skip()
}
