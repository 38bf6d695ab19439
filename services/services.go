package services

import (
	"context"
	"time"

	"github.com/samber/mo"

	"github.com/archanap13u/track-back/models"
)

// AuthService authenticates admins and verifies their bearer tokens
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	VerifyToken(ctx context.Context, token string) (*models.Admin, error)
}

// AgentsService handles the calls made by desktop agents
type AgentsService interface {
	RegisterAgent(ctx context.Context, employeeCode, pcIdentifier string, consent bool) (*models.Employee, error)
	ProcessHeartbeat(ctx context.Context, heartbeat *models.Heartbeat) error
	LogActivity(ctx context.Context, batch *models.ActivityBatch) (int, error)
}

// EmployeesService provides the admin views over employees
type EmployeesService interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	// GetDailyActivity defaults to the current day when date is absent
	GetDailyActivity(
		ctx context.Context,
		employeeID string,
		date mo.Option[time.Time],
	) (*models.DailyActivity, error)
}

// AnalyticsService aggregates today's sessions and activity logs
type AnalyticsService interface {
	GetProductivity(ctx context.Context) (*models.ProductivitySummary, error)
	GetTopApplications(ctx context.Context) ([]*models.ApplicationUsage, error)
}

// TransactionManager handles database transactions via context
type TransactionManager interface {
	// WithTransaction runs fn in a transaction, joining the caller's transaction when one is in ctx
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
