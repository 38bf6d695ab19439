package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/services"
	"github.com/archanap13u/track-back/utils"
)

type EmployeesRepository interface {
	GetEmployeeByCode(ctx context.Context, employeeCode string, forUpdate bool) (mo.Option[*models.Employee], error)
	GetEmployeeByPCIdentifier(
		ctx context.Context,
		pcIdentifier string,
		forUpdate bool,
	) (mo.Option[*models.Employee], error)
	ReleasePCIdentifier(ctx context.Context, pcIdentifier, exceptEmployeeID string) error
	BindPCIdentifier(
		ctx context.Context,
		employeeID, pcIdentifier string,
		consent bool,
		consentDate time.Time,
	) (*models.Employee, error)
	UpdateEmployeeStatus(
		ctx context.Context,
		employeeID string,
		status models.EmployeeStatus,
		lastActivity time.Time,
	) error
}

type WorkSessionsRepository interface {
	UpsertDailySession(ctx context.Context, session *models.WorkSession) error
}

type ActivityLogsRepository interface {
	CreateActivityLogs(ctx context.Context, logs []*models.ActivityLog) error
}

type AgentsService struct {
	employeesRepo EmployeesRepository
	sessionsRepo  WorkSessionsRepository
	activityRepo  ActivityLogsRepository
	txManager     services.TransactionManager
	location      *time.Location
	now           func() time.Time
}

func NewAgentsService(
	employeesRepo EmployeesRepository,
	sessionsRepo WorkSessionsRepository,
	activityRepo ActivityLogsRepository,
	txManager services.TransactionManager,
	location *time.Location,
) *AgentsService {
	utils.AssertInvariant(location != nil, "location must be set")
	return &AgentsService{
		employeesRepo: employeesRepo,
		sessionsRepo:  sessionsRepo,
		activityRepo:  activityRepo,
		txManager:     txManager,
		location:      location,
		now:           time.Now,
	}
}

// RegisterAgent binds a device to the employee with the given code. A device belongs to
// at most one employee, so any previous holder of pcIdentifier loses it.
func (s *AgentsService) RegisterAgent(
	ctx context.Context,
	employeeCode, pcIdentifier string,
	consent bool,
) (*models.Employee, error) {
	log.Info(ctx, "📋 Starting to register agent",
		zap.String("employee_code", employeeCode),
		zap.String("pc_identifier", pcIdentifier))
	if employeeCode == "" {
		return nil, core.BadRequestf("employee_id is required")
	}
	if pcIdentifier == "" {
		return nil, core.BadRequestf("pc_identifier is required")
	}

	var employee *models.Employee
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		maybeEmployee, err := s.employeesRepo.GetEmployeeByCode(ctx, employeeCode, true)
		if err != nil {
			return fmt.Errorf("failed to get employee by code: %w", err)
		}
		existing, ok := maybeEmployee.Get()
		if !ok {
			return core.ErrNotFound
		}

		if err := s.employeesRepo.ReleasePCIdentifier(ctx, pcIdentifier, existing.ID); err != nil {
			return err
		}

		employee, err = s.employeesRepo.BindPCIdentifier(ctx, existing.ID, pcIdentifier, consent, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "📋 Completed successfully - registered agent",
		zap.String("employee_id", employee.ID),
		zap.Bool("tracking_enabled", employee.MonitoringConsent))
	return employee, nil
}

// ProcessHeartbeat records the employee's status and overwrites today's session totals
// with the running totals reported by the agent
func (s *AgentsService) ProcessHeartbeat(ctx context.Context, heartbeat *models.Heartbeat) error {
	if err := validateHeartbeat(heartbeat); err != nil {
		return err
	}

	now := s.now().In(s.location)
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.employeeForDevice(ctx, heartbeat.PCIdentifier)
		if err != nil {
			return err
		}

		if err := s.employeesRepo.UpdateEmployeeStatus(ctx, employee.ID, heartbeat.Status, now); err != nil {
			return err
		}

		session := &models.WorkSession{
			ID:                core.NewID(core.WorkSessionIDPrefix),
			EmployeeID:        employee.ID,
			ClockIn:           now,
			TotalActiveTime:   heartbeat.ActiveTime,
			TotalIdleTime:     heartbeat.IdleTime,
			ProductivityScore: heartbeat.ProductivityScore,
			Date:              utils.StartOfDay(now),
		}
		if err := s.sessionsRepo.UpsertDailySession(ctx, session); err != nil {
			return err
		}

		if heartbeat.CurrentApp != "" {
			category := heartbeat.AppCategory
			if category == "" {
				category = models.ActivityCategoryNeutral
			}
			activity := &models.ActivityLog{
				ID:              core.NewID(core.ActivityLogIDPrefix),
				EmployeeID:      employee.ID,
				ActivityType:    models.ActivityTypeAppUsage,
				ApplicationName: optionalString(heartbeat.CurrentApp),
				WindowTitle:     optionalString(heartbeat.WindowTitle),
				Category:        &category,
				Duration:        heartbeat.Duration,
				Timestamp:       now,
			}
			if err := s.activityRepo.CreateActivityLogs(ctx, []*models.ActivityLog{activity}); err != nil {
				return err
			}
		}

		log.Debug(ctx, "💓 Heartbeat recorded",
			zap.String("employee_id", employee.ID),
			zap.String("status", string(heartbeat.Status)),
			zap.String("session_id", session.ID))
		return nil
	})
}

// LogActivity appends every sample of the batch, or none of them
func (s *AgentsService) LogActivity(ctx context.Context, batch *models.ActivityBatch) (int, error) {
	if batch.PCIdentifier == "" {
		return 0, core.BadRequestf("pc_identifier is required")
	}
	for _, app := range batch.Applications {
		if !utils.NonNegative(app.Duration) {
			return 0, core.BadRequestf("duration must be a non-negative number")
		}
	}
	for _, site := range batch.Websites {
		if !utils.NonNegative(site.Duration) {
			return 0, core.BadRequestf("duration must be a non-negative number")
		}
	}

	now := s.now().In(s.location)
	var written int
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.employeeForDevice(ctx, batch.PCIdentifier)
		if err != nil {
			return err
		}

		logs := make([]*models.ActivityLog, 0, len(batch.Applications)+len(batch.Websites))
		for _, app := range batch.Applications {
			logs = append(logs, &models.ActivityLog{
				ID:              core.NewID(core.ActivityLogIDPrefix),
				EmployeeID:      employee.ID,
				ActivityType:    models.ActivityTypeAppUsage,
				ApplicationName: optionalString(app.Name),
				WindowTitle:     optionalString(app.WindowTitle),
				Category:        optionalCategory(app.Category),
				Duration:        app.Duration,
				Timestamp:       now,
			})
		}
		for _, site := range batch.Websites {
			logs = append(logs, &models.ActivityLog{
				ID:           core.NewID(core.ActivityLogIDPrefix),
				EmployeeID:   employee.ID,
				ActivityType: models.ActivityTypeWebsiteVisit,
				URL:          optionalString(site.URL),
				Category:     optionalCategory(site.Category),
				Duration:     site.Duration,
				Timestamp:    now,
			})
		}

		if err := s.activityRepo.CreateActivityLogs(ctx, logs); err != nil {
			return err
		}
		written = len(logs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info(ctx, "📋 Activity batch stored",
		zap.String("pc_identifier", batch.PCIdentifier),
		zap.Int("activities", written))
	return written, nil
}

func (s *AgentsService) employeeForDevice(ctx context.Context, pcIdentifier string) (*models.Employee, error) {
	maybeEmployee, err := s.employeesRepo.GetEmployeeByPCIdentifier(ctx, pcIdentifier, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by pc identifier: %w", err)
	}
	employee, ok := maybeEmployee.Get()
	if !ok {
		log.Warn(ctx, "❌ No employee registered for device", zap.String("pc_identifier", pcIdentifier))
		return nil, core.ErrNotFound
	}
	return employee, nil
}

func validateHeartbeat(heartbeat *models.Heartbeat) error {
	if heartbeat.PCIdentifier == "" {
		return core.BadRequestf("pc_identifier is required")
	}
	if !heartbeat.Status.IsValid() {
		return core.BadRequestf("invalid status %q", heartbeat.Status)
	}
	if !utils.NonNegative(heartbeat.ActiveTime, heartbeat.IdleTime, heartbeat.Duration) {
		return core.BadRequestf("active_time, idle_time and duration must be non-negative numbers")
	}
	if !utils.NonNegative(heartbeat.ProductivityScore) {
		return core.BadRequestf("productivity_score must be a non-negative number")
	}
	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalCategory(category models.ActivityCategory) *models.ActivityCategory {
	if category == "" {
		return nil
	}
	return &category
}
