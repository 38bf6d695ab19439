package employees

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/utils"
)

// dailyActivityLimit caps the activity rows returned for one day
const dailyActivityLimit = 100

type EmployeesRepository interface {
	GetEmployeeByID(ctx context.Context, id string) (mo.Option[*models.Employee], error)
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
}

type WorkSessionsRepository interface {
	GetSessionByEmployeeAndDate(
		ctx context.Context,
		employeeID string,
		date time.Time,
	) (mo.Option[*models.WorkSession], error)
}

type ActivityLogsRepository interface {
	GetActivitiesForEmployee(
		ctx context.Context,
		employeeID string,
		from, to time.Time,
		limit int,
	) ([]*models.ActivityLog, error)
}

type EmployeesService struct {
	employeesRepo EmployeesRepository
	sessionsRepo  WorkSessionsRepository
	activityRepo  ActivityLogsRepository
	location      *time.Location
	now           func() time.Time
}

func NewEmployeesService(
	employeesRepo EmployeesRepository,
	sessionsRepo WorkSessionsRepository,
	activityRepo ActivityLogsRepository,
	location *time.Location,
) *EmployeesService {
	utils.AssertInvariant(location != nil, "location must be set")
	return &EmployeesService{
		employeesRepo: employeesRepo,
		sessionsRepo:  sessionsRepo,
		activityRepo:  activityRepo,
		location:      location,
		now:           time.Now,
	}
}

func (s *EmployeesService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeesRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.Debug(ctx, "📋 Listed employees", zap.Int("count", len(employees)))
	return employees, nil
}

func (s *EmployeesService) GetDailyActivity(
	ctx context.Context,
	employeeID string,
	date mo.Option[time.Time],
) (*models.DailyActivity, error) {
	if !core.IsValidIDWithPrefix(employeeID, core.EmployeeIDPrefix) {
		return nil, core.BadRequestf("invalid employee id %q", employeeID)
	}

	maybeEmployee, err := s.employeesRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if maybeEmployee.IsAbsent() {
		return nil, core.ErrNotFound
	}

	day := s.today()
	if requested, ok := date.Get(); ok {
		day = s.calendarDay(requested)
	}
	maybeSession, err := s.sessionsRepo.GetSessionByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get work session: %w", err)
	}

	activities, err := s.activityRepo.GetActivitiesForEmployee(
		ctx,
		employeeID,
		day,
		day.AddDate(0, 0, 1),
		dailyActivityLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	return &models.DailyActivity{
		Date:       day,
		Session:    maybeSession.OrEmpty(),
		Activities: activities,
	}, nil
}

func (s *EmployeesService) today() time.Time {
	return utils.StartOfDay(s.now().In(s.location))
}

// calendarDay keeps the year, month and day of t and anchors them at midnight in the service location
func (s *EmployeesService) calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}
