package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/utils"
)

const topApplicationsLimit = 10

var secondsPerHour = decimal.NewFromInt(3600)

type EmployeesRepository interface {
	CountEmployees(ctx context.Context) (int, error)
}

type WorkSessionsRepository interface {
	GetSessionTotalsByDate(ctx context.Context, date time.Time) (*models.SessionTotals, error)
}

type ActivityLogsRepository interface {
	GetTopApplications(ctx context.Context, from, to time.Time, limit int) ([]*models.ApplicationUsage, error)
}

type AnalyticsService struct {
	employeesRepo EmployeesRepository
	sessionsRepo  WorkSessionsRepository
	activityRepo  ActivityLogsRepository
	location      *time.Location
	now           func() time.Time
}

func NewAnalyticsService(
	employeesRepo EmployeesRepository,
	sessionsRepo WorkSessionsRepository,
	activityRepo ActivityLogsRepository,
	location *time.Location,
) *AnalyticsService {
	utils.AssertInvariant(location != nil, "location must be set")
	return &AnalyticsService{
		employeesRepo: employeesRepo,
		sessionsRepo:  sessionsRepo,
		activityRepo:  activityRepo,
		location:      location,
		now:           time.Now,
	}
}

// GetProductivity summarizes today's work sessions. Work and idle totals stay in seconds.
func (s *AnalyticsService) GetProductivity(ctx context.Context) (*models.ProductivitySummary, error) {
	today := s.today()

	totals, err := s.sessionsRepo.GetSessionTotalsByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get session totals: %w", err)
	}

	totalEmployees, err := s.employeesRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	avgProductivity := decimal.Zero
	if totals.SessionCount > 0 {
		avgProductivity = decimal.NewFromFloat(totals.ProductivitySum).
			Div(decimal.NewFromInt(int64(totals.SessionCount)))
	}

	summary := &models.ProductivitySummary{
		Date:            today,
		ActiveEmployees: totals.ActiveEmployees,
		TotalEmployees:  totalEmployees,
		AvgProductivity: round2(avgProductivity),
		TotalWorkTime:   round2(decimal.NewFromFloat(totals.ActiveTimeSum)),
		TotalIdleTime:   round2(decimal.NewFromFloat(totals.IdleTimeSum)),
	}

	log.Debug(ctx, "📊 Productivity summary computed",
		zap.Int("sessions", totals.SessionCount),
		zap.Int("active_employees", summary.ActiveEmployees))
	return summary, nil
}

// GetTopApplications returns today's ten most used applications by total duration
func (s *AnalyticsService) GetTopApplications(ctx context.Context) ([]*models.ApplicationUsage, error) {
	today := s.today()

	usage, err := s.activityRepo.GetTopApplications(ctx, today, today.AddDate(0, 0, 1), topApplicationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top applications: %w", err)
	}

	for _, u := range usage {
		u.Hours = round2(decimal.NewFromFloat(u.TotalSeconds).Div(secondsPerHour))
	}

	return usage, nil
}

func (s *AnalyticsService) today() time.Time {
	return utils.StartOfDay(s.now().In(s.location))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
