package employees

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/archanap13u/track-back/models"
)

// MockEmployeesService is a mock implementation of the EmployeesService interface
type MockEmployeesService struct {
	mock.Mock
}

func (m *MockEmployeesService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeesService) GetDailyActivity(
	ctx context.Context,
	employeeID string,
	date mo.Option[time.Time],
) (*models.DailyActivity, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyActivity), args.Error(1)
}
