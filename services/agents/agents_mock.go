package agents

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/archanap13u/track-back/models"
)

// MockAgentsService is a mock implementation of the AgentsService interface
type MockAgentsService struct {
	mock.Mock
}

func (m *MockAgentsService) RegisterAgent(
	ctx context.Context,
	employeeCode, pcIdentifier string,
	consent bool,
) (*models.Employee, error) {
	args := m.Called(ctx, employeeCode, pcIdentifier, consent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockAgentsService) ProcessHeartbeat(ctx context.Context, heartbeat *models.Heartbeat) error {
	args := m.Called(ctx, heartbeat)
	return args.Error(0)
}

func (m *MockAgentsService) LogActivity(ctx context.Context, batch *models.ActivityBatch) (int, error) {
	args := m.Called(ctx, batch)
	return args.Int(0), args.Error(1)
}
