package analytics

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/archanap13u/track-back/models"
)

// MockAnalyticsService is a mock implementation of the AnalyticsService interface
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetProductivity(ctx context.Context) (*models.ProductivitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductivitySummary), args.Error(1)
}

func (m *MockAnalyticsService) GetTopApplications(ctx context.Context) ([]*models.ApplicationUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ApplicationUsage), args.Error(1)
}
