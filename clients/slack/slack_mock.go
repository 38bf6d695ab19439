package slack

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSlackWebhookClient is a mock implementation of the clients.AlertClient interface
type MockSlackWebhookClient struct {
	mock.Mock
}

func (m *MockSlackWebhookClient) PostAlert(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
