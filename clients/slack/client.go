package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"github.com/archanap13u/track-back/clients"
)

// SlackWebhookClient implements the clients.AlertClient interface using a Slack incoming webhook
type SlackWebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

var _ clients.AlertClient = (*SlackWebhookClient)(nil)

// NewSlackWebhookClient creates a client posting to the given incoming webhook URL
func NewSlackWebhookClient(webhookURL string) *SlackWebhookClient {
	return &SlackWebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PostAlert sends text as a plain webhook message. Slack mrkdwn in text is rendered.
func (c *SlackWebhookClient) PostAlert(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, msg); err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	return nil
}
