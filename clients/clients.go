package clients

import "context"

// AlertClient delivers operational alerts to the team's chat channel
type AlertClient interface {
	PostAlert(ctx context.Context, text string) error
}
