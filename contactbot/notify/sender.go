// Package notify delivers composed contact mail to its recipient.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pandentia/contactbot/contactbot"
)

// ErrNotConfigured is returned when a sender lacks the credentials to deliver.
var ErrNotConfigured = errors.New("sender is not configured")

// Sender delivers a single mail. Implementations make exactly one attempt.
type Sender interface {
	Send(ctx context.Context, mail contactbot.Mail) error
}

// APIError describes a failure reported by the email provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
