package notify

import (
	"context"
	"errors"
	"net/http"

	"github.com/Pandentia/contactbot/contactbot"
	brevo "github.com/getbrevo/brevo-go/lib"
	"github.com/rs/zerolog"
)

// DefaultBrevoBasePath is the Brevo v3 API root.
const DefaultBrevoBasePath = "https://api.brevo.com/v3"

// Brevo sends mail through the Brevo transactional email API.
type Brevo struct {
	APIKey   string // An empty key disables sending.
	BasePath string // Defaults to DefaultBrevoBasePath.
	Client   *http.Client
	Logger   zerolog.Logger
}

func (b *Brevo) client() *brevo.APIClient {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", b.APIKey)
	if b.BasePath != "" {
		cfg.BasePath = b.BasePath
	} else {
		cfg.BasePath = DefaultBrevoBasePath
	}
	if b.Client != nil {
		cfg.HTTPClient = b.Client
	}
	return brevo.NewAPIClient(cfg)
}

// Send implements Sender.
func (b *Brevo) Send(ctx context.Context, mail contactbot.Mail) error {
	logger := b.Logger.With().Str("module", "brevo").Logger()

	if b.APIKey == "" {
		logger.Error().Msg("Brevo API key not set, refusing to send")
		return ErrNotConfigured
	}

	email := brevo.SendSmtpEmail{
		Sender:      &brevo.SendSmtpEmailSender{Name: mail.SenderName, Email: mail.From},
		To:          []brevo.SendSmtpEmailTo{{Email: mail.To}},
		Subject:     mail.Subject,
		HtmlContent: mail.Body,
	}

	logger.Debug().Str("to", mail.To).Str("subject", mail.Subject).Msg("Sending transactional email")
	result, resp, err := b.client().TransactionalEmailsApi.SendTransacEmail(ctx, email)
	if resp != nil && resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var swaggerErr brevo.GenericSwaggerError
		if errors.As(err, &swaggerErr) {
			apiErr.Body = string(swaggerErr.Body())
		}
		return apiErr
	}
	if err != nil {
		return err
	}

	logger.Debug().Str("message_id", result.MessageId).Msg("Transactional email accepted")
	return nil
}
