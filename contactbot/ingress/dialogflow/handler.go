package dialogflow

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Pandentia/contactbot/contactbot"
	"github.com/Pandentia/contactbot/contactbot/notify"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MaxBodySize caps the fulfillment request body.
const MaxBodySize = 1 << 20

func (api *API) webhookHandler(c *gin.Context) {
	logger := api.Logger.With().Str("module", "handler").Logger()

	logger.Debug().Str("method", c.Request.Method).Msg("Request received")

	if strings.ToUpper(c.Request.Method) != http.MethodPost {
		logger.Error().Str("method", c.Request.Method).Msg("Request was not POST")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
	outcome, contact := api.process(c.Request.Context(), logger, body)
	text := contactbot.FulfillmentText(outcome, contact)

	logger.Info().Stringer("outcome", outcome).Msg("Request handled")
	logger.Debug().Str("text", text).Msg("Fulfillment response")

	// failures are reported in-band, the agent always gets a 200
	c.JSON(http.StatusOK, NewResponse(text))
}

// process runs one fulfillment request and never panics.
func (api *API) process(ctx context.Context, logger zerolog.Logger, body io.Reader) (outcome contactbot.Outcome, contact contactbot.Contact) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Unhandled panic while processing request")
			outcome = contactbot.UnexpectedError
		}
	}()

	data, err := io.ReadAll(body)
	if err != nil {
		logger.Err(err).Msg("Error reading request body")
		return contactbot.UnexpectedError, contact
	}
	logger.Debug().Bytes("data", data).Msg("Raw request body")

	contact, err = contactbot.Extract(data)
	switch {
	case errors.Is(err, contactbot.ErrMalformedPayload):
		logger.Err(err).Msg("Error decoding request body")
		return contactbot.MalformedPayload, contact
	case err != nil:
		logger.Err(err).Msg("Error extracting parameters")
		return contactbot.UnexpectedError, contact
	}
	logger.Debug().Interface("contact", contact).Msg("Finished extracting contact")

	mail := contactbot.Compose(api.Identity, contact)

	if api.Sender == nil {
		logger.Error().Msg("No sender configured")
		return contactbot.ConfigurationMissing, contact
	}
	if err := api.Sender.Send(ctx, mail); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			logger.Err(err).Msg("Email sending is not configured")
			return contactbot.ConfigurationMissing, contact
		}
		logger.Err(err).Msg("Error sending notification email")
		return contactbot.SendFailed, contact
	}

	logger.Debug().Str("subject", mail.Subject).Msg("Notification email sent")
	return contactbot.Sent, contact
}
