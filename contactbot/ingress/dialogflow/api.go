package dialogflow

import (
	"github.com/Pandentia/contactbot/contactbot"
	"github.com/Pandentia/contactbot/contactbot/notify"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultPath is where the fulfillment webhook is served.
const DefaultPath = "/dialogflow"

// API describes this ingress API.
type API struct {
	Logger   zerolog.Logger
	Sender   notify.Sender
	Identity contactbot.Identity
	Path     string // Defaults to DefaultPath.
}

// Engine builds the gin engine serving the webhook.
func (api *API) Engine() *gin.Engine {
	r := gin.New()

	path := api.Path
	if path == "" {
		path = DefaultPath
	}
	// every method reaches the handler so non-POST requests get a JSON 405;
	// extension methods and lowercase verbs miss the method trees
	r.Any(path, api.webhookHandler)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == path {
			api.webhookHandler(c)
		}
	})

	return r
}

// Run runs the API instance at a given bind address.
func (api *API) Run(bind string) error {
	gin.SetMode(gin.ReleaseMode)
	return api.Engine().Run(bind)
}
