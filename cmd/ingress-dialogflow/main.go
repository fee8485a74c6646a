package main

import (
	"os"

	"github.com/Pandentia/contactbot/contactbot"
	"github.com/Pandentia/contactbot/contactbot/ingress/dialogflow"
	"github.com/Pandentia/contactbot/contactbot/notify"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	app := kingpin.New("ingress-dialogflow", "Chatbot fulfillment webhook for contact details")

	bind := app.Flag("bind", "The address to bind to").Envar("BIND").Default("[::]:8080").Short('b').String()
	path := app.Flag("path", "The webhook path").Envar("WEBHOOK_PATH").Default(dialogflow.DefaultPath).String()
	backend := app.Flag("backend", "Where notification mail is delivered").Envar("BACKEND").Default("brevo").Enum("brevo", "servicemail")

	apiKey := app.Flag("brevo-api-key", "The Brevo v3 API key").Envar("BREVO_API_KEY_V3").String()
	brevoBasePath := app.Flag("brevo-base-path", "The Brevo v3 API root").Envar("BREVO_BASE_PATH").Default(notify.DefaultBrevoBasePath).String()
	AMQPURI := app.Flag("amqp-uri", "The AMQP URI of the servicemail broker").Envar("AMQP_URI").Short('u').String()

	senderName := app.Flag("sender-name", "The sender display name").Envar("SENDER_NAME").Default("Chatbot").String()
	senderEmail := app.Flag("sender-email", "The verified sender address").Envar("SENDER_EMAIL").Required().String()
	recipientEmail := app.Flag("recipient-email", "The address receiving contact details").Envar("RECIPIENT_EMAIL").Required().String()

	verbose := app.Flag("verbose", "Enables debug logging").Short('v').Bool()
	pretty := app.Flag("pretty", "Enables pretty logging").Short('p').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	var sender notify.Sender
	switch *backend {
	case "servicemail":
		if *AMQPURI == "" {
			logger.Fatal().Msg("--amqp-uri is required for the servicemail backend.")
		}
		broker := &notify.Broker{Logger: logger}
		if err := broker.New(*AMQPURI); err != nil {
			logger.Fatal().Err(err).Msg("Error connecting to servicemail broker.")
		}
		defer broker.Close()
		sender = broker
	default:
		if *apiKey == "" {
			logger.Error().Msg("Brevo API key not found, notification mail is disabled. Set BREVO_API_KEY_V3.")
		}
		sender = &notify.Brevo{
			APIKey:   *apiKey,
			BasePath: *brevoBasePath,
			Logger:   logger,
		}
	}

	ingest := &dialogflow.API{
		Logger: logger,
		Sender: sender,
		Identity: contactbot.Identity{
			SenderName:       *senderName,
			SenderAddress:    *senderEmail,
			RecipientAddress: *recipientEmail,
		},
		Path: *path,
	}

	logger.Info().Str("bind", *bind).Str("path", *path).Str("backend", *backend).Msg("Webhook listening")
	if err := ingest.Run(*bind); err != nil {
		logger.Fatal().Err(err).Msg("Error running ingress API.")
	}
}
