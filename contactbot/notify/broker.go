package notify

import (
	"context"
	"sync"

	"github.com/Pandentia/contactbot/contactbot"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// publisher is the part of *amqp.Channel the broker needs.
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Broker hands mail to a servicemail deployment over AMQP.
type Broker struct {
	Logger zerolog.Logger

	connection *amqp.Connection
	channel    publisher
	mu         sync.Mutex // guards channel publishes
}

// New initializes and connects the Broker.
func (b *Broker) New(MQURI string) error {
	logger := b.Logger.With().Str("module", "initializer").Logger()

	// connect to the message broker
	conn, err := amqp.Dial(MQURI)
	if err != nil {
		return err
	}
	b.connection = conn
	logger.Debug().Msg("Connection to message broker established")

	// create channel
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	b.channel = channel
	logger.Debug().Msg("Channel created")

	// the servicemail router owns the exchange, we only publish into it
	return nil
}

// Close closes the broker connection.
func (b *Broker) Close() error {
	if b.connection == nil {
		return nil
	}
	return b.connection.Close()
}

// Send implements Sender.
func (b *Broker) Send(ctx context.Context, mail contactbot.Mail) error {
	logger := b.Logger.With().Str("module", "broker").Logger()

	if b.channel == nil {
		logger.Error().Msg("Broker not connected, refusing to publish")
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := contactbot.Marshal(mail)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	err = b.channel.Publish(
		contactbot.Exchange,
		contactbot.IngressRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
	if err != nil {
		return err
	}
	logger.Debug().Str("subject", mail.Subject).Msg("Mail published to servicemail")
	return nil
}
