package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Connection владеет соединением с RabbitMQ; каналы для consumer и publisher открываются отдельно.
type Connection struct {
	conn   *amqp.Connection
	logger zerolog.Logger
}

func Dial(url string, logger zerolog.Logger) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	logger.Info().Msg("Connected to RabbitMQ")

	return &Connection{
		conn:   conn,
		logger: logger,
	}, nil
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	channel, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return channel, nil
}

// SetupTopology объявляет exchange и очередь событий поведения, привязанную к routing key.
func (c *Connection) SetupTopology(exchange, queue, routingKey string) error {
	channel, err := c.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		q.Name,     // queue name
		routingKey, // routing key
		exchange,   // exchange
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	c.logger.Info().
		Str("exchange", exchange).
		Str("queue", q.Name).
		Str("routing_key", routingKey).
		Msg("RabbitMQ topology ready")

	return nil
}

func (c *Connection) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}

	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
	}

	c.logger.Info().Msg("RabbitMQ connection closed")
	return nil
}
