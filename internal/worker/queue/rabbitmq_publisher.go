package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const publishTimeout = 5 * time.Second

type RabbitMQPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	PublishNotificationCreated(ctx context.Context, event models.NotificationCreatedEvent) error
	Close() error
}

type rabbitMQPublisher struct {
	channel                 *amqp.Channel
	exchange                string
	notificationsRoutingKey string
	logger                  zerolog.Logger
}

func NewRabbitMQPublisher(channel *amqp.Channel, exchange, notificationsRoutingKey string, logger zerolog.Logger) RabbitMQPublisher {
	return &rabbitMQPublisher{
		channel:                 channel,
		exchange:                exchange,
		notificationsRoutingKey: notificationsRoutingKey,
		logger:                  logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(
		publishCtx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

func (p *rabbitMQPublisher) PublishNotificationCreated(ctx context.Context, event models.NotificationCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.Publish(ctx, p.notificationsRoutingKey, body); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debug().
		Str("notification_id", event.NotificationID).
		Str("routing_key", p.notificationsRoutingKey).
		Msg("Notification event published")

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.channel == nil || p.channel.IsClosed() {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		return fmt.Errorf("failed to close publisher channel: %w", err)
	}
	p.logger.Info().Msg("RabbitMQ publisher closed")
	return nil
}
