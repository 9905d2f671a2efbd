package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/service"
	"github.com/rs/zerolog"
)

// ErrInvalidMessage marks deliveries that will never succeed and must not be requeued.
var ErrInvalidMessage = errors.New("invalid message")

type MessageHandler interface {
	ProcessMessage(ctx context.Context, msg RabbitMQMessage) error
}

type messageHandler struct {
	eventService service.BehaviorEventService
	logger       zerolog.Logger
}

func NewMessageHandler(eventService service.BehaviorEventService, logger zerolog.Logger) MessageHandler {
	return &messageHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// ProcessMessage сохраняет событие behavior.detected.
// Битый JSON и невалидные события возвращают ErrInvalidMessage.
func (h *messageHandler) ProcessMessage(ctx context.Context, msg RabbitMQMessage) error {
	var event models.BehaviorDetectedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	stored, err := h.eventService.RecordEvent(ctx, event.ToRequest())
	if errors.Is(err, service.ErrValidation) {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err != nil {
		return err
	}

	h.logger.Info().
		Str("event_id", stored.ID).
		Str("camera_id", event.CameraID).
		Str("event_type", stored.EventType).
		Msg("Behavior event ingested")

	return nil
}
