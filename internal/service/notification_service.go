package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

// LatestNotificationsLimit caps GET /notifications.
const LatestNotificationsLimit = 50

// NotificationPublisher fans stored notifications out to live subscribers.
type NotificationPublisher interface {
	PublishNotificationCreated(ctx context.Context, event models.NotificationCreatedEvent) error
}

type NotificationService interface {
	CreateNotification(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error)
	GetLatestNotifications(ctx context.Context) ([]models.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        NotificationPublisher
	logger           zerolog.Logger
}

// NewNotificationService: publisher может быть nil, тогда уведомления только сохраняются.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	publisher NotificationPublisher,
	logger zerolog.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	notification := &models.Notification{
		ID:        newID(),
		Title:     req.Title,
		Message:   req.Message,
		Level:     models.NotificationLevel(req.Level),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Info().
		Str("notification_id", notification.ID).
		Str("level", notification.Level.String()).
		Msg("Notification created")

	s.publish(ctx, notification)

	return notification, nil
}

func (s *notificationService) GetLatestNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.GetLatest(ctx, LatestNotificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

// publish не должен ломать запрос: уведомление уже сохранено.
func (s *notificationService) publish(ctx context.Context, notification *models.Notification) {
	if s.publisher == nil {
		return
	}

	event := models.NotificationCreatedEvent{
		NotificationID: notification.ID,
		Title:          notification.Title,
		Message:        notification.Message,
		Level:          notification.Level.String(),
		Timestamp:      notification.CreatedAt.Unix(),
	}

	if err := s.publisher.PublishNotificationCreated(ctx, event); err != nil {
		s.logger.Error().
			Err(err).
			Str("notification_id", notification.ID).
			Msg("Failed to publish notification created event")
	}
}
