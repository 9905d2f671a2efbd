package repository

import (
	"context"
	"database/sql"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetLatest(ctx context.Context, limit int) ([]models.Notification, error)
}

type notificationRepository struct {
	*PostgresRepository
}

func NewNotificationRepository(db *sql.DB, logger zerolog.Logger) NotificationRepository {
	return &notificationRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, level, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		notification.ID,
		notification.Title,
		notification.Message,
		notification.Level.String(),
		notification.CreatedAt,
	)

	return err
}

func (r *notificationRepository) GetLatest(ctx context.Context, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, title, message, level, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Level, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
