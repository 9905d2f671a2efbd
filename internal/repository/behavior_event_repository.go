package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type BehaviorEventRepository interface {
	Create(ctx context.Context, event *models.BehaviorEvent) error
	GetByStudentID(ctx context.Context, studentID string) ([]models.BehaviorEvent, error)
	GetByTeacherID(ctx context.Context, teacherID string) ([]models.BehaviorEvent, error)
	Count(ctx context.Context) (int64, error)
	AverageScoreByType(ctx context.Context) ([]models.EngagementSummary, error)
}

type behaviorEventRepository struct {
	*PostgresRepository
}

func NewBehaviorEventRepository(db *sql.DB, logger zerolog.Logger) BehaviorEventRepository {
	return &behaviorEventRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *behaviorEventRepository) Create(ctx context.Context, event *models.BehaviorEvent) error {
	query := `
		INSERT INTO behavior_events (id, student_id, teacher_id, classroom_id, event_type, score, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.StudentID,
		event.TeacherID,
		event.ClassroomID,
		event.EventType,
		event.Score,
		event.Notes,
		event.CreatedAt,
	)

	return err
}

// GetByStudentID matches the stored reference as text, the id is not normalised.
func (r *behaviorEventRepository) GetByStudentID(ctx context.Context, studentID string) ([]models.BehaviorEvent, error) {
	return r.listBy(ctx, "student_id", studentID)
}

func (r *behaviorEventRepository) GetByTeacherID(ctx context.Context, teacherID string) ([]models.BehaviorEvent, error) {
	return r.listBy(ctx, "teacher_id", teacherID)
}

func (r *behaviorEventRepository) listBy(ctx context.Context, column, value string) ([]models.BehaviorEvent, error) {
	query := fmt.Sprintf(`
		SELECT id, student_id, teacher_id, classroom_id, event_type, score, notes, created_at
		FROM behavior_events
		WHERE %s = $1
		ORDER BY created_at
	`, column)

	rows, err := r.db.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.BehaviorEvent{}
	for rows.Next() {
		var event models.BehaviorEvent
		err := rows.Scan(
			&event.ID,
			&event.StudentID,
			&event.TeacherID,
			&event.ClassroomID,
			&event.EventType,
			&event.Score,
			&event.Notes,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *behaviorEventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM behavior_events`)
}

func (r *behaviorEventRepository) AverageScoreByType(ctx context.Context) ([]models.EngagementSummary, error) {
	query := `
		SELECT event_type, AVG(score) AS avg_score
		FROM behavior_events
		WHERE score IS NOT NULL
		GROUP BY event_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := []models.EngagementSummary{}
	for rows.Next() {
		var item models.EngagementSummary
		if err := rows.Scan(&item.EventType, &item.AverageScore); err != nil {
			return nil, err
		}
		summary = append(summary, item)
	}

	return summary, rows.Err()
}
