package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type ClassroomRepository interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	GetAll(ctx context.Context) ([]models.Classroom, error)
	GetByID(ctx context.Context, id string) (*models.Classroom, error)
	UpdateTimetable(ctx context.Context, id string, timetable models.Timetable, updatedAt time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type classroomRepository struct {
	*PostgresRepository
}

func NewClassroomRepository(db *sql.DB, logger zerolog.Logger) ClassroomRepository {
	return &classroomRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *classroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	query := `
		INSERT INTO classrooms (id, name, grade, timetable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		classroom.ID,
		classroom.Name,
		classroom.Grade,
		classroom.Timetable,
		classroom.CreatedAt,
		classroom.UpdatedAt,
	)

	return err
}

func (r *classroomRepository) GetAll(ctx context.Context) ([]models.Classroom, error) {
	query := `
		SELECT id, name, grade, timetable, created_at, updated_at
		FROM classrooms
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classrooms := []models.Classroom{}
	for rows.Next() {
		var classroom models.Classroom
		err := rows.Scan(
			&classroom.ID,
			&classroom.Name,
			&classroom.Grade,
			&classroom.Timetable,
			&classroom.CreatedAt,
			&classroom.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, classroom)
	}

	return classrooms, rows.Err()
}

func (r *classroomRepository) GetByID(ctx context.Context, id string) (*models.Classroom, error) {
	query := `
		SELECT id, name, grade, timetable, created_at, updated_at
		FROM classrooms
		WHERE id = $1
	`

	classroom := &models.Classroom{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&classroom.ID,
		&classroom.Name,
		&classroom.Grade,
		&classroom.Timetable,
		&classroom.CreatedAt,
		&classroom.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return classroom, nil
}

func (r *classroomRepository) UpdateTimetable(ctx context.Context, id string, timetable models.Timetable, updatedAt time.Time) (int64, error) {
	query := `
		UPDATE classrooms
		SET timetable = $1, updated_at = $2
		WHERE id = $3
	`

	res, err := r.db.ExecContext(ctx, query, timetable, updatedAt, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *classroomRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM classrooms`)
}
