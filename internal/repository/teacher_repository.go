package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	Search(ctx context.Context, filter PersonFilter) ([]models.Teacher, error)
	Count(ctx context.Context) (int64, error)
}

type teacherRepository struct {
	*PostgresRepository
}

func NewTeacherRepository(db *sql.DB, logger zerolog.Logger) TeacherRepository {
	return &teacherRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (id, first_name, last_name, subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		teacher.ID,
		teacher.FirstName,
		teacher.LastName,
		teacher.Subject,
		teacher.CreatedAt,
		teacher.UpdatedAt,
	)

	return err
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, subject, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	teacher := &models.Teacher{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.Subject,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return teacher, nil
}

func (r *teacherRepository) Search(ctx context.Context, filter PersonFilter) ([]models.Teacher, error) {
	// у преподавателей нет привязки к классу
	where, args := filter.where(false)
	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, subject, created_at, updated_at
		FROM teachers
		%s
		ORDER BY last_name, first_name
		LIMIT %d
	`, where, PersonSearchLimit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []models.Teacher{}
	for rows.Next() {
		var teacher models.Teacher
		err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.Subject,
			&teacher.CreatedAt,
			&teacher.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	return teachers, rows.Err()
}

func (r *teacherRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM teachers`)
}
