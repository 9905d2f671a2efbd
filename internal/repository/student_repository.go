package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Search(ctx context.Context, filter PersonFilter) ([]models.Student, error)
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, first_name, last_name, classroom_id, roll_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.ClassroomID,
		student.RollNumber,
		student.CreatedAt,
		student.UpdatedAt,
	)

	return err
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, classroom_id, roll_number, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.ClassroomID,
		&student.RollNumber,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return student, nil
}

func (r *studentRepository) Search(ctx context.Context, filter PersonFilter) ([]models.Student, error) {
	where, args := filter.where(true)
	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, classroom_id, roll_number, created_at, updated_at
		FROM students
		%s
		ORDER BY last_name, first_name
		LIMIT %d
	`, where, PersonSearchLimit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.ClassroomID,
			&student.RollNumber,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM students`)
}
