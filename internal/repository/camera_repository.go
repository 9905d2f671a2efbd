package repository

import (
	"context"
	"database/sql"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type CameraRepository interface {
	Create(ctx context.Context, camera *models.Camera) error
	GetAll(ctx context.Context) ([]models.Camera, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type cameraRepository struct {
	*PostgresRepository
}

func NewCameraRepository(db *sql.DB, logger zerolog.Logger) CameraRepository {
	return &cameraRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *cameraRepository) Create(ctx context.Context, camera *models.Camera) error {
	query := `
		INSERT INTO cameras (id, classroom_id, name, stream_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		camera.ID,
		camera.ClassroomID,
		camera.Name,
		camera.StreamURL,
		camera.IsActive,
		camera.CreatedAt,
		camera.UpdatedAt,
	)

	return err
}

func (r *cameraRepository) GetAll(ctx context.Context) ([]models.Camera, error) {
	query := `
		SELECT id, classroom_id, name, stream_url, is_active, created_at, updated_at
		FROM cameras
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cameras := []models.Camera{}
	for rows.Next() {
		var camera models.Camera
		err := rows.Scan(
			&camera.ID,
			&camera.ClassroomID,
			&camera.Name,
			&camera.StreamURL,
			&camera.IsActive,
			&camera.CreatedAt,
			&camera.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		cameras = append(cameras, camera)
	}

	return cameras, rows.Err()
}

func (r *cameraRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cameras WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *cameraRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM cameras WHERE is_active`)
}

func (r *cameraRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cameras WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}
