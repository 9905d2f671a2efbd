package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

type adminRepository struct {
	*PostgresRepository
}

func NewAdminRepository(db *sql.DB, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, email, name, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.Name,
		admin.PasswordHash,
		admin.IsActive,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	return err
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, is_active, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, is_active, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *adminRepository) scanOne(row *sql.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return admin, nil
}
