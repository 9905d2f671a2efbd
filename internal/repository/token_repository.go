package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	GetByToken(ctx context.Context, token string) (*models.Token, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

type tokenRepository struct {
	*PostgresRepository
}

func NewTokenRepository(db *sql.DB, logger zerolog.Logger) TokenRepository {
	return &tokenRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.Token) error {
	query := `
		INSERT INTO tokens (id, token, admin_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		token.ID,
		token.Token,
		token.AdminID,
		token.CreatedAt,
	)

	return err
}

func (r *tokenRepository) GetByToken(ctx context.Context, value string) (*models.Token, error) {
	query := `
		SELECT id, token, admin_id, created_at
		FROM tokens
		WHERE token = $1
	`

	token := &models.Token{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&token.ID,
		&token.Token,
		&token.AdminID,
		&token.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (r *tokenRepository) DeleteByToken(ctx context.Context, value string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE token = $1`, value)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
