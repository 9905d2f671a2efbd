package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/config"
	_ "github.com/lib/pq"
)

// NewPostgres не ходит в сеть: sql.Open только готовит пул.
// Доступность БД проверяется отдельно через Ping.
func NewPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func Ping(ctx context.Context, db *sql.DB, cfg config.DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
	defer cancel()

	return db.PingContext(ctx)
}

func connectTimeout(cfg config.DatabaseConfig) time.Duration {
	if cfg.ConnectTimeout <= 0 {
		return 5 * time.Second
	}
	return cfg.ConnectTimeout
}
