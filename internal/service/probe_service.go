package service

import (
	"context"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

const (
	probeTablesLimit = 10
	probeErrorLimit  = 50
)

type ProbeService interface {
	Probe(ctx context.Context) *models.ProbeResponse
}

type probeService struct {
	schemaRepo   repository.SchemaRepository
	databaseName string
	logger       zerolog.Logger
}

// NewProbeService: schemaRepo равен nil, если база не сконфигурирована.
func NewProbeService(schemaRepo repository.SchemaRepository, databaseName string, logger zerolog.Logger) ProbeService {
	return &probeService{
		schemaRepo:   schemaRepo,
		databaseName: databaseName,
		logger:       logger,
	}
}

// Probe никогда не возвращает ошибку: состояние базы описывается в самом ответе.
func (s *probeService) Probe(ctx context.Context) *models.ProbeResponse {
	resp := &models.ProbeResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.schemaRepo == nil {
		return resp
	}

	if err := s.schemaRepo.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Database probe failed")
		resp.Database = fmt.Sprintf("❌ Error: %s", truncate(err.Error(), probeErrorLimit))
		return resp
	}

	configured := "✅ Configured"
	name := s.databaseName
	if name == "" {
		name = "✅ Connected"
	}

	resp.Database = "✅ Available"
	resp.DatabaseURL = &configured
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	tables, err := s.schemaRepo.ListTables(ctx, probeTablesLimit)
	if err != nil {
		resp.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), probeErrorLimit))
		return resp
	}

	if tables != nil {
		resp.Collections = tables
	}
	resp.Database = "✅ Connected & Working"

	return resp
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
