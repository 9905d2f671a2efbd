package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type BehaviorEventService interface {
	RecordEvent(ctx context.Context, req *models.CreateBehaviorEventRequest) (*models.BehaviorEvent, error)
}

type behaviorEventService struct {
	eventRepo repository.BehaviorEventRepository
	logger    zerolog.Logger
}

func NewBehaviorEventService(eventRepo repository.BehaviorEventRepository, logger zerolog.Logger) BehaviorEventService {
	return &behaviorEventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *behaviorEventService) RecordEvent(ctx context.Context, req *models.CreateBehaviorEventRequest) (*models.BehaviorEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	event := &models.BehaviorEvent{
		ID:          newID(),
		StudentID:   req.StudentID,
		TeacherID:   req.TeacherID,
		ClassroomID: req.ClassroomID,
		EventType:   req.EventType,
		Score:       req.Score,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create behavior event: %w", err)
	}

	s.logger.Debug().
		Str("event_id", event.ID).
		Str("event_type", event.EventType).
		Msg("Behavior event recorded")

	return event, nil
}
