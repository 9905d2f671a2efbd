package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type ClassroomService interface {
	CreateClassroom(ctx context.Context, req *models.CreateClassroomRequest) (*models.Classroom, error)
	GetAllClassrooms(ctx context.Context) ([]models.Classroom, error)
	GetClassroomByID(ctx context.Context, id string) (*models.Classroom, error)
	UpdateTimetable(ctx context.Context, id string, timetable models.Timetable) error
}

type classroomService struct {
	classroomRepo repository.ClassroomRepository
	logger        zerolog.Logger
}

func NewClassroomService(classroomRepo repository.ClassroomRepository, logger zerolog.Logger) ClassroomService {
	return &classroomService{
		classroomRepo: classroomRepo,
		logger:        logger,
	}
}

func (s *classroomService) CreateClassroom(ctx context.Context, req *models.CreateClassroomRequest) (*models.Classroom, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	timetable := req.Timetable
	if timetable == nil {
		timetable = models.Timetable{}
	}

	now := time.Now().UTC()
	classroom := &models.Classroom{
		ID:        newID(),
		Name:      req.Name,
		Grade:     req.Grade,
		Timetable: timetable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, fmt.Errorf("failed to create classroom: %w", err)
	}

	s.logger.Info().
		Str("classroom_id", classroom.ID).
		Str("name", classroom.Name).
		Msg("Classroom created")

	return classroom, nil
}

func (s *classroomService) GetAllClassrooms(ctx context.Context) ([]models.Classroom, error) {
	classrooms, err := s.classroomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get classrooms: %w", err)
	}
	return classrooms, nil
}

func (s *classroomService) GetClassroomByID(ctx context.Context, id string) (*models.Classroom, error) {
	classroomID, err := parseID("classroom", id)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get classroom: %w", err)
	}
	if classroom == nil {
		return nil, fmt.Errorf("%w: classroom", ErrNotFound)
	}

	return classroom, nil
}

func (s *classroomService) UpdateTimetable(ctx context.Context, id string, timetable models.Timetable) error {
	classroomID, err := parseID("classroom", id)
	if err != nil {
		return err
	}

	if timetable == nil {
		timetable = models.Timetable{}
	}

	updated, err := s.classroomRepo.UpdateTimetable(ctx, classroomID, timetable, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update timetable: %w", err)
	}
	if updated == 0 {
		return fmt.Errorf("%w: classroom", ErrNotFound)
	}

	s.logger.Info().
		Str("classroom_id", classroomID).
		Int("days", len(timetable)).
		Msg("Classroom timetable updated")

	return nil
}
