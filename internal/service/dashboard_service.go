package service

import (
	"context"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	classroomRepo repository.ClassroomRepository
	studentRepo   repository.StudentRepository
	teacherRepo   repository.TeacherRepository
	cameraRepo    repository.CameraRepository
	eventRepo     repository.BehaviorEventRepository
	logger        zerolog.Logger
}

func NewDashboardService(
	classroomRepo repository.ClassroomRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	cameraRepo repository.CameraRepository,
	eventRepo repository.BehaviorEventRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		classroomRepo: classroomRepo,
		studentRepo:   studentRepo,
		teacherRepo:   teacherRepo,
		cameraRepo:    cameraRepo,
		eventRepo:     eventRepo,
		logger:        logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		counts models.DashboardCounts
		err    error
	)

	if counts.Classrooms, err = s.classroomRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count classrooms: %w", err)
	}
	if counts.Students, err = s.studentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	if counts.Teachers, err = s.teacherRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}
	if counts.Cameras, err = s.cameraRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count cameras: %w", err)
	}
	// events_today исторически считает все события без фильтра по дате
	if counts.EventsToday, err = s.eventRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	summary, err := s.eventRepo.AverageScoreByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate engagement: %w", err)
	}
	if summary == nil {
		summary = []models.EngagementSummary{}
	}

	return &models.DashboardStats{
		Counts:            counts,
		EngagementSummary: summary,
	}, nil
}
