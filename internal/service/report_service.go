package service

import (
	"context"
	"fmt"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type ReportService interface {
	StudentReport(ctx context.Context, id string) (*models.StudentReport, error)
	TeacherPerformance(ctx context.Context, id string) (*models.TeacherReport, error)
}

type reportService struct {
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	eventRepo   repository.BehaviorEventRepository
	logger      zerolog.Logger
}

func NewReportService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	eventRepo repository.BehaviorEventRepository,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

func (s *reportService) StudentReport(ctx context.Context, id string) (*models.StudentReport, error) {
	studentID, err := parseID("student", id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("%w: student", ErrNotFound)
	}

	// события хранят ссылку как есть, поэтому ищем по исходной строке
	events, err := s.eventRepo.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get student events: %w", err)
	}

	report := &models.StudentReport{
		Student:      student,
		PersonReport: Summarize(events),
	}

	s.logger.Debug().
		Str("student_id", studentID).
		Int("total_events", report.TotalEvents).
		Msg("Student report built")

	return report, nil
}

func (s *reportService) TeacherPerformance(ctx context.Context, id string) (*models.TeacherReport, error) {
	teacherID, err := parseID("teacher", id)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	if teacher == nil {
		return nil, fmt.Errorf("%w: teacher", ErrNotFound)
	}

	events, err := s.eventRepo.GetByTeacherID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher events: %w", err)
	}

	report := &models.TeacherReport{
		Teacher:      teacher,
		PersonReport: Summarize(events),
	}

	s.logger.Debug().
		Str("teacher_id", teacherID).
		Int("total_events", report.TotalEvents).
		Msg("Teacher report built")

	return report, nil
}

// Summarize считает итог по событиям за один проход.
// Средний балл учитывает только события с оценкой и равен nil, если таких нет.
func Summarize(events []models.BehaviorEvent) models.PersonReport {
	if events == nil {
		events = []models.BehaviorEvent{}
	}

	breakdown := make(map[string]int)
	var (
		sum    float64
		scored int
	)

	for _, event := range events {
		eventType := event.EventType
		if eventType == "" {
			eventType = models.UnknownEventType
		}
		breakdown[eventType]++

		if event.Score != nil {
			sum += *event.Score
			scored++
		}
	}

	report := models.PersonReport{
		TotalEvents: len(events),
		Breakdown:   breakdown,
		Events:      events,
	}
	if scored > 0 {
		avg := sum / float64(scored)
		report.AverageScore = &avg
	}

	return report
}
