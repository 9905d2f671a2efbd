package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

var (
	seedClassrooms = []string{"10A", "10B", "11A"}
	seedSubjects   = []string{"Math", "English", "Physics", "Chem", "History", "Sports"}
	seedTimetable  = models.Timetable{
		"Mon": {"Math", "English", "Physics"},
		"Tue": {"Chem", "History", "Sports"},
	}
	seedStreamURLs = []string{
		"https://images.unsplash.com/photo-1557324232-b8917d3c3dcb?q=80&w=800&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1523246191808-8b153aa73d33?q=80&w=800&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1541339907198-e08756dedf3f?q=80&w=800&auto=format&fit=crop",
	}
	seedNotifications = []models.Notification{
		{Title: "High Engagement", Message: "Class 10A shows 85% engagement", Level: models.NotificationLevelInfo},
		{Title: "Distraction Spike", Message: "Class 11A showed increased chatter", Level: models.NotificationLevelWarning},
	}
)

const seedStudents = 15

type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	classroomRepo    repository.ClassroomRepository
	studentRepo      repository.StudentRepository
	teacherRepo      repository.TeacherRepository
	cameraRepo       repository.CameraRepository
	notificationRepo repository.NotificationRepository
	logger           zerolog.Logger
}

func NewSeedService(
	classroomRepo repository.ClassroomRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	cameraRepo repository.CameraRepository,
	notificationRepo repository.NotificationRepository,
	logger zerolog.Logger,
) SeedService {
	return &seedService{
		classroomRepo:    classroomRepo,
		studentRepo:      studentRepo,
		teacherRepo:      teacherRepo,
		cameraRepo:       cameraRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Seed добавляет демо-данные. Повторный вызов добавляет ещё один набор.
func (s *seedService) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	classroomIDs := make([]string, 0, len(seedClassrooms))
	for _, name := range seedClassrooms {
		grade := name[:2]
		classroom := &models.Classroom{
			ID:        newID(),
			Name:      name,
			Grade:     &grade,
			Timetable: copyTimetable(seedTimetable),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.classroomRepo.Create(ctx, classroom); err != nil {
			return fmt.Errorf("failed to seed classroom: %w", err)
		}
		classroomIDs = append(classroomIDs, classroom.ID)
	}

	for i := 1; i <= seedStudents; i++ {
		student := &models.Student{
			ID:          newID(),
			FirstName:   fmt.Sprintf("Student%d", i),
			LastName:    "Demo",
			ClassroomID: classroomIDs[i%len(classroomIDs)],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			return fmt.Errorf("failed to seed student: %w", err)
		}
	}

	for _, subject := range seedSubjects {
		subject := subject
		teacher := &models.Teacher{
			ID:        newID(),
			FirstName: subject,
			LastName:  "Teacher",
			Subject:   &subject,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.teacherRepo.Create(ctx, teacher); err != nil {
			return fmt.Errorf("failed to seed teacher: %w", err)
		}
	}

	for idx, classroomID := range classroomIDs {
		camera := &models.Camera{
			ID:          newID(),
			ClassroomID: classroomID,
			Name:        fmt.Sprintf("Class %d Cam", idx+1),
			StreamURL:   seedStreamURLs[idx%len(seedStreamURLs)],
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.cameraRepo.Create(ctx, camera); err != nil {
			return fmt.Errorf("failed to seed camera: %w", err)
		}
	}

	for _, fixture := range seedNotifications {
		notification := fixture
		notification.ID = newID()
		notification.CreatedAt = now
		if err := s.notificationRepo.Create(ctx, &notification); err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}

	s.logger.Info().
		Int("classrooms", len(classroomIDs)).
		Int("students", seedStudents).
		Int("teachers", len(seedSubjects)).
		Msg("Demo data seeded")

	return nil
}

func copyTimetable(src models.Timetable) models.Timetable {
	dst := make(models.Timetable, len(src))
	for day, periods := range src {
		dst[day] = append([]string(nil), periods...)
	}
	return dst
}
