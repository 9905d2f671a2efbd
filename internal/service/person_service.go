package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type StudentService interface {
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error)
	SearchStudents(ctx context.Context, name, classroomID string) ([]models.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	student := &models.Student{
		ID:          newID(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ClassroomID: req.ClassroomID,
		RollNumber:  req.RollNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().
		Str("student_id", student.ID).
		Str("classroom_id", student.ClassroomID).
		Msg("Student created")

	return student, nil
}

func (s *studentService) SearchStudents(ctx context.Context, name, classroomID string) ([]models.Student, error) {
	students, err := s.studentRepo.Search(ctx, repository.PersonFilter{
		Name:        name,
		ClassroomID: classroomID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	return students, nil
}

type TeacherService interface {
	CreateTeacher(ctx context.Context, req *models.CreateTeacherRequest) (*models.Teacher, error)
	SearchTeachers(ctx context.Context, name string) ([]models.Teacher, error)
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
	logger      zerolog.Logger
}

func NewTeacherService(teacherRepo repository.TeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherService) CreateTeacher(ctx context.Context, req *models.CreateTeacherRequest) (*models.Teacher, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	teacher := &models.Teacher{
		ID:        newID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Subject:   req.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	s.logger.Info().Str("teacher_id", teacher.ID).Msg("Teacher created")

	return teacher, nil
}

func (s *teacherService) SearchTeachers(ctx context.Context, name string) ([]models.Teacher, error) {
	teachers, err := s.teacherRepo.Search(ctx, repository.PersonFilter{Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to search teachers: %w", err)
	}
	return teachers, nil
}
