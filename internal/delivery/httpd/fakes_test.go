package httpd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/service"
	"github.com/rs/zerolog"
)

const (
	testToken   = "0123456789abcdef0123456789abcdef"
	testStudent = "6f1c1f9e-5b1a-4c49-9d8c-1d6a6d0b4f11"
)

type fakeAuth struct {
	loggedOut []string
}

func (f *fakeAuth) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email != "admin@school.local" || req.Password != "admin123" {
		return nil, service.ErrInvalidCredentials
	}
	return &models.LoginResponse{Token: testToken, Name: "Administrator", Email: req.Email}, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, authorization string) (*models.Admin, string, error) {
	token, ok := service.BearerToken(authorization)
	if !ok {
		return nil, "", service.ErrUnauthorized
	}
	if token != testToken {
		return nil, "", service.ErrInvalidToken
	}
	return &models.Admin{ID: "a-1", Email: "admin@school.local", Name: "Administrator"}, token, nil
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuth) EnsureDefaultAdmin(context.Context) error { return nil }

type fakeCameras struct {
	created []models.CreateCameraRequest
}

func (f *fakeCameras) CreateCamera(_ context.Context, req *models.CreateCameraRequest) (*models.Camera, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	f.created = append(f.created, *req)
	return &models.Camera{ID: "cam-1", Name: req.Name}, nil
}

func (f *fakeCameras) GetAllCameras(context.Context) ([]models.Camera, error) {
	return []models.Camera{}, nil
}

func (f *fakeCameras) DeleteCamera(_ context.Context, id string) (int64, error) {
	if id == testStudent {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeCameras) UploadSnapshot(_ context.Context, id string, body io.Reader, size int64, contentType string) (*models.Snapshot, error) {
	if id != testStudent {
		return nil, fmt.Errorf("%w: camera", service.ErrNotFound)
	}
	return &models.Snapshot{CameraID: id, Size: size, ContentType: contentType}, nil
}

func (f *fakeCameras) GetSnapshot(_ context.Context, id string) (io.ReadCloser, *models.Snapshot, error) {
	if id != testStudent {
		return nil, nil, fmt.Errorf("%w: snapshot storage is not configured", service.ErrStorageUnavailable)
	}
	return io.NopCloser(strings.NewReader("jpeg")), &models.Snapshot{CameraID: id, Size: 4, ContentType: "image/jpeg"}, nil
}

type fakeClassrooms struct {
	timetable models.Timetable
}

func (f *fakeClassrooms) CreateClassroom(_ context.Context, req *models.CreateClassroomRequest) (*models.Classroom, error) {
	return &models.Classroom{ID: "room-1", Name: req.Name}, nil
}

func (f *fakeClassrooms) GetAllClassrooms(context.Context) ([]models.Classroom, error) {
	return []models.Classroom{}, nil
}

func (f *fakeClassrooms) GetClassroomByID(_ context.Context, id string) (*models.Classroom, error) {
	return &models.Classroom{ID: id, Timetable: f.timetable}, nil
}

func (f *fakeClassrooms) UpdateTimetable(_ context.Context, id string, timetable models.Timetable) error {
	if id == "bogus" {
		return fmt.Errorf("%w: invalid classroom id", service.ErrInvalidID)
	}
	f.timetable = timetable
	return nil
}

type fakePeople struct {
	studentQuery [2]string
}

func (f *fakePeople) CreateStudent(context.Context, *models.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: "s-1"}, nil
}

func (f *fakePeople) SearchStudents(_ context.Context, name, classroomID string) ([]models.Student, error) {
	f.studentQuery = [2]string{name, classroomID}
	return []models.Student{{ID: "s-1", FirstName: "Ann"}}, nil
}

func (f *fakePeople) CreateTeacher(context.Context, *models.CreateTeacherRequest) (*models.Teacher, error) {
	return &models.Teacher{ID: "t-1"}, nil
}

func (f *fakePeople) SearchTeachers(context.Context, string) ([]models.Teacher, error) {
	return []models.Teacher{}, nil
}

type fakeReports struct{}

func (fakeReports) StudentReport(_ context.Context, id string) (*models.StudentReport, error) {
	switch id {
	case testStudent:
		avg := 0.4
		return &models.StudentReport{
			Student: &models.Student{ID: id},
			PersonReport: models.PersonReport{
				TotalEvents:  3,
				AverageScore: &avg,
				Breakdown:    map[string]int{"engagement": 2, "distraction": 1},
				Events:       []models.BehaviorEvent{},
			},
		}, nil
	case "not-a-uuid":
		return nil, fmt.Errorf("%w: invalid student id", service.ErrInvalidID)
	default:
		return nil, fmt.Errorf("%w: student", service.ErrNotFound)
	}
}

func (fakeReports) TeacherPerformance(_ context.Context, id string) (*models.TeacherReport, error) {
	return &models.TeacherReport{
		Teacher:      &models.Teacher{ID: id},
		PersonReport: service.Summarize(nil),
	}, nil
}

type fakeDashboard struct {
	err error
}

func (f fakeDashboard) GetStats(context.Context) (*models.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardStats{
		Counts:            models.DashboardCounts{Classrooms: 3, Cameras: 2},
		EngagementSummary: []models.EngagementSummary{},
	}, nil
}

type fakeNotifications struct{}

func (fakeNotifications) CreateNotification(_ context.Context, req *models.CreateNotificationRequest) (*models.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	return &models.Notification{ID: "n-1"}, nil
}

func (fakeNotifications) GetLatestNotifications(context.Context) ([]models.Notification, error) {
	return []models.Notification{}, nil
}

type fakeEvents struct{}

func (fakeEvents) RecordEvent(_ context.Context, req *models.CreateBehaviorEventRequest) (*models.BehaviorEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	return &models.BehaviorEvent{ID: "e-1"}, nil
}

type fakeSeed struct {
	calls int
}

func (f *fakeSeed) Seed(context.Context) error {
	f.calls++
	return nil
}

type fakeProbe struct{}

func (fakeProbe) Probe(context.Context) *models.ProbeResponse {
	return &models.ProbeResponse{Backend: "✅ Running", ConnectionStatus: "Not Connected", Collections: []string{}}
}

type testDeps struct {
	auth       *fakeAuth
	cameras    *fakeCameras
	classrooms *fakeClassrooms
	people     *fakePeople
	seed       *fakeSeed
	dashboard  fakeDashboard
}

func newTestHandler(deps *testDeps) *Handler {
	if deps.auth == nil {
		deps.auth = &fakeAuth{}
	}
	if deps.cameras == nil {
		deps.cameras = &fakeCameras{}
	}
	if deps.classrooms == nil {
		deps.classrooms = &fakeClassrooms{}
	}
	if deps.people == nil {
		deps.people = &fakePeople{}
	}
	if deps.seed == nil {
		deps.seed = &fakeSeed{}
	}

	return NewHandler(Services{
		Auth:          deps.auth,
		Cameras:       deps.cameras,
		Classrooms:    deps.classrooms,
		Students:      deps.people,
		Teachers:      deps.people,
		Reports:       fakeReports{},
		Dashboard:     deps.dashboard,
		Notifications: fakeNotifications{},
		Events:        fakeEvents{},
		Seed:          deps.seed,
		Probe:         fakeProbe{},
	}, 1<<10, zerolog.Nop())
}
