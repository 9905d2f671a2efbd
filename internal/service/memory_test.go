package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
)

// In-memory repositories for service tests.

var errStorageDown = errors.New("storage down")

type memoryAdmins struct {
	mu     sync.Mutex
	byID   map[string]*models.Admin
	failed bool
}

func newMemoryAdmins() *memoryAdmins {
	return &memoryAdmins{byID: map[string]*models.Admin{}}
}

func (m *memoryAdmins) Create(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return errStorageDown
	}
	copied := *admin
	m.byID[admin.ID] = &copied
	return nil
}

func (m *memoryAdmins) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return nil, errStorageDown
	}
	for _, admin := range m.byID {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryAdmins) GetByID(_ context.Context, id string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return nil, errStorageDown
	}
	if admin, ok := m.byID[id]; ok {
		copied := *admin
		return &copied, nil
	}
	return nil, nil
}

type memoryTokens struct {
	mu      sync.Mutex
	byValue map[string]*models.Token
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{byValue: map[string]*models.Token{}}
}

func (m *memoryTokens) Create(_ context.Context, token *models.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *token
	m.byValue[token.Token] = &copied
	return nil
}

func (m *memoryTokens) GetByToken(_ context.Context, value string) (*models.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token, ok := m.byValue[value]; ok {
		copied := *token
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryTokens) DeleteByToken(_ context.Context, value string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byValue[value]; !ok {
		return 0, nil
	}
	delete(m.byValue, value)
	return 1, nil
}

type memoryCameras struct {
	mu      sync.Mutex
	cameras []models.Camera
}

func (m *memoryCameras) Create(_ context.Context, camera *models.Camera) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cameras = append(m.cameras, *camera)
	return nil
}

func (m *memoryCameras) GetAll(_ context.Context) ([]models.Camera, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Camera{}, m.cameras...), nil
}

func (m *memoryCameras) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, camera := range m.cameras {
		if camera.ID == id {
			m.cameras = append(m.cameras[:i], m.cameras[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryCameras) CountActive(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, camera := range m.cameras {
		if camera.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *memoryCameras) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, camera := range m.cameras {
		if camera.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type memoryClassrooms struct {
	mu         sync.Mutex
	classrooms []models.Classroom
}

func (m *memoryClassrooms) Create(_ context.Context, classroom *models.Classroom) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classrooms = append(m.classrooms, *classroom)
	return nil
}

func (m *memoryClassrooms) GetAll(_ context.Context) ([]models.Classroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Classroom{}, m.classrooms...), nil
}

func (m *memoryClassrooms) GetByID(_ context.Context, id string) (*models.Classroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, classroom := range m.classrooms {
		if classroom.ID == id {
			copied := classroom
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryClassrooms) UpdateTimetable(_ context.Context, id string, timetable models.Timetable, updatedAt time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.classrooms {
		if m.classrooms[i].ID == id {
			m.classrooms[i].Timetable = timetable
			m.classrooms[i].UpdatedAt = updatedAt
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryClassrooms) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.classrooms)), nil
}

type memoryStudents struct {
	mu       sync.Mutex
	students []models.Student
}

func (m *memoryStudents) Create(_ context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students = append(m.students, *student)
	return nil
}

func (m *memoryStudents) GetByID(_ context.Context, id string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, student := range m.students {
		if student.ID == id {
			copied := student
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryStudents) Search(_ context.Context, filter repository.PersonFilter) ([]models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Student{}
	for _, student := range m.students {
		if filter.ClassroomID != "" && student.ClassroomID != filter.ClassroomID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(student.FirstName+" "+student.LastName), strings.ToLower(filter.Name)) {
			continue
		}
		result = append(result, student)
	}
	return result, nil
}

func (m *memoryStudents) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.students)), nil
}

type memoryTeachers struct {
	mu       sync.Mutex
	teachers []models.Teacher
}

func (m *memoryTeachers) Create(_ context.Context, teacher *models.Teacher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teachers = append(m.teachers, *teacher)
	return nil
}

func (m *memoryTeachers) GetByID(_ context.Context, id string) (*models.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, teacher := range m.teachers {
		if teacher.ID == id {
			copied := teacher
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryTeachers) Search(_ context.Context, filter repository.PersonFilter) ([]models.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Teacher{}
	for _, teacher := range m.teachers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(teacher.FirstName+" "+teacher.LastName), strings.ToLower(filter.Name)) {
			continue
		}
		result = append(result, teacher)
	}
	return result, nil
}

func (m *memoryTeachers) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.teachers)), nil
}

type memoryEvents struct {
	mu     sync.Mutex
	events []models.BehaviorEvent
	failed bool
}

func (m *memoryEvents) Create(_ context.Context, event *models.BehaviorEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return errStorageDown
	}
	m.events = append(m.events, *event)
	return nil
}

func (m *memoryEvents) listBy(match func(models.BehaviorEvent) bool) []models.BehaviorEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.BehaviorEvent{}
	for _, event := range m.events {
		if match(event) {
			result = append(result, event)
		}
	}
	return result
}

func (m *memoryEvents) GetByStudentID(_ context.Context, id string) ([]models.BehaviorEvent, error) {
	return m.listBy(func(e models.BehaviorEvent) bool { return e.StudentID != nil && *e.StudentID == id }), nil
}

func (m *memoryEvents) GetByTeacherID(_ context.Context, id string) ([]models.BehaviorEvent, error) {
	return m.listBy(func(e models.BehaviorEvent) bool { return e.TeacherID != nil && *e.TeacherID == id }), nil
}

func (m *memoryEvents) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return 0, errStorageDown
	}
	return int64(len(m.events)), nil
}

func (m *memoryEvents) AverageScoreByType(_ context.Context) ([]models.EngagementSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, event := range m.events {
		if event.Score == nil {
			continue
		}
		sums[event.EventType] += *event.Score
		counts[event.EventType]++
	}
	result := []models.EngagementSummary{}
	for eventType, sum := range sums {
		result = append(result, models.EngagementSummary{
			EventType:    eventType,
			AverageScore: sum / float64(counts[eventType]),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EventType < result[j].EventType })
	return result, nil
}

type memoryNotifications struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (m *memoryNotifications) Create(_ context.Context, notification *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *memoryNotifications) GetLatest(_ context.Context, limit int) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Notification{}
	for i := len(m.notifications) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.notifications[i])
	}
	return result, nil
}

type memorySnapshots struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{objects: map[string][]byte{}}
}

func (m *memorySnapshots) Put(_ context.Context, cameraID string, body io.Reader, _ int64, contentType string) (*models.Snapshot, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[cameraID] = data
	return &models.Snapshot{
		CameraID:    cameraID,
		Key:         "cameras/" + cameraID + "/latest",
		Size:        int64(len(data)),
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func (m *memorySnapshots) Get(_ context.Context, cameraID string) (io.ReadCloser, *models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[cameraID]
	if !ok {
		return nil, nil, repository.ErrSnapshotNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), &models.Snapshot{CameraID: cameraID, Size: int64(len(data))}, nil
}

type memorySchema struct {
	pingErr error
	tables  []string
	listErr error
}

func (m *memorySchema) Ping(context.Context) error {
	return m.pingErr
}

func (m *memorySchema) ListTables(_ context.Context, limit int) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.tables) > limit {
		return m.tables[:limit], nil
	}
	return m.tables, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.NotificationCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishNotificationCreated(_ context.Context, event models.NotificationCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
