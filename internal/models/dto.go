package models

import (
	"errors"
	"strings"
)

// Data Transfer Objects

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreatedResponse struct {
	ID string `json:"_id"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateCameraRequest struct {
	ClassroomID string `json:"classroom_id"`
	Name        string `json:"name"`
	StreamURL   string `json:"stream_url"`
	IsActive    *bool  `json:"is_active"`
}

func (r *CreateCameraRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.ClassroomID) == "":
		return errors.New("classroom_id is required")
	case strings.TrimSpace(r.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(r.StreamURL) == "":
		return errors.New("stream_url is required")
	}
	return nil
}

type CreateClassroomRequest struct {
	Name      string    `json:"name"`
	Grade     *string   `json:"grade"`
	Timetable Timetable `json:"timetable"`
}

func (r *CreateClassroomRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type CreateStudentRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	ClassroomID string  `json:"classroom_id"`
	RollNumber  *string `json:"roll_number"`
}

func (r *CreateStudentRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.FirstName) == "":
		return errors.New("first_name is required")
	case strings.TrimSpace(r.LastName) == "":
		return errors.New("last_name is required")
	case strings.TrimSpace(r.ClassroomID) == "":
		return errors.New("classroom_id is required")
	}
	return nil
}

type CreateTeacherRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Subject   *string `json:"subject"`
}

func (r *CreateTeacherRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.FirstName) == "":
		return errors.New("first_name is required")
	case strings.TrimSpace(r.LastName) == "":
		return errors.New("last_name is required")
	}
	return nil
}

type CreateBehaviorEventRequest struct {
	StudentID   *string  `json:"student_id"`
	TeacherID   *string  `json:"teacher_id"`
	ClassroomID *string  `json:"classroom_id"`
	EventType   string   `json:"event_type"`
	Score       *float64 `json:"score"`
	Notes       *string  `json:"notes"`
}

func (r *CreateBehaviorEventRequest) Validate() error {
	if strings.TrimSpace(r.EventType) == "" {
		return errors.New("event_type is required")
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 1) {
		return errors.New("score must be between 0 and 1")
	}
	return nil
}

type CreateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Level   string `json:"level"`
}

// Validate также проставляет уровень по умолчанию.
func (r *CreateNotificationRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	if r.Level == "" {
		r.Level = NotificationLevelInfo.String()
	}
	if !IsValidNotificationLevel(r.Level) {
		return errors.New("level must be one of info, warning, critical")
	}
	return nil
}

// PersonReport is the summary for one student or teacher.
type PersonReport struct {
	TotalEvents  int             `json:"totalEvents"`
	AverageScore *float64        `json:"averageScore"`
	Breakdown    map[string]int  `json:"breakdown"`
	Events       []BehaviorEvent `json:"events"`
}

type StudentReport struct {
	Student *Student `json:"student"`
	PersonReport
}

type TeacherReport struct {
	Teacher *Teacher `json:"teacher"`
	PersonReport
}

type DashboardCounts struct {
	Classrooms  int64 `json:"classrooms"`
	Students    int64 `json:"students"`
	Teachers    int64 `json:"teachers"`
	Cameras     int64 `json:"cameras"`
	EventsToday int64 `json:"events_today"`
}

type DashboardStats struct {
	Counts            DashboardCounts     `json:"counts"`
	EngagementSummary []EngagementSummary `json:"engagementSummary"`
}

type ProbeResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
