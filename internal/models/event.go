package models

// BehaviorDetectedEvent is published by the classroom video-analytics pipeline.
type BehaviorDetectedEvent struct {
	CameraID    string   `json:"camera_id,omitempty"`
	StudentID   *string  `json:"student_id,omitempty"`
	TeacherID   *string  `json:"teacher_id,omitempty"`
	ClassroomID *string  `json:"classroom_id,omitempty"`
	EventType   string   `json:"event_type"`
	Score       *float64 `json:"score,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Timestamp   int64    `json:"timestamp"`
}

func (e *BehaviorDetectedEvent) ToRequest() *CreateBehaviorEventRequest {
	return &CreateBehaviorEventRequest{
		StudentID:   e.StudentID,
		TeacherID:   e.TeacherID,
		ClassroomID: e.ClassroomID,
		EventType:   e.EventType,
		Score:       e.Score,
		Notes:       e.Notes,
	}
}

type NotificationCreatedEvent struct {
	NotificationID string `json:"notification_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Level          string `json:"level"`
	Timestamp      int64  `json:"timestamp"`
}
