package models

import (
	"time"
)

// UnknownEventType labels events stored without a type.
const UnknownEventType = "unknown"

type BehaviorEvent struct {
	ID          string    `json:"_id" db:"id"`
	StudentID   *string   `json:"student_id" db:"student_id"`
	TeacherID   *string   `json:"teacher_id" db:"teacher_id"`
	ClassroomID *string   `json:"classroom_id" db:"classroom_id"`
	EventType   string    `json:"event_type" db:"event_type"`
	Score       *float64  `json:"score" db:"score"`
	Notes       *string   `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EngagementSummary is the average score of one event type.
type EngagementSummary struct {
	EventType    string  `json:"eventType" db:"event_type"`
	AverageScore float64 `json:"averageScore" db:"avg_score"`
}
