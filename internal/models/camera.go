package models

import (
	"time"
)

type Camera struct {
	ID          string    `json:"_id" db:"id"`
	ClassroomID string    `json:"classroom_id" db:"classroom_id"`
	Name        string    `json:"name" db:"name"`
	StreamURL   string    `json:"stream_url" db:"stream_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Snapshot is the latest still frame uploaded for a camera.
type Snapshot struct {
	CameraID    string    `json:"camera_id"`
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
