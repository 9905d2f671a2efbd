package models

import (
	"time"
)

type NotificationLevel string

const (
	NotificationLevelInfo     NotificationLevel = "info"
	NotificationLevelWarning  NotificationLevel = "warning"
	NotificationLevelCritical NotificationLevel = "critical"
)

func (l NotificationLevel) String() string {
	return string(l)
}

func IsValidNotificationLevel(level string) bool {
	switch NotificationLevel(level) {
	case NotificationLevelInfo, NotificationLevelWarning, NotificationLevelCritical:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID        string            `json:"_id" db:"id"`
	Title     string            `json:"title" db:"title"`
	Message   string            `json:"message" db:"message"`
	Level     NotificationLevel `json:"level" db:"level"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
