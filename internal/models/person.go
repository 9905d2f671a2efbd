package models

import (
	"time"
)

type Student struct {
	ID          string    `json:"_id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	ClassroomID string    `json:"classroom_id" db:"classroom_id"`
	RollNumber  *string   `json:"roll_number" db:"roll_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Teacher struct {
	ID        string    `json:"_id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Subject   *string   `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
