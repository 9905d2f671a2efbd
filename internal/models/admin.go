package models

import (
	"time"
)

type Admin struct {
	ID           string    `json:"_id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Token struct {
	ID        string    `json:"_id" db:"id"`
	Token     string    `json:"token" db:"token"`
	AdminID   string    `json:"admin_id" db:"admin_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
