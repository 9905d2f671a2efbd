package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Timetable maps a day name to its ordered period labels. Stored as JSONB.
type Timetable map[string][]string

func (t Timetable) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	// lib/pq шлёт []byte как bytea, поэтому для jsonb отдаём строку
	return string(b), nil
}

func (t *Timetable) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Timetable{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported timetable type %T", src)
	}

	out := Timetable{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode timetable: %w", err)
	}
	if out == nil {
		out = Timetable{}
	}
	*t = out
	return nil
}

type Classroom struct {
	ID        string    `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Grade     *string   `json:"grade" db:"grade"`
	Timetable Timetable `json:"timetable" db:"timetable"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
