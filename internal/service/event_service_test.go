package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/rs/zerolog"
)

func TestBehaviorEventService_RecordEvent(t *testing.T) {
	events := &memoryEvents{}
	svc := NewBehaviorEventService(events, zerolog.Nop())

	event, err := svc.RecordEvent(context.Background(), &models.CreateBehaviorEventRequest{
		StudentID: strPtr("s-1"),
		EventType: "engagement",
		Score:     floatPtr(0.7),
	})
	if err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}
	if event.ID == "" || event.CreatedAt.IsZero() {
		t.Errorf("Expected id and timestamp, got %+v", event)
	}
	if len(events.events) != 1 {
		t.Errorf("Expected event to be stored")
	}
}

func TestBehaviorEventService_RejectsOutOfRangeScore(t *testing.T) {
	svc := NewBehaviorEventService(&memoryEvents{}, zerolog.Nop())

	for _, score := range []float64{-0.1, 1.01} {
		_, err := svc.RecordEvent(context.Background(), &models.CreateBehaviorEventRequest{EventType: "engagement", Score: floatPtr(score)})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("score %v: expected ErrValidation, got %v", score, err)
		}
	}
}

func TestBehaviorEventService_StorageErrorIsWrapped(t *testing.T) {
	svc := NewBehaviorEventService(&memoryEvents{failed: true}, zerolog.Nop())

	_, err := svc.RecordEvent(context.Background(), &models.CreateBehaviorEventRequest{EventType: "engagement"})
	if !errors.Is(err, errStorageDown) {
		t.Errorf("Expected wrapped storage error, got %v", err)
	}
}
