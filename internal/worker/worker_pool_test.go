package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func TestWorkerPool_RunsAllTasksBeforeStop(t *testing.T) {
	pool := NewWorkerPool(3, zerolog.Nop())
	if err := pool.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var done atomic.Int32
	for i := 0; i < 20; i++ {
		if err := pool.Submit(func() { done.Add(1) }); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	if err := pool.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if done.Load() != 20 {
		t.Errorf("Expected 20 tasks done, got %d", done.Load())
	}
	if pool.GetActiveWorkers() != 0 {
		t.Errorf("Expected no busy workers after stop, got %d", pool.GetActiveWorkers())
	}
}

func TestWorkerPool_SurvivesPanics(t *testing.T) {
	pool := NewWorkerPool(1, zerolog.Nop())
	_ = pool.Start(context.Background())

	var done atomic.Int32
	_ = pool.Submit(func() { panic("boom") })
	_ = pool.Submit(func() { done.Add(1) })
	_ = pool.Stop()

	if done.Load() != 1 {
		t.Errorf("Expected task after panic to run")
	}
}

func TestWorkerPool_SubmitAfterStop(t *testing.T) {
	pool := NewWorkerPool(1, zerolog.Nop())
	_ = pool.Start(context.Background())
	_ = pool.Stop()

	if err := pool.Submit(func() {}); !errors.Is(err, ErrPoolStopped) {
		t.Errorf("Expected ErrPoolStopped, got %v", err)
	}
	// повторная остановка безопасна
	if err := pool.Stop(); err != nil {
		t.Errorf("Expected second Stop to succeed, got %v", err)
	}
}
