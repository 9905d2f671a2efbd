package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const submitTimeout = time.Second

var (
	ErrPoolStopped = errors.New("worker pool stopped")
	ErrPoolFull    = errors.New("worker pool task queue is full")
)

type Task func()

// WorkerPool выполняет задачи на фиксированном числе горутин.
type WorkerPool struct {
	tasks       chan Task
	wg          sync.WaitGroup
	busyWorkers atomic.Int64
	maxWorkers  int
	stopped     bool
	logger      zerolog.Logger
	mu          sync.RWMutex // защищает stopped и закрытие tasks
}

func NewWorkerPool(maxWorkers int, logger zerolog.Logger) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		tasks:      make(chan Task, maxWorkers*10),
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) error {
	wp.logger.Info().Int("max_workers", wp.maxWorkers).Msg("Starting worker pool")

	for i := 0; i < wp.maxWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}

	return nil
}

// Stop закрывает очередь и ждёт, пока воркеры доработают уже принятые задачи.
func (wp *WorkerPool) Stop() error {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return nil
	}
	wp.stopped = true
	close(wp.tasks)
	wp.mu.Unlock()

	wp.wg.Wait()

	wp.logger.Info().Msg("Worker pool stopped")
	return nil
}

func (wp *WorkerPool) Submit(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.stopped {
		return ErrPoolStopped
	}

	select {
	case wp.tasks <- task:
		return nil
	default:
		wp.logger.Warn().Msg("Worker pool task queue is full")
	}

	select {
	case wp.tasks <- task:
		return nil
	case <-time.After(submitTimeout):
		return ErrPoolFull
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	wp.logger.Debug().Int("worker_id", id).Msg("Worker started")

	for task := range wp.tasks {
		wp.run(id, task)
	}

	wp.logger.Debug().Int("worker_id", id).Msg("Worker stopped")
}

func (wp *WorkerPool) run(id int, task Task) {
	wp.busyWorkers.Add(1)

	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error().
				Int("worker_id", id).
				Interface("panic", r).
				Msg("Worker recovered from panic")
		}

		wp.busyWorkers.Add(-1)
	}()

	task()
}

func (wp *WorkerPool) GetActiveWorkers() int {
	return int(wp.busyWorkers.Load())
}

func (wp *WorkerPool) GetQueueLength() int {
	return len(wp.tasks)
}
