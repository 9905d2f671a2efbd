package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/worker/queue"
	"github.com/rs/zerolog"
)

type IngestWorker interface {
	Start(ctx context.Context) error
	Stop() error
	GetStats() WorkerStats
}

type WorkerStats struct {
	ActiveWorkers  int `json:"active_workers"`
	TotalProcessed int `json:"total_processed"`
	Rejected       int `json:"rejected"`
	Requeued       int `json:"requeued"`
	QueueLength    int `json:"queue_length"`
}

// ingestWorker читает события поведения из RabbitMQ и сохраняет их через пул воркеров.
type ingestWorker struct {
	workerPool    *WorkerPool
	queueConsumer queue.RabbitMQConsumer
	handler       queue.MessageHandler
	logger        zerolog.Logger
	stats         WorkerStats
	statsMutex    sync.RWMutex
	done          chan struct{}
	started       bool
	startTime     time.Time
}

func NewIngestWorker(
	workerPool *WorkerPool,
	queueConsumer queue.RabbitMQConsumer,
	handler queue.MessageHandler,
	logger zerolog.Logger,
) IngestWorker {
	return &ingestWorker{
		workerPool:    workerPool,
		queueConsumer: queueConsumer,
		handler:       handler,
		logger:        logger,
		done:          make(chan struct{}),
		startTime:     time.Now(),
	}
}

func (w *ingestWorker) Start(ctx context.Context) error {
	if err := w.workerPool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	msgs, err := w.queueConsumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("failed to start consuming messages: %w", err)
	}

	w.started = true
	go w.processMessages(ctx, msgs)

	w.logger.Info().Msg("Ingest worker started")
	return nil
}

// Stop останавливает consumer, затем дожидается уже принятых сообщений.
func (w *ingestWorker) Stop() error {
	if err := w.queueConsumer.Close(); err != nil {
		w.logger.Error().Err(err).Msg("Failed to close queue consumer")
	}

	if w.started {
		<-w.done
	}

	if err := w.workerPool.Stop(); err != nil {
		w.logger.Error().Err(err).Msg("Failed to stop worker pool")
	}

	stats := w.GetStats()
	w.logger.Info().
		Int("total_processed", stats.TotalProcessed).
		Int("rejected", stats.Rejected).
		Int("requeued", stats.Requeued).
		Dur("uptime", time.Since(w.startTime)).
		Msg("Ingest worker stopped")

	return nil
}

func (w *ingestWorker) processMessages(ctx context.Context, msgs <-chan queue.RabbitMQMessage) {
	defer close(w.done)

	for msg := range msgs {
		msg := msg
		err := w.workerPool.Submit(func() {
			w.handle(ctx, msg)
		})
		if err != nil {
			w.logger.Error().Err(err).Msg("Failed to submit message")
			if nackErr := msg.Nack(false, true); nackErr != nil {
				w.logger.Error().Err(nackErr).Msg("Failed to nack message")
			}
		}
	}

	w.logger.Info().Msg("Message channel closed")
}

func (w *ingestWorker) handle(ctx context.Context, msg queue.RabbitMQMessage) {
	err := w.handler.ProcessMessage(ctx, msg)

	switch {
	case err == nil:
		if ackErr := msg.Ack(false); ackErr != nil {
			w.logger.Error().Err(ackErr).Msg("Failed to ack message")
		}
		w.bump(func(s *WorkerStats) { s.TotalProcessed++ })

	case errors.Is(err, queue.ErrInvalidMessage):
		w.logger.Warn().Err(err).Msg("Rejecting behavior event")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			w.logger.Error().Err(nackErr).Msg("Failed to nack message")
		}
		w.bump(func(s *WorkerStats) { s.Rejected++ })

	default:
		w.logger.Error().Err(err).Msg("Failed to store behavior event, requeueing")
		if nackErr := msg.Nack(false, true); nackErr != nil {
			w.logger.Error().Err(nackErr).Msg("Failed to nack message")
		}
		w.bump(func(s *WorkerStats) { s.Requeued++ })
	}
}

func (w *ingestWorker) bump(update func(*WorkerStats)) {
	w.statsMutex.Lock()
	update(&w.stats)
	w.statsMutex.Unlock()
}

func (w *ingestWorker) GetStats() WorkerStats {
	w.statsMutex.RLock()
	stats := w.stats
	w.statsMutex.RUnlock()

	if queueLength, err := w.queueConsumer.GetQueueLength(); err != nil {
		w.logger.Debug().Err(err).Msg("Failed to get queue length")
	} else {
		stats.QueueLength = queueLength
	}
	stats.ActiveWorkers = w.workerPool.GetActiveWorkers()

	return stats
}
