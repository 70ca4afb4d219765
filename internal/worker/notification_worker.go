package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/worker/queue"
	"github.com/rs/zerolog"
)

var ErrAlreadyStarted = errors.New("notification worker already started")

// NotificationWorker consumes task and feedback events and hands each one to
// the message handler on the worker pool.
type NotificationWorker interface {
	Start(ctx context.Context) error
	Stop() error
	GetStats() WorkerStats
}

type WorkerStats struct {
	ActiveWorkers  int `json:"active_workers"`
	BusyWorkers    int `json:"busy_workers"`
	ProcessedToday int `json:"processed_today"`
	TotalProcessed int `json:"total_processed"`
	FailedJobs     int `json:"failed_jobs"`
	Requeued       int `json:"requeued"`
	QueueLength    int `json:"queue_length"`
}

type notificationWorker struct {
	workerPool *WorkerPool
	consumer   queue.Consumer
	handler    queue.MessageHandler
	logger     zerolog.Logger

	stats      WorkerStats
	statsMutex sync.RWMutex
	startTime  time.Time

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewNotificationWorker(
	workerPool *WorkerPool,
	consumer queue.Consumer,
	handler queue.MessageHandler,
	logger zerolog.Logger,
) NotificationWorker {
	return &notificationWorker{
		workerPool: workerPool,
		consumer:   consumer,
		handler:    handler,
		logger:     logger,
		startTime:  time.Now(),
	}
}

func (w *notificationWorker) Start(ctx context.Context) error {
	w.lifecycle.Lock()
	defer w.lifecycle.Unlock()

	if w.cancel != nil {
		return ErrAlreadyStarted
	}

	w.logger.Info().Msg("Starting notification worker...")

	ctx, cancel := context.WithCancel(ctx)

	if err := w.workerPool.Start(ctx); err != nil {
		cancel()
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	msgs, err := w.consumer.Consume(ctx)
	if err != nil {
		cancel()
		w.workerPool.Stop()
		return fmt.Errorf("failed to start consuming messages: %w", err)
	}

	w.cancel = cancel
	w.done = make(chan struct{})
	w.startTime = time.Now()

	go w.processMessages(ctx, msgs)

	w.logger.Info().Msg("Notification worker started successfully")
	return nil
}

// Stop halts intake first, then drains the pool so no task is submitted to a
// closed pool.
func (w *notificationWorker) Stop() error {
	w.lifecycle.Lock()
	defer w.lifecycle.Unlock()

	if w.cancel == nil {
		return nil
	}

	w.logger.Info().Msg("Stopping notification worker...")

	w.cancel()
	<-w.done
	w.cancel = nil

	if err := w.workerPool.Stop(); err != nil {
		w.logger.Error().Err(err).Msg("Failed to stop worker pool")
	}

	if err := w.consumer.Close(); err != nil {
		w.logger.Error().Err(err).Msg("Failed to close queue consumer")
	}

	stats := w.snapshot()
	w.logger.Info().
		Int("total_processed", stats.TotalProcessed).
		Int("failed_jobs", stats.FailedJobs).
		Dur("uptime", time.Since(w.startTime)).
		Msg("Notification worker stopped")

	return nil
}

func (w *notificationWorker) processMessages(ctx context.Context, msgs <-chan queue.Message) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Stopping message processing")
			return
		case msg, ok := <-msgs:
			if !ok {
				w.logger.Warn().Msg("Message channel closed")
				return
			}

			if !w.workerPool.Submit(func() { w.handle(ctx, msg) }) {
				w.requeue(msg)
			}
		}
	}
}

func (w *notificationWorker) handle(ctx context.Context, msg queue.Message) {
	err := w.handler.ProcessMessage(ctx, msg)
	if err == nil {
		if ackErr := msg.Ack(false); ackErr != nil {
			w.logger.Error().Err(ackErr).Msg("Failed to ack message")
		}

		w.statsMutex.Lock()
		w.stats.TotalProcessed++
		if time.Since(msg.Timestamp) < 24*time.Hour {
			w.stats.ProcessedToday++
		}
		w.statsMutex.Unlock()
		return
	}

	w.statsMutex.Lock()
	w.stats.FailedJobs++
	w.statsMutex.Unlock()

	if queue.IsPermanent(err) {
		w.logger.Error().Err(err).Str("routing_key", msg.RoutingKey).Msg("Dropping unprocessable message")
		if ackErr := msg.Ack(false); ackErr != nil {
			w.logger.Error().Err(ackErr).Msg("Failed to ack message")
		}
		return
	}

	w.logger.Error().Err(err).Str("routing_key", msg.RoutingKey).Msg("Failed to process message")
	w.requeue(msg)
}

func (w *notificationWorker) requeue(msg queue.Message) {
	w.statsMutex.Lock()
	w.stats.Requeued++
	w.statsMutex.Unlock()

	if err := msg.Nack(false, true); err != nil {
		w.logger.Error().Err(err).Msg("Failed to nack message")
	}
}

func (w *notificationWorker) snapshot() WorkerStats {
	w.statsMutex.RLock()
	defer w.statsMutex.RUnlock()
	return w.stats
}

func (w *notificationWorker) GetStats() WorkerStats {
	stats := w.snapshot()

	queueLength, err := w.consumer.GetQueueLength()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to get queue length")
	} else {
		stats.QueueLength = queueLength
	}

	stats.ActiveWorkers = w.workerPool.GetActiveWorkers()
	stats.BusyWorkers = w.workerPool.GetBusyWorkers()

	return stats
}
