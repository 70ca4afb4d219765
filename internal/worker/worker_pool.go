package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var ErrPoolStopped = errors.New("worker pool stopped")

type Task func()

type WorkerPool struct {
	tasks         chan Task
	wg            sync.WaitGroup
	activeWorkers int
	busyWorkers   int
	maxWorkers    int
	submitTimeout time.Duration
	logger        zerolog.Logger
	mu            sync.RWMutex

	// state guards stopped and the closing of tasks.
	state   sync.RWMutex
	stopped bool
}

func NewWorkerPool(maxWorkers int, logger zerolog.Logger) *WorkerPool {
	return &WorkerPool{
		tasks:         make(chan Task, maxWorkers*10),
		maxWorkers:    maxWorkers,
		submitTimeout: time.Second,
		logger:        logger,
	}
}

func (wp *WorkerPool) Start(_ context.Context) error {
	wp.logger.Info().Int("max_workers", wp.maxWorkers).Msg("Starting worker pool")

	for i := 0; i < wp.maxWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}

	return nil
}

// Stop lets the workers drain already queued tasks before returning.
func (wp *WorkerPool) Stop() error {
	wp.state.Lock()
	if wp.stopped {
		wp.state.Unlock()
		return ErrPoolStopped
	}
	wp.stopped = true
	close(wp.tasks)
	wp.state.Unlock()

	wp.wg.Wait()

	wp.logger.Info().Msg("Worker pool stopped")
	return nil
}

// Submit reports whether the task was queued. A full queue is retried for up
// to a second before the task is dropped.
func (wp *WorkerPool) Submit(task Task) bool {
	wp.state.RLock()
	defer wp.state.RUnlock()

	if wp.stopped {
		wp.logger.Error().Msg("Task submitted to stopped worker pool")
		return false
	}

	select {
	case wp.tasks <- task:
		return true
	default:
	}

	wp.logger.Warn().Msg("Worker pool task queue is full")

	timer := time.NewTimer(wp.submitTimeout)
	defer timer.Stop()

	select {
	case wp.tasks <- task:
		return true
	case <-timer.C:
		wp.logger.Error().Msg("Failed to submit task to worker pool (timeout)")
		return false
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	wp.mu.Lock()
	wp.activeWorkers++
	wp.mu.Unlock()

	wp.logger.Debug().Int("worker_id", id).Msg("Worker started")

	for task := range wp.tasks {
		wp.run(id, task)
	}

	wp.mu.Lock()
	wp.activeWorkers--
	wp.mu.Unlock()

	wp.logger.Debug().Int("worker_id", id).Msg("Worker stopped")
}

func (wp *WorkerPool) run(id int, task Task) {
	wp.mu.Lock()
	wp.busyWorkers++
	wp.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error().
				Int("worker_id", id).
				Interface("panic", r).
				Msg("Worker recovered from panic")
		}

		wp.mu.Lock()
		wp.busyWorkers--
		wp.mu.Unlock()
	}()

	task()
}

func (wp *WorkerPool) GetActiveWorkers() int {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.activeWorkers
}

func (wp *WorkerPool) GetBusyWorkers() int {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.busyWorkers
}

func (wp *WorkerPool) GetQueueLength() int {
	return len(wp.tasks)
}
