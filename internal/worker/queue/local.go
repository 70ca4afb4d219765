package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var ErrQueueClosed = errors.New("queue closed")

// LocalQueue is an in-process broker used when no RabbitMQ is configured.
// It serves as both the publishing transport and the Consumer.
type LocalQueue struct {
	mu       sync.RWMutex
	messages chan Message
	closed   bool
	logger   zerolog.Logger

	// done is closed first on Close to release publishers blocked on a full queue.
	done      chan struct{}
	closeOnce sync.Once
}

func NewLocalQueue(bufferSize int, logger zerolog.Logger) *LocalQueue {
	if bufferSize < 1 {
		bufferSize = 1
	}

	return &LocalQueue{
		messages: make(chan Message, bufferSize),
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (q *LocalQueue) Publish(ctx context.Context, routingKey string, body []byte) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.messages <- q.newMessage(routingKey, body):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.done:
		return ErrQueueClosed
	}
}

func (q *LocalQueue) newMessage(routingKey string, body []byte) Message {
	msg := Message{
		Body:       body,
		RoutingKey: routingKey,
		Timestamp:  time.Now(),
		Ack:        func(bool) error { return nil },
	}
	msg.Nack = func(_ bool, requeue bool) error {
		if requeue {
			q.requeue(msg)
		}
		return nil
	}
	return msg
}

func (q *LocalQueue) requeue(msg Message) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return
	}

	select {
	case q.messages <- msg:
	default:
		q.logger.Warn().Str("routing_key", msg.RoutingKey).Msg("Local queue is full, dropping requeued message")
	}
}

// Consume hands out the queue's channel; it is closed by Close.
func (q *LocalQueue) Consume(ctx context.Context) (<-chan Message, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return nil, ErrQueueClosed
	}

	q.logger.Info().Int("buffer_size", cap(q.messages)).Msg("Local queue consumer started")
	return q.messages, nil
}

func (q *LocalQueue) GetQueueLength() (int, error) {
	return len(q.messages), nil
}

func (q *LocalQueue) Close() error {
	q.closeOnce.Do(func() { close(q.done) })

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.messages)

	q.logger.Info().Msg("Local queue closed")
	return nil
}
