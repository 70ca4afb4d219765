package queue

import (
	"context"
	"errors"
	"time"
)

type Message struct {
	Body       []byte
	RoutingKey string
	Timestamp  time.Time
	Ack        func(multiple bool) error
	Nack       func(multiple bool, requeue bool) error
}

type Consumer interface {
	Consume(ctx context.Context) (<-chan Message, error)
	GetQueueLength() (int, error)
	Close() error
}

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent marks a message failure that a redelivery cannot fix.
func Permanent(err error) error {
	return permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}
