package repository

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

type NotificationRepository interface {
	Append(recipient, message string)
	GetByRecipient(recipient string) []string
}

type notificationRepository struct {
	mu     sync.RWMutex
	lists  map[string][]string
	logger zerolog.Logger
}

func NewNotificationRepository(logger zerolog.Logger) NotificationRepository {
	return &notificationRepository{
		lists:  make(map[string][]string),
		logger: logger,
	}
}

func (r *notificationRepository) Append(recipient, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[recipient] = append(r.lists[recipient], message)

	r.logger.Debug().
		Str("recipient", recipient).
		Int("total", len(r.lists[recipient])).
		Msg("Notification stored")
}

func (r *notificationRepository) GetByRecipient(recipient string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[recipient]
	if !ok {
		return []string{}
	}
	return slices.Clone(list)
}
