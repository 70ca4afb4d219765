package repository

import (
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

var errNotFound = errors.New("not found")

// MemoryRepository is the shared state of every entity repository: one map,
// one id counter starting at 1 and the lock guarding both.
type MemoryRepository[T any] struct {
	mu     sync.RWMutex
	items  map[int]*T
	nextID int
	clone  func(*T) *T
	logger zerolog.Logger
}

func NewMemoryRepository[T any](clone func(*T) *T, logger zerolog.Logger) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		items:  make(map[int]*T),
		nextID: 1,
		clone:  clone,
		logger: logger,
	}
}

// insert allocates the next id and stores the item built for it. The stored
// item itself is returned, so changes made later through update are visible
// to the caller; get and all hand out copies.
func (r *MemoryRepository[T]) insert(build func(id int) *T) *T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	item := build(id)
	r.items[id] = item

	r.logger.Debug().Int("id", id).Msg("Entity stored")

	return item
}

func (r *MemoryRepository[T]) get(id int) (*T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, false
	}
	return r.clone(item), true
}

// update runs fn on the stored item under the write lock. fn may reject the
// change by returning an error, in which case it must leave the item untouched.
func (r *MemoryRepository[T]) update(id int, fn func(item *T) error) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}

	if err := fn(item); err != nil {
		return nil, err
	}

	return r.clone(item), nil
}

// all returns copies of every item in ascending id order.
func (r *MemoryRepository[T]) all() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.clone(r.items[id]))
	}
	return result
}
