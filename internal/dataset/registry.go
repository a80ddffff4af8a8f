package dataset

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// Handle is an opaque identifier for a value owned by a Registry.
// Zero is never a valid handle.
type Handle uintptr

// ErrUnknownHandle is returned when a handle was never issued or has already
// been freed.
var ErrUnknownHandle = errors.New("dataset: unknown handle")

// Registry issues handles for values that live in the current process, so
// that callers only ever pass integers across API boundaries.
// It is safe for concurrent use.
type Registry[T any] struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]T
}

// NewRegistry returns an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{next: 1, live: make(map[Handle]T)}
}

// Put stores v and returns its handle.
func (r *Registry[T]) Put(v T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.live[h] = v
	return h
}

// Get returns the value for h.
func (r *Registry[T]) Get(h Handle) (T, error) {
	r.mu.Lock()
	v, ok := r.live[h]
	r.mu.Unlock()
	if !ok {
		var zero T
		return zero, ErrUnknownHandle
	}
	return v, nil
}

// Take removes h and returns the value it referred to. Taking an unknown
// handle returns ErrUnknownHandle and has no other effect.
func (r *Registry[T]) Take(h Handle) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.live[h]
	if !ok {
		var zero T
		return zero, ErrUnknownHandle
	}
	delete(r.live, h)
	return v, nil
}

// Drain removes every handle and returns the values in handle order.
func (r *Registry[T]) Drain() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.live))
	for _, h := range slices.Sorted(maps.Keys(r.live)) {
		out = append(out, r.live[h])
	}
	clear(r.live)
	return out
}

// Live reports the number of handles that have not been taken.
func (r *Registry[T]) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
