package registry

import (
	"errors"
	"sync"

	"github.com/strandkit/strand/id"
)

// ErrNilHandler is returned by Subscribe when the handler is nil.
var ErrNilHandler = errors.New("registry: nil handler")

// Handler is the callback invoked for every value passed to Notify.
type Handler[T any] func(T)

// entry pairs a subscription ID with its handler. The ID captured at
// subscription time is the removal key, so duplicate registrations of the
// same function remain distinct subscriptions.
type entry[T any] struct {
	id      id.SubscriptionID
	handler Handler[T]
}

// Registry is an ordered set of subscribers notified synchronously and in
// subscription order. It is safe for concurrent use.
type Registry[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Subscribe registers a handler and returns the handle used to remove it.
// Subscribing the same function twice yields two independent subscriptions,
// each notified once per Notify.
func (r *Registry[T]) Subscribe(h Handler[T]) (*Subscription[T], error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	sub := &Subscription[T]{registry: r, id: id.NewSubscriptionID()}

	r.mu.Lock()
	r.entries = append(r.entries, entry[T]{id: sub.id, handler: h})
	r.mu.Unlock()

	return sub, nil
}

// Notify invokes every subscribed handler with v, in subscription order.
//
// The lock is held across the whole broadcast, so a handler that calls
// Subscribe or Close on the same registry deadlocks. A handler panic
// propagates to the caller; the lock is released on the way out.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		e.handler(v)
	}
}

// Len returns the number of active subscriptions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// remove deletes the entry with the given subscription ID.
// Unknown IDs are ignored: removing an absent subscriber is not an error.
func (r *Registry[T]) remove(sid id.SubscriptionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id.String() == sid.String() {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}
