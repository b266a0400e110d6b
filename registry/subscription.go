package registry

import (
	"sync/atomic"

	"github.com/strandkit/strand/id"
)

// Subscription is the handle returned by Subscribe. It is the unsubscribe
// token: handlers themselves cannot serve as one because function values
// are not comparable.
type Subscription[T any] struct {
	registry *Registry[T]
	id       id.SubscriptionID
	closed   atomic.Bool
}

// ID returns the unique identifier assigned at subscription time.
func (s *Subscription[T]) ID() id.SubscriptionID { return s.id }

// Close removes the subscription from its registry. Once Close returns the
// handler receives no further notifications. Closing an already closed
// subscription is a no-op.
func (s *Subscription[T]) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.registry.remove(s.id)
	return nil
}
