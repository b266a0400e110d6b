package harness

import (
	"errors"
	"sync"

	"github.com/strandkit/strand"
	"github.com/strandkit/strand/registry"
)

var (
	// ErrNilRegistry is returned when Collect is given a nil registry.
	ErrNilRegistry = errors.New("harness: nil registry")

	// ErrNilContext is returned when an await helper is given a nil context.
	ErrNilContext = errors.New("harness: nil context")

	// ErrNilCondition is returned when Await is given a nil condition.
	ErrNilCondition = errors.New("harness: nil condition")
)

// Collector accumulates every context constructed against a registry
// while the collector is attached. Safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	ctxs []*strand.Context
	sub  *registry.Subscription[*strand.Context]
}

// Collect subscribes to the registry and returns a collector that records
// each context announced there. Call Close to detach.
func Collect(r *registry.Registry[*strand.Context]) (*Collector, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	col := &Collector{}
	sub, err := r.Subscribe(func(c *strand.Context) {
		col.mu.Lock()
		defer col.mu.Unlock()
		col.ctxs = append(col.ctxs, c)
	})
	if err != nil {
		return nil, err
	}
	col.sub = sub
	return col, nil
}

// Contexts returns a copy of the collected contexts in construction order.
func (col *Collector) Contexts() []*strand.Context {
	col.mu.Lock()
	defer col.mu.Unlock()
	out := make([]*strand.Context, len(col.ctxs))
	copy(out, col.ctxs)
	return out
}

// Len returns the number of collected contexts.
func (col *Collector) Len() int {
	col.mu.Lock()
	defer col.mu.Unlock()
	return len(col.ctxs)
}

// Close detaches the collector from its registry. Collected contexts
// remain available. Close is idempotent.
func (col *Collector) Close() error {
	return col.sub.Close()
}
