// Package hook defines the local observer system for strand contexts.
// Hook implementations are notified of pump lifecycle events (work
// submitted, started, completed, queue drained, installed, uninstalled,
// disposed) and can react to them — journaling, metrics, tracing, etc.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about.
package hook

import (
	"github.com/strandkit/strand/id"
)

// Source is the view of a context that hooks receive. The concrete
// *strand.Context satisfies it; the interface is defined on the consumer
// side so hook implementations do not depend on the root package.
type Source interface {
	// ID returns the context's unique identifier.
	ID() id.ContextID

	// Label returns the context's human-readable label, or "" if none
	// was configured.
	Label() string

	// Pending returns the number of queued callbacks not yet executed.
	Pending() int
}

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// ──────────────────────────────────────────────────
// Pump lifecycle hooks
// ──────────────────────────────────────────────────

// WorkSubmitted is called after a callback is appended to the queue.
// seq is the callback's submission ordinal; pending is the queue depth
// including the new callback.
type WorkSubmitted interface {
	OnWorkSubmitted(s Source, seq uint64, pending int) error
}

// WorkStarted is called after a callback is dequeued, immediately before
// it runs.
type WorkStarted interface {
	OnWorkStarted(s Source, seq uint64) error
}

// WorkCompleted is called after a callback returns normally. A callback
// that panics produces no completion event.
type WorkCompleted interface {
	OnWorkCompleted(s Source, seq uint64) error
}

// QueueDrained is called when a drain reaches its fixed point, with the
// number of callbacks executed during the drain.
type QueueDrained interface {
	OnQueueDrained(s Source, executed int) error
}

// ──────────────────────────────────────────────────
// Installation and disposal hooks
// ──────────────────────────────────────────────────

// Installed is called after the context installs itself into its slot.
type Installed interface {
	OnInstalled(s Source) error
}

// Uninstalled is called after the context restores the previous slot
// occupant.
type Uninstalled interface {
	OnUninstalled(s Source) error
}

// Disposed is called at the end of disposal, after any final drain and
// slot restoration. drained is the number of callbacks executed by the
// disposal drain.
type Disposed interface {
	OnDisposed(s Source, drained int) error
}
