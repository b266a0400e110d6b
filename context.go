package strand

import (
	"log/slog"
	"sync/atomic"

	"github.com/strandkit/strand/hook"
	"github.com/strandkit/strand/id"
	"github.com/strandkit/strand/registry"
)

// Compile-time interface checks.
var (
	_ Target      = (*Context)(nil)
	_ hook.Source = (*Context)(nil)
)

// Callback is a unit of deferred work. The state argument given to Submit
// is passed back verbatim when the callback runs.
type Callback func(state any)

// pendingCallback is a queued callback with its submission ordinal.
type pendingCallback struct {
	seq   uint64
	cb    Callback
	state any
}

// Context is a deterministic, manually pumped dispatch context.
//
// Submitted callbacks accumulate in a FIFO queue and run only when the
// driver pumps them with RunOne or RunAll. A Context can install itself
// into a Slot, saving the previous occupant for restoration, and observes
// a strict lifecycle: once disposed it stays disposed.
//
// One logical goroutine is expected to drive submission, pumping,
// installation and disposal; the queue and the lifecycle flags carry no
// locks. The atomic counters behind Pending and Stats are the exception,
// so observers on other goroutines can poll progress safely.
type Context struct {
	id    id.ContextID
	label string

	queue     []pendingCallback
	submitted atomic.Uint64
	executed  atomic.Uint64
	highWater atomic.Uint64

	installed bool
	disposing bool
	disposed  bool
	prev      Target // slot occupant saved at Install, valid while installed

	slot     *Slot
	registry *registry.Registry[*Context]
	hooks    *hook.Registry
	logger   *slog.Logger

	// Construction scratch, set by options and consumed by New.
	exts       []hook.Extension
	queueCap   int
	installNow bool
}

// New creates a Context and announces it through the configured
// notification registry. Notification is the last step of construction:
// subscribers receive a fully formed context, already installed when
// WithInstall was given. A panicking subscriber propagates out of New.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		id:       id.NewContextID(),
		slot:     ambientSlot,
		registry: defaultRegistry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.hooks = hook.NewRegistry(c.logger)
	for _, e := range c.exts {
		c.hooks.Register(e)
	}
	c.exts = nil

	if c.queueCap > 0 {
		c.queue = make([]pendingCallback, 0, c.queueCap)
	}

	if c.installNow {
		if err := c.Install(); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("context created",
		slog.String("context", c.id.String()),
		slog.String("label", c.label),
	)

	if c.registry != nil {
		c.registry.Notify(c)
	}
	return c, nil
}

// ID returns the context's unique identifier.
func (c *Context) ID() id.ContextID { return c.id }

// Label returns the context's label, or "" if none was configured.
func (c *Context) Label() string { return c.label }

// Pending returns the number of submitted callbacks not yet executed.
// It reads the atomic counters, so unlike the pump operations it is safe
// to call from goroutines other than the driver.
func (c *Context) Pending() int {
	return int(c.submitted.Load() - c.executed.Load())
}

// Empty reports whether no callbacks are waiting.
func (c *Context) Empty() bool { return c.Pending() == 0 }

// Installed reports whether the context currently occupies its slot.
func (c *Context) Installed() bool { return c.installed }

// Disposed reports whether the context has been disposed.
func (c *Context) Disposed() bool { return c.disposed }
