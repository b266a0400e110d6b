package strand

import (
	"errors"
	"log/slog"

	"github.com/strandkit/strand/hook"
	"github.com/strandkit/strand/registry"
)

// Option configures a Context.
type Option func(*Context) error

// WithLabel sets a human-readable label carried in logs, hook events and
// journal entries.
func WithLabel(label string) Option {
	return func(c *Context) error {
		c.label = label
		return nil
	}
}

// WithLogger sets the structured logger for the context.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) error {
		if l == nil {
			return errors.New("strand: nil logger")
		}
		c.logger = l
		return nil
	}
}

// WithSlot binds the context to a specific slot instead of the
// process-wide ambient slot.
func WithSlot(s *Slot) Option {
	return func(c *Context) error {
		if s == nil {
			return errors.New("strand: nil slot")
		}
		c.slot = s
		return nil
	}
}

// WithRegistry binds the context to a specific construction-notification
// registry instead of the process-wide default. A nil registry disables
// construction notification entirely.
func WithRegistry(r *registry.Registry[*Context]) Option {
	return func(c *Context) error {
		c.registry = r
		return nil
	}
}

// WithHook registers a lifecycle hook extension on the context. Repeat
// the option to register several; they are notified in registration
// order.
func WithHook(e hook.Extension) Option {
	return func(c *Context) error {
		if e == nil {
			return errors.New("strand: nil hook extension")
		}
		c.exts = append(c.exts, e)
		return nil
	}
}

// WithCapacity pre-allocates queue capacity for n callbacks.
func WithCapacity(n int) Option {
	return func(c *Context) error {
		if n < 0 {
			return errors.New("strand: negative queue capacity")
		}
		c.queueCap = n
		return nil
	}
}

// WithInstall installs the context into its slot during construction,
// before the construction notification fires.
func WithInstall() Option {
	return func(c *Context) error {
		c.installNow = true
		return nil
	}
}
