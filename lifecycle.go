package strand

import "log/slog"

// Install makes this context the current occupant of its slot, saving the
// previous occupant (possibly nil) for restoration at Uninstall. There is
// exactly one save level: installing again without an intervening
// Uninstall fails with ErrAlreadyInstalled rather than nesting.
func (c *Context) Install() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.installed {
		return ErrAlreadyInstalled
	}

	c.prev = c.slot.Swap(c)
	c.installed = true

	c.logger.Debug("context installed", slog.String("context", c.id.String()))
	c.hooks.EmitInstalled(c)
	return nil
}

// Uninstall writes the occupant saved at Install back into the slot. The
// restore is unconditional — last saved wins, even if something else has
// occupied the slot since. Uninstalling with callbacks still queued fails
// with ErrPendingWork; drain with RunAll first.
func (c *Context) Uninstall() error {
	if c.disposed {
		return ErrDisposed
	}
	if !c.installed {
		return ErrNotInstalled
	}
	if len(c.queue) > 0 {
		return ErrPendingWork
	}

	c.slot.Swap(c.prev)
	c.prev = nil
	c.installed = false

	c.logger.Debug("context uninstalled", slog.String("context", c.id.String()))
	c.hooks.EmitUninstalled(c)
	return nil
}

// Dispose retires the context permanently. Disposing an already disposed
// context is a no-op.
//
// If the context is installed, Dispose drains remaining work to a fixed
// point and then restores the saved slot occupant; the restoration and
// the transition to the disposed state happen even if a drained callback
// panics (the panic then propagates). A context that was never installed
// is marked disposed without touching the queue or the slot.
//
// A callback that calls Dispose on its own context during the disposal
// drain gets ErrDisposing.
func (c *Context) Dispose() error {
	if c.disposed {
		return nil
	}
	if c.disposing {
		return ErrDisposing
	}

	if !c.installed {
		c.disposed = true
		c.logger.Debug("context disposed", slog.String("context", c.id.String()))
		c.hooks.EmitDisposed(c, 0)
		return nil
	}

	c.disposing = true
	drained := 0
	defer func() {
		c.slot.Swap(c.prev)
		c.prev = nil
		c.installed = false
		c.disposing = false
		c.disposed = true

		c.logger.Debug("context disposed",
			slog.String("context", c.id.String()),
			slog.Int("drained", drained),
		)
		c.hooks.EmitDisposed(c, drained)
	}()

	n, err := c.drain()
	drained = n
	return err
}
