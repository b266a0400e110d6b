package strand

import "log/slog"

// Submit appends a callback to the queue. The callback never runs inline;
// it waits until the driver pumps the queue with RunOne or RunAll.
// Submitting to a disposed context fails with ErrDisposed.
func (c *Context) Submit(cb Callback, state any) error {
	if c.disposed {
		return ErrDisposed
	}
	if cb == nil {
		return ErrNilCallback
	}

	seq := c.submitted.Add(1)
	c.queue = append(c.queue, pendingCallback{seq: seq, cb: cb, state: state})

	depth := len(c.queue)
	if uint64(depth) > c.highWater.Load() {
		c.highWater.Store(uint64(depth))
	}

	c.logger.Debug("work submitted",
		slog.String("context", c.id.String()),
		slog.Uint64("seq", seq),
		slog.Int("pending", depth),
	)
	c.hooks.EmitWorkSubmitted(c, seq, depth)
	return nil
}

// RunOne executes exactly one queued callback on the calling goroutine.
// The callback is consumed at dequeue: if it panics, the panic propagates
// to the caller unmasked, with the item already removed, the rest of the
// queue intact and the counters consistent.
func (c *Context) RunOne() error {
	if c.disposed {
		return ErrDisposed
	}
	if len(c.queue) == 0 {
		return ErrEmptyQueue
	}

	p := c.queue[0]
	c.queue[0] = pendingCallback{} // drop references held by the backing array
	c.queue = c.queue[1:]
	c.executed.Add(1)

	c.hooks.EmitWorkStarted(c, p.seq)
	p.cb(p.state)
	c.hooks.EmitWorkCompleted(c, p.seq)
	return nil
}

// RunAll executes queued callbacks until the queue is observed empty.
// Callbacks submitted while draining — including re-entrant submissions
// made by running callbacks — execute in the same call. An empty queue is
// a no-op success and emits no drain event. A callback cycle that never
// stops submitting never returns; bounding it is the caller's
// responsibility.
func (c *Context) RunAll() error {
	if c.disposed {
		return ErrDisposed
	}

	executed, err := c.drain()
	if err != nil {
		return err
	}

	if executed > 0 {
		c.logger.Debug("queue drained",
			slog.String("context", c.id.String()),
			slog.Int("executed", executed),
		)
		c.hooks.EmitQueueDrained(c, executed)
	}
	return nil
}

// drain pumps the queue to its fixed point and reports how many
// callbacks ran.
func (c *Context) drain() (int, error) {
	executed := 0
	for len(c.queue) > 0 {
		if err := c.RunOne(); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}
