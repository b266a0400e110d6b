package strand

// Stats is a point-in-time snapshot of pump activity.
type Stats struct {
	// Submitted is the total number of callbacks accepted by Submit.
	Submitted uint64 `json:"submitted"`

	// Executed is the total number of callbacks consumed by the pump,
	// including any that panicked after dequeue.
	Executed uint64 `json:"executed"`

	// Pending is the number of callbacks waiting in the queue.
	Pending int `json:"pending"`

	// HighWater is the largest queue depth observed since construction.
	HighWater uint64 `json:"high_water"`
}

// Stats returns a snapshot of the pump counters. Like Pending it reads
// only atomics and is safe to call from any goroutine.
func (c *Context) Stats() Stats {
	submitted := c.submitted.Load()
	executed := c.executed.Load()
	return Stats{
		Submitted: submitted,
		Executed:  executed,
		Pending:   int(submitted - executed),
		HighWater: c.highWater.Load(),
	}
}
