package harness

import (
	"context"
	"time"

	"github.com/strandkit/strand"
)

// defaultPollInterval is used when a caller passes a non-positive poll.
const defaultPollInterval = 10 * time.Millisecond

// Await polls cond until it reports true or ctx is done. The condition is
// checked once before the first wait, so an already-true condition never
// blocks.
func Await(ctx context.Context, poll time.Duration, cond func() bool) error {
	if cond == nil {
		return ErrNilCondition
	}
	if poll <= 0 {
		poll = defaultPollInterval
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		if cond() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// AwaitPending blocks until c has at least n pending callbacks. Counts
// are derived from atomic counters, so a coordinating goroutine may await
// while the context's driver goroutine submits. Synchronize with the
// driver before pumping from anywhere else; submission and pumping stay
// single-driver.
func AwaitPending(ctx context.Context, c *strand.Context, n int, poll time.Duration) error {
	if c == nil {
		return ErrNilContext
	}
	return Await(ctx, poll, func() bool { return c.Pending() >= n })
}

// AwaitSubmitted blocks until c has received at least n submissions over
// its lifetime, whether or not they have executed. Same driver contract
// as AwaitPending.
func AwaitSubmitted(ctx context.Context, c *strand.Context, n uint64, poll time.Duration) error {
	if c == nil {
		return ErrNilContext
	}
	return Await(ctx, poll, func() bool { return c.Stats().Submitted >= n })
}
