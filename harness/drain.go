package harness

import (
	"github.com/strandkit/strand"
)

// DrainAll pumps every context to a cross-context fixed point: a callback
// running on one context may submit to another, so DrainAll keeps sweeping
// until a full pass over all contexts executes nothing. Disposed and nil
// contexts are skipped. Returns the total number of callbacks executed.
//
// A callback panic propagates to the caller; the total up to that point
// is lost.
func DrainAll(ctxs ...*strand.Context) (int, error) {
	total := 0
	for {
		ran := false
		for _, c := range ctxs {
			if c == nil || c.Disposed() || c.Empty() {
				continue
			}
			before := c.Stats().Executed
			if err := c.RunAll(); err != nil {
				return total, err
			}
			total += int(c.Stats().Executed - before)
			ran = true
		}
		if !ran {
			return total, nil
		}
	}
}
