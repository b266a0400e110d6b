// Package harness provides driver-side utilities for tests that pump
// strand contexts: collecting contexts as they are constructed, draining
// a set of contexts to a cross-context fixed point, and awaiting
// conditions produced by other goroutines.
//
// The context itself has no time dependencies; anything that waits lives
// here, on the driver side.
//
// # Typical flow
//
//	col, _ := harness.Collect(reg)
//	defer col.Close()
//
//	// ... code under test constructs contexts against reg ...
//
//	total, err := harness.DrainAll(col.Contexts()...)
package harness
