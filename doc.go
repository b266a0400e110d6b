// Package strand provides a deterministic, manually pumped dispatch context
// for testing asynchronous code. It offers a FIFO callback queue with
// explicit pumping, ambient-slot installation with save/restore, and a
// process-wide construction-notification registry.
//
// A Context runs nothing on its own. Code under test submits callbacks to
// what it believes is an ordinary dispatch target; the driving test then
// pumps the queue one callback at a time (RunOne) or to a fixed point
// (RunAll), making asynchronous flows fully deterministic.
//
// # Quick Start
//
//	sc, err := strand.New(
//	    strand.WithLabel("ui"),
//	    strand.WithInstall(),
//	)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer sc.Dispose()
//
//	startBackgroundRefresh() // code under test submits to the ambient slot
//
//	if err := sc.RunAll(); err != nil {
//	    t.Fatal(err)
//	}
//
// # Architecture
//
// The root package owns the Context, the ambient Slot, and the sentinel
// errors. Every construction is announced through a subscriber registry
// (see the registry package) so harnesses discover contexts they did not
// create. Pump lifecycle events fan out to local hook extensions (see the
// hook package); the journal and observability packages ship ready-made
// extensions.
//
// All entity IDs use TypeID — type-prefixed, K-sortable, UUIDv7-based,
// compile-time safe identifiers.
package strand
