// Package registry provides an ordered, mutex-guarded subscriber registry
// with synchronous fan-out.
//
// A Registry holds handlers in subscription order and invokes each of them,
// under the registry lock, for every value passed to Notify. Function values
// are not comparable in Go, so Subscribe returns a [Subscription] handle;
// closing the handle is how a subscriber detaches.
//
// The registry is generic over the notified value. The root strand package
// instantiates it with *strand.Context and owns the process-wide default
// instance that announces every context construction; tests that need
// isolation construct their own:
//
//	r := registry.New[*strand.Context]()
//	sub, err := r.Subscribe(func(c *strand.Context) { seen = append(seen, c) })
//	defer sub.Close()
package registry
