package strand_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/strandkit/strand"
	"github.com/strandkit/strand/hook"
	"github.com/strandkit/strand/id"
	"github.com/strandkit/strand/registry"
)

// ──────────────────────────────────────────────────
// Test fixtures
// ──────────────────────────────────────────────────

// newTestContext creates a context bound to a private slot and no
// registry, so tests do not disturb the process-wide ambient state.
func newTestContext(t *testing.T, opts ...strand.Option) *strand.Context {
	t.Helper()
	base := []strand.Option{
		strand.WithSlot(strand.NewSlot()),
		strand.WithRegistry(nil),
	}
	c, err := strand.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

// mustPanic runs fn and returns the recovered panic value. It fails the
// test if fn returns normally.
func mustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() { recovered = recover() }()
	fn()
	t.Fatal("expected panic")
	return nil
}

// fakeTarget is a Target that counts submissions.
type fakeTarget struct {
	submissions int
}

func (f *fakeTarget) Submit(_ strand.Callback, _ any) error {
	f.submissions++
	return nil
}

// captureExt records every hook event in order.
type captureExt struct {
	events []string
}

func (e *captureExt) Name() string { return "capture" }

func (e *captureExt) OnWorkSubmitted(_ hook.Source, seq uint64, pending int) error {
	e.events = append(e.events, fmt.Sprintf("submitted:%d:%d", seq, pending))
	return nil
}

func (e *captureExt) OnWorkStarted(_ hook.Source, seq uint64) error {
	e.events = append(e.events, fmt.Sprintf("started:%d", seq))
	return nil
}

func (e *captureExt) OnWorkCompleted(_ hook.Source, seq uint64) error {
	e.events = append(e.events, fmt.Sprintf("completed:%d", seq))
	return nil
}

func (e *captureExt) OnQueueDrained(_ hook.Source, executed int) error {
	e.events = append(e.events, fmt.Sprintf("drained:%d", executed))
	return nil
}

func (e *captureExt) OnInstalled(_ hook.Source) error {
	e.events = append(e.events, "installed")
	return nil
}

func (e *captureExt) OnUninstalled(_ hook.Source) error {
	e.events = append(e.events, "uninstalled")
	return nil
}

func (e *captureExt) OnDisposed(_ hook.Source, drained int) error {
	e.events = append(e.events, fmt.Sprintf("disposed:%d", drained))
	return nil
}

// ──────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────

func TestNewDefaults(t *testing.T) {
	c := newTestContext(t)

	if c.ID().Prefix() != id.PrefixContext {
		t.Errorf("ID prefix = %q, want %q", c.ID().Prefix(), id.PrefixContext)
	}
	if c.Label() != "" {
		t.Errorf("Label() = %q, want empty", c.Label())
	}
	if c.Installed() {
		t.Error("new context should not be installed")
	}
	if c.Disposed() {
		t.Error("new context should not be disposed")
	}
	if !c.Empty() {
		t.Error("new context should have an empty queue")
	}
	if got := c.Pending(); got != 0 {
		t.Errorf("Pending() = %d, want 0", got)
	}
}

func TestWithLabel(t *testing.T) {
	c := newTestContext(t, strand.WithLabel("ui-thread"))
	if got := c.Label(); got != "ui-thread" {
		t.Errorf("Label() = %q, want %q", got, "ui-thread")
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  strand.Option
	}{
		{"nil logger", strand.WithLogger(nil)},
		{"nil slot", strand.WithSlot(nil)},
		{"nil hook", strand.WithHook(nil)},
		{"negative capacity", strand.WithCapacity(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := strand.New(strand.WithRegistry(nil), tt.opt)
			if err == nil {
				t.Fatal("expected construction error")
			}
			if c != nil {
				t.Error("expected nil context on option error")
			}
		})
	}
}

func TestNewNotifiesRegistry(t *testing.T) {
	r := registry.New[*strand.Context]()

	var seen []*strand.Context
	sub, err := r.Subscribe(func(c *strand.Context) { seen = append(seen, c) })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer sub.Close()

	c, err := strand.New(
		strand.WithSlot(strand.NewSlot()),
		strand.WithRegistry(r),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(seen) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(seen))
	}
	if seen[0] != c {
		t.Error("subscriber should receive the constructed context")
	}
}

func TestNotificationIsLastConstructionStep(t *testing.T) {
	r := registry.New[*strand.Context]()

	installedAtNotify := false
	sub, err := r.Subscribe(func(c *strand.Context) {
		installedAtNotify = c.Installed()
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer sub.Close()

	c, err := strand.New(
		strand.WithSlot(strand.NewSlot()),
		strand.WithRegistry(r),
		strand.WithInstall(),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Dispose()

	if !installedAtNotify {
		t.Error("subscriber should observe the context already installed")
	}
}

func TestNotificationOrder(t *testing.T) {
	r := registry.New[*strand.Context]()

	var order []string
	for _, tag := range []string{"first", "second"} {
		sub, err := r.Subscribe(func(*strand.Context) { order = append(order, tag) })
		if err != nil {
			t.Fatalf("Subscribe failed: %v", err)
		}
		defer sub.Close()
	}

	if _, err := strand.New(
		strand.WithSlot(strand.NewSlot()),
		strand.WithRegistry(r),
	); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("notification order = %v, want [first second]", order)
	}
}

func TestSubscriberPanicPropagatesFromNew(t *testing.T) {
	r := registry.New[*strand.Context]()
	sub, err := r.Subscribe(func(*strand.Context) { panic("subscriber boom") })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer sub.Close()

	got := mustPanic(t, func() {
		_, _ = strand.New(
			strand.WithSlot(strand.NewSlot()),
			strand.WithRegistry(r),
		)
	})
	if got != "subscriber boom" {
		t.Errorf("recovered %v, want %q", got, "subscriber boom")
	}
}

func TestDefaultRegistryObservesConstruction(t *testing.T) {
	var seen []*strand.Context
	sub, err := strand.DefaultRegistry().Subscribe(func(c *strand.Context) {
		seen = append(seen, c)
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer sub.Close()

	c, err := strand.New(strand.WithSlot(strand.NewSlot()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	found := false
	for _, s := range seen {
		if s == c {
			found = true
			break
		}
	}
	if !found {
		t.Error("default registry subscriber did not observe the construction")
	}
}

func TestSubmissionThroughSlot(t *testing.T) {
	s := strand.NewSlot()
	c := newTestContext(t, strand.WithSlot(s), strand.WithInstall())

	// Arbitrary code reads the slot and submits without knowing the
	// concrete type behind it.
	ran := false
	if err := s.Current().Submit(func(any) { ran = true }, nil); err != nil {
		t.Fatalf("Submit through slot failed: %v", err)
	}

	if ran {
		t.Fatal("callback ran before the queue was pumped")
	}
	if err := c.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if !ran {
		t.Error("callback did not run after RunAll")
	}
}

func TestHookEventOrder(t *testing.T) {
	ext := &captureExt{}
	s := strand.NewSlot()
	c := newTestContext(t, strand.WithSlot(s), strand.WithHook(ext))

	if err := c.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := c.Submit(func(any) {}, nil); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := c.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if err := c.Dispose(); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}

	expected := []string{
		"installed",
		"submitted:1:1",
		"started:1",
		"completed:1",
		"drained:1",
		"disposed:0",
	}
	if len(ext.events) != len(expected) {
		t.Fatalf("expected %d events, got %d: %v", len(expected), len(ext.events), ext.events)
	}
	for i, want := range expected {
		if ext.events[i] != want {
			t.Errorf("event[%d] = %q, want %q", i, ext.events[i], want)
		}
	}
}

func TestFailingHookDoesNotBlockPump(t *testing.T) {
	c := newTestContext(t, strand.WithHook(&failingHookExt{}))

	ran := false
	if err := c.Submit(func(any) { ran = true }, nil); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := c.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if !ran {
		t.Error("callback did not run despite failing hook")
	}
}

// failingHookExt errors on every event it implements.
type failingHookExt struct{}

func (e *failingHookExt) Name() string { return "failing" }

func (e *failingHookExt) OnWorkSubmitted(_ hook.Source, _ uint64, _ int) error {
	return errors.New("boom")
}

func (e *failingHookExt) OnQueueDrained(_ hook.Source, _ int) error {
	return errors.New("boom")
}

// ──────────────────────────────────────────────────
// End to end
// ──────────────────────────────────────────────────

func TestInstallPumpDisposeRoundTrip(t *testing.T) {
	s := strand.NewSlot()
	prev := &fakeTarget{}
	s.Swap(prev)

	c := newTestContext(t, strand.WithSlot(s), strand.WithInstall())

	var order []int
	for _, n := range []int{1, 2, 3} {
		if err := s.Current().Submit(func(state any) {
			order = append(order, state.(int))
		}, n); err != nil {
			t.Fatalf("Submit(%d) failed: %v", n, err)
		}
	}
	if err := c.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}

	if err := c.Dispose(); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}
	if err := c.Submit(func(any) {}, nil); !errors.Is(err, strand.ErrDisposed) {
		t.Errorf("Submit after Dispose = %v, want ErrDisposed", err)
	}
	if s.Current() != strand.Target(prev) {
		t.Error("slot does not hold the pre-install target after Dispose")
	}
}
