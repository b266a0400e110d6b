package strand_test

import (
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/strandkit/strand"
)

func TestNewSlotEmpty(t *testing.T) {
	s := strand.NewSlot()
	if got := s.Current(); got != nil {
		t.Errorf("Current() = %v, want nil", got)
	}
}

func TestSlotSwapReturnsPrevious(t *testing.T) {
	s := strand.NewSlot()
	a := &fakeTarget{}
	b := &fakeTarget{}

	if got := s.Swap(a); got != nil {
		t.Errorf("first Swap returned %v, want nil", got)
	}
	if got := s.Swap(b); got != strand.Target(a) {
		t.Error("second Swap should return the first occupant")
	}
	if got := s.Current(); got != strand.Target(b) {
		t.Error("Current() should return the latest occupant")
	}
}

func TestAmbientSlotStable(t *testing.T) {
	if strand.AmbientSlot() != strand.AmbientSlot() {
		t.Error("AmbientSlot() should return the same register every call")
	}
}

func TestSlotConcurrentReaders(t *testing.T) {
	s := strand.NewSlot()
	c := newTestContext(t, strand.WithSlot(s))

	done := make(chan struct{})
	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				default:
					_ = s.Current()
				}
			}
		})
	}

	for i := range 100 {
		if err := c.Install(); err != nil {
			t.Fatalf("Install cycle %d failed: %v", i, err)
		}
		if err := c.Uninstall(); err != nil {
			t.Fatalf("Uninstall cycle %d failed: %v", i, err)
		}
	}
	close(done)

	if err := g.Wait(); err != nil {
		t.Fatalf("reader goroutine failed: %v", err)
	}
}
