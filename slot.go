package strand

import "sync"

// Target is anything that can accept submitted work: a *Context, or one
// of the production dispatchers in the target package. Slots hold
// Targets.
type Target interface {
	Submit(cb Callback, state any) error
}

// Slot is a single-value register holding the current ambient Target.
// The register itself is safe for concurrent use; the install/uninstall
// discipline layered on top of it assumes a single driving goroutine.
type Slot struct {
	mu  sync.Mutex
	cur Target
}

// NewSlot creates an empty slot. Tests that must not see each other's
// installations bind contexts to private slots via WithSlot.
func NewSlot() *Slot { return &Slot{} }

// Current returns the slot's occupant, or nil when the slot is empty.
func (s *Slot) Current() Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Swap writes t into the slot and returns the previous occupant. It is
// the write accessor boundary code uses to seed the ambient slot with a
// production target; contexts go through Install and Uninstall instead.
func (s *Slot) Swap(t Target) Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.cur
	s.cur = t
	return prev
}
