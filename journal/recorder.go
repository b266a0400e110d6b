package journal

import (
	"sync"

	"github.com/strandkit/strand/hook"
)

// Compile-time interface checks.
var (
	_ hook.Extension     = (*Recorder)(nil)
	_ hook.WorkSubmitted = (*Recorder)(nil)
	_ hook.WorkStarted   = (*Recorder)(nil)
	_ hook.WorkCompleted = (*Recorder)(nil)
	_ hook.QueueDrained  = (*Recorder)(nil)
	_ hook.Installed     = (*Recorder)(nil)
	_ hook.Uninstalled   = (*Recorder)(nil)
	_ hook.Disposed      = (*Recorder)(nil)
)

// Entry is one recorded lifecycle event.
type Entry struct {
	// Index is the entry's position in the journal, starting at 0.
	Index int `json:"index" msgpack:"index"`

	// Context is the ID of the context that produced the event.
	Context string `json:"context" msgpack:"context"`

	// Label is the context's label, if one was configured.
	Label string `json:"label,omitempty" msgpack:"label,omitempty"`

	// Action categorizes the event.
	Action Action `json:"action" msgpack:"action"`

	// Seq is the callback's submission ordinal for work events.
	Seq uint64 `json:"seq,omitempty" msgpack:"seq,omitempty"`

	// Pending is the queue depth after a submission.
	Pending int `json:"pending,omitempty" msgpack:"pending,omitempty"`

	// Count carries the executed count for drain events and the drained
	// count for disposal events.
	Count int `json:"count,omitempty" msgpack:"count,omitempty"`
}

// Recorder accumulates journal entries from one or more contexts.
// All methods are safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	enabled map[Action]bool // nil = all enabled
}

// NewRecorder creates a Recorder that records all actions unless restricted
// by options.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements hook.Extension.
func (r *Recorder) Name() string { return "journal-recorder" }

// Snapshot returns a copy of the recorded entries.
func (r *Recorder) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset discards all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}

// Export encodes the current snapshot with the given codec.
func (r *Recorder) Export(c Codec) ([]byte, error) {
	return c.Encode(r.Snapshot())
}

// ── Pump lifecycle hooks ────────────────────────────

// OnWorkSubmitted implements hook.WorkSubmitted.
func (r *Recorder) OnWorkSubmitted(s hook.Source, seq uint64, pending int) error {
	r.record(s, Entry{Action: ActionSubmitted, Seq: seq, Pending: pending})
	return nil
}

// OnWorkStarted implements hook.WorkStarted.
func (r *Recorder) OnWorkStarted(s hook.Source, seq uint64) error {
	r.record(s, Entry{Action: ActionStarted, Seq: seq})
	return nil
}

// OnWorkCompleted implements hook.WorkCompleted.
func (r *Recorder) OnWorkCompleted(s hook.Source, seq uint64) error {
	r.record(s, Entry{Action: ActionCompleted, Seq: seq})
	return nil
}

// OnQueueDrained implements hook.QueueDrained.
func (r *Recorder) OnQueueDrained(s hook.Source, executed int) error {
	r.record(s, Entry{Action: ActionDrained, Count: executed})
	return nil
}

// ── Installation and disposal hooks ─────────────────

// OnInstalled implements hook.Installed.
func (r *Recorder) OnInstalled(s hook.Source) error {
	r.record(s, Entry{Action: ActionInstalled})
	return nil
}

// OnUninstalled implements hook.Uninstalled.
func (r *Recorder) OnUninstalled(s hook.Source) error {
	r.record(s, Entry{Action: ActionUninstalled})
	return nil
}

// OnDisposed implements hook.Disposed.
func (r *Recorder) OnDisposed(s hook.Source, drained int) error {
	r.record(s, Entry{Action: ActionDisposed, Count: drained})
	return nil
}

// record stamps the entry with source identity and its journal index, then
// appends it if the action is enabled.
func (r *Recorder) record(s hook.Source, e Entry) {
	if r.enabled != nil && !r.enabled[e.Action] {
		return
	}

	e.Context = s.ID().String()
	e.Label = s.Label()

	r.mu.Lock()
	defer r.mu.Unlock()
	e.Index = len(r.entries)
	r.entries = append(r.entries, e)
}
