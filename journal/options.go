package journal

// Option configures a Recorder.
type Option func(*Recorder)

// WithActions restricts the recorder to the listed actions.
// By default all 7 actions are recorded. Unknown actions are silently
// ignored.
//
// Example:
//
//	journal.NewRecorder(
//	    journal.WithActions(
//	        journal.ActionSubmitted,
//	        journal.ActionDrained,
//	        journal.ActionDisposed,
//	    ),
//	)
func WithActions(actions ...Action) Option {
	return func(r *Recorder) {
		r.enabled = make(map[Action]bool, len(actions))
		for _, a := range actions {
			r.enabled[a] = true
		}
	}
}
