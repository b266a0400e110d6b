package hook

import "log/slog"

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type workSubmittedEntry struct {
	name string
	hook WorkSubmitted
}

type workStartedEntry struct {
	name string
	hook WorkStarted
}

type workCompletedEntry struct {
	name string
	hook WorkCompleted
}

type queueDrainedEntry struct {
	name string
	hook QueueDrained
}

type installedEntry struct {
	name string
	hook Installed
}

type uninstalledEntry struct {
	name string
	hook Uninstalled
}

type disposedEntry struct {
	name string
	hook Disposed
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	// Type-cached slices for each lifecycle hook.
	workSubmitted []workSubmittedEntry
	workStarted   []workStartedEntry
	workCompleted []workCompletedEntry
	queueDrained  []queueDrainedEntry
	installed     []installedEntry
	uninstalled   []uninstalledEntry
	disposed      []disposedEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(WorkSubmitted); ok {
		r.workSubmitted = append(r.workSubmitted, workSubmittedEntry{name, h})
	}
	if h, ok := e.(WorkStarted); ok {
		r.workStarted = append(r.workStarted, workStartedEntry{name, h})
	}
	if h, ok := e.(WorkCompleted); ok {
		r.workCompleted = append(r.workCompleted, workCompletedEntry{name, h})
	}
	if h, ok := e.(QueueDrained); ok {
		r.queueDrained = append(r.queueDrained, queueDrainedEntry{name, h})
	}
	if h, ok := e.(Installed); ok {
		r.installed = append(r.installed, installedEntry{name, h})
	}
	if h, ok := e.(Uninstalled); ok {
		r.uninstalled = append(r.uninstalled, uninstalledEntry{name, h})
	}
	if h, ok := e.(Disposed); ok {
		r.disposed = append(r.disposed, disposedEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// ──────────────────────────────────────────────────
// Pump event emitters
// ──────────────────────────────────────────────────

// EmitWorkSubmitted notifies all extensions that implement WorkSubmitted.
func (r *Registry) EmitWorkSubmitted(s Source, seq uint64, pending int) {
	for _, e := range r.workSubmitted {
		if err := e.hook.OnWorkSubmitted(s, seq, pending); err != nil {
			r.logHookError("OnWorkSubmitted", e.name, err)
		}
	}
}

// EmitWorkStarted notifies all extensions that implement WorkStarted.
func (r *Registry) EmitWorkStarted(s Source, seq uint64) {
	for _, e := range r.workStarted {
		if err := e.hook.OnWorkStarted(s, seq); err != nil {
			r.logHookError("OnWorkStarted", e.name, err)
		}
	}
}

// EmitWorkCompleted notifies all extensions that implement WorkCompleted.
func (r *Registry) EmitWorkCompleted(s Source, seq uint64) {
	for _, e := range r.workCompleted {
		if err := e.hook.OnWorkCompleted(s, seq); err != nil {
			r.logHookError("OnWorkCompleted", e.name, err)
		}
	}
}

// EmitQueueDrained notifies all extensions that implement QueueDrained.
func (r *Registry) EmitQueueDrained(s Source, executed int) {
	for _, e := range r.queueDrained {
		if err := e.hook.OnQueueDrained(s, executed); err != nil {
			r.logHookError("OnQueueDrained", e.name, err)
		}
	}
}

// ──────────────────────────────────────────────────
// Installation and disposal emitters
// ──────────────────────────────────────────────────

// EmitInstalled notifies all extensions that implement Installed.
func (r *Registry) EmitInstalled(s Source) {
	for _, e := range r.installed {
		if err := e.hook.OnInstalled(s); err != nil {
			r.logHookError("OnInstalled", e.name, err)
		}
	}
}

// EmitUninstalled notifies all extensions that implement Uninstalled.
func (r *Registry) EmitUninstalled(s Source) {
	for _, e := range r.uninstalled {
		if err := e.hook.OnUninstalled(s); err != nil {
			r.logHookError("OnUninstalled", e.name, err)
		}
	}
}

// EmitDisposed notifies all extensions that implement Disposed.
func (r *Registry) EmitDisposed(s Source, drained int) {
	for _, e := range r.disposed {
		if err := e.hook.OnDisposed(s, drained); err != nil {
			r.logHookError("OnDisposed", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block the pump.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
