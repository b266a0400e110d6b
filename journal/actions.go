package journal

// Action identifies the pump lifecycle event an entry records.
type Action string

// Journal actions. Each constant corresponds to one hook lifecycle event
// and becomes the Action field of the recorded entry.
const (
	ActionSubmitted   Action = "work.submitted"
	ActionStarted     Action = "work.started"
	ActionCompleted   Action = "work.completed"
	ActionDrained     Action = "queue.drained"
	ActionInstalled   Action = "context.installed"
	ActionUninstalled Action = "context.uninstalled"
	ActionDisposed    Action = "context.disposed"
)

// AllActions returns every action a Recorder can record.
func AllActions() []Action {
	return []Action{
		ActionSubmitted,
		ActionStarted,
		ActionCompleted,
		ActionDrained,
		ActionInstalled,
		ActionUninstalled,
		ActionDisposed,
	}
}
