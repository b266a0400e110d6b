package strand

import "github.com/strandkit/strand/registry"

// Process-wide ambient state. Both objects live for the life of the
// process; every context binds to them unless WithSlot or WithRegistry
// substitutes a private instance.
var (
	ambientSlot     = NewSlot()
	defaultRegistry = registry.New[*Context]()
)

// AmbientSlot returns the process-wide dispatch slot. Boundary code that
// insists on reading a global ambient target reads
// AmbientSlot().Current(); everything else should accept a Target
// explicitly.
func AmbientSlot() *Slot { return ambientSlot }

// DefaultRegistry returns the process-wide construction-notification
// registry. Constructing any context bound to it (the default) notifies
// its subscribers synchronously. Parallel tests subscribed here observe
// each other's constructions; subscribe to a private registry and use
// WithRegistry for isolation.
func DefaultRegistry() *registry.Registry[*Context] { return defaultRegistry }
