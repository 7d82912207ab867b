package session

// Affordance is the presentation state of a container's terminal control.
type Affordance int

const (
	AffordanceDefault Affordance = iota
	AffordanceFocused
	AffordanceSessionExists
)

func (a Affordance) String() string {
	switch a {
	case AffordanceFocused:
		return "focused"
	case AffordanceSessionExists:
		return "session"
	default:
		return "default"
	}
}

// Resolve picks the affordance for a container. An existing terminal
// session wins over focus, so a container with a live shell stays visible
// after the selection moves elsewhere. Only interactive identities count;
// a log stream is not a session here. A nil registry has no sessions.
func Resolve(id Identity, focused bool, reg Registry) Affordance {
	if reg != nil && reg.Exists(id.AsTerminal()) {
		return AffordanceSessionExists
	}
	if focused {
		return AffordanceFocused
	}
	return AffordanceDefault
}
