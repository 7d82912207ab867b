// Package health derives discrete health tags for containers and pods
// from a pod snapshot.
package health

// Tag is a health classification. Tags are totally ordered by severity so
// that a pod rolls up to its worst container.
type Tag int

// Severity order, lowest first.
const (
	Healthy Tag = iota
	Terminated
	Unknown
	Warning
	Error
)

func (t Tag) String() string {
	switch t {
	case Healthy:
		return "Healthy"
	case Terminated:
		return "Terminated"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Worse reports whether t is more severe than other.
func (t Tag) Worse(other Tag) bool {
	return t > other
}

// Worst folds tags to the most severe one. With no tags it returns Unknown.
func Worst(tags ...Tag) Tag {
	if len(tags) == 0 {
		return Unknown
	}
	worst := tags[0]
	for _, t := range tags[1:] {
		if t.Worse(worst) {
			worst = t
		}
	}
	return worst
}
