// Package session models terminal/log session identities and decides how a
// container's terminal affordance is presented.
package session

import "fmt"

// Identity names a session target. Interactive distinguishes a shell from
// a log stream on the same container; the two are different identities.
type Identity struct {
	Pod         string
	Container   string
	Interactive bool
}

// Logs returns the log-stream identity for a container.
func Logs(pod, container string) Identity {
	return Identity{Pod: pod, Container: container}
}

// Terminal returns the interactive identity for a container.
func Terminal(pod, container string) Identity {
	return Identity{Pod: pod, Container: container, Interactive: true}
}

// AsTerminal returns the same target with Interactive set.
func (id Identity) AsTerminal() Identity {
	id.Interactive = true
	return id
}

func (id Identity) String() string {
	kind := "logs"
	if id.Interactive {
		kind = "shell"
	}
	return fmt.Sprintf("%s/%s (%s)", id.Pod, id.Container, kind)
}

// Registry reports whether a live or cached session exists for an identity.
type Registry interface {
	Exists(id Identity) bool
}
