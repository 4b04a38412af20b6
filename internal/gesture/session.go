package gesture

import (
	"github.com/google/uuid"

	"github.com/1broseidon/retrodesk/internal/pointer"
)

// Session is the ephemeral state of one active gesture. It is created on
// pointer-down and discarded on release.
type Session interface {
	// ID identifies the session in logs.
	ID() string
	// Window returns the id of the window the gesture is bound to.
	Window() string
	// Kind is "drag" or "resize".
	Kind() string
	// Follows reports whether ev belongs to this gesture.
	Follows(ev pointer.Event) bool
	// Move applies a pointer move to the bound window.
	Move(ev pointer.Event)
}

func newSessionID() string {
	return uuid.NewString()
}
