// Package pointer normalizes mouse and touch input into a single event stream
// and tracks gesture deltas against a captured start point.
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/retrodesk/internal/geom"
)

// Modality identifies the input device family an event came from.
type Modality int

const (
	Mouse Modality = iota
	Touch
)

func (m Modality) String() string {
	switch m {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Modality) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modality) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "mouse":
		*m = Mouse
	case "touch":
		*m = Touch
	default:
		return fmt.Errorf("unknown pointer modality %q", string(text))
	}
	return nil
}

// Kind is the phase of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	// Cancel ends a gesture without a release position, e.g. when the
	// pointer leaves the viewport entirely.
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Ends reports whether the event terminates a gesture.
func (k Kind) Ends() bool {
	return k == Up || k == Cancel
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "down":
		*k = Down
	case "move":
		*k = Move
	case "up":
		*k = Up
	case "cancel":
		*k = Cancel
	default:
		return fmt.Errorf("unknown pointer event kind %q", string(text))
	}
	return nil
}

// Button numbers follow the DOM convention: 0 is the primary button.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// TouchPoint is one contact point of a touch event.
type TouchPoint struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Event is a normalized pointer event. Touch events carry the coordinates of
// their first contact point.
type Event struct {
	Kind     Kind       `json:"kind"`
	Modality Modality   `json:"modality"`
	Button   Button     `json:"button,omitempty"`
	TouchID  int        `json:"touch_id,omitempty"`
	Pos      geom.Point `json:"pos"`
	Time     time.Time  `json:"-"`
}

// MouseEvent builds a mouse event at client coordinates x, y.
func MouseEvent(kind Kind, button Button, x, y int) Event {
	return Event{
		Kind:     kind,
		Modality: Mouse,
		Button:   button,
		Pos:      geom.Point{X: x, Y: y},
	}
}

// TouchEvent builds an event from the current touch list. Only the first
// touch point is used. A release with no remaining touches yields an event
// without a position.
func TouchEvent(kind Kind, touches []TouchPoint) (Event, bool) {
	if len(touches) == 0 {
		if kind.Ends() {
			return Event{Kind: kind, Modality: Touch}, true
		}
		return Event{}, false
	}
	first := touches[0]
	return Event{
		Kind:     kind,
		Modality: Touch,
		TouchID:  first.ID,
		Pos:      geom.Point{X: first.X, Y: first.Y},
	}, true
}

// Primary reports whether the event may start a gesture: the primary mouse
// button, or the first touch point.
func (e Event) Primary() bool {
	if e.Modality == Touch {
		return true
	}
	return e.Button == ButtonPrimary
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %s", e.Modality, e.Kind, e.Pos)
}
