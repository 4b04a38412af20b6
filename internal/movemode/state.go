// Package movemode drives window moves and resizes from the keyboard.
//
// Move mode first selects a window, then grabs it. While grabbed, arrow keys
// feed synthetic pointer events to the same drag and resize gestures the
// mouse uses, so keyboard and mouse edits follow one code path.
package movemode

import (
	"time"

	"github.com/1broseidon/retrodesk/internal/geom"
)

// DefaultTimeout is how long move mode stays active without a key press.
const DefaultTimeout = 10 * time.Second

// Phase represents the current phase of move mode
type Phase int

const (
	// PhaseInactive means move mode is not active
	PhaseInactive Phase = iota
	// PhaseSelecting means the user is choosing which window to grab
	PhaseSelecting
	// PhaseMoving means a window is grabbed by its title bar
	PhaseMoving
	// PhaseResizing means a window is grabbed by its bottom right corner
	PhaseResizing
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseSelecting:
		return "selecting"
	case PhaseMoving:
		return "moving"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Grabbed reports whether a gesture is in progress.
func (p Phase) Grabbed() bool {
	return p == PhaseMoving || p == PhaseResizing
}

// Direction represents an arrow key direction
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta is the pointer offset one key press in direction d produces.
func (d Direction) Delta(step geom.Size) geom.Point {
	switch d {
	case DirUp:
		return geom.Point{Y: -step.Height}
	case DirDown:
		return geom.Point{Y: step.Height}
	case DirLeft:
		return geom.Point{X: -step.Width}
	case DirRight:
		return geom.Point{X: step.Width}
	}
	return geom.Point{}
}

// State holds the current move mode state
type State struct {
	Phase    Phase
	Selected string     // window highlighted or grabbed
	Session  string     // gesture session started by the grab
	Pointer  geom.Point // synthetic pointer position while grabbed
	Touched  time.Time  // last key press
}

// NewState creates a new inactive state
func NewState() *State {
	return &State{Phase: PhaseInactive}
}

// Reset resets the state to inactive
func (s *State) Reset() {
	*s = State{Phase: PhaseInactive}
}
