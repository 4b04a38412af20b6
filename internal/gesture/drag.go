package gesture

import (
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

// DragSession translates a window while a move gesture is active.
type DragSession struct {
	id          string
	window      string
	tracker     pointer.Tracker
	startPos    geom.Point
	setPosition func(geom.Point)
}

// StartDrag captures the pointer start and the window's current position.
// setPosition receives every new position. It reports false when ev cannot
// start a gesture (not a primary pointer-down).
func StartDrag(window string, position geom.Point, ev pointer.Event, setPosition func(geom.Point)) (*DragSession, bool) {
	tr, ok := pointer.Track(ev)
	if !ok {
		return nil, false
	}
	return &DragSession{
		id:          newSessionID(),
		window:      window,
		tracker:     tr,
		startPos:    position,
		setPosition: setPosition,
	}, true
}

func (d *DragSession) ID() string     { return d.id }
func (d *DragSession) Window() string { return d.window }
func (d *DragSession) Kind() string   { return "drag" }

// Follows implements Session.
func (d *DragSession) Follows(ev pointer.Event) bool {
	return d.tracker.Follows(ev)
}

// StartPosition returns the window position captured at gesture start.
func (d *DragSession) StartPosition() geom.Point {
	return d.startPos
}

// Position returns the window position for pointer event ev. The result is
// not clamped to the viewport.
func (d *DragSession) Position(ev pointer.Event) geom.Point {
	return d.startPos.Add(d.tracker.Delta(ev))
}

// Move implements Session.
func (d *DragSession) Move(ev pointer.Event) {
	if d.setPosition != nil {
		d.setPosition(d.Position(ev))
	}
}
