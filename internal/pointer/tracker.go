package pointer

import "github.com/1broseidon/retrodesk/internal/geom"

// Tracker converts a stream of positions into deltas relative to the point
// where a gesture started.
type Tracker struct {
	start    geom.Point
	modality Modality
	touchID  int
}

// Track captures the start point of a gesture. It reports false when ev is
// not a primary pointer-down.
func Track(ev Event) (Tracker, bool) {
	if ev.Kind != Down || !ev.Primary() {
		return Tracker{}, false
	}
	return Tracker{
		start:    ev.Pos,
		modality: ev.Modality,
		touchID:  ev.TouchID,
	}, true
}

// Start returns the captured pointer start.
func (t Tracker) Start() geom.Point {
	return t.start
}

// Modality returns the input modality that started the gesture.
func (t Tracker) Modality() Modality {
	return t.modality
}

// Follows reports whether ev belongs to the tracked gesture. Mouse gestures
// follow every mouse event; touch gestures follow only their own contact.
func (t Tracker) Follows(ev Event) bool {
	if ev.Modality != t.modality {
		return false
	}
	if t.modality == Touch && !ev.Kind.Ends() {
		return ev.TouchID == t.touchID
	}
	return true
}

// Delta returns the offset of ev from the start point.
func (t Tracker) Delta(ev Event) geom.Point {
	return ev.Pos.Sub(t.start)
}
