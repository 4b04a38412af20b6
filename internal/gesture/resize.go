package gesture

import (
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

// Resize computes the bounds produced by dragging handle dir by delta from
// start, never going below min. Handles that grow backwards (n, w) shift the
// position so the opposite edge stays put; once the minimum is reached the
// moving edge stops where the minimum was hit instead of tracking the
// pointer further.
func Resize(start geom.Rect, dir Direction, delta geom.Point, min geom.Size) geom.Rect {
	out := start

	switch {
	case dir.East():
		out.Width = max(min.Width, start.Width+delta.X)
	case dir.West():
		if w := start.Width - delta.X; w >= min.Width {
			out.Width = w
			out.X = start.X + delta.X
		} else {
			out.Width = min.Width
			out.X = start.X + (start.Width - min.Width)
		}
	}

	switch {
	case dir.South():
		out.Height = max(min.Height, start.Height+delta.Y)
	case dir.North():
		if h := start.Height - delta.Y; h >= min.Height {
			out.Height = h
			out.Y = start.Y + delta.Y
		} else {
			out.Height = min.Height
			out.Y = start.Y + (start.Height - min.Height)
		}
	}

	return out
}

// ResizeSession sizes a window from one handle while a resize gesture is
// active.
type ResizeSession struct {
	id        string
	window    string
	tracker   pointer.Tracker
	start     geom.Rect
	direction Direction
	min       geom.Size
	setBounds func(geom.Rect)
}

// StartResize captures the pointer start, the window's bounds and the handle.
// It reports false for a non-primary pointer-down or an unknown handle.
func StartResize(window string, bounds geom.Rect, dir Direction, min geom.Size, ev pointer.Event, setBounds func(geom.Rect)) (*ResizeSession, bool) {
	if !dir.Valid() {
		return nil, false
	}
	tr, ok := pointer.Track(ev)
	if !ok {
		return nil, false
	}
	return &ResizeSession{
		id:        newSessionID(),
		window:    window,
		tracker:   tr,
		start:     bounds,
		direction: dir,
		min:       min,
		setBounds: setBounds,
	}, true
}

func (r *ResizeSession) ID() string     { return r.id }
func (r *ResizeSession) Window() string { return r.window }
func (r *ResizeSession) Kind() string   { return "resize" }

// Direction returns the handle being dragged.
func (r *ResizeSession) Direction() Direction { return r.direction }

// Follows implements Session.
func (r *ResizeSession) Follows(ev pointer.Event) bool {
	return r.tracker.Follows(ev)
}

// Bounds returns the window bounds for pointer event ev.
func (r *ResizeSession) Bounds(ev pointer.Event) geom.Rect {
	return Resize(r.start, r.direction, r.tracker.Delta(ev), r.min)
}

// Move implements Session.
func (r *ResizeSession) Move(ev pointer.Event) {
	if r.setBounds != nil {
		r.setBounds(r.Bounds(ev))
	}
}
