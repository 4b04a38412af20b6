package desktop

import (
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

// MoveTo drags window id so its top-left corner lands on p. The move runs
// as a real drag gesture: down, one move, up.
func (d *Desktop) MoveTo(id string, p geom.Point) bool {
	w, ok := d.visible(id, "move")
	if !ok {
		return false
	}
	grab := w.Position.Add(geom.Point{X: d.metrics.Border.Width, Y: d.metrics.Border.Height})
	if !d.StartDrag(id, pointer.MouseEvent(pointer.Down, pointer.ButtonPrimary, grab.X, grab.Y)) {
		return false
	}
	d.finish(grab.Add(p.Sub(w.Position)))
	return true
}

// ResizeBy drags handle dir of window id by delta as a real resize gesture.
func (d *Desktop) ResizeBy(id string, dir gesture.Direction, delta geom.Point) bool {
	w, ok := d.visible(id, "resize")
	if !ok {
		return false
	}
	grab := w.Position
	if !d.StartResize(id, dir, pointer.MouseEvent(pointer.Down, pointer.ButtonPrimary, grab.X, grab.Y)) {
		return false
	}
	d.finish(grab.Add(delta))
	return true
}

func (d *Desktop) finish(at geom.Point) {
	d.Pointer(pointer.MouseEvent(pointer.Move, pointer.ButtonPrimary, at.X, at.Y))
	d.Pointer(pointer.MouseEvent(pointer.Up, pointer.ButtonPrimary, at.X, at.Y))
}
