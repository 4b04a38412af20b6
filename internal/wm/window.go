// Package wm is the authoritative registry of open windows: lifecycle, focus,
// minimize state, z-order and geometry.
package wm

import "github.com/1broseidon/retrodesk/internal/geom"

// Spec describes a window that can be opened. Zero sizes fall back to the
// registry defaults.
type Spec struct {
	ID      string
	Title   string
	Content string
	Size    geom.Size
	MinSize geom.Size
}

// Window is the mutable state of one open window.
type Window struct {
	ID        string
	Title     string
	Content   string
	Position  geom.Point
	Size      geom.Size
	MinSize   geom.Size
	Minimized bool
	Maximized bool

	restore geom.Rect
}

// Bounds returns the window position and size as a rect.
func (w *Window) Bounds() geom.Rect {
	return geom.RectOf(w.Position, w.Size)
}

// View is a read-only snapshot of a window with its derived focus and
// stacking values.
type View struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"-"`
	Position  geom.Point `json:"position"`
	Size      geom.Size  `json:"size"`
	MinSize   geom.Size  `json:"min_size"`
	Focused   bool       `json:"focused"`
	Minimized bool       `json:"minimized"`
	Maximized bool       `json:"maximized"`
	Z         int        `json:"z"`
}

// Bounds returns the snapshot position and size as a rect.
func (v View) Bounds() geom.Rect {
	return geom.RectOf(v.Position, v.Size)
}
