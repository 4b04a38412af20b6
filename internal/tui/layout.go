package tui

import (
	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/geom"
)

// Layout maps terminal cells onto desktop units. A cell belongs to whatever
// its center point lands on, so drawing and hit testing always agree.
type Layout struct {
	Cell geom.Size
	Cols int
	Rows int
}

// DesktopRows is the number of rows above the taskbar.
func (l Layout) DesktopRows() int {
	if l.Rows < 1 {
		return 0
	}
	return l.Rows - 1
}

// TaskbarRow is the bottom row.
func (l Layout) TaskbarRow() int {
	return l.Rows - 1
}

// Viewport is the desktop area in units.
func (l Layout) Viewport() geom.Size {
	return geom.Size{Width: l.Cols * l.Cell.Width, Height: l.DesktopRows() * l.Cell.Height}
}

// Metrics is one-cell chrome: a one cell border, a one row title bar and
// three cell buttons.
func (l Layout) Metrics() desktop.Metrics {
	return desktop.Metrics{
		Border:      l.Cell,
		TitleHeight: l.Cell.Height,
		ButtonWidth: 3 * l.Cell.Width,
	}
}

// Center returns the unit point at the center of cell (col, row).
func (l Layout) Center(col, row int) geom.Point {
	return geom.Point{
		X: col*l.Cell.Width + l.Cell.Width/2,
		Y: row*l.Cell.Height + l.Cell.Height/2,
	}
}

// Cells returns the half-open cell range [c0, c1) x [r0, r1) whose centers
// fall inside r.
func (l Layout) Cells(r geom.Rect) (c0, r0, c1, r1 int) {
	c0, c1 = span(r.X, r.Width, l.Cell.Width)
	r0, r1 = span(r.Y, r.Height, l.Cell.Height)
	return c0, r0, c1, r1
}

func span(start, length, cell int) (int, int) {
	return ceilDiv(start-cell/2, cell), ceilDiv(start+length-cell/2, cell)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
