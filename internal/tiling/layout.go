package tiling

import (
	"fmt"
	"math"

	"github.com/1broseidon/retrodesk/internal/geom"
)

// ArrangeMode selects how Arrange lays out the open windows.
type ArrangeMode string

const (
	// ArrangeCascade re-stacks windows along the cascade diagonal.
	ArrangeCascade ArrangeMode = "cascade"
	// ArrangeTile lays windows out in a near-square grid.
	ArrangeTile ArrangeMode = "tile"
)

// ParseArrangeMode validates a mode name.
func ParseArrangeMode(s string) (ArrangeMode, error) {
	switch m := ArrangeMode(s); m {
	case ArrangeCascade, ArrangeTile:
		return m, nil
	default:
		return "", fmt.Errorf("unknown arrange mode %q (want cascade or tile)", s)
	}
}

// CascadePosition returns the default position of a window opened while n
// others are already open: n steps of offset along both axes from anchor.
func CascadePosition(n int, anchor geom.Point, offset int) geom.Point {
	return geom.Point{X: anchor.X + n*offset, Y: anchor.Y + n*offset}
}

// Cascade returns n rects of the given size staggered by offset.
func Cascade(n int, anchor geom.Point, offset int, size geom.Size) []geom.Rect {
	if n <= 0 {
		return nil
	}
	out := make([]geom.Rect, n)
	for i := range out {
		out[i] = geom.RectOf(CascadePosition(i, anchor, offset), size)
	}
	return out
}

// CalculateGrid determines the grid dimensions for the given number of windows
func CalculateGrid(numWindows int) (rows, cols int) {
	if numWindows <= 0 {
		return 0, 0
	}

	// Columns first (ceiling of square root), then the rows needed.
	cols = int(math.Ceil(math.Sqrt(float64(numWindows))))
	rows = int(math.Ceil(float64(numWindows) / float64(cols)))

	return rows, cols
}

// Tile computes grid cells for n windows inside viewport with gapSize between
// cells and around the edges. Cells never shrink below min; in a small
// viewport they overflow instead.
func Tile(n int, viewport geom.Rect, gapSize int, min geom.Size) []geom.Rect {
	if n <= 0 {
		return nil
	}

	rows, cols := CalculateGrid(n)

	// Gaps: one before each column and one after the last.
	totalHorizontalGaps := (cols + 1) * gapSize
	totalVerticalGaps := (rows + 1) * gapSize

	cellWidth := (viewport.Width - totalHorizontalGaps) / cols
	cellHeight := (viewport.Height - totalVerticalGaps) / rows
	cell := geom.Size{Width: cellWidth, Height: cellHeight}.Clamp(min)

	positions := make([]geom.Rect, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols

		positions[i] = geom.Rect{
			X:      viewport.X + gapSize + col*(cell.Width+gapSize),
			Y:      viewport.Y + gapSize + row*(cell.Height+gapSize),
			Width:  cell.Width,
			Height: cell.Height,
		}
	}

	return positions
}

// Maximize returns the bounds of a window filling viewport.
func Maximize(viewport geom.Rect) geom.Rect {
	r := viewport
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	return r
}
