package gesture

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

var defaultMin = geom.Size{Width: 200, Height: 150}

func TestResize_WestClampStopsLeftEdge(t *testing.T) {
	start := geom.Rect{X: 100, Y: 0, Width: 400, Height: 300}

	got := Resize(start, West, geom.Point{X: 300}, defaultMin)
	assert.Equal(t, 200, got.Width)
	assert.Equal(t, 300, got.X, "left edge must stop where the minimum is reached")
	assert.Equal(t, start.Y, got.Y)
	assert.Equal(t, start.Height, got.Height)
}

func TestResize_EastClamp(t *testing.T) {
	start := geom.Rect{X: 100, Y: 0, Width: 400, Height: 300}

	got := Resize(start, East, geom.Point{X: -500}, defaultMin)
	assert.Equal(t, 200, got.Width)
	assert.Equal(t, 100, got.X)
}

func TestResize_Directions(t *testing.T) {
	start := geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	delta := geom.Point{X: 30, Y: -20}

	tests := []struct {
		dir  Direction
		want geom.Rect
	}{
		{North, geom.Rect{X: 100, Y: 80, Width: 400, Height: 320}},
		{South, geom.Rect{X: 100, Y: 100, Width: 400, Height: 280}},
		{East, geom.Rect{X: 100, Y: 100, Width: 430, Height: 300}},
		{West, geom.Rect{X: 130, Y: 100, Width: 370, Height: 300}},
		{NorthEast, geom.Rect{X: 100, Y: 80, Width: 430, Height: 320}},
		{NorthWest, geom.Rect{X: 130, Y: 80, Width: 370, Height: 320}},
		{SouthEast, geom.Rect{X: 100, Y: 100, Width: 430, Height: 280}},
		{SouthWest, geom.Rect{X: 130, Y: 100, Width: 370, Height: 280}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			assert.Equal(t, tt.want, Resize(start, tt.dir, delta, defaultMin))
		})
	}
}

func TestResize_NorthClampStopsTopEdge(t *testing.T) {
	start := geom.Rect{X: 0, Y: 50, Width: 400, Height: 300}

	got := Resize(start, North, geom.Point{Y: 1000}, defaultMin)
	assert.Equal(t, 150, got.Height)
	assert.Equal(t, 50+(300-150), got.Y)
}

func TestResize_NeverBelowMinimum(t *testing.T) {
	start := geom.Rect{X: 10, Y: 20, Width: 600, Height: 400}
	deltas := []int{-2000, -601, -400, -1, 0, 1, 199, 200, 399, 400, 401, 599, 2000}

	for _, dir := range Directions {
		for _, dx := range deltas {
			for _, dy := range deltas {
				got := Resize(start, dir, geom.Point{X: dx, Y: dy}, defaultMin)
				require.GreaterOrEqual(t, got.Width, defaultMin.Width, fmt.Sprintf("%s dx=%d dy=%d", dir, dx, dy))
				require.GreaterOrEqual(t, got.Height, defaultMin.Height, fmt.Sprintf("%s dx=%d dy=%d", dir, dx, dy))
			}
		}
	}
}

func TestResize_PureAxisLeavesOrthogonalAxis(t *testing.T) {
	start := geom.Rect{X: 10, Y: 20, Width: 600, Height: 400}
	delta := geom.Point{X: 77, Y: -55}

	for _, dir := range []Direction{North, South} {
		got := Resize(start, dir, delta, defaultMin)
		assert.Equal(t, start.X, got.X, dir)
		assert.Equal(t, start.Width, got.Width, dir)
	}
	for _, dir := range []Direction{East, West} {
		got := Resize(start, dir, delta, defaultMin)
		assert.Equal(t, start.Y, got.Y, dir)
		assert.Equal(t, start.Height, got.Height, dir)
	}
}

func TestResize_SameRuleForTouch(t *testing.T) {
	bounds := geom.Rect{X: 100, Y: 0, Width: 400, Height: 300}

	mouseDown := pointer.MouseEvent(pointer.Down, pointer.ButtonPrimary, 500, 500)
	touchDown, _ := pointer.TouchEvent(pointer.Down, []pointer.TouchPoint{{ID: 3, X: 500, Y: 500}})

	ms, ok := StartResize("About", bounds, West, defaultMin, mouseDown, nil)
	require.True(t, ok)
	ts, ok := StartResize("About", bounds, West, defaultMin, touchDown, nil)
	require.True(t, ok)

	touchMove, _ := pointer.TouchEvent(pointer.Move, []pointer.TouchPoint{{ID: 3, X: 800, Y: 500}})
	assert.Equal(t, ms.Bounds(pointer.MouseEvent(pointer.Move, pointer.ButtonPrimary, 800, 500)), ts.Bounds(touchMove))
}

func TestStartResize_RejectsInvalidInput(t *testing.T) {
	down := pointer.MouseEvent(pointer.Down, pointer.ButtonPrimary, 0, 0)
	_, ok := StartResize("About", geom.Rect{}, Direction("up"), defaultMin, down, nil)
	assert.False(t, ok)

	_, ok = StartResize("About", geom.Rect{}, East, defaultMin, pointer.MouseEvent(pointer.Down, pointer.ButtonSecondary, 0, 0), nil)
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" NE ")
	require.NoError(t, err)
	assert.Equal(t, NorthEast, d)
	assert.True(t, d.North())
	assert.True(t, d.East())
	assert.False(t, d.West())

	_, err = ParseDirection("x")
	assert.Error(t, err)
}
