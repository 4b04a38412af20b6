package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/retrodesk/internal/geom"
)

func TestCascadePosition(t *testing.T) {
	anchor := geom.Point{X: 5, Y: 7}
	assert.Equal(t, geom.Point{X: 5, Y: 7}, CascadePosition(0, anchor, 20))
	assert.Equal(t, geom.Point{X: 25, Y: 27}, CascadePosition(1, anchor, 20))
	assert.Equal(t, geom.Point{X: 45, Y: 47}, CascadePosition(2, anchor, 20))
}

func TestCalculateGrid(t *testing.T) {
	tests := []struct {
		n, rows, cols int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 2, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, tt := range tests {
		rows, cols := CalculateGrid(tt.n)
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("CalculateGrid(%d) = %d,%d want %d,%d", tt.n, rows, cols, tt.rows, tt.cols)
		}
	}
}

func TestTile_FillsViewportWithGaps(t *testing.T) {
	viewport := geom.Rect{X: 0, Y: 0, Width: 1010, Height: 630}
	cells := Tile(4, viewport, 10, geom.Size{Width: 200, Height: 150})
	require.Len(t, cells, 4)

	// 2x2 grid: (1010-30)/2 = 490 wide, (630-30)/2 = 300 tall.
	assert.Equal(t, geom.Rect{X: 10, Y: 10, Width: 490, Height: 300}, cells[0])
	assert.Equal(t, geom.Rect{X: 510, Y: 10, Width: 490, Height: 300}, cells[1])
	assert.Equal(t, geom.Rect{X: 10, Y: 320, Width: 490, Height: 300}, cells[2])
	assert.Equal(t, geom.Rect{X: 510, Y: 320, Width: 490, Height: 300}, cells[3])
}

func TestTile_RespectsMinimum(t *testing.T) {
	cells := Tile(9, geom.Rect{Width: 300, Height: 300}, 0, geom.Size{Width: 200, Height: 150})
	for _, c := range cells {
		assert.GreaterOrEqual(t, c.Width, 200)
		assert.GreaterOrEqual(t, c.Height, 150)
	}
}

func TestMaximize_NeverEmpty(t *testing.T) {
	assert.Equal(t, geom.Rect{Width: 1, Height: 1}, Maximize(geom.Rect{}))
}

func TestParseArrangeMode(t *testing.T) {
	m, err := ParseArrangeMode("tile")
	require.NoError(t, err)
	assert.Equal(t, ArrangeTile, m)

	_, err = ParseArrangeMode("stack")
	assert.Error(t, err)
}
