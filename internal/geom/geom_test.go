package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 10, Y: 20}
	assert.Equal(t, Point{X: 13, Y: 16}, p.Add(Point{X: 3, Y: -4}))
	assert.Equal(t, Point{X: 7, Y: 24}, p.Sub(Point{X: 3, Y: -4}))
	assert.Equal(t, "(10,20)", p.String())
}

func TestSizeClamp(t *testing.T) {
	min := Size{Width: 200, Height: 150}
	assert.Equal(t, Size{Width: 200, Height: 400}, Size{Width: 50, Height: 400}.Clamp(min))
	assert.Equal(t, Size{Width: 600, Height: 150}, Size{Width: 600, Height: -3}.Clamp(min))
	assert.Equal(t, "600x400", Size{Width: 600, Height: 400}.String())
}

func TestRectContains(t *testing.T) {
	r := RectOf(Point{X: 10, Y: 10}, Size{Width: 100, Height: 50})
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top left", Point{X: 10, Y: 10}, true},
		{"inside", Point{X: 60, Y: 30}, true},
		{"right edge exclusive", Point{X: 110, Y: 30}, false},
		{"bottom edge exclusive", Point{X: 60, Y: 60}, false},
		{"left of", Point{X: 9, Y: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
	assert.Equal(t, Point{X: 10, Y: 10}, r.Origin())
	assert.Equal(t, Size{Width: 100, Height: 50}, r.Size())
	assert.Equal(t, "100x50+10+10", r.String())
}
