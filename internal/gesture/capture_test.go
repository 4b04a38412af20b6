package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

func mouse(kind pointer.Kind, x, y int) pointer.Event {
	return pointer.MouseEvent(kind, pointer.ButtonPrimary, x, y)
}

func TestCapture_DragTracksAndReleases(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)

	pos := geom.Point{X: 20, Y: 20}
	s, ok := StartDrag("About", pos, mouse(pointer.Down, 100, 100), func(p geom.Point) { pos = p })
	require.True(t, ok)

	c.Begin(s)
	require.Equal(t, 1, hub.Len())

	hub.Publish(mouse(pointer.Move, 110, 90))
	assert.Equal(t, geom.Point{X: 30, Y: 10}, pos)
	hub.Publish(mouse(pointer.Move, 50, 300))
	assert.Equal(t, geom.Point{X: -30, Y: 220}, pos, "drag is unclamped")

	hub.Publish(mouse(pointer.Up, 50, 300))
	assert.Nil(t, c.Active())
	assert.Equal(t, 0, hub.Len())

	hub.Publish(mouse(pointer.Move, 0, 0))
	assert.Equal(t, geom.Point{X: -30, Y: 220}, pos, "moves after release are ignored")
}

func TestCapture_RepeatedGesturesDoNotLeakListeners(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)

	for i := 0; i < 50; i++ {
		s, ok := StartDrag("About", geom.Point{}, mouse(pointer.Down, 0, 0), nil)
		require.True(t, ok)
		c.Begin(s)
		hub.Publish(mouse(pointer.Move, i, i))
		if i%2 == 0 {
			hub.Publish(mouse(pointer.Up, i, i))
		} else {
			hub.Publish(pointer.Event{Kind: pointer.Cancel, Modality: pointer.Mouse})
		}
	}
	assert.Equal(t, 0, hub.Len())
}

func TestCapture_NewSessionSupersedesStale(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)

	var first, second geom.Point
	s1, _ := StartDrag("About", geom.Point{}, mouse(pointer.Down, 0, 0), func(p geom.Point) { first = p })
	s2, _ := StartDrag("Projects", geom.Point{}, mouse(pointer.Down, 0, 0), func(p geom.Point) { second = p })

	c.Begin(s1)
	c.Begin(s2)
	require.Equal(t, 1, hub.Len())

	hub.Publish(mouse(pointer.Move, 5, 5))
	assert.Equal(t, geom.Point{}, first)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, second)
}

func TestCapture_EndWithoutSessionIsNoop(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)
	c.End()
	c.EndFor("About")
	assert.Equal(t, 0, hub.Len())
}

func TestCapture_ReleasesOnPanic(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)

	s, _ := StartDrag("About", geom.Point{}, mouse(pointer.Down, 0, 0), func(geom.Point) { panic("boom") })
	c.Begin(s)

	assert.Panics(t, func() { hub.Publish(mouse(pointer.Move, 1, 1)) })
	assert.Equal(t, 0, hub.Len())
	assert.Nil(t, c.Active())
}

func TestCapture_ResizeIgnoresOtherTouches(t *testing.T) {
	hub := pointer.NewHub()
	c := NewCapture(hub, nil)

	bounds := geom.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	down, _ := pointer.TouchEvent(pointer.Down, []pointer.TouchPoint{{ID: 1, X: 400, Y: 300}})
	s, ok := StartResize("About", bounds, SouthEast, defaultMin, down, func(r geom.Rect) { bounds = r })
	require.True(t, ok)
	c.Begin(s)

	stray, _ := pointer.TouchEvent(pointer.Move, []pointer.TouchPoint{{ID: 2, X: 0, Y: 0}})
	hub.Publish(stray)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 400, Height: 300}, bounds)

	own, _ := pointer.TouchEvent(pointer.Move, []pointer.TouchPoint{{ID: 1, X: 450, Y: 320}})
	hub.Publish(own)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 450, Height: 320}, bounds)

	end, _ := pointer.TouchEvent(pointer.Up, nil)
	hub.Publish(end)
	assert.Equal(t, 0, hub.Len())
}
