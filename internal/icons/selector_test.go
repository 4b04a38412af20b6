package icons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestSelect_DoesNotActivate(t *testing.T) {
	s := NewSelector(0)
	s.Select("About")
	assert.Equal(t, Selected, s.StateOf("About"))
	assert.Equal(t, Idle, s.StateOf("Projects"))

	s.Select("Projects")
	assert.Equal(t, "Projects", s.Selected())
	assert.Equal(t, Idle, s.StateOf("About"))
}

func TestTap_DoubleTapActivatesOnce(t *testing.T) {
	s := NewSelector(300 * time.Millisecond)

	assert.False(t, s.Tap("About", t0))
	assert.Equal(t, Selected, s.StateOf("About"))
	assert.True(t, s.Tap("About", t0.Add(150*time.Millisecond)))
	// A third quick tap only selects.
	assert.False(t, s.Tap("About", t0.Add(250*time.Millisecond)))
}

func TestTap_SlowTapsOnlySelect(t *testing.T) {
	s := NewSelector(300 * time.Millisecond)
	assert.False(t, s.Tap("About", t0))
	assert.False(t, s.Tap("About", t0.Add(300*time.Millisecond)))
	assert.False(t, s.Tap("About", t0.Add(700*time.Millisecond)))
}

func TestTap_HistoryIsPerIcon(t *testing.T) {
	s := NewSelector(300 * time.Millisecond)
	assert.False(t, s.Tap("About", t0))
	assert.False(t, s.Tap("Projects", t0.Add(50*time.Millisecond)))
	assert.True(t, s.Tap("About", t0.Add(100*time.Millisecond)))
	assert.Equal(t, "About", s.Selected())
}

func TestClear(t *testing.T) {
	s := NewSelector(0)
	s.Select("About")
	s.Clear()
	assert.Equal(t, "", s.Selected())
	assert.Equal(t, Idle, s.StateOf("About"))
	assert.Equal(t, Idle, s.StateOf(""))
}

func TestActivate_RejectsEmptyID(t *testing.T) {
	s := NewSelector(0)
	assert.False(t, s.Activate(""))
	assert.True(t, s.Activate("About"))
	assert.Equal(t, "About", s.Selected())
}
