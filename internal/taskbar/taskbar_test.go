package taskbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/retrodesk/internal/wm"
)

func TestEntries_MirrorRegistry(t *testing.T) {
	r := wm.NewRegistry(wm.DefaultOptions())
	r.Open(wm.Spec{ID: "About", Title: "About Me"})
	r.Open(wm.Spec{ID: "Projects"})
	r.Open(wm.Spec{ID: "Contact Me"})
	r.Minimize("Projects")

	entries := Entries(r)
	require.Len(t, entries, 3, "minimized windows keep their entry")

	assert.Equal(t, Entry{ID: "About", Title: "About Me", State: Raised}, entries[0])
	assert.Equal(t, Entry{ID: "Projects", Title: "Projects", Minimized: true, State: Raised}, entries[1])
	assert.Equal(t, Entry{ID: "Contact Me", Title: "Contact Me", Focused: true, State: Pressed}, entries[2])
}

func TestEntries_EmptyRegistry(t *testing.T) {
	r := wm.NewRegistry(wm.DefaultOptions())
	assert.Empty(t, Entries(r))
}

func TestClick_TogglesThroughRegistry(t *testing.T) {
	r := wm.NewRegistry(wm.DefaultOptions())
	r.Open(wm.Spec{ID: "About"})

	assert.True(t, Click(r, "About"))
	assert.True(t, Entries(r)[0].Minimized)
	assert.True(t, Click(r, "About"))
	assert.Equal(t, Pressed, Entries(r)[0].State)
	assert.False(t, Click(r, "missing"))
}

func TestClock(t *testing.T) {
	c := NewClock(0, "")
	assert.Equal(t, DefaultClockInterval, c.Interval)

	now := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	c.Set(now.Add(-time.Minute))

	assert.True(t, c.Tick())
	assert.Equal(t, "09:05", c.String())
	assert.False(t, c.Tick())
}
