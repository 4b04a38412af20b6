package taskbar

import "time"

const (
	DefaultClockInterval = time.Second
	DefaultClockFormat   = "15:04"
)

// Clock is the tray clock. It is session-local and independent of window
// state; hosts call Tick on a fixed interval.
type Clock struct {
	Interval time.Duration
	Format   string

	now  func() time.Time
	last time.Time
}

// NewClock returns a clock refreshed every interval and rendered with
// layout, falling back to the defaults for zero values.
func NewClock(interval time.Duration, layout string) *Clock {
	if interval <= 0 {
		interval = DefaultClockInterval
	}
	if layout == "" {
		layout = DefaultClockFormat
	}
	c := &Clock{Interval: interval, Format: layout, now: time.Now}
	c.last = c.now()
	return c
}

// Tick refreshes the clock and reports whether the rendered text changed.
func (c *Clock) Tick() bool {
	before := c.String()
	c.last = c.now()
	return c.String() != before
}

// Set pins the clock to t. Used by hosts that receive the time from their
// own ticker.
func (c *Clock) Set(t time.Time) {
	c.last = t
}

// Time returns the last refreshed time.
func (c *Clock) Time() time.Time {
	return c.last
}

func (c *Clock) String() string {
	return c.last.Format(c.Format)
}
