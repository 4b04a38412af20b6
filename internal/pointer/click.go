package pointer

import "time"

// DefaultDoubleClickInterval is the window within which a second press on the
// same target counts as a double click.
const DefaultDoubleClickInterval = 300 * time.Millisecond

// ClickDetector debounces raw presses into single and double clicks. It
// belongs to the input layer: consumers receive clicks already classified.
type ClickDetector struct {
	interval   time.Duration
	lastTarget string
	lastPress  time.Time
}

// NewClickDetector returns a detector using interval, or the default when
// interval is not positive.
func NewClickDetector(interval time.Duration) *ClickDetector {
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	return &ClickDetector{interval: interval}
}

// Press records a press on target at time at and returns 2 when it completes
// a double click, 1 otherwise. A completed double click resets the history.
func (c *ClickDetector) Press(target string, at time.Time) int {
	elapsed := at.Sub(c.lastPress)
	if target != "" && target == c.lastTarget && elapsed > 0 && elapsed <= c.interval {
		c.lastTarget = ""
		c.lastPress = time.Time{}
		return 2
	}
	c.lastTarget = target
	c.lastPress = at
	return 1
}

// Reset forgets the previous press.
func (c *ClickDetector) Reset() {
	c.lastTarget = ""
	c.lastPress = time.Time{}
}
