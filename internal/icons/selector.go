// Package icons tracks which desktop launcher icon is selected and decides
// when a second activation opens its window.
package icons

import "time"

// DefaultActivationInterval is the longest gap between two taps that still
// counts as a double tap.
const DefaultActivationInterval = 300 * time.Millisecond

// State is the selection state of one icon.
type State int

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

// Selector holds the desktop icon selection. Selecting never opens a window;
// only an activation (double click, or a second tap inside the interval)
// does, and the caller performs the open.
type Selector struct {
	interval time.Duration
	selected string
	lastTap  map[string]time.Time
}

// NewSelector returns a selector using interval for touch double taps, or
// the default when interval is not positive.
func NewSelector(interval time.Duration) *Selector {
	if interval <= 0 {
		interval = DefaultActivationInterval
	}
	return &Selector{
		interval: interval,
		lastTap:  make(map[string]time.Time),
	}
}

// Select marks id as the selected icon.
func (s *Selector) Select(id string) {
	s.selected = id
}

// Activate handles an already debounced double click on id. It selects the
// icon and reports true so the caller opens its window.
func (s *Selector) Activate(id string) bool {
	if id == "" {
		return false
	}
	s.selected = id
	delete(s.lastTap, id)
	return true
}

// Tap handles a touch tap on id at time at. A tap within the activation
// interval of the previous tap on the same icon activates it; otherwise the
// icon is just selected. The tap history is cleared after an activation so a
// third quick tap selects again instead of activating twice.
func (s *Selector) Tap(id string, at time.Time) bool {
	if id == "" {
		return false
	}
	last, ok := s.lastTap[id]
	if elapsed := at.Sub(last); ok && elapsed > 0 && elapsed < s.interval {
		return s.Activate(id)
	}
	s.selected = id
	s.lastTap[id] = at
	return false
}

// Clear resets the selection, as when the desktop background is clicked.
func (s *Selector) Clear() {
	s.selected = ""
}

// Selected returns the selected icon id, or "".
func (s *Selector) Selected() string {
	return s.selected
}

// StateOf returns the selection state of icon id.
func (s *Selector) StateOf(id string) State {
	if id != "" && id == s.selected {
		return Selected
	}
	return Idle
}
