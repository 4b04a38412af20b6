// Package taskbar projects window registry state into taskbar entries and
// maps entry clicks back onto the registry.
package taskbar

import "github.com/1broseidon/retrodesk/internal/wm"

// ButtonState is how an entry's button is drawn.
type ButtonState string

const (
	// Pressed marks the entry of the focused window.
	Pressed ButtonState = "pressed"
	// Raised marks every other entry.
	Raised ButtonState = "raised"
)

// Entry is one taskbar button.
type Entry struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Focused   bool        `json:"focused"`
	Minimized bool        `json:"minimized"`
	State     ButtonState `json:"state"`
}

// Entries returns one entry per open window, minimized ones included, in
// the order the windows were opened.
func Entries(r *wm.Registry) []Entry {
	wins := r.Windows()
	out := make([]Entry, 0, len(wins))
	for _, w := range wins {
		state := Raised
		if w.Focused {
			state = Pressed
		}
		out = append(out, Entry{
			ID:        w.ID,
			Title:     w.Title,
			Focused:   w.Focused,
			Minimized: w.Minimized,
			State:     state,
		})
	}
	return out
}

// Click applies a click on the entry for window id.
func Click(r *wm.Registry, id string) bool {
	return r.ToggleFromTaskbar(id)
}
