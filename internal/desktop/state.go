package desktop

import (
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/icons"
	"github.com/1broseidon/retrodesk/internal/taskbar"
	"github.com/1broseidon/retrodesk/internal/wm"
)

// Icon is one desktop launcher icon.
type Icon struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Glyph    string `json:"glyph,omitempty"`
	Selected bool   `json:"selected"`
}

// GestureState describes the active gesture.
type GestureState struct {
	Session   string            `json:"session"`
	Kind      string            `json:"kind"`
	Window    string            `json:"window"`
	Direction gesture.Direction `json:"direction,omitempty"`
}

// State is a snapshot of everything a host renders.
type State struct {
	// Windows are the visible windows, back to front.
	Windows []wm.View       `json:"windows"`
	Taskbar []taskbar.Entry `json:"taskbar"`
	Icons   []Icon          `json:"icons"`
	Focused string          `json:"focused,omitempty"`
	Clock   string          `json:"clock"`
	Gesture *GestureState   `json:"gesture,omitempty"`
}

// Icons returns the launcher icons in catalog order.
func (d *Desktop) Icons() []Icon {
	out := make([]Icon, 0, len(d.cfg.Windows))
	for _, w := range d.cfg.Windows {
		out = append(out, Icon{
			ID:       w.ID,
			Label:    w.Label(),
			Glyph:    w.Icon,
			Selected: d.icons.StateOf(w.ID) == icons.Selected,
		})
	}
	return out
}

// State snapshots the desktop.
func (d *Desktop) State() State {
	st := State{
		Windows: d.Frames(),
		Taskbar: d.Taskbar(),
		Icons:   d.Icons(),
		Focused: d.windows.FocusedID(),
		Clock:   d.clock.String(),
	}
	if s := d.capture.Active(); s != nil {
		gs := &GestureState{Session: s.ID(), Kind: s.Kind(), Window: s.Window()}
		if r, ok := s.(*gesture.ResizeSession); ok {
			gs.Direction = r.Direction()
		}
		st.Gesture = gs
	}
	return st
}
