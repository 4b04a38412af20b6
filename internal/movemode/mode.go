package movemode

import (
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/pointer"
	"github.com/1broseidon/retrodesk/internal/wm"
)

// Desktop is the part of the desktop move mode drives.
type Desktop interface {
	Frames() []wm.View
	StartDrag(id string, ev pointer.Event) bool
	StartResize(id string, dir gesture.Direction, ev pointer.Event) bool
	Pointer(ev pointer.Event) bool
	Gesture() gesture.Session
}

// Mode is the keyboard move mode state machine. It is not safe for
// concurrent use; the host serializes calls with its desktop calls.
type Mode struct {
	state   *State
	step    geom.Size
	timeout time.Duration
	logger  *zap.Logger
}

// NewMode returns an inactive mode that moves the pointer by step per key.
// A zero timeout disables expiry.
func NewMode(step geom.Size, timeout time.Duration, logger *zap.Logger) *Mode {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mode{state: NewState(), step: step, timeout: timeout, logger: logger}
}

// IsActive returns true if move mode is currently active.
func (m *Mode) IsActive() bool {
	return m.state.Phase != PhaseInactive
}

// Phase returns the current phase.
func (m *Mode) Phase() Phase {
	return m.state.Phase
}

// Selected returns the highlighted or grabbed window id.
func (m *Mode) Selected() string {
	return m.state.Selected
}

// Enter activates move mode with the topmost visible window selected. It
// reports false when no window is visible.
func (m *Mode) Enter(d Desktop, now time.Time) bool {
	frames := d.Frames()
	if len(frames) == 0 {
		return false
	}
	m.state.Reset()
	m.state.Phase = PhaseSelecting
	m.state.Selected = frames[len(frames)-1].ID
	m.state.Touched = now
	m.logger.Debug("move mode entered", zap.String("window", m.state.Selected))
	return true
}

// Exit deactivates move mode, cancelling any gesture it started.
func (m *Mode) Exit(d Desktop) {
	if m.state.Phase.Grabbed() && m.owns(d) {
		d.Pointer(m.event(pointer.Cancel))
	}
	if m.IsActive() {
		m.logger.Debug("move mode exited", zap.Stringer("phase", m.state.Phase))
	}
	m.state.Reset()
}

// HandleArrowKey cycles the selection, or moves the synthetic pointer of
// the active gesture by one step.
func (m *Mode) HandleArrowKey(d Desktop, dir Direction, now time.Time) bool {
	if !m.sync(d) {
		return false
	}
	m.state.Touched = now

	if m.state.Phase == PhaseSelecting {
		frames := d.Frames()
		next := NavigateWindow(indexOf(frames, m.state.Selected), dir, len(frames))
		m.state.Selected = frames[next].ID
		return true
	}

	m.state.Pointer = m.state.Pointer.Add(dir.Delta(m.step))
	return d.Pointer(m.event(pointer.Move))
}

// HandleConfirm grabs the selected window by its title bar, or drops the
// grabbed window where it is.
func (m *Mode) HandleConfirm(d Desktop, now time.Time) bool {
	if !m.sync(d) {
		return false
	}
	if m.state.Phase.Grabbed() {
		d.Pointer(m.event(pointer.Up))
		m.logger.Debug("move mode committed", zap.String("window", m.state.Selected))
		m.state.Reset()
		return true
	}
	w, ok := m.selectedView(d)
	if !ok {
		return false
	}
	return m.grab(d, PhaseMoving, w.Position, now, func(ev pointer.Event) bool {
		return d.StartDrag(w.ID, ev)
	})
}

// HandleResize grabs the selected window by its bottom right corner.
func (m *Mode) HandleResize(d Desktop, now time.Time) bool {
	if !m.sync(d) || m.state.Phase != PhaseSelecting {
		return false
	}
	w, ok := m.selectedView(d)
	if !ok {
		return false
	}
	corner := geom.Point{X: w.Position.X + w.Size.Width, Y: w.Position.Y + w.Size.Height}
	return m.grab(d, PhaseResizing, corner, now, func(ev pointer.Event) bool {
		return d.StartResize(w.ID, gesture.SouthEast, ev)
	})
}

// HandleCancel leaves move mode. A window already moved stays where it is.
func (m *Mode) HandleCancel(d Desktop) {
	m.Exit(d)
}

// Expired reports whether move mode has been idle past its timeout.
func (m *Mode) Expired(now time.Time) bool {
	return m.IsActive() && m.timeout > 0 && now.Sub(m.state.Touched) >= m.timeout
}

func (m *Mode) grab(d Desktop, phase Phase, at geom.Point, now time.Time, start func(pointer.Event) bool) bool {
	m.state.Pointer = at
	if !start(m.event(pointer.Down)) {
		return false
	}
	g := d.Gesture()
	if g == nil {
		return false
	}
	m.state.Phase = phase
	m.state.Session = g.ID()
	m.state.Touched = now
	m.logger.Debug("move mode grabbed",
		zap.String("window", m.state.Selected),
		zap.Stringer("phase", phase),
		zap.String("session", g.ID()),
	)
	return true
}

// sync drops stale state: a grab whose gesture was superseded or ended
// elsewhere, or a selection whose window is gone.
func (m *Mode) sync(d Desktop) bool {
	switch {
	case !m.IsActive():
		return false
	case m.state.Phase.Grabbed():
		if !m.owns(d) {
			m.logger.Debug("move mode gesture lost", zap.String("window", m.state.Selected))
			m.state.Reset()
			return false
		}
	default:
		frames := d.Frames()
		if len(frames) == 0 {
			m.state.Reset()
			return false
		}
		if indexOf(frames, m.state.Selected) < 0 {
			m.state.Selected = frames[len(frames)-1].ID
		}
	}
	return true
}

func (m *Mode) owns(d Desktop) bool {
	g := d.Gesture()
	return g != nil && g.ID() == m.state.Session
}

func (m *Mode) selectedView(d Desktop) (wm.View, bool) {
	frames := d.Frames()
	if i := indexOf(frames, m.state.Selected); i >= 0 {
		return frames[i], true
	}
	return wm.View{}, false
}

func (m *Mode) event(kind pointer.Kind) pointer.Event {
	return pointer.MouseEvent(kind, pointer.ButtonPrimary, m.state.Pointer.X, m.state.Pointer.Y)
}

func indexOf(frames []wm.View, id string) int {
	for i, w := range frames {
		if w.ID == id {
			return i
		}
	}
	return -1
}
