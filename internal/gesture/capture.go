package gesture

import (
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/pointer"
)

// Capture owns the single active gesture session and the global move/up
// listener that feeds it. The listener is registered on Begin and released
// on every path that ends the session.
type Capture struct {
	hub     *pointer.Hub
	logger  *zap.Logger
	active  Session
	release func()
}

// NewCapture returns a capture that listens on hub.
func NewCapture(hub *pointer.Hub, logger *zap.Logger) *Capture {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Capture{hub: hub, logger: logger}
}

// Begin makes s the active session, superseding any previous one.
func (c *Capture) Begin(s Session) {
	c.End()

	c.active = s
	c.release = c.hub.Listen(c.handle)
	c.logger.Debug("gesture started",
		zap.String("session", s.ID()),
		zap.String("kind", s.Kind()),
		zap.String("window", s.Window()),
	)
}

// End discards the active session and releases the listener. It is a no-op
// when nothing is active.
func (c *Capture) End() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.active == nil {
		return
	}
	c.logger.Debug("gesture ended",
		zap.String("session", c.active.ID()),
		zap.String("kind", c.active.Kind()),
		zap.String("window", c.active.Window()),
	)
	c.active = nil
}

// EndFor ends the active session if it is bound to window.
func (c *Capture) EndFor(window string) {
	if c.active != nil && c.active.Window() == window {
		c.End()
	}
}

// Active returns the active session, or nil.
func (c *Capture) Active() Session {
	return c.active
}

func (c *Capture) handle(ev pointer.Event) {
	s := c.active
	if s == nil || !s.Follows(ev) {
		return
	}
	if ev.Kind.Ends() {
		c.End()
		return
	}
	if ev.Kind != pointer.Move {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.End()
			panic(r)
		}
	}()
	s.Move(ev)
}
