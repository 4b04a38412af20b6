// Package desktop composes the window registry, gesture capture, icon
// selection and taskbar clock into one event-driven desktop.
//
// A Desktop is not safe for concurrent use. Hosts serialize every call: the
// TUI through bubbletea's Update, the daemon through daemon.Loop.
package desktop

import (
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/config"
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/icons"
	"github.com/1broseidon/retrodesk/internal/pointer"
	"github.com/1broseidon/retrodesk/internal/taskbar"
	"github.com/1broseidon/retrodesk/internal/tiling"
	"github.com/1broseidon/retrodesk/internal/wm"
)

// Desktop is the window manager engine.
type Desktop struct {
	cfg     *config.Config
	logger  *zap.Logger
	windows *wm.Registry
	hub     *pointer.Hub
	capture *gesture.Capture
	icons   *icons.Selector
	clock   *taskbar.Clock
	metrics Metrics
}

// New builds an empty desktop from cfg. A nil cfg uses the defaults and a
// nil logger discards output.
func New(cfg *config.Config, logger *zap.Logger) *Desktop {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	hub := pointer.NewHub()
	return &Desktop{
		cfg:     cfg,
		logger:  logger,
		windows: wm.NewRegistry(cfg.RegistryOptions()),
		hub:     hub,
		capture: gesture.NewCapture(hub, logger),
		icons:   icons.NewSelector(cfg.DoubleActivationInterval()),
		clock:   taskbar.NewClock(cfg.ClockInterval(), cfg.ClockFormat),
		metrics: DefaultMetrics(),
	}
}

// Config returns the configuration the desktop was built from.
func (d *Desktop) Config() *config.Config {
	return d.cfg
}

// Registry exposes the window registry for read access.
func (d *Desktop) Registry() *wm.Registry {
	return d.windows
}

// SetViewport changes the workspace size used by maximize and tile.
func (d *Desktop) SetViewport(size geom.Size) {
	d.windows.SetViewport(geom.Rect{Width: size.Width, Height: size.Height})
}

// SetMetrics changes the chrome dimensions used for hit testing.
func (d *Desktop) SetMetrics(m Metrics) {
	d.metrics = m
}

// Metrics returns the chrome dimensions used for hit testing.
func (d *Desktop) Metrics() Metrics {
	return d.metrics
}

// OpenOrActivate opens the catalog window id, or focuses it when it is
// already open.
func (d *Desktop) OpenOrActivate(id string) bool {
	if id == "" {
		return false
	}
	if d.windows.IsOpen(id) {
		changed := d.windows.Focus(id)
		d.logger.Debug("window activated", zap.String("window", id))
		return changed
	}
	d.windows.Open(d.cfg.WindowSpec(id))
	w, _ := d.windows.Get(id)
	d.logger.Debug("window opened",
		zap.String("window", id),
		zap.Stringer("position", w.Position),
		zap.Stringer("size", w.Size),
	)
	return true
}

// Close removes window id and ends any gesture bound to it.
func (d *Desktop) Close(id string) bool {
	if !d.known(id, "close") {
		return false
	}
	d.capture.EndFor(id)
	d.windows.Close(id)
	d.logger.Debug("window closed", zap.String("window", id))
	return true
}

// Minimize hides window id and ends any gesture bound to it.
func (d *Desktop) Minimize(id string) bool {
	if !d.known(id, "minimize") {
		return false
	}
	d.capture.EndFor(id)
	changed := d.windows.Minimize(id)
	d.logger.Debug("window minimized", zap.String("window", id))
	return changed
}

// Focus raises window id, restoring it if minimized.
func (d *Desktop) Focus(id string) bool {
	if !d.known(id, "focus") {
		return false
	}
	return d.windows.Focus(id)
}

// ToggleFromTaskbar applies a click on the taskbar entry of window id.
func (d *Desktop) ToggleFromTaskbar(id string) bool {
	if !d.known(id, "toggle") {
		return false
	}
	before, _ := d.windows.Get(id)
	changed := taskbar.Click(d.windows, id)
	if after, _ := d.windows.Get(id); after.Minimized && !before.Minimized {
		d.capture.EndFor(id)
	}
	return changed
}

// ToggleMaximize maximizes window id to the viewport or restores it.
func (d *Desktop) ToggleMaximize(id string) bool {
	if !d.known(id, "maximize") {
		return false
	}
	d.capture.EndFor(id)
	changed := d.windows.ToggleMaximize(id)
	w, _ := d.windows.Get(id)
	d.logger.Debug("window maximize toggled", zap.String("window", id), zap.Bool("maximized", w.Maximized))
	return changed
}

// StartDrag focuses window id and starts moving it with the pointer that
// produced ev. Any active gesture is superseded.
func (d *Desktop) StartDrag(id string, ev pointer.Event) bool {
	w, ok := d.visible(id, "drag")
	if !ok {
		return false
	}
	s, ok := gesture.StartDrag(id, w.Position, ev, func(p geom.Point) {
		d.windows.Move(id, p)
	})
	if !ok {
		return false
	}
	d.windows.Focus(id)
	d.capture.Begin(s)
	return true
}

// StartResize focuses window id and starts resizing it from handle dir.
func (d *Desktop) StartResize(id string, dir gesture.Direction, ev pointer.Event) bool {
	w, ok := d.visible(id, "resize")
	if !ok {
		return false
	}
	s, ok := gesture.StartResize(id, w.Bounds(), dir, w.MinSize, ev, func(b geom.Rect) {
		d.windows.SetBounds(id, b)
	})
	if !ok {
		d.logger.Debug("resize rejected", zap.String("window", id), zap.Stringer("direction", dir))
		return false
	}
	d.windows.Focus(id)
	d.capture.Begin(s)
	d.logger.Debug("resize started", zap.String("window", id), zap.Stringer("direction", dir))
	return true
}

// Pointer feeds one pointer event to the desktop. A primary pointer-down is
// hit tested against the windows; every other event goes to the active
// gesture, if any.
func (d *Desktop) Pointer(ev pointer.Event) bool {
	if ev.Kind == pointer.Down {
		return d.press(ev)
	}
	return d.hub.Publish(ev) > 0
}

// Gesture returns the active gesture, or nil.
func (d *Desktop) Gesture() gesture.Session {
	return d.capture.Active()
}

// SelectIcon selects the launcher icon id without opening anything.
func (d *Desktop) SelectIcon(id string) bool {
	if _, ok := d.cfg.Window(id); !ok {
		d.logger.Debug("unknown icon", zap.String("icon", id))
		return false
	}
	d.icons.Select(id)
	return true
}

// ActivateIcon handles a double click on icon id: it is selected and its
// window opened or focused.
func (d *Desktop) ActivateIcon(id string) bool {
	if _, ok := d.cfg.Window(id); !ok {
		d.logger.Debug("unknown icon", zap.String("icon", id))
		return false
	}
	if !d.icons.Activate(id) {
		return false
	}
	d.OpenOrActivate(id)
	return true
}

// TapIcon handles a touch tap on icon id at time at. It reports whether the
// tap completed a double tap and opened the window.
func (d *Desktop) TapIcon(id string, at time.Time) bool {
	if _, ok := d.cfg.Window(id); !ok {
		d.logger.Debug("unknown icon", zap.String("icon", id))
		return false
	}
	if !d.icons.Tap(id, at) {
		return false
	}
	d.OpenOrActivate(id)
	return true
}

// DeselectAll clears the icon selection.
func (d *Desktop) DeselectAll() {
	d.icons.Clear()
}

// Arrange lays out the visible windows in the order they were opened.
func (d *Desktop) Arrange(mode tiling.ArrangeMode) bool {
	var visible []wm.View
	for _, w := range d.windows.Windows() {
		if !w.Minimized {
			visible = append(visible, w)
		}
	}
	if len(visible) == 0 {
		return false
	}
	d.capture.End()

	opts := d.windows.Options()
	var rects []geom.Rect
	switch mode {
	case tiling.ArrangeCascade:
		rects = tiling.Cascade(len(visible), opts.Anchor, opts.CascadeOffset, opts.DefaultSize)
	case tiling.ArrangeTile:
		rects = tiling.Tile(len(visible), opts.Viewport, d.cfg.TileGap, opts.MinSize)
	default:
		return false
	}

	changed := false
	for i, w := range visible {
		if d.windows.SetBounds(w.ID, rects[i]) {
			changed = true
		}
	}
	d.logger.Debug("windows arranged", zap.String("mode", string(mode)), zap.Int("count", len(visible)))
	return changed
}

// Tick sets the tray clock to t and reports whether its text changed.
func (d *Desktop) Tick(t time.Time) bool {
	before := d.clock.String()
	d.clock.Set(t)
	return d.clock.String() != before
}

// ClockInterval is how often hosts should call Tick.
func (d *Desktop) ClockInterval() time.Duration {
	return d.clock.Interval
}

// Frames returns the visible windows back to front.
func (d *Desktop) Frames() []wm.View {
	return d.windows.Stack()
}

// Taskbar returns one entry per open window in opening order.
func (d *Desktop) Taskbar() []taskbar.Entry {
	return taskbar.Entries(d.windows)
}

// Clock returns the rendered tray clock.
func (d *Desktop) Clock() string {
	return d.clock.String()
}

func (d *Desktop) known(id, op string) bool {
	if d.windows.IsOpen(id) {
		return true
	}
	d.logger.Debug("ignoring command for unknown window", zap.String("op", op), zap.String("window", id))
	return false
}

func (d *Desktop) visible(id, op string) (wm.View, bool) {
	w, ok := d.windows.Get(id)
	if !ok {
		d.logger.Debug("ignoring command for unknown window", zap.String("op", op), zap.String("window", id))
		return wm.View{}, false
	}
	if w.Minimized {
		d.logger.Debug("ignoring command for minimized window", zap.String("op", op), zap.String("window", id))
		return wm.View{}, false
	}
	return w, true
}
