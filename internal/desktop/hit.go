package desktop

import (
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/pointer"
)

// Metrics are the window chrome dimensions, in desktop units.
type Metrics struct {
	// Border is the resize handle thickness on the vertical (Width) and
	// horizontal (Height) edges.
	Border geom.Size
	// TitleHeight is the height of the title bar below the top border.
	TitleHeight int
	// ButtonWidth is the width of each title bar button.
	ButtonWidth int
}

// DefaultMetrics returns classic pixel chrome: 4 unit borders, a 20 unit
// title bar and 18 unit buttons.
func DefaultMetrics() Metrics {
	return Metrics{
		Border:      geom.Size{Width: 4, Height: 4},
		TitleHeight: 20,
		ButtonWidth: 18,
	}
}

// Region is the part of a window a point falls on.
type Region int

const (
	RegionNone Region = iota
	RegionBody
	RegionTitle
	RegionBorder
	RegionMinimize
	RegionMaximize
	RegionClose
)

func (r Region) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionTitle:
		return "title"
	case RegionBorder:
		return "border"
	case RegionMinimize:
		return "minimize"
	case RegionMaximize:
		return "maximize"
	case RegionClose:
		return "close"
	default:
		return "none"
	}
}

// Hit is the result of hit testing a point.
type Hit struct {
	Window    string
	Region    Region
	Direction gesture.Direction // set for RegionBorder
}

// HitTest finds the topmost visible window under p and the region hit.
func (d *Desktop) HitTest(p geom.Point) Hit {
	frames := d.windows.Stack()
	for i := len(frames) - 1; i >= 0; i-- {
		w := frames[i]
		if !w.Bounds().Contains(p) {
			continue
		}
		region, dir := d.metrics.Classify(w.Bounds(), p)
		return Hit{Window: w.ID, Region: region, Direction: dir}
	}
	return Hit{}
}

// Classify maps p, which lies inside b, to a window region. Borders win
// over the title bar so corners stay grabbable.
func (m Metrics) Classify(b geom.Rect, p geom.Point) (Region, gesture.Direction) {
	var dir string
	switch {
	case p.Y < b.Y+m.Border.Height:
		dir = "n"
	case p.Y >= b.Y+b.Height-m.Border.Height:
		dir = "s"
	}
	switch {
	case p.X < b.X+m.Border.Width:
		dir += "w"
	case p.X >= b.X+b.Width-m.Border.Width:
		dir += "e"
	}
	if dir != "" {
		return RegionBorder, gesture.Direction(dir)
	}

	titleTop := b.Y + m.Border.Height
	if p.Y >= titleTop+m.TitleHeight {
		return RegionBody, ""
	}

	// Buttons sit at the right end of the title bar: minimize, maximize,
	// close.
	right := b.X + b.Width - m.Border.Width
	if m.ButtonWidth > 0 && p.X >= right-3*m.ButtonWidth {
		switch (right - 1 - p.X) / m.ButtonWidth {
		case 0:
			return RegionClose, ""
		case 1:
			return RegionMaximize, ""
		default:
			return RegionMinimize, ""
		}
	}
	return RegionTitle, ""
}

// press dispatches a pointer-down by what it lands on. Any button focuses
// the window under it; only the primary button drags, resizes, presses
// title buttons or clears the desktop.
func (d *Desktop) press(ev pointer.Event) bool {
	hit := d.HitTest(ev.Pos)
	d.logger.Debug("pointer down",
		zap.String("window", hit.Window),
		zap.Stringer("region", hit.Region),
		zap.Stringer("direction", hit.Direction),
		zap.Bool("primary", ev.Primary()),
	)

	if !ev.Primary() {
		if hit.Window == "" {
			return false
		}
		return d.Focus(hit.Window)
	}

	switch hit.Region {
	case RegionNone:
		d.capture.End()
		d.DeselectAll()
		return false
	case RegionBody:
		return d.Focus(hit.Window)
	case RegionTitle:
		return d.StartDrag(hit.Window, ev)
	case RegionBorder:
		return d.StartResize(hit.Window, hit.Direction, ev)
	case RegionMinimize:
		return d.Minimize(hit.Window)
	case RegionMaximize:
		return d.ToggleMaximize(hit.Window)
	case RegionClose:
		return d.Close(hit.Window)
	}
	return false
}
