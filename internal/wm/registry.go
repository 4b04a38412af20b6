package wm

import (
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

// Defaults for the size fields of Options. Each dimension left zero or
// negative takes its default independently. CascadeOffset only falls back
// when negative; zero means windows open stacked without a stagger.
var (
	DefaultSize          = geom.Size{Width: 600, Height: 400}
	DefaultMinSize       = geom.Size{Width: 200, Height: 150}
	DefaultCascadeOffset = 20
)

// DefaultOptions returns the stock placement: 600x400 windows, a 200x150
// minimum and a 20 unit cascade.
func DefaultOptions() Options {
	return Options{
		DefaultSize:   DefaultSize,
		MinSize:       DefaultMinSize,
		CascadeOffset: DefaultCascadeOffset,
	}
}

// Options configures window placement.
type Options struct {
	DefaultSize geom.Size
	MinSize     geom.Size
	// CascadeOffset staggers each newly opened window. Zero disables the
	// stagger.
	CascadeOffset int
	Anchor        geom.Point
	// Viewport is the workspace area, in the same coordinates as window
	// positions. It is only used to maximize windows.
	Viewport geom.Rect
}

func (o Options) withDefaults() Options {
	o.DefaultSize = fillSize(o.DefaultSize, DefaultSize)
	o.MinSize = fillSize(o.MinSize, DefaultMinSize)
	if o.CascadeOffset < 0 {
		o.CascadeOffset = DefaultCascadeOffset
	}
	return o
}

// fillSize replaces each non-positive dimension of s with the one from def.
func fillSize(s, def geom.Size) geom.Size {
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	return s
}

// Registry owns the set of open windows. It is not safe for concurrent use;
// hosts serialize access.
//
// Every operation on an id that is not open is a no-op. Mutating operations
// report whether they changed anything.
type Registry struct {
	opts    Options
	windows []*Window // creation order
	byID    map[string]*Window
	focused string
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts: opts.withDefaults(),
		byID: make(map[string]*Window),
	}
}

// Options returns the effective placement options.
func (r *Registry) Options() Options {
	return r.opts
}

// SetViewport updates the area used for maximized windows.
func (r *Registry) SetViewport(v geom.Rect) {
	r.opts.Viewport = v
}

// Open adds the window if it is not open yet, staggered by the cascade offset
// for every window already open, and focuses it. Opening an open window only
// focuses it.
func (r *Registry) Open(spec Spec) bool {
	if spec.ID == "" {
		return false
	}
	if _, ok := r.byID[spec.ID]; ok {
		return r.Focus(spec.ID)
	}

	min := fillSize(spec.MinSize, r.opts.MinSize)
	size := fillSize(spec.Size, r.opts.DefaultSize)
	title := spec.Title
	if title == "" {
		title = spec.ID
	}

	w := &Window{
		ID:       spec.ID,
		Title:    title,
		Content:  spec.Content,
		Position: tiling.CascadePosition(len(r.windows), r.opts.Anchor, r.opts.CascadeOffset),
		Size:     size.Clamp(min),
		MinSize:  min,
	}
	r.windows = append(r.windows, w)
	r.byID[w.ID] = w
	r.focused = w.ID
	return true
}

// Close removes the window entirely. Closing the focused window leaves no
// window focused.
func (r *Registry) Close(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, w := range r.windows {
		if w.ID == id {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			break
		}
	}
	if r.focused == id {
		r.focused = ""
	}
	return true
}

// Focus makes id the focused window and restores it if minimized.
func (r *Registry) Focus(id string) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	changed := r.focused != id || w.Minimized
	r.focused = id
	w.Minimized = false
	return changed
}

// Minimize hides the window. A minimized window is never focused.
func (r *Registry) Minimize(id string) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	changed := !w.Minimized || r.focused == id
	w.Minimized = true
	if r.focused == id {
		r.focused = ""
	}
	return changed
}

// ToggleFromTaskbar applies a taskbar click: a minimized window is restored
// and focused, the focused window is minimized, any other window is focused.
func (r *Registry) ToggleFromTaskbar(id string) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	switch {
	case w.Minimized:
		return r.Focus(id)
	case r.focused == id:
		return r.Minimize(id)
	default:
		return r.Focus(id)
	}
}

// Move sets the window position. Moving a maximized window un-maximizes it
// in place.
func (r *Registry) Move(id string, p geom.Point) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	w.Maximized = false
	if w.Position == p {
		return false
	}
	w.Position = p
	return true
}

// SetBounds sets position and size, raising the size to the window minimum.
func (r *Registry) SetBounds(id string, b geom.Rect) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	w.Maximized = false
	next := geom.RectOf(b.Origin(), b.Size().Clamp(w.MinSize))
	if w.Bounds() == next {
		return false
	}
	w.Position = next.Origin()
	w.Size = next.Size()
	return true
}

// ToggleMaximize fills the viewport with the window, or restores the bounds
// it had before it was maximized. The window is focused either way.
func (r *Registry) ToggleMaximize(id string) bool {
	w, ok := r.byID[id]
	if !ok {
		return false
	}
	if w.Maximized {
		w.Position = w.restore.Origin()
		w.Size = w.restore.Size()
		w.Maximized = false
	} else {
		w.restore = w.Bounds()
		full := tiling.Maximize(r.opts.Viewport)
		w.Position = full.Origin()
		w.Size = full.Size().Clamp(w.MinSize)
		w.Maximized = true
	}
	r.Focus(id)
	return true
}

// FocusedID returns the focused window id, or "" when none is focused.
func (r *Registry) FocusedID() string {
	return r.focused
}

// IsOpen reports whether id is open.
func (r *Registry) IsOpen(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// Get returns a snapshot of window id.
func (r *Registry) Get(id string) (View, bool) {
	for i, w := range r.windows {
		if w.ID == id {
			return r.view(i, w), true
		}
	}
	return View{}, false
}

// Windows returns snapshots of every open window, minimized ones included, in
// creation order.
func (r *Registry) Windows() []View {
	out := make([]View, 0, len(r.windows))
	for i, w := range r.windows {
		out = append(out, r.view(i, w))
	}
	return out
}

// Stack returns the visible (non-minimized) windows back to front: unfocused
// windows in creation order, then the focused window.
func (r *Registry) Stack() []View {
	out := make([]View, 0, len(r.windows))
	var top *View
	for i, w := range r.windows {
		if w.Minimized {
			continue
		}
		v := r.view(i, w)
		if v.Focused {
			top = &v
			continue
		}
		out = append(out, v)
	}
	if top != nil {
		out = append(out, *top)
	}
	return out
}

// view derives focus and z for the window at creation index i. Unfocused
// windows share the lower tier ordered by creation; the focused window sits
// above all of them.
func (r *Registry) view(i int, w *Window) View {
	focused := w.ID == r.focused
	z := i + 1
	if focused {
		z = len(r.windows) + 1
	}
	return View{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		Position:  w.Position,
		Size:      w.Size,
		MinSize:   w.MinSize,
		Focused:   focused,
		Minimized: w.Minimized,
		Maximized: w.Maximized,
		Z:         z,
	}
}
