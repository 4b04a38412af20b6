package mcp

import "github.com/1broseidon/retrodesk/internal/geom"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one open window.
type WindowInfo struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Focused   bool       `json:"focused"`
	Minimized bool       `json:"minimized"`
	Maximized bool       `json:"maximized,omitempty"`
	Z         int        `json:"z,omitempty"`
	Bounds    *geom.Rect `json:"bounds,omitempty"` // nil while minimized
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
	Focused string       `json:"focused,omitempty"`
	// Catalog lists the ids that have desktop icons.
	Catalog []string `json:"catalog"`
	Clock   string   `json:"clock"`
}

// WindowInput names the target of a single-window tool.
type WindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id, e.g. About or Contact Me (see list_windows catalog)"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
	X  int    `json:"x" jsonschema:"required,New left edge in desktop units"`
	Y  int    `json:"y" jsonschema:"required,New top edge in desktop units"`
}

// ResizeWindowInput is the input for the resize_window tool.
type ResizeWindowInput struct {
	ID        string `json:"id" jsonschema:"required,Window id"`
	Direction string `json:"direction" jsonschema:"required,Resize handle: n, s, e, w, ne, nw, se or sw"`
	DX        int    `json:"dx,omitempty" jsonschema:"Horizontal pointer travel in desktop units"`
	DY        int    `json:"dy,omitempty" jsonschema:"Vertical pointer travel in desktop units"`
}

// ArrangeWindowsInput is the input for the arrange_windows tool.
type ArrangeWindowsInput struct {
	Mode string `json:"mode" jsonschema:"required,Arrangement: cascade or tile"`
}

// WindowActionOutput is returned by every tool that changes the desktop.
type WindowActionOutput struct {
	Changed bool     `json:"changed"`
	Focused string   `json:"focused,omitempty"`
	Open    []string `json:"open"`
	// Window is the target window after the action, when it is still open.
	Window *WindowInfo `json:"window,omitempty"`
}
