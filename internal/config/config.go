package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/wm"
	"gopkg.in/yaml.v3"
)

// Config is the effective desktop configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// LogFile is where hosts that own the terminal write their logs. Empty
	// means stderr for the daemon and the default TUI log file for the TUI.
	LogFile string `yaml:"log_file"`

	WindowDefaults WindowDefaults `yaml:"window_defaults"`
	Anchor         geom.Point     `yaml:"anchor"`
	TileGap        int            `yaml:"tile_gap"`

	DoubleActivationMS int    `yaml:"double_activation_ms"`
	ClockIntervalMS    int    `yaml:"clock_interval_ms"`
	ClockFormat        string `yaml:"clock_format"`

	// Viewport is the workspace size the daemon uses for maximize and tile.
	Viewport geom.Size `yaml:"viewport"`
	// Cell is how many desktop units one terminal cell covers in the TUI.
	Cell geom.Size `yaml:"cell"`

	Windows []WindowEntry `yaml:"windows"`
}

// WindowDefaults sizes windows that do not set their own.
type WindowDefaults struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MinWidth      int `yaml:"min_width"`
	MinHeight     int `yaml:"min_height"`
	CascadeOffset int `yaml:"cascade_offset"`
}

// WindowEntry is one catalog window, shown as a desktop icon.
type WindowEntry struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title,omitempty"`
	Icon      string `yaml:"icon,omitempty"`
	Content   string `yaml:"content,omitempty"`
	Width     int    `yaml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty"`
	MinWidth  int    `yaml:"min_width,omitempty"`
	MinHeight int    `yaml:"min_height,omitempty"`
}

// Label is the text under the desktop icon.
func (w WindowEntry) Label() string {
	if w.Title != "" {
		return w.Title
	}
	return w.ID
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		WindowDefaults: WindowDefaults{
			Width:         wm.DefaultSize.Width,
			Height:        wm.DefaultSize.Height,
			MinWidth:      wm.DefaultMinSize.Width,
			MinHeight:     wm.DefaultMinSize.Height,
			CascadeOffset: wm.DefaultCascadeOffset,
		},
		TileGap:            8,
		DoubleActivationMS: 300,
		ClockIntervalMS:    1000,
		ClockFormat:        "15:04",
		Viewport:           geom.Size{Width: 1280, Height: 800},
		Cell:               geom.Size{Width: 8, Height: 16},
		Windows:            BuiltinWindows(),
	}
}

// RegistryOptions maps the window defaults onto registry placement options.
func (c *Config) RegistryOptions() wm.Options {
	return wm.Options{
		DefaultSize:   geom.Size{Width: c.WindowDefaults.Width, Height: c.WindowDefaults.Height},
		MinSize:       geom.Size{Width: c.WindowDefaults.MinWidth, Height: c.WindowDefaults.MinHeight},
		CascadeOffset: c.WindowDefaults.CascadeOffset,
		Anchor:        c.Anchor,
		Viewport:      geom.Rect{Width: c.Viewport.Width, Height: c.Viewport.Height},
	}
}

// DoubleActivationInterval is the window within which two taps or clicks on
// the same icon open it.
func (c *Config) DoubleActivationInterval() time.Duration {
	return time.Duration(c.DoubleActivationMS) * time.Millisecond
}

// ClockInterval is the taskbar clock refresh period.
func (c *Config) ClockInterval() time.Duration {
	return time.Duration(c.ClockIntervalMS) * time.Millisecond
}

// Window returns the catalog entry for id.
func (c *Config) Window(id string) (WindowEntry, bool) {
	for _, w := range c.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return WindowEntry{}, false
}

// WindowSpec returns what the registry needs to open id. Ids outside the
// catalog still open, titled by their id.
func (c *Config) WindowSpec(id string) wm.Spec {
	entry, ok := c.Window(id)
	if !ok {
		return wm.Spec{ID: id, Title: id}
	}
	return wm.Spec{
		ID:      entry.ID,
		Title:   entry.Label(),
		Content: entry.Content,
		Size:    geom.Size{Width: entry.Width, Height: entry.Height},
		MinSize: geom.Size{Width: entry.MinWidth, Height: entry.MinHeight},
	}
}

// Save writes the configuration to path, or to the standard location when
// path is empty.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidationError names the offending key and, when known, where it was set.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}

	d := c.WindowDefaults
	if d.Width <= 0 || d.Height <= 0 {
		return &ValidationError{Path: "window_defaults", Err: fmt.Errorf("width and height must be positive")}
	}
	if d.MinWidth <= 0 || d.MinHeight <= 0 {
		return &ValidationError{Path: "window_defaults", Err: fmt.Errorf("min_width and min_height must be positive")}
	}
	if d.Width < d.MinWidth || d.Height < d.MinHeight {
		return &ValidationError{Path: "window_defaults", Err: fmt.Errorf("default size %dx%d is below the minimum %dx%d", d.Width, d.Height, d.MinWidth, d.MinHeight)}
	}
	if d.CascadeOffset < 0 {
		return &ValidationError{Path: "window_defaults.cascade_offset", Err: fmt.Errorf("cascade_offset must be >= 0")}
	}
	if c.TileGap < 0 {
		return &ValidationError{Path: "tile_gap", Err: fmt.Errorf("tile_gap must be >= 0")}
	}
	if c.DoubleActivationMS <= 0 {
		return &ValidationError{Path: "double_activation_ms", Err: fmt.Errorf("double_activation_ms must be positive")}
	}
	if c.ClockIntervalMS <= 0 {
		return &ValidationError{Path: "clock_interval_ms", Err: fmt.Errorf("clock_interval_ms must be positive")}
	}
	if strings.TrimSpace(c.ClockFormat) == "" {
		return &ValidationError{Path: "clock_format", Err: fmt.Errorf("clock_format is required")}
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return &ValidationError{Path: "viewport", Err: fmt.Errorf("viewport width and height must be positive")}
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return &ValidationError{Path: "cell", Err: fmt.Errorf("cell width and height must be positive")}
	}

	seen := make(map[string]struct{}, len(c.Windows))
	for i, w := range c.Windows {
		path := fmt.Sprintf("windows[%d]", i)
		if strings.TrimSpace(w.ID) == "" {
			return &ValidationError{Path: path + ".id", Err: fmt.Errorf("id is required")}
		}
		if _, dup := seen[w.ID]; dup {
			return &ValidationError{Path: path + ".id", Err: fmt.Errorf("duplicate window id %q", w.ID)}
		}
		seen[w.ID] = struct{}{}
		if w.Width < 0 || w.Height < 0 || w.MinWidth < 0 || w.MinHeight < 0 {
			return &ValidationError{Path: path, Err: fmt.Errorf("sizes must be >= 0")}
		}
	}
	return nil
}
