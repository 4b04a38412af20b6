package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RETRODESK_CONFIG", "")
	t.Setenv("RETRODESK_LOG_LEVEL", "")
	t.Setenv("RETRODESK_LOG_FILE", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig_ValidWithPortfolioWindows(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	var ids []string
	for _, w := range cfg.Windows {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"About", "Education", "Experience", "Projects", "Contact Me"}, ids)
	assert.Equal(t, 300*time.Millisecond, cfg.DoubleActivationInterval())
	assert.Equal(t, time.Second, cfg.ClockInterval())
}

func TestDefaultConfig_RegistryOptions(t *testing.T) {
	opts := DefaultConfig().RegistryOptions()
	assert.Equal(t, geom.Size{Width: 600, Height: 400}, opts.DefaultSize)
	assert.Equal(t, geom.Size{Width: 200, Height: 150}, opts.MinSize)
	assert.Equal(t, 20, opts.CascadeOffset)
	assert.Equal(t, geom.Point{}, opts.Anchor)
	assert.Equal(t, geom.Rect{Width: 1280, Height: 800}, opts.Viewport)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, DefaultConfig(), res.Config)
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	require.NoError(t, err)
	assert.Len(t, res.Files, 1)
	assert.Len(t, res.Config.Windows, 5)
}

func TestLoadFromPath_PartialOverrideKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, strings.Join([]string{
		"window_defaults:",
		"  cascade_offset: 32",
		"clock_format: \"15:04:05\"",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 32, res.Config.WindowDefaults.CascadeOffset)
	assert.Equal(t, 600, res.Config.WindowDefaults.Width)
	assert.Equal(t, "15:04:05", res.Config.ClockFormat)

	src := Explain(res, "window_defaults.cascade_offset")
	assert.Equal(t, SourceFile, src.Kind)
	assert.Equal(t, 2, src.Line)
}

func TestLoadFromPath_WindowsReplaceCatalog(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, strings.Join([]string{
		"windows:",
		"  - id: Notes",
		"    width: 300",
		"    height: 200",
		"  - id: Mail",
		"    title: Inbox",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Len(t, res.Config.Windows, 2)

	spec := res.Config.WindowSpec("Notes")
	assert.Equal(t, "Notes", spec.Title)
	assert.Equal(t, geom.Size{Width: 300, Height: 200}, spec.Size)
	assert.Equal(t, "Inbox", res.Config.WindowSpec("Mail").Title)

	unknown := res.Config.WindowSpec("About")
	assert.Equal(t, "About", unknown.Title)
	assert.Zero(t, unknown.Size)
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_key")
	assert.Contains(t, err.Error(), filepath.Base(path))
}

func TestLoadFromPath_ValidationErrorCarriesLocation(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, strings.Join([]string{
		"windows:",
		"  - id: About",
		"  - id: About",
		"",
	}, "\n"))

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "windows[1].id", verr.Path)
	assert.Equal(t, SourceFile, verr.Source.Kind)
	assert.Equal(t, 3, verr.Source.Line)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RETRODESK_LOG_LEVEL", "DEBUG")
	t.Setenv("RETRODESK_LOG_FILE", "/tmp/retrodesk-test.log")

	res, err := LoadFromPath(writeConfig(t, "log_level: error\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", res.Config.LogLevel)
	assert.Equal(t, "/tmp/retrodesk-test.log", res.Config.LogFile)

	src := Explain(res, "log_level")
	assert.Equal(t, SourceEnv, src.Kind)
	assert.Equal(t, "RETRODESK_LOG_LEVEL", src.Name)
	assert.Equal(t, SourceDefault, Explain(res, "viewport").Kind)
}

func TestResolvePath(t *testing.T) {
	clearEnv(t)
	path, err := ResolvePath("/etc/explicit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/explicit.yaml", path)

	t.Setenv("RETRODESK_CONFIG", "/etc/from-env.yaml")
	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/from-env.yaml", path)

	t.Setenv("RETRODESK_CONFIG", "")
	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("retrodesk", "config.yaml")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero width", func(c *Config) { c.WindowDefaults.Width = 0 }, "window_defaults"},
		{"zero min", func(c *Config) { c.WindowDefaults.MinHeight = 0 }, "window_defaults"},
		{"default below min", func(c *Config) { c.WindowDefaults.Width = 100 }, "window_defaults"},
		{"negative cascade", func(c *Config) { c.WindowDefaults.CascadeOffset = -1 }, "window_defaults.cascade_offset"},
		{"negative gap", func(c *Config) { c.TileGap = -2 }, "tile_gap"},
		{"zero double interval", func(c *Config) { c.DoubleActivationMS = 0 }, "double_activation_ms"},
		{"zero clock interval", func(c *Config) { c.ClockIntervalMS = 0 }, "clock_interval_ms"},
		{"blank clock format", func(c *Config) { c.ClockFormat = " " }, "clock_format"},
		{"empty viewport", func(c *Config) { c.Viewport.Height = 0 }, "viewport"},
		{"empty cell", func(c *Config) { c.Cell.Width = 0 }, "cell"},
		{"empty id", func(c *Config) { c.Windows[2].ID = "" }, "windows[2].id"},
		{"duplicate id", func(c *Config) { c.Windows[1].ID = "About" }, "windows[1].id"},
		{"negative window size", func(c *Config) { c.Windows[0].MinWidth = -1 }, "windows[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestSave_RoundTrips(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Anchor = geom.Point{X: 16, Y: 8}
	require.NoError(t, cfg.Save(path))

	res, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, res.Config)
}
