package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/geom"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestModel returns a model sized 160x50 cells with the default 8x16
// unit cells, so the desktop viewport is 1280x784.
func newTestModel(t *testing.T) (model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC)}
	m := newModel(desktop.New(nil, nil), nil)
	m.now = clock.now
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	return m, clock
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func click(t *testing.T, m model, x, y int) model {
	t.Helper()
	m = update(t, m, mouse(tea.MouseActionPress, x, y))
	return update(t, m, mouse(tea.MouseActionRelease, x, y))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSize_SetsViewportAndMetrics(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, geom.Rect{Width: 1280, Height: 784}, m.desk.Registry().Options().Viewport)
	assert.Equal(t, m.layout.Metrics(), m.desk.Metrics())
}

func TestIconDoubleClick_OpensWindow(t *testing.T) {
	m, clock := newTestModel(t)

	m = click(t, m, 2, 1)
	assert.True(t, m.desk.Icons()[0].Selected)
	assert.False(t, m.desk.Registry().IsOpen("About"))

	clock.advance(100 * time.Millisecond)
	m = click(t, m, 2, 1)
	assert.True(t, m.desk.Registry().IsOpen("About"))
	assert.Equal(t, "About", m.desk.Registry().FocusedID())
}

func TestIconSlowClicks_OnlySelect(t *testing.T) {
	m, clock := newTestModel(t)

	m = click(t, m, 2, 4)
	clock.advance(400 * time.Millisecond)
	m = click(t, m, 2, 4)

	assert.Equal(t, 0, m.desk.Registry().Len())
	assert.True(t, m.desk.Icons()[1].Selected)
}

func TestIconGapRowIsBackground(t *testing.T) {
	m, _ := newTestModel(t)

	m = click(t, m, 2, 1)
	require.True(t, m.desk.Icons()[0].Selected)

	m = click(t, m, 2, 3)
	for _, ic := range m.desk.Icons() {
		assert.False(t, ic.Selected, ic.ID)
	}
}

func TestBackgroundClick_DeselectsIcons(t *testing.T) {
	m, _ := newTestModel(t)

	m = click(t, m, 2, 1)
	m = click(t, m, 100, 40)
	assert.False(t, m.desk.Icons()[0].Selected)
}

func TestTitleDrag_MovesWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")

	m = update(t, m, mouse(tea.MouseActionPress, 10, 1))
	require.NotNil(t, m.desk.Gesture())
	m = update(t, m, mouse(tea.MouseActionMotion, 20, 5))
	m = update(t, m, mouse(tea.MouseActionRelease, 20, 5))

	w, ok := m.desk.Registry().Get("About")
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 80, Y: 64}, w.Position)
	assert.Equal(t, geom.Size{Width: 600, Height: 400}, w.Size)
	assert.Nil(t, m.desk.Gesture())
}

func TestBorderDrag_ResizesWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")

	// Column 74 is the east border of a 600 unit wide window at x=0.
	m = update(t, m, mouse(tea.MouseActionPress, 74, 10))
	m = update(t, m, mouse(tea.MouseActionMotion, 64, 12))
	m = update(t, m, mouse(tea.MouseActionRelease, 64, 12))

	w, _ := m.desk.Registry().Get("About")
	assert.Equal(t, geom.Point{}, w.Position)
	assert.Equal(t, geom.Size{Width: 520, Height: 400}, w.Size)
}

func TestTitleButtons(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")

	// [_][^][x] occupy columns 65-73 of the title row.
	m = click(t, m, 69, 1)
	w, _ := m.desk.Registry().Get("About")
	assert.True(t, w.Maximized)

	// Maximized to 1280 units, the restore button moves to columns 153-155.
	m = click(t, m, 154, 1)
	w, _ = m.desk.Registry().Get("About")
	assert.False(t, w.Maximized)
	assert.Equal(t, geom.Size{Width: 600, Height: 400}, w.Size)

	m = click(t, m, 66, 1)
	w, _ = m.desk.Registry().Get("About")
	assert.True(t, w.Minimized)

	m.desk.Focus("About")
	m = click(t, m, 72, 1)
	assert.False(t, m.desk.Registry().IsOpen("About"))
}

func TestTaskbarClick_CyclesWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")

	m = click(t, m, 10, 49)
	w, _ := m.desk.Registry().Get("About")
	assert.True(t, w.Minimized)

	m = click(t, m, 10, 49)
	w, _ = m.desk.Registry().Get("About")
	assert.False(t, w.Minimized)
	assert.True(t, w.Focused)

	// The gap between entries is not a button.
	m = click(t, m, 24, 49)
	w, _ = m.desk.Registry().Get("About")
	assert.True(t, w.Focused)
}

func TestStartMenu_MouseOpensWindow(t *testing.T) {
	m, _ := newTestModel(t)

	m = click(t, m, 2, 49)
	require.True(t, m.menu.open)

	// Nine items above the taskbar: rows 39 to 47, framed by rows 38 and 48.
	m = click(t, m, 3, 39)
	assert.False(t, m.menu.open)
	assert.True(t, m.desk.Registry().IsOpen("About"))
}

func TestStartMenu_ClickOutsideCloses(t *testing.T) {
	m, _ := newTestModel(t)

	m = click(t, m, 2, 49)
	m = click(t, m, 100, 10)
	assert.False(t, m.menu.open)
	assert.Equal(t, 0, m.desk.Registry().Len())
}

func TestStartMenu_KeyboardArranges(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")
	m.desk.OpenOrActivate("Projects")

	m = update(t, m, key("s"))
	require.True(t, m.menu.open)
	for i := 0; i < 6; i++ {
		m = update(t, m, key("down"))
	}
	m = update(t, m, key("enter"))
	assert.False(t, m.menu.open)

	about, _ := m.desk.Registry().Get("About")
	projects, _ := m.desk.Registry().Get("Projects")
	assert.Equal(t, geom.Point{X: 8, Y: 8}, about.Position)
	assert.Equal(t, 8, projects.Position.Y)
	assert.Greater(t, projects.Position.X, about.Position.X)
}

func TestRunDialog_OpensTypedWindow(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.choose(7)
	m = next.(model)
	require.Equal(t, dialogRun, m.dialog)

	m = update(t, m, key("projects"))
	m = update(t, m, key("enter"))
	assert.Equal(t, dialogNone, m.dialog)
	assert.True(t, m.desk.Registry().IsOpen("Projects"))
}

func TestShutdownDialog_EscCancels(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.choose(8)
	m = next.(model)
	require.Equal(t, dialogShutdown, m.dialog)
	require.NotNil(t, m.form)
	assert.NotEmpty(t, m.View())

	m = update(t, m, key("esc"))
	assert.Equal(t, dialogNone, m.dialog)
	assert.Nil(t, m.form)
	assert.False(t, m.quitting)
}

func TestKeys_ActOnFocusedWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")
	m.desk.OpenOrActivate("Projects")

	m = update(t, m, key("tab"))
	assert.Equal(t, "About", m.desk.Registry().FocusedID())

	m = update(t, m, key("z"))
	w, _ := m.desk.Registry().Get("About")
	assert.True(t, w.Maximized)

	m = update(t, m, key("m"))
	w, _ = m.desk.Registry().Get("About")
	assert.True(t, w.Minimized)

	m.desk.Focus("Projects")
	m = update(t, m, key("x"))
	assert.False(t, m.desk.Registry().IsOpen("Projects"))
}

func TestMoveMode_KeyboardMoveAndResize(t *testing.T) {
	m, _ := newTestModel(t)
	m.desk.OpenOrActivate("About")
	m.desk.OpenOrActivate("Projects")

	m = update(t, m, key("v"))
	require.True(t, m.move.IsActive())
	assert.Equal(t, "Projects", m.move.Selected())

	m = update(t, m, key("down"))
	assert.Equal(t, "About", m.move.Selected())

	// Keys that normally act on the focused window are swallowed.
	m = update(t, m, key("x"))
	assert.True(t, m.desk.Registry().IsOpen("Projects"))

	m = update(t, m, key("enter"))
	m = update(t, m, key("right"))
	m = update(t, m, key("j"))
	m = update(t, m, key("enter"))
	assert.False(t, m.move.IsActive())
	w, _ := m.desk.Registry().Get("About")
	assert.Equal(t, geom.Point{X: 8, Y: 16}, w.Position)
	assert.Equal(t, "About", m.desk.Registry().FocusedID())

	m = update(t, m, key("v"))
	m = update(t, m, key("r"))
	m = update(t, m, key("right"))
	m = update(t, m, key("esc"))
	assert.False(t, m.move.IsActive())
	assert.Nil(t, m.desk.Gesture())
	w, _ = m.desk.Registry().Get("About")
	assert.Equal(t, geom.Size{Width: 608, Height: 400}, w.Size)
}

func TestMoveMode_ExitsOnMousePressAndTimeout(t *testing.T) {
	m, clock := newTestModel(t)
	m.desk.OpenOrActivate("About")

	m = update(t, m, key("v"))
	m = update(t, m, key("enter"))
	require.NotNil(t, m.desk.Gesture())
	m = update(t, m, mouse(tea.MouseActionPress, 100, 30))
	assert.False(t, m.move.IsActive())
	assert.Nil(t, m.desk.Gesture())

	m = update(t, m, key("v"))
	require.True(t, m.move.IsActive())
	clock.advance(11 * time.Second)
	m = update(t, m, tickMsg(clock.now()))
	assert.False(t, m.move.IsActive())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.(model).View())
}

func TestTick_UpdatesClock(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tickMsg(time.Date(2026, 10, 19, 9, 5, 0, 0, time.Local)))
	assert.NotNil(t, cmd)
	assert.Equal(t, "09:05", next.(model).desk.Clock())
}

func TestExecMsg_RunsAndRecovers(t *testing.T) {
	m, _ := newTestModel(t)

	reply := make(chan execResult, 1)
	m = update(t, m, execMsg{fn: func(d *desktop.Desktop) (any, error) {
		return d.OpenOrActivate("About"), nil
	}, reply: reply})
	res := <-reply
	require.NoError(t, res.err)
	assert.Equal(t, true, res.value)

	update(t, m, execMsg{fn: func(*desktop.Desktop) (any, error) {
		panic("boom")
	}, reply: reply})
	res = <-reply
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "boom")
}

func TestExecutor_Do(t *testing.T) {
	m, _ := newTestModel(t)
	e := newExecutor(func(msg tea.Msg) { m.Update(msg) })

	v, err := e.Do(context.Background(), func(d *desktop.Desktop) (any, error) {
		return d.OpenOrActivate("About"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, true, v)

	dropped := newExecutor(func(tea.Msg) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dropped.Do(ctx, func(*desktop.Desktop) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_CloseFailsPendingAndLaterCommands(t *testing.T) {
	e := newExecutor(func(tea.Msg) {})

	errc := make(chan error, 1)
	go func() {
		_, err := e.Do(context.Background(), func(*desktop.Desktop) (any, error) { return nil, nil })
		errc <- err
	}()

	e.Close()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrStopped)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after Close")
	}

	_, err := e.Do(context.Background(), func(*desktop.Desktop) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrStopped)
	e.Close()
}

func TestView_DrawsWindowsAndTaskbar(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Start")
	assert.NotContains(t, view, "[_][^][x]")

	m.desk.OpenOrActivate("About")
	view = m.View()
	assert.Contains(t, view, "[_][^][x]")
	assert.Contains(t, view, " About Me ")
}
