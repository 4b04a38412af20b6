package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/pointer"
)

const (
	startCols = 7 // " Start "
	entryCols = 16
	entryGap  = 1
	iconCols  = 12
	iconRows  = 3
)

// pointerEvent converts a terminal mouse message into a desktop event at
// the center of the cell under the mouse.
func (m model) pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	var kind pointer.Kind
	switch msg.Action {
	case tea.MouseActionPress:
		kind = pointer.Down
	case tea.MouseActionRelease:
		kind = pointer.Up
	case tea.MouseActionMotion:
		kind = pointer.Move
	default:
		return pointer.Event{}, false
	}

	var button pointer.Button
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonNone:
		button = pointer.ButtonPrimary
	case tea.MouseButtonMiddle:
		button = pointer.ButtonAuxiliary
	case tea.MouseButtonRight:
		button = pointer.ButtonSecondary
	default:
		return pointer.Event{}, false
	}

	p := m.layout.Center(msg.X, msg.Y)
	ev := pointer.MouseEvent(kind, button, p.X, p.Y)
	ev.Time = m.now()
	return ev, true
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := m.pointerEvent(msg)
	if !ok {
		return nil
	}
	if ev.Kind != pointer.Down {
		m.desk.Pointer(ev)
		return nil
	}

	if msg.Y == m.layout.TaskbarRow() {
		if ev.Primary() {
			m.clickTaskbar(msg.X)
		}
		return nil
	}

	if m.menu.open {
		if i, ok := m.menu.itemAt(msg.X, msg.Y, m.layout.TaskbarRow()); ok && ev.Primary() {
			m.menu.list.Select(i)
			next, cmd := m.choose(i)
			*m = next.(model)
			return cmd
		}
		m.menu.open = false
		return nil
	}

	if hit := m.desk.HitTest(ev.Pos); hit.Window != "" {
		m.clicks.Reset()
		m.desk.Pointer(ev)
		return nil
	}

	if id, ok := m.iconAt(msg.X, msg.Y); ok && ev.Primary() {
		if m.clicks.Press(id, ev.Time) == 2 {
			m.logger.Info("icon activated", zap.String("icon", id))
			m.desk.ActivateIcon(id)
		} else {
			m.desk.SelectIcon(id)
		}
		return nil
	}

	m.clicks.Reset()
	m.desk.Pointer(ev)
	return nil
}

// clickTaskbar handles a primary press on taskbar column col.
func (m *model) clickTaskbar(col int) {
	if col < startCols {
		m.menu.open = !m.menu.open
		return
	}
	m.menu.open = false
	if id, ok := m.entryAt(col); ok {
		m.desk.ToggleFromTaskbar(id)
	}
}

// entryAt maps a taskbar column to the window whose button covers it.
func (m model) entryAt(col int) (string, bool) {
	offset := col - (startCols + entryGap)
	if offset < 0 || offset%(entryCols+entryGap) >= entryCols {
		return "", false
	}
	i := offset / (entryCols + entryGap)
	entries := m.desk.Taskbar()
	if i >= len(entries) || m.entryCol(i)+entryCols > m.clockCol() {
		return "", false
	}
	return entries[i].ID, true
}

func (m model) entryCol(i int) int {
	return startCols + entryGap + i*(entryCols+entryGap)
}

func (m model) clockCol() int {
	return m.layout.Cols - len([]rune(m.desk.Clock())) - 2
}

// iconAt maps a cell to the launcher icon drawn there. Icons stack down
// the left edge, iconRows rows each.
func (m model) iconAt(col, row int) (string, bool) {
	if col < 1 || col >= 1+iconCols || row < 1 {
		return "", false
	}
	i := (row - 1) / iconRows
	if (row-1)%iconRows == iconRows-1 {
		return "", false
	}
	windows := m.desk.Config().Windows
	if i >= len(windows) || iconRow(i)+iconRows-1 > m.layout.DesktopRows() {
		return "", false
	}
	return windows[i].ID, true
}

func iconRow(i int) int {
	return 1 + i*iconRows
}
