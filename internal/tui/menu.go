package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/retrodesk/internal/config"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

type menuAction int

const (
	actionOpen menuAction = iota
	actionArrange
	actionRun
	actionShutdown
)

// menuItem is one start menu entry.
type menuItem struct {
	label  string
	action menuAction
	window string
	mode   tiling.ArrangeMode
}

func (i menuItem) Title() string       { return i.label }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.label }

// startMenu pops up above the Start button. The list keeps the cursor and
// handles navigation keys; drawing happens on the desktop canvas.
type startMenu struct {
	list list.Model
	open bool
}

func newStartMenu(cfg *config.Config) startMenu {
	var items []list.Item
	for _, w := range cfg.Windows {
		items = append(items, menuItem{label: w.Label(), action: actionOpen, window: w.ID})
	}
	items = append(items,
		menuItem{label: "Cascade Windows", action: actionArrange, mode: tiling.ArrangeCascade},
		menuItem{label: "Tile Windows", action: actionArrange, mode: tiling.ArrangeTile},
		menuItem{label: "Run...", action: actionRun},
		menuItem{label: "Shut Down...", action: actionShutdown},
	)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, menuWidth(items), len(items))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	return startMenu{list: l}
}

func menuWidth(items []list.Item) int {
	w := 0
	for _, it := range items {
		if n := len([]rune(it.(menuItem).label)); n > w {
			w = n
		}
	}
	return w + 4
}

func (s startMenu) items() []menuItem {
	raw := s.list.Items()
	out := make([]menuItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, it.(menuItem))
	}
	return out
}

// bounds returns the menu's cell rect [x0, x1) x [y0, y1) for a desktop
// with the taskbar on row taskbarRow: a border row, one row per item and a
// border row, ending right above the taskbar.
func (s startMenu) bounds(taskbarRow int) (x0, y0, x1, y1 int) {
	n := len(s.list.Items())
	return 0, taskbarRow - n - 2, menuWidth(s.list.Items()) + 2, taskbarRow
}

// itemAt maps a cell to an item index.
func (s startMenu) itemAt(col, row, taskbarRow int) (int, bool) {
	x0, y0, x1, y1 := s.bounds(taskbarRow)
	if col <= x0 || col >= x1-1 || row <= y0 || row >= y1-1 {
		return 0, false
	}
	return row - y0 - 1, true
}

func (s startMenu) draw(c *canvas, taskbarRow int) {
	x0, y0, x1, y1 := s.bounds(taskbarRow)
	c.fill(x0, y0, x1, y1, ' ', paintMenu)
	c.set(x0, y0, '┌', paintMenu)
	c.set(x1-1, y0, '┐', paintMenu)
	c.set(x0, y1-1, '└', paintMenu)
	c.set(x1-1, y1-1, '┘', paintMenu)
	for x := x0 + 1; x < x1-1; x++ {
		c.set(x, y0, '─', paintMenu)
		c.set(x, y1-1, '─', paintMenu)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.set(x0, y, '│', paintMenu)
		c.set(x1-1, y, '│', paintMenu)
	}

	inner := x1 - x0 - 2
	for i, it := range s.items() {
		p := paintMenu
		if i == s.list.Index() {
			p = paintMenuSelected
		}
		c.fill(x0+1, y0+1+i, x1-1, y0+2+i, ' ', p)
		c.text(x0+2, y0+1+i, inner-2, it.label, p)
	}
}

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogRun
	dialogShutdown
)

var dialogBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

func newRunInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. About, Projects"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func newShutdownForm(choice *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Shut down retrodesk?").
				Description("Open windows are not saved.").
				Affirmative("Shut Down").
				Negative("Cancel").
				Value(choice),
		),
	).WithShowHelp(false)
}
