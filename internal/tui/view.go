package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/taskbar"
	"github.com/1broseidon/retrodesk/internal/wm"
)

var glyphs = map[string]rune{
	"notes":     '≡',
	"books":     '▤',
	"briefcase": '▦',
	"folder":    '▭',
	"contacts":  '@',
}

var borderRunes = map[gesture.Direction]rune{
	gesture.North:     '─',
	gesture.South:     '─',
	gesture.East:      '│',
	gesture.West:      '│',
	gesture.NorthWest: '┌',
	gesture.NorthEast: '┐',
	gesture.SouthWest: '└',
	gesture.SouthEast: '┘',
}

var buttonGlyphs = map[desktop.Region]rune{
	desktop.RegionMinimize: '_',
	desktop.RegionMaximize: '^',
	desktop.RegionClose:    'x',
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting || m.layout.Cols == 0 || m.layout.Rows == 0 {
		return ""
	}

	c := m.render()
	if m.dialog == dialogNone {
		return c.String()
	}

	box := dialogBoxStyle.Render(m.dialogView())
	top := lipgloss.Place(m.layout.Cols, m.layout.DesktopRows(), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("30")))
	return lipgloss.JoinVertical(lipgloss.Left, top, c.row(m.layout.TaskbarRow()))
}

func (m model) dialogView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	switch m.dialog {
	case dialogRun:
		return strings.Join([]string{
			titleStyle.Render("Run"),
			"Type the name of a window to open.",
			"",
			m.runInput.View(),
			"",
			hint.Render("enter: open  esc: cancel"),
		}, "\n")
	case dialogShutdown:
		if m.form != nil {
			return m.form.View()
		}
	}
	return ""
}

// render draws the whole screen: icons, windows back to front, the start
// menu, then the taskbar.
func (m model) render() *canvas {
	c := newCanvas(m.layout.Cols, m.layout.Rows)
	m.drawIcons(c)
	for _, w := range m.desk.Frames() {
		m.drawWindow(c, w)
	}
	if m.menu.open {
		m.menu.draw(c, m.layout.TaskbarRow())
	}
	m.drawTaskbar(c)
	return c
}

func (m model) drawIcons(c *canvas) {
	for i, ic := range m.desk.Icons() {
		row := iconRow(i)
		if row+iconRows-1 > m.layout.DesktopRows() {
			return
		}
		p := paintIcon
		if ic.Selected {
			p = paintIconSelected
		}
		glyph, ok := glyphs[ic.Glyph]
		if !ok {
			glyph = '■'
		}
		c.text(1, row, iconCols, center(string(glyph), iconCols), p)
		c.text(1, row+1, iconCols, center(ic.Label, iconCols), p)
	}
}

func (m model) drawWindow(c *canvas, w wm.View) {
	b := w.Bounds()
	metrics := m.desk.Metrics()
	c0, r0, c1, r1 := m.layout.Cells(b)
	if r1 > m.layout.DesktopRows() {
		r1 = m.layout.DesktopRows()
	}

	borderPaint, titlePaint := paintBorder, paintTitle
	if w.Focused {
		borderPaint, titlePaint = paintBorderFocused, paintTitleFocused
	}
	if m.move.IsActive() && m.move.Selected() == w.ID {
		borderPaint = paintBorderMove
	}
	title := []rune(" " + w.Title)
	bodyCols := c1 - c0 - 4
	var body []string
	if bodyCols > 0 && w.Content != "" {
		body = strings.Split(lipgloss.NewStyle().Width(bodyCols).Render(w.Content), "\n")
	}

	right := b.X + b.Width - metrics.Border.Width
	cw := m.layout.Cell.Width
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			p := m.layout.Center(col, row)
			region, dir := metrics.Classify(b, p)
			switch region {
			case desktop.RegionBorder:
				c.set(col, row, borderRunes[dir], borderPaint)
			case desktop.RegionTitle:
				r := ' '
				if i := col - c0 - 1; i < len(title) {
					r = title[i]
				}
				c.set(col, row, r, titlePaint)
			case desktop.RegionMinimize, desktop.RegionMaximize, desktop.RegionClose:
				r := buttonGlyphs[region]
				switch ((right - 1 - p.X) % metrics.ButtonWidth) / cw {
				case 0:
					r = ']'
				case metrics.ButtonWidth/cw - 1:
					r = '['
				}
				c.set(col, row, r, titlePaint)
			case desktop.RegionBody:
				r := ' '
				line, i := row-r0-2, col-c0-2
				if line >= 0 && line < len(body) && i >= 0 {
					if text := []rune(body[line]); i < len(text) {
						r = text[i]
					}
				}
				c.set(col, row, r, paintBody)
			}
		}
	}
}

func (m model) drawTaskbar(c *canvas) {
	row := m.layout.TaskbarRow()
	c.fill(0, row, m.layout.Cols, row+1, ' ', paintTaskbar)

	start := paintStart
	if m.menu.open {
		start = paintStartOpen
	}
	c.text(0, row, startCols, " Start ", start)

	clock := m.desk.Clock()
	clockCol := m.clockCol()
	for i, e := range m.desk.Taskbar() {
		col := m.entryCol(i)
		if col+entryCols > clockCol {
			break
		}
		p := paintEntry
		if e.State == taskbar.Pressed {
			p = paintEntryPressed
		}
		label := e.Title
		if e.Minimized {
			label = "(" + label + ")"
		}
		c.text(col, row, entryCols, " "+truncate(label, entryCols-2)+" ", p)
		c.fill(col+len([]rune(truncate(label, entryCols-2)))+2, row, col+entryCols, row+1, ' ', p)
	}
	c.text(clockCol, row, len([]rune(clock))+2, " "+clock+" ", paintClock)
}
