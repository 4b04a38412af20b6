package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type paint int

const (
	paintDesktop paint = iota
	paintIcon
	paintIconSelected
	paintBorder
	paintBorderFocused
	paintBorderMove
	paintTitle
	paintTitleFocused
	paintBody
	paintTaskbar
	paintStart
	paintStartOpen
	paintEntry
	paintEntryPressed
	paintClock
	paintMenu
	paintMenuSelected
)

var paints = map[paint]lipgloss.Style{
	paintDesktop:       lipgloss.NewStyle().Background(lipgloss.Color("30")).Foreground(lipgloss.Color("15")),
	paintIcon:          lipgloss.NewStyle().Background(lipgloss.Color("30")).Foreground(lipgloss.Color("15")),
	paintIconSelected:  lipgloss.NewStyle().Background(lipgloss.Color("18")).Foreground(lipgloss.Color("15")).Bold(true),
	paintBorder:        lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("240")),
	paintBorderFocused: lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("236")),
	paintBorderMove:    lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("235")),
	paintTitle:         lipgloss.NewStyle().Background(lipgloss.Color("244")).Foreground(lipgloss.Color("252")),
	paintTitleFocused:  lipgloss.NewStyle().Background(lipgloss.Color("18")).Foreground(lipgloss.Color("15")).Bold(true),
	paintBody:          lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	paintTaskbar:       lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("235")),
	paintStart:         lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")).Bold(true),
	paintStartOpen:     lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")).Bold(true),
	paintEntry:         lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")),
	paintEntryPressed:  lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")).Bold(true),
	paintClock:         lipgloss.NewStyle().Background(lipgloss.Color("247")).Foreground(lipgloss.Color("235")),
	paintMenu:          lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")),
	paintMenuSelected:  lipgloss.NewStyle().Background(lipgloss.Color("18")).Foreground(lipgloss.Color("15")),
}

type cell struct {
	r rune
	p paint
}

// canvas is a grid of single-width runes, each with one paint.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	c.fill(0, 0, w, h, ' ', paintDesktop)
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, p: p}
}

func (c *canvas) at(x, y int) (cell, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}, false
	}
	return c.cells[y*c.w+x], true
}

func (c *canvas) fill(x0, y0, x1, y1 int, r rune, p paint) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, r, p)
		}
	}
}

// text writes s from (x, y), at most width runes.
func (c *canvas) text(x, y, width int, s string, p paint) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		c.set(x+i, y, r, p)
		i++
	}
}

// row renders row y, one lipgloss render per run of equal paint.
func (c *canvas) row(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	line := c.cells[y*c.w : (y+1)*c.w]
	for start := 0; start < len(line); {
		end := start
		runes := make([]rune, 0, len(line)-start)
		for end < len(line) && line[end].p == line[start].p {
			runes = append(runes, line[end].r)
			end++
		}
		b.WriteString(paints[line[start].p].Render(string(runes)))
		start = end
	}
	return b.String()
}

func (c *canvas) String() string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.row(y)
	}
	return strings.Join(rows, "\n")
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// center pads s with spaces to n runes.
func center(s string, n int) string {
	s = truncate(s, n)
	pad := n - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
