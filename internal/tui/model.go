package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/movemode"
	"github.com/1broseidon/retrodesk/internal/pointer"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

type tickMsg time.Time

// execMsg runs fn inside Update, where the desktop may be touched.
type execMsg struct {
	fn    func(*desktop.Desktop) (any, error)
	reply chan<- execResult
}

type execResult struct {
	value any
	err   error
}

// model is the root bubbletea model: one desktop drawn full screen with the
// taskbar on the bottom row.
type model struct {
	desk   *desktop.Desktop
	logger *zap.Logger
	layout Layout
	clicks *pointer.ClickDetector
	move   *movemode.Mode
	now    func() time.Time

	menu     startMenu
	dialog   dialogKind
	runInput textinput.Model
	form     *huh.Form
	shutdown *bool

	quitting bool
}

func newModel(desk *desktop.Desktop, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := desk.Config()
	return model{
		desk:     desk,
		logger:   logger,
		layout:   Layout{Cell: cfg.Cell},
		clicks:   pointer.NewClickDetector(cfg.DoubleActivationInterval()),
		move:     movemode.NewMode(cfg.Cell, movemode.DefaultTimeout, logger),
		now:      time.Now,
		menu:     newStartMenu(cfg),
		runInput: newRunInput(),
		shutdown: new(bool),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.desk.ClockInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	m.desk.Tick(m.now())
	return m.tick()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Cols = msg.Width
		m.layout.Rows = msg.Height
		m.desk.SetViewport(m.layout.Viewport())
		m.desk.SetMetrics(m.layout.Metrics())
		return m, nil

	case tickMsg:
		m.desk.Tick(time.Time(msg))
		if m.move.Expired(time.Time(msg)) {
			m.move.Exit(m.desk)
		}
		return m, m.tick()

	case execMsg:
		msg.reply <- m.exec(msg.fn)
		return m, nil
	}

	if m.dialog != dialogNone {
		return m.updateDialog(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.move.Exit(m.desk)
		}
		cmd := m.handleMouse(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// exec runs a host command, turning a panic into an error so one bad
// request cannot take the desktop down.
func (m model) exec(fn func(*desktop.Desktop) (any, error)) (res execResult) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("command panicked", zap.Any("panic", r))
			res = execResult{err: fmt.Errorf("command panicked: %v", r)}
		}
	}()
	v, err := fn(m.desk)
	return execResult{value: v, err: err}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.move.IsActive() {
		m.handleMoveKey(msg)
		return m, nil
	}

	if m.menu.open {
		switch msg.String() {
		case "esc", "s":
			m.menu.open = false
			return m, nil
		case "enter":
			return m.choose(m.menu.list.Index())
		}
		var cmd tea.Cmd
		m.menu.list, cmd = m.menu.list.Update(msg)
		return m, cmd
	}

	focused := m.desk.Registry().FocusedID()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "s":
		m.menu.open = true
	case "esc":
		m.desk.DeselectAll()
	case "tab":
		m.focusNext()
	case "v":
		m.move.Enter(m.desk, m.now())
	case "c":
		m.desk.Arrange(tiling.ArrangeCascade)
	case "t":
		m.desk.Arrange(tiling.ArrangeTile)
	case "m":
		m.desk.Minimize(focused)
	case "z":
		m.desk.ToggleMaximize(focused)
	case "x":
		m.desk.Close(focused)
	}
	return m, nil
}

// handleMoveKey routes keys while move mode is active: arrows select or
// nudge, enter grabs or drops, r grabs for resizing, esc leaves.
func (m model) handleMoveKey(msg tea.KeyMsg) {
	now := m.now()
	if dir, ok := movemode.ParseKey(msg.String()); ok {
		m.move.HandleArrowKey(m.desk, dir, now)
		return
	}
	switch msg.String() {
	case "enter", " ":
		m.move.HandleConfirm(m.desk, now)
	case "r":
		m.move.HandleResize(m.desk, now)
	case "esc", "v":
		m.move.HandleCancel(m.desk)
	}
}

// focusNext focuses the taskbar entry after the focused one.
func (m model) focusNext() {
	entries := m.desk.Taskbar()
	if len(entries) == 0 {
		return
	}
	next := 0
	for i, e := range entries {
		if e.Focused {
			next = (i + 1) % len(entries)
		}
	}
	m.desk.Focus(entries[next].ID)
}

func (m model) choose(index int) (tea.Model, tea.Cmd) {
	items := m.menu.items()
	if index < 0 || index >= len(items) {
		return m, nil
	}
	m.menu.open = false
	it := items[index]
	m.logger.Info("start menu", zap.String("item", it.label))

	switch it.action {
	case actionOpen:
		m.desk.OpenOrActivate(it.window)
	case actionArrange:
		m.desk.Arrange(it.mode)
	case actionRun:
		m.dialog = dialogRun
		m.runInput.Reset()
		cmd := m.runInput.Focus()
		return m, cmd
	case actionShutdown:
		m.dialog = dialogShutdown
		*m.shutdown = false
		m.form = newShutdownForm(m.shutdown)
		cmd := m.form.Init()
		return m, cmd
	}
	return m, nil
}

func (m model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.closeDialog()
			return m, nil
		}
	}

	switch m.dialog {
	case dialogRun:
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
			m.run(m.runInput.Value())
			m.closeDialog()
			return m, nil
		}
		var cmd tea.Cmd
		m.runInput, cmd = m.runInput.Update(msg)
		return m, cmd

	case dialogShutdown:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		switch m.form.State {
		case huh.StateCompleted:
			if *m.shutdown {
				m.quitting = true
				return m, tea.Quit
			}
			m.closeDialog()
			return m, nil
		case huh.StateAborted:
			m.closeDialog()
			return m, nil
		}
		return m, cmd
	}
	return m, nil
}

func (m *model) closeDialog() {
	m.dialog = dialogNone
	m.form = nil
	m.runInput.Blur()
}

// run opens the window named in the Run dialog. Catalog ids match without
// regard to case; anything else opens an empty window with that title.
func (m model) run(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, w := range m.desk.Config().Windows {
		if strings.EqualFold(w.ID, name) {
			name = w.ID
			break
		}
	}
	m.logger.Info("run", zap.String("window", name))
	m.desk.OpenOrActivate(name)
}
