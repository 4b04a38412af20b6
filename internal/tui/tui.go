// Package tui hosts the desktop in a terminal: windows, launcher icons and
// the taskbar drawn with lipgloss, terminal mouse events fed to the engine.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/1broseidon/retrodesk/internal/config"
	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/ipc"
)

// Options configures Run.
type Options struct {
	Config *config.Config
	// Logger must not write to the terminal.
	Logger *zap.Logger
	// Serve starts an IPC server so the CLI and MCP server can drive this
	// desktop.
	Serve  bool
	Server ipc.ServerConfig
}

// Run draws a fresh desktop until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	desk := desktop.New(opts.Config, logger)
	p := tea.NewProgram(newModel(desk, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	exec := NewExecutor(p)
	if opts.Serve {
		srv, err := ipc.NewServer(opts.Server, exec, logger)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Stop()
		logger.Info("tui serving IPC", zap.String("socket", srv.SocketPath()))
	}

	_, err := p.Run()
	exec.Close()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
