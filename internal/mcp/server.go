// Package mcp exposes the desktop to MCP clients over stdio. Every tool is
// forwarded to the running daemon or TUI through the IPC client.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

const (
	ServerName    = "retrodesk"
	ServerVersion = "0.1.0"
)

// DesktopClient is the part of ipc.Client the tools use.
type DesktopClient interface {
	GetState() (*desktop.State, error)
	Open(id string) (*ipc.CommandResult, error)
	Close(id string) (*ipc.CommandResult, error)
	Focus(id string) (*ipc.CommandResult, error)
	Minimize(id string) (*ipc.CommandResult, error)
	Toggle(id string) (*ipc.CommandResult, error)
	Maximize(id string) (*ipc.CommandResult, error)
	Move(id string, x, y int) (*ipc.CommandResult, error)
	Resize(id string, dir gesture.Direction, dx, dy int) (*ipc.CommandResult, error)
	Arrange(mode tiling.ArrangeMode) (*ipc.CommandResult, error)
}

// Server is the MCP server for desktop window control.
type Server struct {
	mcpServer *mcpsdk.Server
	client    DesktopClient
	logger    *zap.Logger
}

// NewServer creates a new MCP server that drives the desktop through client.
func NewServer(client DesktopClient, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		client: client,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every open window (including minimized ones) in taskbar order with its bounds, focus and minimize state, plus the ids available as desktop icons.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Open a window by id, as a double click on its desktop icon would. New windows cascade from the top-left corner and take focus; an already open window is focused instead.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window and remove its taskbar entry. No other window receives focus.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Bring a window to the front and focus it, restoring it if minimized.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "minimize_window",
		Description: "Minimize a window. It stays on the taskbar and loses focus.",
	}, s.handleMinimizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_taskbar_entry",
		Description: "Click a window's taskbar button: a minimized window is restored, the focused window is minimized, any other window is focused.",
	}, s.handleToggleTaskbarEntry)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_window",
		Description: "Maximize a window to the whole desktop, or restore it if it is already maximized.",
	}, s.handleMaximizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Drag a window by its title bar so its top-left corner lands on x, y. The position is not clamped to the screen.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Drag one of a window's eight resize handles by dx, dy. The window never shrinks below its minimum size and the opposite edge stays put.",
	}, s.handleResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "arrange_windows",
		Description: "Re-arrange all visible windows in opening order: cascade restacks them diagonally at the default size, tile lays them out in a grid.",
	}, s.handleArrangeWindows)
}
