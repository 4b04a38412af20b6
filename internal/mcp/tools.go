package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	st, err := s.client.GetState()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{
		Windows: windowInfos(st),
		Focused: st.Focused,
		Catalog: make([]string, 0, len(st.Icons)),
		Clock:   st.Clock,
	}
	for _, ic := range st.Icons {
		out.Catalog = append(out.Catalog, ic.ID)
	}
	return nil, out, nil
}

func (s *Server) handleOpenWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("open_window", args.ID, s.client.Open)
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("close_window", args.ID, s.client.Close)
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("focus_window", args.ID, s.client.Focus)
}

func (s *Server) handleMinimizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("minimize_window", args.ID, s.client.Minimize)
}

func (s *Server) handleToggleTaskbarEntry(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("toggle_taskbar_entry", args.ID, s.client.Toggle)
}

func (s *Server) handleMaximizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("maximize_window", args.ID, s.client.Maximize)
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	return s.windowAction("move_window", args.ID, func(id string) (*ipc.CommandResult, error) {
		return s.client.Move(id, args.X, args.Y)
	})
}

func (s *Server) handleResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	dir, err := gesture.ParseDirection(args.Direction)
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	return s.windowAction("resize_window", args.ID, func(id string) (*ipc.CommandResult, error) {
		return s.client.Resize(id, dir, args.DX, args.DY)
	})
}

func (s *Server) handleArrangeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ArrangeWindowsInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	mode, err := tiling.ParseArrangeMode(strings.ToLower(strings.TrimSpace(args.Mode)))
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	res, err := s.client.Arrange(mode)
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	s.logger.Info("MCP tool", zap.String("tool", "arrange_windows"), zap.String("mode", string(mode)), zap.Bool("changed", res.Changed))
	return nil, actionOutput(res, ""), nil
}

// windowAction runs a single-window command. A command that changed nothing
// on a window that is not open is reported as a tool error.
func (s *Server) windowAction(tool, id string, do func(string) (*ipc.CommandResult, error)) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, WindowActionOutput{}, fmt.Errorf("id is required")
	}
	res, err := do(id)
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	s.logger.Info("MCP tool", zap.String("tool", tool), zap.String("window", id), zap.Bool("changed", res.Changed))

	out := actionOutput(res, id)
	if !res.Changed && out.Window == nil {
		return nil, out, fmt.Errorf("window %q is not open", id)
	}
	return nil, out, nil
}

func actionOutput(res *ipc.CommandResult, id string) WindowActionOutput {
	out := WindowActionOutput{
		Changed: res.Changed,
		Focused: res.State.Focused,
		Open:    make([]string, 0, len(res.State.Taskbar)),
	}
	for _, e := range res.State.Taskbar {
		out.Open = append(out.Open, e.ID)
	}
	for _, w := range windowInfos(&res.State) {
		if w.ID == id {
			w := w
			out.Window = &w
		}
	}
	return out
}

// windowInfos joins the taskbar, which lists every open window, with the
// geometry of the visible ones.
func windowInfos(st *desktop.State) []WindowInfo {
	visible := make(map[string]int, len(st.Windows))
	for i, w := range st.Windows {
		visible[w.ID] = i
	}

	out := make([]WindowInfo, 0, len(st.Taskbar))
	for _, e := range st.Taskbar {
		info := WindowInfo{
			ID:        e.ID,
			Title:     e.Title,
			Focused:   e.Focused,
			Minimized: e.Minimized,
		}
		if i, ok := visible[e.ID]; ok {
			w := st.Windows[i]
			b := geom.RectOf(w.Position, w.Size)
			info.Bounds = &b
			info.Maximized = w.Maximized
			info.Z = w.Z
		}
		out = append(out, info)
	}
	return out
}
