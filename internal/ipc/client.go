package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/pointer"
	"github.com/1broseidon/retrodesk/internal/runtimepath"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

// Client handles IPC communication with a running host
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the default socket
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return NewClientAt(socketPath)
}

// NewClientAt creates a client for the socket at path.
func NewClientAt(path string) *Client {
	return &Client{
		socketPath: path,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to retrodesk: %w (is the daemon or TUI running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == StatusError {
		return nil, fmt.Errorf("retrodesk error: %s", resp.Error)
	}

	return &resp, nil
}

// call sends cmd with payload and decodes the response data into out.
func (c *Client) call(cmd CommandType, payload any, out any) error {
	req, err := NewRequest(cmd, payload)
	if err != nil {
		return err
	}
	resp, err := c.sendRequest(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", cmd, err)
	}
	return nil
}

func (c *Client) command(cmd CommandType, payload any) (*CommandResult, error) {
	var res CommandResult
	if err := c.call(cmd, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetStatus retrieves host status
func (c *Client) GetStatus() (*StatusData, error) {
	var status StatusData
	if err := c.call(CommandGetStatus, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetState retrieves the full desktop snapshot.
func (c *Client) GetState() (*desktop.State, error) {
	var st desktop.State
	if err := c.call(CommandGetState, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Open opens window id, or focuses it when already open.
func (c *Client) Open(id string) (*CommandResult, error) {
	return c.command(CommandOpen, WindowPayload{ID: id})
}

func (c *Client) Close(id string) (*CommandResult, error) {
	return c.command(CommandClose, WindowPayload{ID: id})
}

func (c *Client) Minimize(id string) (*CommandResult, error) {
	return c.command(CommandMinimize, WindowPayload{ID: id})
}

func (c *Client) Focus(id string) (*CommandResult, error) {
	return c.command(CommandFocus, WindowPayload{ID: id})
}

// Toggle clicks the taskbar entry of window id.
func (c *Client) Toggle(id string) (*CommandResult, error) {
	return c.command(CommandToggle, WindowPayload{ID: id})
}

func (c *Client) Maximize(id string) (*CommandResult, error) {
	return c.command(CommandMaximize, WindowPayload{ID: id})
}

func (c *Client) SelectIcon(id string) (*CommandResult, error) {
	return c.command(CommandSelectIcon, IconPayload{ID: id})
}

func (c *Client) ActivateIcon(id string) (*CommandResult, error) {
	return c.command(CommandActivateIcon, IconPayload{ID: id})
}

// TapIcon sends one touch tap; the host stamps it with its own clock.
func (c *Client) TapIcon(id string) (*CommandResult, error) {
	return c.command(CommandTapIcon, IconPayload{ID: id})
}

func (c *Client) DeselectAll() (*CommandResult, error) {
	return c.command(CommandDeselectAll, nil)
}

func (c *Client) StartDrag(id string, ev pointer.Event) (*CommandResult, error) {
	return c.command(CommandStartDrag, StartDragPayload{ID: id, Event: ev})
}

func (c *Client) StartResize(id string, dir gesture.Direction, ev pointer.Event) (*CommandResult, error) {
	return c.command(CommandStartResize, StartResizePayload{ID: id, Direction: dir, Event: ev})
}

// Pointer forwards one raw pointer event.
func (c *Client) Pointer(ev pointer.Event) (*CommandResult, error) {
	return c.command(CommandPointer, PointerPayload{Event: ev})
}

// Move drags window id to x, y.
func (c *Client) Move(id string, x, y int) (*CommandResult, error) {
	return c.command(CommandMove, MovePayload{ID: id, X: x, Y: y})
}

// Resize drags handle dir of window id by dx, dy.
func (c *Client) Resize(id string, dir gesture.Direction, dx, dy int) (*CommandResult, error) {
	return c.command(CommandResize, ResizePayload{ID: id, Direction: dir, DX: dx, DY: dy})
}

func (c *Client) Arrange(mode tiling.ArrangeMode) (*CommandResult, error) {
	return c.command(CommandArrange, ArrangePayload{Mode: mode})
}

// Ping checks if a host is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
