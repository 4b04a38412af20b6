package ipc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/pointer"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandGetStatus    CommandType = "GET_STATUS"
	CommandGetState     CommandType = "GET_STATE"
	CommandOpen         CommandType = "OPEN"
	CommandClose        CommandType = "CLOSE"
	CommandMinimize     CommandType = "MINIMIZE"
	CommandFocus        CommandType = "FOCUS"
	CommandToggle       CommandType = "TOGGLE"
	CommandMaximize     CommandType = "MAXIMIZE"
	CommandSelectIcon   CommandType = "SELECT_ICON"
	CommandActivateIcon CommandType = "ACTIVATE_ICON"
	CommandTapIcon      CommandType = "TAP_ICON"
	CommandDeselectAll  CommandType = "DESELECT_ALL"
	CommandStartDrag    CommandType = "START_DRAG"
	CommandStartResize  CommandType = "START_RESIZE"
	CommandPointer      CommandType = "POINTER"
	CommandMove         CommandType = "MOVE"
	CommandResize       CommandType = "RESIZE"
	CommandArrange      CommandType = "ARRANGE"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidPayload = errors.New("invalid payload")
)

const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	Host          string `json:"host"` // "daemon" or "tui"
	SessionID     string `json:"session_id"`
	WindowCount   int    `json:"window_count"`
	Focused       string `json:"focused,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Running       bool   `json:"running"`
}

// CommandResult is returned by every mutating command.
type CommandResult struct {
	Changed bool          `json:"changed"`
	State   desktop.State `json:"state"`
}

// WindowPayload names a window for OPEN, CLOSE, MINIMIZE, FOCUS, TOGGLE
// and MAXIMIZE.
type WindowPayload struct {
	ID string `json:"id"`
}

// IconPayload names a desktop icon.
type IconPayload struct {
	ID string `json:"id"`
}

type StartDragPayload struct {
	ID    string        `json:"id"`
	Event pointer.Event `json:"event"`
}

type StartResizePayload struct {
	ID        string            `json:"id"`
	Direction gesture.Direction `json:"direction"`
	Event     pointer.Event     `json:"event"`
}

type PointerPayload struct {
	Event pointer.Event `json:"event"`
}

// MovePayload drags a window to an absolute position.
type MovePayload struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// ResizePayload drags one resize handle by a delta.
type ResizePayload struct {
	ID        string            `json:"id"`
	Direction gesture.Direction `json:"direction"`
	DX        int               `json:"dx"`
	DY        int               `json:"dy"`
}

type ArrangePayload struct {
	Mode tiling.ArrangeMode `json:"mode"`
}

// NewRequest builds a request, marshalling payload when it is not nil.
func NewRequest(cmd CommandType, payload any) (*Request, error) {
	req := &Request{Command: cmd}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", cmd, err)
		}
		req.Payload = data
	}
	return req, nil
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: StatusOK,
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: StatusError,
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func decodePayload(req *Request, out any) error {
	if len(req.Payload) == 0 {
		return fmt.Errorf("%w: %s requires a payload", ErrInvalidPayload, req.Command)
	}
	if err := json.Unmarshal(req.Payload, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, req.Command, err)
	}
	return nil
}
