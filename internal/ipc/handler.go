package ipc

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/geom"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

// Handle applies req to d and returns the response data. It must run on
// the goroutine that owns d.
func Handle(d *desktop.Desktop, req *Request, now time.Time) (any, error) {
	switch req.Command {
	case CommandGetState:
		return d.State(), nil
	case CommandOpen, CommandClose, CommandMinimize, CommandFocus, CommandToggle, CommandMaximize:
		return handleWindow(d, req)
	case CommandSelectIcon, CommandActivateIcon, CommandTapIcon:
		return handleIcon(d, req, now)
	case CommandDeselectAll:
		d.DeselectAll()
		return result(d, true), nil
	case CommandStartDrag:
		var p StartDragPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		p.Event.Time = now
		return result(d, d.StartDrag(p.ID, p.Event)), nil
	case CommandStartResize:
		var p StartResizePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		if !p.Direction.Valid() {
			return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidPayload, p.Direction)
		}
		p.Event.Time = now
		return result(d, d.StartResize(p.ID, p.Direction, p.Event)), nil
	case CommandPointer:
		var p PointerPayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		p.Event.Time = now
		return result(d, d.Pointer(p.Event)), nil
	case CommandMove:
		var p MovePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		return result(d, d.MoveTo(p.ID, geom.Point{X: p.X, Y: p.Y})), nil
	case CommandResize:
		var p ResizePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		if !p.Direction.Valid() {
			return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidPayload, p.Direction)
		}
		return result(d, d.ResizeBy(p.ID, p.Direction, geom.Point{X: p.DX, Y: p.DY})), nil
	case CommandArrange:
		var p ArrangePayload
		if err := decodePayload(req, &p); err != nil {
			return nil, err
		}
		mode, err := tiling.ParseArrangeMode(string(p.Mode))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return result(d, d.Arrange(mode)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, req.Command)
	}
}

func handleWindow(d *desktop.Desktop, req *Request) (any, error) {
	var p WindowPayload
	if err := decodePayload(req, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.ID) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidPayload)
	}

	var changed bool
	switch req.Command {
	case CommandOpen:
		changed = d.OpenOrActivate(p.ID)
	case CommandClose:
		changed = d.Close(p.ID)
	case CommandMinimize:
		changed = d.Minimize(p.ID)
	case CommandFocus:
		changed = d.Focus(p.ID)
	case CommandToggle:
		changed = d.ToggleFromTaskbar(p.ID)
	case CommandMaximize:
		changed = d.ToggleMaximize(p.ID)
	}
	return result(d, changed), nil
}

func handleIcon(d *desktop.Desktop, req *Request, now time.Time) (any, error) {
	var p IconPayload
	if err := decodePayload(req, &p); err != nil {
		return nil, err
	}

	var changed bool
	switch req.Command {
	case CommandSelectIcon:
		changed = d.SelectIcon(p.ID)
	case CommandActivateIcon:
		changed = d.ActivateIcon(p.ID)
	case CommandTapIcon:
		changed = d.TapIcon(p.ID, now)
	}
	return result(d, changed), nil
}

func result(d *desktop.Desktop, changed bool) CommandResult {
	return CommandResult{Changed: changed, State: d.State()}
}
