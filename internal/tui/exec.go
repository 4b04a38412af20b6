package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/retrodesk/internal/desktop"
)

// ErrStopped is returned by Executor.Do once the program has exited.
var ErrStopped = errors.New("tui has exited")

// Executor runs IPC commands on the bubbletea event loop, so the desktop is
// only ever touched from Update.
type Executor struct {
	send func(tea.Msg)
	done chan struct{}
	once sync.Once
}

// NewExecutor returns an executor that injects commands into p. Call Close
// after p.Run returns.
func NewExecutor(p *tea.Program) *Executor {
	return newExecutor(p.Send)
}

func newExecutor(send func(tea.Msg)) *Executor {
	return &Executor{send: send, done: make(chan struct{})}
}

// Close fails pending and future commands with ErrStopped. A stopped
// program drops messages, so nothing would ever reply.
func (e *Executor) Close() {
	e.once.Do(func() { close(e.done) })
}

// Do implements ipc.Executor.
func (e *Executor) Do(ctx context.Context, fn func(*desktop.Desktop) (any, error)) (any, error) {
	select {
	case <-e.done:
		return nil, ErrStopped
	default:
	}

	reply := make(chan execResult, 1)
	go e.send(execMsg{fn: fn, reply: reply})

	select {
	case res := <-reply:
		return res.value, res.err
	case <-e.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
