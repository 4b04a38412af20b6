// Package daemon hosts a desktop on a single goroutine so that IPC clients
// can drive it without a terminal attached.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/desktop"
)

// ErrStopped is returned for work submitted after the loop has exited.
var ErrStopped = errors.New("daemon loop stopped")

type job struct {
	fn    func(*desktop.Desktop) (any, error)
	reply chan result
}

type result struct {
	value any
	err   error
}

// Loop owns a desktop. Submitted work runs one item at a time in
// submission order, interleaved with clock ticks.
type Loop struct {
	desk   *desktop.Desktop
	logger *zap.Logger
	jobs   chan job
	done   chan struct{}
}

// NewLoop wraps desk. The loop does nothing until Run is called.
func NewLoop(desk *desktop.Desktop, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		desk:   desk,
		logger: logger,
		jobs:   make(chan job),
		done:   make(chan struct{}),
	}
}

// Run processes work and drives the tray clock. Blocks until ctx is
// cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	interval := l.desk.ClockInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.desk.Tick(time.Now())
	l.logger.Info("desktop loop started", zap.Duration("clock_interval", interval))

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("desktop loop stopped")
			return
		case now := <-ticker.C:
			l.desk.Tick(now)
		case j := <-l.jobs:
			j.reply <- l.run(j.fn)
		}
	}
}

// run executes fn, turning a panic into an error so one bad command cannot
// take the daemon down.
func (l *Loop) run(fn func(*desktop.Desktop) (any, error)) (res result) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("desktop command panic recovered", zap.Any("panic", r))
			res = result{err: fmt.Errorf("internal error: %v", r)}
		}
	}()
	v, err := fn(l.desk)
	return result{value: v, err: err}
}

// Do runs fn on the loop goroutine and returns its result.
func (l *Loop) Do(ctx context.Context, fn func(*desktop.Desktop) (any, error)) (any, error) {
	j := job{fn: fn, reply: make(chan result, 1)}
	select {
	case l.jobs <- j:
	case <-l.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-j.reply:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
