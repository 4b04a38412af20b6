package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/runtimepath"
)

// Executor runs fn on the goroutine that owns the desktop. The daemon loop
// and the TUI program both implement it.
type Executor interface {
	Do(ctx context.Context, fn func(*desktop.Desktop) (any, error)) (any, error)
}

// ServerConfig describes the host a server fronts.
type ServerConfig struct {
	// SocketPath defaults to runtimepath.SocketPath().
	SocketPath string
	Host       string
	SessionID  string
	// CommandTimeout bounds how long one command may wait for the host.
	CommandTimeout time.Duration
}

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	exec         Executor
	cfg          ServerConfig
	logger       *zap.Logger
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
	wg           sync.WaitGroup
}

// NewServer creates a new IPC server
func NewServer(cfg ServerConfig, exec Executor, logger *zap.Logger) (*Server, error) {
	if cfg.SocketPath == "" {
		socketPath, err := runtimepath.SocketPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
		}
		cfg.SocketPath = socketPath
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		socketPath: cfg.SocketPath,
		exec:       exec,
		cfg:        cfg,
		logger:     logger,
		startTime:  time.Now(),
	}, nil
}

// SocketPath returns the path the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start begins listening for IPC connections. It refuses to replace the
// socket of a host that still answers.
func (s *Server) Start() error {
	if conn, err := net.DialTimeout("unix", s.socketPath, 200*time.Millisecond); err == nil {
		conn.Close()
		return fmt.Errorf("another retrodesk host is listening on %s", s.socketPath)
	}
	// Remove a stale socket left by a crashed host.
	os.Remove(s.socketPath)

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	// Set socket permissions
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.logger.Info("IPC server listening", zap.String("socket", s.socketPath), zap.String("host", s.cfg.Host))

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			stopping := s.shuttingDown
			s.shutdownMu.Unlock()
			if stopping || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("IPC accept error", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(s.cfg.CommandTimeout + time.Second))

	reader := bufio.NewReader(conn)

	// One JSON request per line.
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.logger.Warn("IPC read error", zap.Error(err))
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.send(conn, NewErrorResponse(fmt.Sprintf("invalid request: %v", err)))
		return
	}

	s.send(conn, s.handleCommand(req))
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.CommandTimeout)
	defer cancel()

	now := time.Now()
	var (
		data any
		err  error
	)
	if req.Command == CommandGetStatus {
		data, err = s.status(ctx)
	} else {
		data, err = s.exec.Do(ctx, func(d *desktop.Desktop) (any, error) {
			return Handle(d, req, now)
		})
	}
	if err != nil {
		s.logger.Debug("IPC command failed", zap.String("command", string(req.Command)), zap.Error(err))
		return NewErrorResponse(err.Error())
	}

	s.logger.Debug("IPC command handled", zap.String("command", string(req.Command)))
	resp, err := NewOKResponse(data)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) status(ctx context.Context) (StatusData, error) {
	status := StatusData{
		Host:          s.cfg.Host,
		SessionID:     s.cfg.SessionID,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Running:       true,
	}
	_, err := s.exec.Do(ctx, func(d *desktop.Desktop) (any, error) {
		status.WindowCount = d.Registry().Len()
		status.Focused = d.Registry().FocusedID()
		return nil, nil
	})
	return status, err
}

func (s *Server) send(conn net.Conn, resp *Response) {
	data, err := resp.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal response", zap.Error(err))
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.logger.Warn("failed to send response", zap.Error(err))
	}
}

// Stop gracefully shuts down the IPC server and waits for in-flight
// connections.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	if s.shuttingDown {
		s.shutdownMu.Unlock()
		return
	}
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	os.Remove(s.socketPath)
}
