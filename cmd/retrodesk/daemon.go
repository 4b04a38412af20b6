package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/config"
	"github.com/1broseidon/retrodesk/internal/daemon"
	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/logging"
)

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: retrodesk daemon [--config PATH] [--dev]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Host a headless desktop session and serve commands on the IPC socket.")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := configFlag(fs)
	dev := fs.Bool("dev", false, "Human-readable console logs")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	res, _, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config

	logger, err := newLogger(cfg, cfg.LogFile, *dev)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serveDaemon(ctx, cfg, logger.Logger); err != nil {
		logger.Error("daemon failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// serveDaemon runs one desktop session until ctx is done.
func serveDaemon(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	session := uuid.NewString()
	logger = logger.With(zap.String("session", session))

	desk := desktop.New(cfg, logger)
	loop := daemon.NewLoop(desk, logger)

	srv, err := ipc.NewServer(ipc.ServerConfig{Host: "daemon", SessionID: session}, loop, logger)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}
	defer srv.Stop()

	logger.Info("retrodesk daemon started",
		zap.String("socket", srv.SocketPath()),
		zap.Int("catalog", len(cfg.Windows)),
		zap.Stringer("viewport", cfg.Viewport),
	)
	loop.Run(ctx)
	logger.Info("retrodesk daemon stopped")
	return nil
}

func newLogger(cfg *config.Config, file string, dev bool) (*logging.Logger, error) {
	lc := logging.DefaultConfig()
	lc.Level = cfg.LogLevel
	lc.File = file
	lc.Development = dev
	return logging.New(lc)
}
