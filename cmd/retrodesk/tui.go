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

	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/runtimepath"
	"github.com/1broseidon/retrodesk/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: retrodesk tui [--config PATH] [--no-serve]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Open the desktop in this terminal. Logs go to a file, never the screen.")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Mouse:")
		fmt.Fprintln(stderr, "  double-click icon       Open or focus its window")
		fmt.Fprintln(stderr, "  drag title bar          Move a window")
		fmt.Fprintln(stderr, "  drag border or corner   Resize a window")
		fmt.Fprintln(stderr, "  [_] [^] [x]             Minimize, maximize, close")
		fmt.Fprintln(stderr, "  taskbar entry           Restore, minimize or focus")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Keys:")
		fmt.Fprintln(stderr, "  s          Start menu")
		fmt.Fprintln(stderr, "  tab        Focus next window")
		fmt.Fprintln(stderr, "  m, z, x    Minimize, maximize, close the focused window")
		fmt.Fprintln(stderr, "  c, t       Cascade, tile")
		fmt.Fprintln(stderr, "  q, Ctrl+C  Quit")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := configFlag(fs)
	noServe := fs.Bool("no-serve", false, "Do not accept IPC commands")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "tui takes no arguments")
		fs.Usage()
		return 2
	}

	res, _, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config

	logFile := cfg.LogFile
	if logFile == "" {
		paths, err := runtimepath.ForHost("tui")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		logFile = paths.Log
	}
	logger, err := newLogger(cfg, logFile, false)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	session := uuid.NewString()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, tui.Options{
		Config: cfg,
		Logger: logger.With(zap.String("session", session)),
		Serve:  !*noServe,
		Server: ipc.ServerConfig{Host: "tui", SessionID: session},
	})
	if err != nil {
		logger.Error("tui failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
