package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/1broseidon/retrodesk/internal/config"
	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/mcp"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: retrodesk mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'retrodesk mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(stderr)
		return 2
	}
}

func runMCPServe(args []string) int {
	if isHelp(args) {
		fmt.Fprintln(stdout, "Usage: retrodesk mcp serve")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Start the MCP server on stdio. Tools are forwarded to the running")
		fmt.Fprintln(stdout, "daemon or TUI, so start one of those first.")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Example:")
		fmt.Fprintln(stdout, "  claude mcp add retrodesk -- retrodesk mcp serve")
		return 0
	}
	if len(args) != 0 {
		fmt.Fprintln(stderr, "mcp serve takes no arguments")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// stdout carries the protocol, so logs go to stderr or the log file.
	logger, err := newLogger(cfg, cfg.LogFile, false)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	server := mcp.NewServer(ipc.NewClient(), logger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("MCP server error", zap.Error(err))
		return 1
	}
	return 0
}
