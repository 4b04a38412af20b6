package main

import (
	"flag"
	"fmt"

	"github.com/1broseidon/retrodesk/internal/ipc"
)

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: retrodesk status")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Show host status via IPC.")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "host:           %s\n", status.Host)
	fmt.Fprintf(stdout, "session:        %s\n", status.SessionID)
	fmt.Fprintf(stdout, "running:        %v\n", status.Running)
	fmt.Fprintf(stdout, "window_count:   %d\n", status.WindowCount)
	fmt.Fprintf(stdout, "focused:        %s\n", status.Focused)
	fmt.Fprintf(stdout, "uptime_seconds: %d\n", status.UptimeSeconds)
	return 0
}
