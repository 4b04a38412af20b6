package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/1broseidon/retrodesk/internal/desktop"
	"github.com/1broseidon/retrodesk/internal/gesture"
	"github.com/1broseidon/retrodesk/internal/ipc"
	"github.com/1broseidon/retrodesk/internal/tiling"
)

func printWindowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  retrodesk window list [--json]")
	fmt.Fprintln(w, "  retrodesk window open|close|focus|minimize|toggle|maximize <id>")
	fmt.Fprintln(w, "  retrodesk window move <id> <x> <y>")
	fmt.Fprintln(w, "  retrodesk window resize <id> <n|s|e|w|ne|nw|se|sw> <dx> <dy>")
	fmt.Fprintln(w, "  retrodesk window arrange <cascade|tile>")
}

func runWindow(args []string) int {
	if len(args) == 0 {
		printWindowUsage(stderr)
		return 2
	}
	if isHelp(args) {
		printWindowUsage(stdout)
		return 0
	}

	client := ipc.NewClient()
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(stderr)
		jsonOut := fs.Bool("json", false, "Output the full desktop state as JSON")
		if code, ok := parseFlags(fs, rest); !ok {
			return code
		}
		st, err := client.GetState()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if *jsonOut {
			return printJSON(st)
		}
		printWindows(stdout, st)
		return 0

	case "open", "close", "focus", "minimize", "toggle", "maximize":
		if len(rest) != 1 {
			fmt.Fprintf(stderr, "window %s requires <id>\n", sub)
			return 2
		}
		do := map[string]func(string) (*ipc.CommandResult, error){
			"open":     client.Open,
			"close":    client.Close,
			"focus":    client.Focus,
			"minimize": client.Minimize,
			"toggle":   client.Toggle,
			"maximize": client.Maximize,
		}[sub]
		return report(do(rest[0]))

	case "move":
		if len(rest) != 3 {
			fmt.Fprintln(stderr, "window move requires <id> <x> <y>")
			return 2
		}
		nums, err := atois(rest[1:])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return report(client.Move(rest[0], nums[0], nums[1]))

	case "resize":
		if len(rest) != 4 {
			fmt.Fprintln(stderr, "window resize requires <id> <direction> <dx> <dy>")
			return 2
		}
		dir, err := gesture.ParseDirection(rest[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		nums, err := atois(rest[2:])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return report(client.Resize(rest[0], dir, nums[0], nums[1]))

	case "arrange":
		if len(rest) != 1 {
			fmt.Fprintln(stderr, "window arrange requires <cascade|tile>")
			return 2
		}
		mode, err := tiling.ParseArrangeMode(rest[0])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return report(client.Arrange(mode))

	default:
		fmt.Fprintf(stderr, "Unknown window subcommand: %s\n\n", sub)
		printWindowUsage(stderr)
		return 2
	}
}

func atois(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = n
	}
	return out, nil
}

// report prints a command result and maps it to an exit code.
func report(res *ipc.CommandResult, err error) int {
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "changed: %v\n", res.Changed)
	printWindows(stdout, &res.State)
	return 0
}

// printWindows lists open windows in taskbar order: "*" marks focus, "-"
// a minimized window.
func printWindows(w io.Writer, st *desktop.State) {
	frames := make(map[string]int, len(st.Windows))
	for i, f := range st.Windows {
		frames[f.ID] = i
	}
	for _, e := range st.Taskbar {
		mark := " "
		switch {
		case e.Focused:
			mark = "*"
		case e.Minimized:
			mark = "-"
		}
		line := fmt.Sprintf("%s %-12s %q", mark, e.ID, e.Title)
		if i, ok := frames[e.ID]; ok {
			f := st.Windows[i]
			line += fmt.Sprintf(" at %s size %s z=%d", f.Position, f.Size, f.Z)
			if f.Maximized {
				line += " maximized"
			}
		}
		fmt.Fprintln(w, line)
	}
}

func printJSON(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, string(data))
	return 0
}
