package main

import (
	"fmt"
	"io"

	"github.com/1broseidon/retrodesk/internal/ipc"
)

func printIconUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  retrodesk icon select|activate|tap <id>")
	fmt.Fprintln(w, "  retrodesk icon clear")
}

func runIcon(args []string) int {
	if len(args) == 0 {
		printIconUsage(stderr)
		return 2
	}
	if isHelp(args) {
		printIconUsage(stdout)
		return 0
	}

	client := ipc.NewClient()
	sub, rest := args[0], args[1:]

	switch sub {
	case "select", "activate", "tap":
		if len(rest) != 1 {
			fmt.Fprintf(stderr, "icon %s requires <id>\n", sub)
			return 2
		}
		do := map[string]func(string) (*ipc.CommandResult, error){
			"select":   client.SelectIcon,
			"activate": client.ActivateIcon,
			"tap":      client.TapIcon,
		}[sub]
		res, err := do(rest[0])
		if code := report(res, err); code != 0 {
			return code
		}
		printIcons(res)
		return 0

	case "clear":
		if len(rest) != 0 {
			fmt.Fprintln(stderr, "icon clear takes no arguments")
			return 2
		}
		return report(client.DeselectAll())

	default:
		fmt.Fprintf(stderr, "Unknown icon subcommand: %s\n\n", sub)
		printIconUsage(stderr)
		return 2
	}
}

func printIcons(res *ipc.CommandResult) {
	for _, ic := range res.State.Icons {
		if ic.Selected {
			fmt.Fprintf(stdout, "selected: %s\n", ic.ID)
		}
	}
}
