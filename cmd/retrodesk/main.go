package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/retrodesk/internal/config"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(stdout)
		os.Exit(0)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(cmd string, args []string) int {
	switch cmd {
	case "daemon":
		return runDaemon(args)
	case "tui":
		return runTUI(args)
	case "status":
		return runStatus(args)
	case "window":
		return runWindow(args)
	case "icon":
		return runIcon(args)
	case "config":
		return runConfig(args)
	case "mcp":
		return runMCP(args)
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: retrodesk <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Host a headless desktop (foreground)")
	fmt.Fprintln(w, "  tui                 Open the desktop in this terminal")
	fmt.Fprintln(w, "  status              Show host status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  window list         List open windows")
	fmt.Fprintln(w, "  window open         Open or focus a window")
	fmt.Fprintln(w, "  window close        Close a window")
	fmt.Fprintln(w, "  window focus        Focus a window")
	fmt.Fprintln(w, "  window minimize     Minimize a window")
	fmt.Fprintln(w, "  window toggle       Click a window's taskbar entry")
	fmt.Fprintln(w, "  window maximize     Maximize or restore a window")
	fmt.Fprintln(w, "  window move         Drag a window to a position")
	fmt.Fprintln(w, "  window resize       Drag a window's resize handle")
	fmt.Fprintln(w, "  window arrange      Cascade or tile all windows")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  icon select         Select a desktop icon")
	fmt.Fprintln(w, "  icon activate       Double-click a desktop icon")
	fmt.Fprintln(w, "  icon tap            Tap a desktop icon")
	fmt.Fprintln(w, "  icon clear          Deselect all icons")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config path         Print the configuration file path")
	fmt.Fprintln(w, "  config explain      Explain where a config value comes from")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'retrodesk <command> --help' for command-specific options.")
}

// isHelp reports whether args asks for help.
func isHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help")
}

// parseFlags parses args into fs, mapping -h to exit code 0 and any other
// parse failure to 2. ok is false when the caller should return code.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", "", "Config file path (default: $RETRODESK_CONFIG or ~/.config/retrodesk/config.yaml)")
}

// loadConfig loads the configuration from path, or from the resolved
// default location when path is empty.
func loadConfig(path string) (*config.LoadResult, string, error) {
	resolved, err := config.ResolvePath(path)
	if err != nil {
		return nil, "", err
	}
	res, err := config.LoadFromPath(resolved)
	if err != nil {
		return nil, resolved, err
	}
	return res, resolved, nil
}
