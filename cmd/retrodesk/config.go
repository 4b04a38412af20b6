package main

import (
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/retrodesk/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  retrodesk config validate [--config PATH]")
	fmt.Fprintln(w, "  retrodesk config print [--config PATH] [--defaults]")
	fmt.Fprintln(w, "  retrodesk config path [--config PATH]")
	fmt.Fprintln(w, "  retrodesk config explain [--config PATH] <yaml.path>")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(stderr)
		return 2
	}
	if isHelp(args) {
		printConfigUsage(stdout)
		return 0
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := configFlag(fs)

	switch args[0] {
	case "validate":
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		res, resolved, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if len(res.Files) == 0 {
			fmt.Fprintf(stdout, "config: ok (%s not found, using defaults)\n", resolved)
			return 0
		}
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, _, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	case "path":
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		resolved, err := config.ResolvePath(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, resolved)
		return 0

	case "explain":
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "explain requires <yaml.path>")
			return 2
		}
		res, _, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "path: %s\n", fs.Arg(0))
		fmt.Fprintf(stdout, "source: %s\n", formatSource(config.Explain(res, fs.Arg(0))))
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n\n", args[0])
		printConfigUsage(stderr)
		return 2
	}
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceEnv:
		return "env:" + src.Name
	default:
		return "default"
	}
}
