package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/gridcalc/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gridcalc config validate [--config PATH]")
	fmt.Fprintln(w, "  gridcalc config print [--config PATH] [--defaults]")
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path (default: ~/.config/gridcalc/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		return validateConfig(os.Stdout, os.Stderr, *path)

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path (default: ~/.config/gridcalc/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		return printConfig(os.Stdout, os.Stderr, *path, *printDefaults)

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func validateConfig(stdout, stderr io.Writer, path string) int {
	res, err := loadConfig(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if res.Loaded {
		fmt.Fprintf(stdout, "config: ok (%s)\n", res.Path)
	} else {
		fmt.Fprintf(stdout, "config: ok (no file at %s, using defaults)\n", res.Path)
	}
	return 0
}

func printConfig(stdout, stderr io.Writer, path string, defaults bool) int {
	cfg := config.DefaultConfig()
	if !defaults {
		res, err := loadConfig(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cfg = res.Config
		fmt.Fprintf(stdout, "# source: %s\n", res.Path)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprint(stdout, string(data))
	return 0
}
