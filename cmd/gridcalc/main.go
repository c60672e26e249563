package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/gridcalc/internal/app"
	"github.com/1broseidon/gridcalc/internal/config"
	"github.com/1broseidon/gridcalc/internal/layout"
	"github.com/1broseidon/gridcalc/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runCalculator(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gridcalc <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the calculator window")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'gridcalc <command> --help' for command-specific options.")
}

// loadConfig loads path, or the default location when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// runOverrides holds command-line values that take precedence over the file.
type runOverrides struct {
	scale int
	title string
}

func (o runOverrides) apply(cfg *config.Config) error {
	if o.scale != 0 {
		cfg.Scale = o.scale
	}
	if o.title != "" {
		cfg.Title = o.title
	}
	return cfg.Validate()
}

// readTitle reads one line from r. An empty line keeps fallback.
func readTitle(r io.Reader, prompt io.Writer, fallback string) (string, error) {
	fmt.Fprintf(prompt, "Window title [%s]: ", fallback)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if title := strings.TrimSpace(line); title != "" {
		return title, nil
	}
	return fallback, nil
}

func runCalculator(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/gridcalc/config.yaml)")
	scale := fs.Int("scale", 0, "Pixels per layout unit; the window is 16x10 units (default from config)")
	title := fs.String("title", "", "Window title (default from config)")
	promptTitle := fs.Bool("prompt-title", false, "Ask for the window title on stdin (terminal only)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gridcalc run [--config PATH] [--scale N] [--title T] [--prompt-title]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open the calculator window. Click buttons or type digits and operators;")
		fmt.Fprintln(os.Stderr, "press the quit key (default q) or close the window to exit.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "run takes no arguments, got %q\n", fs.Args())
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	cfg := res.Config

	overrides := runOverrides{scale: *scale, title: *title}
	if *promptTitle {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "--prompt-title requires an interactive terminal on stdin")
			return 2
		}
		t, err := readTitle(os.Stdin, os.Stderr, cfg.Title)
		if err != nil {
			log.Printf("Failed to read title: %v", err)
			return 1
		}
		overrides.title = t
	}
	if err := overrides.apply(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := newLogger(os.Stderr, cfg)
	if res.Loaded {
		logger.Info("configuration loaded", "path", res.Path, "scale", cfg.Scale)
	}

	conn, err := x11.NewConnection(cfg.Display)
	if err != nil {
		log.Printf("Failed to connect to display: %v", err)
		return 1
	}

	width, height := layout.WindowSize(cfg.Scale)
	win, err := conn.CreateWindow(x11.WindowOptions{
		Title:      cfg.Title,
		Width:      width,
		Height:     height,
		Font:       cfg.Font,
		Foreground: cfg.Foreground,
		Background: cfg.Background,
	})
	if err != nil {
		conn.Close()
		log.Printf("Failed to create window: %v", err)
		return 1
	}

	// A signal closes the connection, which unblocks NextEvent.
	var interrupted atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		interrupted.Store(true)
		conn.Close()
	}()

	err = app.New(win, cfg, logger).Run()
	if interrupted.Load() {
		// The connection is already gone; nothing left to free.
		logger.Info("interrupted")
		return 0
	}
	if !errors.Is(err, x11.ErrConnectionClosed) {
		win.Close()
		conn.Close()
	}
	if err != nil {
		logger.Error("event loop stopped", "error", err)
		return 1
	}
	return 0
}
