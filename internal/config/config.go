package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the effective gridcalc configuration.
type Config struct {
	Title      string  `yaml:"title"`
	Scale      int     `yaml:"scale"`
	Font       string  `yaml:"font"`
	Foreground uint32  `yaml:"foreground"`
	Background uint32  `yaml:"background"`
	Thickness  float64 `yaml:"thickness"`
	QuitKey    string  `yaml:"quit_key"`
	Keyboard   bool    `yaml:"keyboard"`
	LogLevel   string  `yaml:"log_level"`

	// Display overrides $DISPLAY for the X connection when set.
	Display string `yaml:"display,omitempty"`
}

// Scale bounds. Below MinScale the keypad cells collapse; MaxScale keeps the
// 16*scale wide window inside X11's 16-bit coordinate space.
const (
	MinScale = 8
	MaxScale = 2047
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:      "gridcalc",
		Scale:      40,
		Font:       "7x13",
		Foreground: 0xffffff,
		Background: 0x000000,
		Thickness:  2,
		QuitKey:    "q",
		Keyboard:   true,
		LogLevel:   "info",
	}
}

// ValidationError reports a bad value at a YAML path, with the file position
// when the value came from a config file.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validate checks the configuration for values the window cannot honor.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Path: "title", Err: fmt.Errorf("title must not be empty")}
	}
	if c.Scale < MinScale || c.Scale > MaxScale {
		return &ValidationError{Path: "scale", Err: fmt.Errorf("scale must be between %d and %d, got %d", MinScale, MaxScale, c.Scale)}
	}
	if c.Foreground > 0xffffff {
		return &ValidationError{Path: "foreground", Err: fmt.Errorf("foreground must be a 24-bit RGB value")}
	}
	if c.Background > 0xffffff {
		return &ValidationError{Path: "background", Err: fmt.Errorf("background must be a 24-bit RGB value")}
	}
	if c.Thickness < 0 {
		return &ValidationError{Path: "thickness", Err: fmt.Errorf("thickness must be >= 0")}
	}
	if 2*c.Thickness > float64(c.Scale) {
		return &ValidationError{Path: "thickness", Err: fmt.Errorf("thickness %.1f is too large for scale %d", c.Thickness, c.Scale)}
	}
	if strings.TrimSpace(c.QuitKey) == "" {
		return &ValidationError{Path: "quit_key", Err: fmt.Errorf("quit_key must not be empty")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// SlogLevel returns the configured log level. Validate guarantees it parses.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps a config log level name to a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warning or error)", name)
	}
}
