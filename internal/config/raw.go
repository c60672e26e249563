package config

// RawConfig mirrors Config with pointer fields so an explicit zero value in
// the file (keyboard: false, background: 0) can be told apart from an unset key.
type RawConfig struct {
	Title      *string  `yaml:"title"`
	Scale      *int     `yaml:"scale"`
	Font       *string  `yaml:"font"`
	Foreground *uint32  `yaml:"foreground"`
	Background *uint32  `yaml:"background"`
	Thickness  *float64 `yaml:"thickness"`
	QuitKey    *string  `yaml:"quit_key"`
	Keyboard   *bool    `yaml:"keyboard"`
	LogLevel   *string  `yaml:"log_level"`
	Display    *string  `yaml:"display"`
}

// apply overlays every set field of raw onto cfg.
func (raw RawConfig) apply(cfg *Config) {
	if raw.Title != nil {
		cfg.Title = *raw.Title
	}
	if raw.Scale != nil {
		cfg.Scale = *raw.Scale
	}
	if raw.Font != nil {
		cfg.Font = *raw.Font
	}
	if raw.Foreground != nil {
		cfg.Foreground = *raw.Foreground
	}
	if raw.Background != nil {
		cfg.Background = *raw.Background
	}
	if raw.Thickness != nil {
		cfg.Thickness = *raw.Thickness
	}
	if raw.QuitKey != nil {
		cfg.QuitKey = *raw.QuitKey
	}
	if raw.Keyboard != nil {
		cfg.Keyboard = *raw.Keyboard
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
}
