// Package config loads the bramble command configuration with viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/bramble"
	"github.com/spf13/viper"
)

// Config is the bramble command configuration.
type Config struct {
	Window      WindowConfig     `mapstructure:"window"`
	Debug       bool             `mapstructure:"debug"`
	ShowFPS     bool             `mapstructure:"show_fps"`
	LogLevel    string           `mapstructure:"log_level"`
	Screenshots ScreenshotConfig `mapstructure:"screenshots"`
}

// WindowConfig controls the demo window.
type WindowConfig struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Scale     float64 `mapstructure:"scale"`
	TPS       int     `mapstructure:"tps"`
	Resizable bool    `mapstructure:"resizable"`
}

// ScreenshotConfig controls where scripted screenshots are written.
type ScreenshotConfig struct {
	Dir string `mapstructure:"dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     512,
			Height:    512,
			Scale:     1,
			TPS:       60,
			Resizable: true,
		},
		LogLevel:    "info",
		Screenshots: ScreenshotConfig{Dir: "screenshots"},
	}
}

// SetDefaults registers the defaults with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("window.width", defaults.Window.Width)
	viper.SetDefault("window.height", defaults.Window.Height)
	viper.SetDefault("window.scale", defaults.Window.Scale)
	viper.SetDefault("window.tps", defaults.Window.TPS)
	viper.SetDefault("window.resizable", defaults.Window.Resizable)

	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("show_fps", defaults.ShowFPS)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("screenshots.dir", defaults.Screenshots.Dir)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: window.scale %v must be positive", c.Window.Scale))
	}
	if c.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("config: window.tps %d must not be negative", c.Window.TPS))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level. Debug mode lowers it to debug so
// that frame statistics are printed.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("config: unknown log_level %q", s)
}

// RunConfig returns the window configuration for a demo.
func (c *Config) RunConfig(title string) bramble.RunConfig {
	return bramble.RunConfig{
		Title:         title,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		Scale:         c.Window.Scale,
		TPS:           c.Window.TPS,
		Resizable:     c.Window.Resizable,
		Debug:         c.Debug,
		ShowFPS:       c.ShowFPS,
		ClearColor:    bramble.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
		ScreenshotDir: c.Screenshots.Dir,
	}
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bramble")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bramble"
	}
	return filepath.Join(home, ".config", "bramble")
}
