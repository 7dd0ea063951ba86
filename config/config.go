// Package config resolves runtime settings from ORRERY_* environment variables
// with command-line flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
)

// Color modes accepted by -color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the resolved runtime configuration
type Config struct {
	FPS       int     `env:"ORRERY_FPS" envDefault:"60"`
	ColorMode string  `env:"ORRERY_COLOR" envDefault:"auto"`
	Audio     bool    `env:"ORRERY_AUDIO" envDefault:"true"`
	Debug     bool    `env:"ORRERY_DEBUG" envDefault:"false"`
	Path      string  `env:"ORRERY_PATH" envDefault:"/"`
	Increment float64 `env:"ORRERY_INCREMENT" envDefault:"0.01"`
	Window    bool    `env:"ORRERY_WINDOW" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then applies flags from args on top
// Flags default to the environment value so only explicitly passed flags override
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "Ring a chime on completed revolutions")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to logs/orrery.log")
	fs.StringVar(&cfg.Path, "path", cfg.Path, "Initial route")
	fs.Float64Var(&cfg.Increment, "increment", cfg.Increment, "Orbit base increment per tick")
	fs.BoolVar(&cfg.Window, "window", cfg.Window, "Open a desktop window instead of the terminal")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the frame loop or simulator cannot run with
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1..240", c.FPS)
	}
	if !(c.Increment > 0) || math.IsInf(c.Increment, 1) {
		return fmt.Errorf("increment must be positive and finite, got %v", c.Increment)
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	if len(c.Path) == 0 || c.Path[0] != '/' {
		return fmt.Errorf("path %q must start with /", c.Path)
	}
	return nil
}

// FrameInterval converts FPS to a ticker period
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}
