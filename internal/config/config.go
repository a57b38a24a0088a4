package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/spacegarbage/internal/physics"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Environment variables.
const (
	EnvConfig   = "SPACEGARBAGE_CONFIG"
	EnvLogLevel = "SPACEGARBAGE_LOG_LEVEL"
)

// Rendering backends.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Audio outputs.
const (
	AudioSpeaker = "speaker"
	AudioBell    = "bell"
	AudioTcell   = "tcell"
	AudioOff     = "off"
)

// Window is the requested grid size. Zero uses the terminal size.
type Window struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Log configures the log output. An empty file discards logs, since the
// terminal belongs to the animation.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the complete runtime configuration.
type Config struct {
	Window        Window         `yaml:"window"`
	Tick          time.Duration  `yaml:"tick"`
	Physics       physics.Config `yaml:"physics"`
	FramesDir     string         `yaml:"frames_dir"`
	Backend       string         `yaml:"backend"`
	Audio         string         `yaml:"audio"`
	ShowObstacles bool           `yaml:"show_obstacles"`
	Seed          int64          `yaml:"seed"`
	Log           Log            `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tick:    100 * time.Millisecond,
		Physics: physics.DefaultConfig(),
		Backend: BackendTcell,
		Audio:   AudioBell,
		Seed:    time.Now().UnixNano(),
		Log:     Log{Level: "info"},
	}
}

// Load reads the configuration file on top of the defaults.
// Search order: customPath -> $SPACEGARBAGE_CONFIG -> defaults.
// The log level can be overridden with $SPACEGARBAGE_LOG_LEVEL.
func Load(customPath string) (Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		path = GetEnv(EnvConfig, "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.Log.Level = GetEnv(EnvLogLevel, cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Window.Rows < 0 || c.Window.Cols < 0:
		return fmt.Errorf("%w: window size must not be negative, got %dx%d", ErrInvalid, c.Window.Rows, c.Window.Cols)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Tick)
	}

	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}

	switch c.Audio {
	case AudioSpeaker, AudioBell, AudioOff:
	case AudioTcell:
		if c.Backend != BackendTcell {
			return fmt.Errorf("%w: audio %q needs the %s backend", ErrInvalid, c.Audio, BackendTcell)
		}
	default:
		return fmt.Errorf("%w: unknown audio %q", ErrInvalid, c.Audio)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: physics: %w", ErrInvalid, err)
	}
	return nil
}
