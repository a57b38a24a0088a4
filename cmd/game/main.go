// spacegarbage renders a ship, a blinking starfield and falling space
// garbage in the terminal.
//
// Usage:
//
//	spacegarbage [flags]
//
// Controls: arrows, WASD or IJKL move the ship, space fires, q quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/loop"
)

var (
	flagConfig        string
	flagRows          int
	flagCols          int
	flagTick          time.Duration
	flagFrames        string
	flagBackend       string
	flagAudio         string
	flagSeed          int64
	flagShowObstacles bool
	flagTicks         uint64
	flagLogFile       string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegarbage",
	Short: "Space garbage terminal animation",
	Long: `Fly a rocket through a blinking starfield while garbage falls from the sky.

Configuration is read from --config, then $SPACEGARBAGE_CONFIG, then the
built-in defaults. Flags override file values.

Examples:
  spacegarbage
  spacegarbage --backend ansi --audio off
  spacegarbage --rows 30 --cols 100 --tick 50ms --show-obstacles
  spacegarbage --frames ./frames --log-file game.log --log-level debug`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	flags.IntVar(&flagRows, "rows", 0, "Window rows (0 = terminal height)")
	flags.IntVar(&flagCols, "cols", 0, "Window columns (0 = terminal width)")
	flags.DurationVar(&flagTick, "tick", loop.DefaultTick, "Pause between ticks")
	flags.StringVar(&flagFrames, "frames", "", "Directory with rocket/ and garbage/ frames (default: built-in)")
	flags.StringVar(&flagBackend, "backend", config.BackendTcell, "Rendering backend: tcell or ansi")
	flags.StringVar(&flagAudio, "audio", config.AudioBell, "Launch sound: speaker, bell, tcell or off")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.BoolVar(&flagShowObstacles, "show-obstacles", false, "Outline falling garbage")
	flags.Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = run until q)")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Window.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Window.Cols = flagCols
	}
	if flags.Changed("tick") {
		cfg.Tick = flagTick
	}
	if flags.Changed("frames") {
		cfg.FramesDir = flagFrames
	}
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("audio") {
		cfg.Audio = flagAudio
	}
	if flags.Changed("seed") && flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flags.Changed("show-obstacles") {
		cfg.ShowObstacles = flagShowObstacles
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	frames, err := loadFrames(cfg.FramesDir)
	if err != nil {
		return fmt.Errorf("load frames: %w", err)
	}
	logger.Info("frames loaded", "dir", cfg.FramesDir, "rocket", len(frames.Rocket), "garbage", len(frames.Garbage))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := openTerminal(cfg)
	if err != nil {
		return err
	}
	defer t.Close()

	audio, closeAudio := newBeeper(cfg.Audio, t, logger)
	defer closeAudio()

	logger.Info("starting",
		"backend", cfg.Backend, "audio", cfg.Audio, "tick", cfg.Tick,
		"rows", t.canvas.Rows(), "cols", t.canvas.Cols(), "seed", cfg.Seed)

	return loop.Run(ctx, loop.Options{
		Canvas:        t.canvas,
		Input:         t.input,
		Audio:         audio,
		Frames:        frames,
		Physics:       cfg.Physics,
		Tick:          cfg.Tick,
		Ticks:         flagTicks,
		Seed:          cfg.Seed,
		ShowObstacles: cfg.ShowObstacles,
		Logger:        logger,
	})
}

func loadFrames(dir string) (frame.Set, error) {
	if dir == "" {
		return frame.Default()
	}
	return frame.LoadDir(dir)
}
