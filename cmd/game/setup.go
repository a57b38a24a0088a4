package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/sound"
)

// newLogger builds the application logger. The terminal is drawn on, so
// logs only go to a file when one is configured.
func newLogger(cfg config.Log) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacegarbage",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newBeeper picks the launch sound. A speaker that cannot be opened falls
// back to the terminal bell.
func newBeeper(kind string, t *terminal, logger *log.Logger) (sound.Beeper, func()) {
	switch kind {
	case config.AudioOff:
		return sound.Mute{}, func() {}
	case config.AudioTcell:
		if t.screen != nil {
			return sound.ScreenBell{Screen: t.screen}, func() {}
		}
		return t.bell, func() {}
	case config.AudioSpeaker:
		s, err := sound.NewSpeaker()
		if err != nil {
			logger.Warn("speaker unavailable, using bell", "err", err)
			return t.bell, func() {}
		}
		return s, s.Close
	default:
		return t.bell, func() {}
	}
}
