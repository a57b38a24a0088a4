package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/sound"
)

// terminal bundles the rendering surface, key source and bell of one
// backend, plus the teardown that restores the user's terminal.
type terminal struct {
	canvas  *draw.Canvas
	input   input.Source
	bell    sound.Beeper
	screen  tcell.Screen // nil for the ANSI backend
	restore func()
}

func openTerminal(cfg config.Config) (*terminal, error) {
	if cfg.Backend == config.BackendANSI {
		return openANSI(cfg.Window)
	}
	return openTcell(cfg.Window)
}

func openTcell(window config.Window) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &terminal{
		canvas:  draw.NewCanvas(draw.NewScreen(screen), window.Rows, window.Cols),
		input:   input.StartEvents(screen),
		bell:    sound.ScreenBell{Screen: screen},
		screen:  screen,
		restore: screen.Fini,
	}, nil
}

func openANSI(window config.Window) (*terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	width, height, err := draw.DefaultTermSizeFunc()
	if err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("terminal size: %w", err)
	}

	draw.HideCursor(os.Stdout)
	draw.ClearScreen(os.Stdout)
	restore := func() {
		draw.ClearScreen(os.Stdout)
		draw.ShowCursor(os.Stdout)
		_ = term.Restore(fd, oldState)
	}

	return &terminal{
		canvas:  draw.NewCanvas(draw.NewBuffer(os.Stdout, height, width), window.Rows, window.Cols),
		input:   input.StartStream(bufio.NewReader(os.Stdin)),
		bell:    sound.Bell{W: os.Stdout},
		restore: restore,
	}, nil
}

// Close restores the terminal.
func (t *terminal) Close() {
	t.restore()
}
