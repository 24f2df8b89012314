package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-crush/audio"
	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/config"
	"github.com/lixenwraith/vi-crush/constants"
	"github.com/lixenwraith/vi-crush/engine"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-crush: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-crush: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	screen, err := newScreen()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "vi-crush: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crash", zap.Any("panic", r), zap.Stack("stack"))
			closeLog()

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-CRUSH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Audio is optional, the game runs silent if the device cannot open
	sound := audio.NewSoundManager()
	sound.SetMuted(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()

	seed := cfg.Seed
	if seed == 0 {
		seed = board.NewSeed()
	}
	logger.Info("starting",
		zap.Uint64("seed", seed),
		zap.Int("target", cfg.Target),
		zap.Int("moves", cfg.Moves),
	)

	session := engine.New(
		engine.WithTarget(cfg.Target),
		engine.WithMoveBudget(cfg.Moves),
		engine.WithSource(board.NewRandSource(seed, constants.TokenKinds)),
		engine.WithLogger(logger),
	)

	run(screen, NewApp(screen, session, sound, logger))
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize terminal")
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// run is the main loop: events arrive from a polling goroutine, frames on a ticker
func run(screen tcell.Screen, app *App) {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	app.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !app.HandleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			app.Draw()
		}
	}
}
