package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
	"github.com/vovakirdan/tui-dasher/internal/platform/tui"
	"github.com/vovakirdan/tui-dasher/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Config errors are fatal before the terminal is taken over
	cfg, err := config.LoadDasher(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game := dasher.New(cfg)

	// Continue without storage - the game still works
	var recorder tui.RunStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "err", err)
	} else {
		recorder = store
	}

	runErr := tui.Run(game, recorder, logger, runtime, cfg.Runtime.MaxFrameTime)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("program failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
