package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop"
	gameconfig "github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/tcellui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SNAKE_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := config.NewLogger(logOut, "snake")
	if err != nil {
		logger.Warn("Invalid log level, using default", "err", err)
	}

	settings, err := gameconfig.FromEnv()
	if err != nil {
		logger.Warn("Invalid settings, using defaults", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := loop.NewController(settings, logger)

	backend := config.GetEnv("SNAKE_BACKEND", "tcell")
	logger.Info("Starting game", "backend", backend, "tick", settings.TickDelay, "fps", settings.MaxFPS)

	switch backend {
	case "tcell":
		return runTcell(ctx, c)
	case "ansi":
		return runANSI(ctx, c)
	default:
		return fmt.Errorf("unknown backend %q (want tcell or ansi)", backend)
	}
}

func runTcell(ctx context.Context, c *loop.Controller) error {
	ui, err := tcellui.New()
	if err != nil {
		return err
	}
	defer ui.Close()

	return loop.Run(ctx, c, ui, ui, nil)
}

func runANSI(ctx context.Context, c *loop.Controller) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	renderer := loop.NewTerminalRenderer(os.Stdout, nil)
	if err := renderer.Start(); err != nil {
		return err
	}
	defer func() {
		_ = renderer.Stop()
	}()

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	return loop.Run(ctx, c, stream, renderer, nil)
}
