// Command drawbatch runs the interactive batched drawing demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/idursun/drawbatch/internal/config"
	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/ui"
)

func main() {
	var configPath string
	var logPath string
	var frames int
	var useScreen bool

	flag.StringVar(&configPath, "config", "", "path to a TOML or YAML config file (DRAWBATCH_* variables override it)")
	flag.StringVar(&logPath, "log", "", "write logs to this file (default: log.file from config)")
	flag.IntVar(&frames, "frames", 0, "render this many frames without a terminal UI and print the last one")
	flag.BoolVar(&useScreen, "screen", false, "draw directly on a tcell screen instead of the bubbletea UI")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logPath == "" {
		logPath = cfg.Log.File
	}

	logger, closeLog, err := newLogger(cfg, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if frames > 0 {
		if err := runHeadless(cfg, logger, frames, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if useScreen {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		screen, err := tcell.NewScreen()
		if err == nil {
			err = runScreen(ctx, screen, cfg, logger)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.New(cfg, ui.WithLogger(logger)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to path through tea.LogToFile so output does not corrupt
// the terminal UI. Without a path, logs are discarded.
func newLogger(cfg config.Config, path string) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return draw.NopLogger(), func() {}, nil
	}
	f, err := tea.LogToFile(path, "drawbatch")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

// runHeadless drives the same scene as the UI for n frames and writes the
// final console with ANSI colors.
func runHeadless(cfg config.Config, logger *slog.Logger, n int, out io.Writer) error {
	model := ui.NewModel(cfg, ui.WithLogger(logger))
	for i := 0; i < n; i++ {
		if err := model.Step(context.Background()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, model.Console().Render())
	logger.Info("headless run finished", "frames", n, "pool", model.PoolStats())
	return err
}
