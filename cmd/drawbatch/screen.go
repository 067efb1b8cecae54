package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/idursun/drawbatch/internal/config"
	"github.com/idursun/drawbatch/internal/ui"
)

// runScreen drives the scene directly on a tcell screen, without bubbletea,
// until q, esc or ctrl+c is pressed or ctx is done.
func runScreen(ctx context.Context, screen tcell.Screen, cfg config.Config, logger *slog.Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	model := ui.NewModel(cfg, ui.WithLogger(logger))
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					logger.Info("screen closed", "pool", model.PoolStats())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := model.Step(ctx); err != nil {
				return err
			}
			model.Console().Flush(screen)
			screen.Show()
		}
	}
}
