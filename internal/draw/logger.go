package draw

import (
	"context"
	"log/slog"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that drops everything. It is the default for
// every component that takes an optional *slog.Logger.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }
