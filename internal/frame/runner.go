// Package frame runs draw producers in parallel and replays their output once per frame.
package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/idursun/drawbatch/internal/draw"
	"golang.org/x/sync/errgroup"
)

// Producer fills batches from buf and submits them. It is called once per frame,
// possibly at the same time as other producers.
type Producer func(ctx context.Context, buf *draw.CommandBuffer) error

type namedProducer struct {
	name string
	fn   Producer
}

// FrameStats describes one completed frame.
type FrameStats struct {
	Frame     uint64
	Producers int
	Commands  int
	Duration  time.Duration
}

// Runner owns the frame loop for one buffer and one display.
type Runner struct {
	buf     *draw.CommandBuffer
	display draw.Display
	workers int
	logger  *slog.Logger

	mu        sync.Mutex
	producers []namedProducer
	frame     uint64
}

type Option func(*Runner)

// WithWorkers limits how many producers run at once. Values below 1 mean no limit.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(buf *draw.CommandBuffer, display draw.Display, opts ...Option) *Runner {
	r := &Runner{
		buf:     buf,
		display: display,
		workers: runtime.GOMAXPROCS(0),
		logger:  draw.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a producer. Producers run in registration order when the
// worker limit is 1.
func (r *Runner) Add(name string, p Producer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.producers = append(r.producers, namedProducer{name: name, fn: p})
}

// Frame runs every producer, waits for all of them, then replays the buffer
// onto the display. Whatever was submitted is replayed even when a producer
// fails. The returned error joins all producer errors and the replay error.
func (r *Runner) Frame(ctx context.Context) (FrameStats, error) {
	r.mu.Lock()
	producers := append([]namedProducer(nil), r.producers...)
	r.frame++
	stats := FrameStats{Frame: r.frame, Producers: len(producers)}
	r.mu.Unlock()

	start := time.Now()
	errs := make([]error, len(producers)+1)

	var g errgroup.Group
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}
	for i, p := range producers {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("producer %s: %w", p.name, err)
				return nil
			}
			if err := p.fn(ctx, r.buf); err != nil {
				errs[i] = fmt.Errorf("producer %s: %w", p.name, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	stats.Commands = r.buf.Len()
	errs[len(producers)] = r.buf.Replay(r.display)
	stats.Duration = time.Since(start)

	err := errors.Join(errs...)
	if err != nil {
		r.logger.Warn("frame finished with errors", "frame", stats.Frame, "error", err)
	} else {
		r.logger.Debug("frame finished", "frame", stats.Frame, "commands", stats.Commands, "duration", stats.Duration)
	}
	return stats, err
}
