package draw

import "log/slog"

const (
	// DefaultPoolSize is the number of idle batches a pool keeps around.
	DefaultPoolSize = 128
	// DefaultBatchCapacity is the initial number of commands a fresh batch can hold.
	DefaultBatchCapacity = 5000
	// DefaultBufferCapacity is the initial capacity of the shared command buffer.
	DefaultBufferCapacity = 10000
)

// Option configures a CommandBuffer during creation.
//
// Example:
//
//	buf := draw.NewCommandBuffer(
//	    draw.WithPoolSize(64),
//	    draw.WithLogger(slog.Default()),
//	)
type Option func(*options)

type options struct {
	poolSize       int
	batchCapacity  int
	bufferCapacity int
	prewarm        bool
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		poolSize:       DefaultPoolSize,
		batchCapacity:  DefaultBatchCapacity,
		bufferCapacity: DefaultBufferCapacity,
		prewarm:        true,
	}
}

// WithPoolSize bounds how many released batches are kept for reuse.
// Batches released while the pool is full are dropped.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithBatchCapacity sets the initial command capacity of newly allocated batches.
func WithBatchCapacity(n int) Option {
	return func(o *options) {
		o.batchCapacity = n
	}
}

// WithBufferCapacity sets the initial capacity of the shared buffer.
func WithBufferCapacity(n int) Option {
	return func(o *options) {
		o.bufferCapacity = n
	}
}

// WithPrewarm controls whether the pool is filled with idle batches up front.
// It is on by default; WithPrewarm(false) allocates on first use instead.
func WithPrewarm(enabled bool) Option {
	return func(o *options) {
		o.prewarm = enabled
	}
}

// WithLogger sets the logger used by the buffer and its pool.
// Pass nil to keep logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
