package draw

import (
	"log/slog"
	"sync"
)

// CommandBuffer is the shared, ordered store every batch submits into.
// It grows during a frame and is emptied by Replay.
// All methods are safe for concurrent use, except that Replay must only be
// called from one goroutine at a time.
type CommandBuffer struct {
	mu       sync.Mutex
	entries  []Entry
	poisoned bool

	pool   *Pool
	logger *slog.Logger
}

// NewCommandBuffer creates an empty buffer together with the pool its batches come from.
func NewCommandBuffer(opts ...Option) *CommandBuffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = NopLogger()
	}
	capacity := max(o.bufferCapacity, 0)
	b := &CommandBuffer{
		entries: make([]Entry, 0, capacity),
		pool:    newPool(o.poolSize, o.batchCapacity, logger),
		logger:  logger,
	}
	if o.prewarm {
		b.pool.Warmup(o.poolSize)
	}
	return b
}

// Acquire returns an empty batch from the buffer's pool that submits into this buffer.
func (b *CommandBuffer) Acquire() *Batch {
	batch := b.pool.Acquire()
	batch.target = b
	return batch
}

// Pool returns the pool backing Acquire.
func (b *CommandBuffer) Pool() *Pool {
	return b.pool
}

// Append adds entries to the end of the buffer, keeping their order.
// Entries without a command are skipped.
func (b *CommandBuffer) Append(entries []Entry) error {
	if err := b.lock(); err != nil {
		return err
	}
	defer b.unlock()
	for _, e := range entries {
		if e.Command == nil {
			continue
		}
		b.entries = append(b.entries, e)
	}
	return nil
}

// Clear drops every buffered command.
func (b *CommandBuffer) Clear() error {
	if err := b.lock(); err != nil {
		return err
	}
	defer b.unlock()
	b.reset()
	return nil
}

// Len returns the number of buffered commands.
func (b *CommandBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Snapshot returns a copy of the buffered entries in submission order.
func (b *CommandBuffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Poisoned reports whether a panic escaped a critical section.
func (b *CommandBuffer) Poisoned() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.poisoned
}

func (b *CommandBuffer) reset() {
	clear(b.entries)
	b.entries = b.entries[:0]
}

func (b *CommandBuffer) lock() error {
	b.mu.Lock()
	if b.poisoned {
		b.mu.Unlock()
		return ErrPoisoned
	}
	return nil
}

// unlock must be deferred directly so that it can observe a panic raised while
// the lock is held. Such a panic poisons the buffer and keeps unwinding.
func (b *CommandBuffer) unlock() {
	if r := recover(); r != nil {
		b.poisoned = true
		b.mu.Unlock()
		b.logger.Error("command buffer poisoned", "panic", r)
		panic(r)
	}
	b.mu.Unlock()
}
