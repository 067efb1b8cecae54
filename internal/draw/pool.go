package draw

import (
	"log/slog"
	"sync/atomic"
)

// block is the reusable storage behind a Batch.
type block struct {
	entries []Entry
}

// Pool is a bounded free list of batch storage.
//
// Acquire and Release never block: an empty pool allocates a fresh block and a
// full pool drops the released one. The pool synchronizes through its channel
// only and never touches a CommandBuffer lock.
//
// Usage:
//
//	b := pool.Acquire()
//	defer b.Release()
//	b.Cls().Print(geom.Pt(0, 0), "hello")
//	err := b.SubmitTo(buf, draw.ZUI)
type Pool struct {
	free          chan *block
	batchCapacity int
	logger        *slog.Logger

	hits    atomic.Uint64
	misses  atomic.Uint64
	dropped atomic.Uint64
}

// PoolStats reports pool usage counters.
type PoolStats struct {
	// Hits counts acquisitions served from idle storage.
	Hits uint64
	// Misses counts acquisitions that had to allocate.
	Misses uint64
	// Dropped counts releases discarded because the pool was full.
	Dropped uint64
	// Idle is the number of blocks currently waiting for reuse.
	Idle int
}

// NewPool creates a pool holding at most size idle batches, each allocated with
// room for batchCapacity commands.
func NewPool(size, batchCapacity int) *Pool {
	return newPool(size, batchCapacity, nil)
}

func newPool(size, batchCapacity int, logger *slog.Logger) *Pool {
	if size < 0 {
		size = 0
	}
	if batchCapacity < 0 {
		batchCapacity = 0
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Pool{
		free:          make(chan *block, size),
		batchCapacity: batchCapacity,
		logger:        logger,
	}
}

// Acquire returns an empty batch owned exclusively by the caller.
// The returned batch has no submit target; use SubmitTo.
func (p *Pool) Acquire() *Batch {
	return &Batch{block: p.get(), pool: p}
}

func (p *Pool) get() *block {
	select {
	case blk := <-p.free:
		p.hits.Add(1)
		return blk
	default:
	}
	p.misses.Add(1)
	return &block{entries: make([]Entry, 0, p.batchCapacity)}
}

func (p *Pool) put(blk *block) {
	clear(blk.entries)
	blk.entries = blk.entries[:0]
	select {
	case p.free <- blk:
	default:
		p.dropped.Add(1)
		p.logger.Debug("batch pool full, dropping block", "size", cap(p.free))
	}
}

// Warmup allocates idle blocks until the pool holds n of them or is full.
func (p *Pool) Warmup(n int) {
	for i := 0; i < n; i++ {
		blk := &block{entries: make([]Entry, 0, p.batchCapacity)}
		select {
		case p.free <- blk:
		default:
			return
		}
	}
}

// Size returns the maximum number of idle blocks.
func (p *Pool) Size() int {
	return cap(p.free)
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Hits:    p.hits.Load(),
		Misses:  p.misses.Load(),
		Dropped: p.dropped.Load(),
		Idle:    len(p.free),
	}
}
