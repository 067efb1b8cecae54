// Package draw buffers console drawing commands issued by many goroutines and
// replays them onto a Display once per frame.
//
// # Overview
//
// Producers never touch the display. Each one acquires a Batch, appends
// commands through the builder methods and submits the batch with a priority
// base. Submission is the only synchronized step: it stamps base+index onto
// every command and appends the batch to the shared CommandBuffer under its
// mutex. The frame owner then calls Replay, which sorts the buffer by
// priority (stable, so ties keep submission order), applies every command to
// the Display and empties the buffer.
//
// # Example
//
//	buf := draw.NewCommandBuffer()
//
//	// any goroutine
//	b := buf.Acquire()
//	defer b.Release()
//	b.Cls().Print(geom.Pt(0, 0), "hi")
//	if err := b.Submit(draw.ZUI); err != nil {
//	    return err
//	}
//
//	// frame owner
//	if err := buf.Replay(console); err != nil {
//	    return err
//	}
//
// # Pooling
//
// Batches come from a bounded Pool. Release hands the storage back; when the
// pool is empty Acquire allocates, and when it is full Release drops the
// storage, so neither ever blocks.
//
// # Errors
//
// A panic that escapes while the buffer lock is held, for example from a
// Display method during Replay, poisons the buffer. Every later Append, Clear,
// Submit or Replay returns ErrPoisoned.
package draw
