package draw

import "errors"

var (
	// ErrPoisoned indicates a panic escaped while the command buffer lock was held.
	// The buffer contents can no longer be trusted and every later operation fails.
	ErrPoisoned = errors.New("draw: command buffer poisoned")
	// ErrNoTarget is returned when submitting a batch that has no command buffer to submit to.
	ErrNoTarget = errors.New("draw: batch has no target buffer")
	// ErrBatchReleased is returned when submitting a batch after Release.
	ErrBatchReleased = errors.New("draw: batch already released")
)
