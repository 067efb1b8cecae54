package test

import (
	"testing"

	"github.com/idursun/drawbatch/internal/console"
	"github.com/idursun/drawbatch/internal/draw"
	"github.com/stretchr/testify/require"
)

// RenderConsole lets fill submit into a fresh buffer, replays it onto a new
// two-layer console and returns the console's plain text.
func RenderConsole(t testing.TB, width, height int, fill func(buf *draw.CommandBuffer)) string {
	t.Helper()
	buf := draw.NewCommandBuffer()
	screen := console.New(width, height, console.WithLayers(2))
	fill(buf)
	require.NoError(t, buf.Replay(screen))
	return screen.Plain()
}
