package draw_test

import (
	"testing"

	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_BuilderAppendsInOrder(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()

	b.Cls().
		Print(geom.Pt(1, 2), "hi").
		SetAllAlpha(0.5, 1)

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, draw.ClearScreen{}, entries[0].Command)
	assert.Equal(t, draw.Print{Pos: geom.Pt(1, 2), Text: "hi"}, entries[1].Command)
	assert.Equal(t, draw.SetAllAlpha{Fg: 0.5, Bg: 1}, entries[2].Command)
	for _, e := range entries {
		assert.Equal(t, uint(0), e.Priority)
	}
}

func TestBatch_SubmitStampsBasePlusIndex(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()

	b.Cls().Cls().Cls()
	require.NoError(t, b.Submit(100))

	snapshot := buf.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, uint(100), snapshot[0].Priority)
	assert.Equal(t, uint(101), snapshot[1].Priority)
	assert.Equal(t, uint(102), snapshot[2].Priority)
}

func TestBatch_SubmitEmptiesBatchForReuse(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()

	b.Print(geom.Pt(0, 0), "one")
	require.NoError(t, b.Submit(0))
	assert.Equal(t, 0, b.Len())

	b.Print(geom.Pt(0, 0), "two")
	require.NoError(t, b.Submit(10))
	assert.Equal(t, 2, buf.Len())
}

func TestBatch_SubmitWithoutTarget(t *testing.T) {
	pool := draw.NewPool(4, 16)
	b := pool.Acquire()
	defer b.Release()

	b.Cls()
	assert.ErrorIs(t, b.Submit(0), draw.ErrNoTarget)
	assert.Equal(t, 1, b.Len(), "failed submit keeps the commands")
	assert.ErrorIs(t, b.SubmitTo(nil, 0), draw.ErrNoTarget)

	buf := draw.NewCommandBuffer()
	require.NoError(t, b.SubmitTo(buf, 0))
	assert.Equal(t, 1, buf.Len())
}

func TestBatch_ReleaseDiscardsAndIsIdempotent(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	b.Cls().Print(geom.Pt(0, 0), "never")
	b.Release()
	b.Release()

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 0, b.Len())
	assert.ErrorIs(t, b.Submit(0), draw.ErrBatchReleased)
	assert.ErrorIs(t, b.SubmitTo(buf, 0), draw.ErrBatchReleased)

	b.Cls()
	assert.Equal(t, 0, b.Len(), "builder calls after release are ignored")
}

func TestBatch_OptionalArgumentsAreCopied(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()

	clip := geom.WithSize(0, 0, 5, 5)
	bg := palette.Red
	b.SetClipping(&clip).
		Printer(geom.Pt(0, 0), "x", geom.AlignLeft, &bg).
		SetClipping(nil)

	clip.X2 = 99
	bg = palette.Blue

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, geom.WithSize(0, 0, 5, 5), *entries[0].Command.(draw.SetClipping).Clip)
	assert.Equal(t, palette.Red, *entries[1].Command.(draw.Printer).Background)
	assert.Nil(t, entries[2].Command.(draw.SetClipping).Clip)
}

func TestBatch_EveryBuilderMapsToItsKind(t *testing.T) {
	b := draw.NewPool(1, 0).Acquire()
	defer b.Release()
	addEveryCommand(b)

	var kinds []draw.Kind
	for _, e := range b.Entries() {
		kinds = append(kinds, e.Command.Kind())
	}
	assert.Equal(t, draw.Kinds(), kinds)
}

// addEveryCommand calls each builder once, in Kind declaration order.
func addEveryCommand(b *draw.Batch) {
	white := palette.Pair(palette.White, palette.Black)
	clip := geom.WithSize(1, 1, 3, 3)
	b.Cls().
		ClsColor(palette.Navy).
		Target(1).
		Set(geom.Pt(1, 1), white, '@').
		SetBg(geom.Pt(2, 2), palette.Red).
		Print(geom.Pt(0, 0), "print").
		PrintColor(geom.Pt(0, 1), "color", white).
		PrintRight(geom.Pt(10, 2), "right").
		PrintColorRight(geom.Pt(10, 3), "cright", white).
		PrintCentered(4, "centered").
		PrintColorCentered(5, "ccentered", white).
		PrintCenteredAt(geom.Pt(5, 6), "at").
		PrintColorCenteredAt(geom.Pt(5, 7), "cat", white).
		Printer(geom.Pt(0, 8), "#[red]p#[]", geom.AlignRight, nil).
		DrawBox(geom.WithSize(0, 0, 4, 4), white).
		DrawHollowBox(geom.WithSize(0, 0, 4, 4), white).
		DrawDoubleBox(geom.WithSize(0, 0, 4, 4), white).
		DrawHollowDoubleBox(geom.WithSize(0, 0, 4, 4), white).
		FillRegion(geom.WithSize(0, 0, 2, 2), white, '#').
		BarHorizontal(geom.Pt(0, 9), 10, 3, 10, white).
		BarVertical(geom.Pt(0, 0), 5, 1, 5, white).
		SetClipping(&clip).
		SetAllFgAlpha(0.25).
		SetAllBgAlpha(0.75).
		SetAllAlpha(0.5, 1)
}
