package draw_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_LowerBaseReplaysFirst(t *testing.T) {
	buf := draw.NewCommandBuffer()

	a := buf.Acquire()
	defer a.Release()
	a.Cls().Print(geom.Pt(0, 0), "hi")
	require.NoError(t, a.Submit(1000))

	b := buf.Acquire()
	defer b.Release()
	b.SetAllAlpha(0.5, 1.0)
	require.NoError(t, b.Submit(0))

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))

	assert.Equal(t, []string{
		"SetAllAlpha(0.5,1)",
		"Cls()",
		`Print(0,0,"hi")`,
	}, rec.Calls())
}

func TestReplay_EqualBaseKeepsSubmissionOrder(t *testing.T) {
	buf := draw.NewCommandBuffer()

	first := buf.Acquire()
	first.Print(geom.Pt(0, 0), "first")
	require.NoError(t, first.Submit(500))
	first.Release()

	second := buf.Acquire()
	second.Print(geom.Pt(0, 0), "second")
	require.NoError(t, second.Submit(500))
	second.Release()

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))
	assert.Equal(t, []string{`Print(0,0,"first")`, `Print(0,0,"second")`}, rec.Calls())
}

func TestReplay_PreservesOrderWithinBatch(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()
	for i := 0; i < 50; i++ {
		b.Print(geom.Pt(i, 0), fmt.Sprint(i))
	}
	require.NoError(t, b.Submit(draw.ZWorld))

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))

	calls := rec.Calls()
	require.Len(t, calls, 50)
	for i, call := range calls {
		assert.Equal(t, fmt.Sprintf("Print(%d,0,%q)", i, fmt.Sprint(i)), call)
	}
}

func TestReplay_SecondReplayIsEmpty(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()
	b.Cls()
	require.NoError(t, b.Submit(0))

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))
	assert.Len(t, rec.Calls(), 1)
	assert.Equal(t, 0, buf.Len())

	rec.Reset()
	require.NoError(t, buf.Replay(rec))
	assert.Empty(t, rec.Calls())
}

func TestReplay_DiscardedBatchDoesNotLeak(t *testing.T) {
	buf := draw.NewCommandBuffer()

	kept := buf.Acquire()
	kept.Print(geom.Pt(0, 0), "kept")
	require.NoError(t, kept.Submit(0))
	kept.Release()

	dropped := buf.Acquire()
	dropped.Print(geom.Pt(0, 0), "dropped")
	dropped.Release()

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))
	assert.Equal(t, []string{`Print(0,0,"kept")`}, rec.Calls())
}

func TestReplay_EveryKindDispatchesOnce(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()
	addEveryCommand(b)
	require.NoError(t, b.Submit(0))

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))

	assert.Equal(t, []string{
		"Cls()",
		"ClsBg(#000080)",
		"SetActiveConsole(1)",
		"Set(1,1,#ffffff,#000000,64)",
		"SetBg(2,2,#ff0000)",
		`Print(0,0,"print")`,
		`PrintColor(0,1,#ffffff,#000000,"color")`,
		`PrintRight(10,2,"right")`,
		`PrintColorRight(10,3,#ffffff,#000000,"cright")`,
		`PrintCentered(4,"centered")`,
		`PrintColorCentered(5,#ffffff,#000000,"ccentered")`,
		`PrintCenteredAt(5,6,"at")`,
		`PrintColorCenteredAt(5,7,#ffffff,#000000,"cat")`,
		`Printer(0,8,"#[red]p#[]",right,nil)`,
		"DrawBox(0,0,4,4,#ffffff,#000000)",
		"DrawHollowBox(0,0,4,4,#ffffff,#000000)",
		"DrawBoxDouble(0,0,4,4,#ffffff,#000000)",
		"DrawHollowBoxDouble(0,0,4,4,#ffffff,#000000)",
		"FillRegion(0,0,2,2,35,#ffffff,#000000)",
		"DrawBarHorizontal(0,9,10,3,10,#ffffff,#000000)",
		"DrawBarVertical(0,0,5,1,5,#ffffff,#000000)",
		"SetClipping(1,1,4,4)",
		"SetAllFgAlpha(0.25)",
		"SetAllBgAlpha(0.75)",
		"SetAllAlpha(0.5,1)",
	}, rec.Calls())
	assert.Len(t, rec.Calls(), len(draw.Kinds()))
}

func TestReplay_AppendSkipsMissingCommands(t *testing.T) {
	buf := draw.NewCommandBuffer()
	require.NoError(t, buf.Append([]draw.Entry{
		{Priority: 1, Command: draw.ClearScreen{}},
		{Priority: 0},
	}))
	assert.Equal(t, 1, buf.Len())
}

func TestReplay_ClearDropsEverything(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()
	b.Cls()
	require.NoError(t, b.Submit(0))

	require.NoError(t, buf.Clear())

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))
	assert.Empty(t, rec.Calls())
}

func TestReplay_ConcurrentProducersLayerByBase(t *testing.T) {
	buf := draw.NewCommandBuffer(draw.WithPoolSize(4))
	const producers = 16
	const perBatch = 20

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			b := buf.Acquire()
			defer b.Release()
			for i := 0; i < perBatch; i++ {
				b.Print(geom.Pt(i, p), fmt.Sprint(p))
			}
			assert.NoError(t, b.Submit(uint(p)*1000))
		}(p)
	}
	wg.Wait()

	rec := &testutil.Recorder{}
	require.NoError(t, buf.Replay(rec))

	calls := rec.Calls()
	require.Len(t, calls, producers*perBatch)
	for i, call := range calls {
		p, x := i/perBatch, i%perBatch
		assert.Equal(t, fmt.Sprintf("Print(%d,%d,%q)", x, p, fmt.Sprint(p)), call)
	}
}

type panickingDisplay struct {
	*testutil.Recorder
}

func (panickingDisplay) Cls() { panic("display exploded") }

func TestReplay_PanicPoisonsBuffer(t *testing.T) {
	buf := draw.NewCommandBuffer()
	b := buf.Acquire()
	defer b.Release()
	b.Cls()
	require.NoError(t, b.Submit(0))

	assert.PanicsWithValue(t, "display exploded", func() {
		_ = buf.Replay(panickingDisplay{Recorder: &testutil.Recorder{}})
	})
	assert.True(t, buf.Poisoned())

	b.Print(geom.Pt(0, 0), "late")
	assert.ErrorIs(t, b.Submit(0), draw.ErrPoisoned)
	assert.Equal(t, 1, b.Len())
	assert.ErrorIs(t, buf.Append(nil), draw.ErrPoisoned)
	assert.ErrorIs(t, buf.Clear(), draw.ErrPoisoned)
	assert.ErrorIs(t, buf.Replay(&testutil.Recorder{}), draw.ErrPoisoned)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ClearScreen", draw.KindClearScreen.String())
	assert.Equal(t, "SetAllAlpha", draw.KindSetAllAlpha.String())
	assert.Equal(t, "Unknown", draw.Kind(200).String())
	for _, k := range draw.Kinds() {
		assert.NotEqual(t, "", k.String())
	}
}
