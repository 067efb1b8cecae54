package draw

import (
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
)

// Batch collects drawing commands for one producer. A batch is not safe for
// concurrent use; each goroutine acquires its own. Builder methods append a
// command and return the batch so calls can be chained:
//
//	b := buf.Acquire()
//	defer b.Release()
//	b.Cls().
//	    Print(geom.Pt(1, 1), "Hello").
//	    DrawBox(geom.WithSize(0, 0, 20, 3), palette.Pair(palette.White, palette.Black))
//	if err := b.Submit(draw.ZUI); err != nil {
//	    return err
//	}
//
// After Release the batch must not be used; builder calls are ignored and
// Submit reports ErrBatchReleased.
type Batch struct {
	block  *block
	pool   *Pool
	target *CommandBuffer
}

func (b *Batch) push(cmd Command) *Batch {
	if b.block == nil {
		return b
	}
	b.block.entries = append(b.block.entries, Entry{Command: cmd})
	return b
}

// Len returns the number of commands waiting to be submitted.
func (b *Batch) Len() int {
	if b.block == nil {
		return 0
	}
	return len(b.block.entries)
}

// Entries returns a copy of the pending commands in insertion order.
func (b *Batch) Entries() []Entry {
	if b.block == nil {
		return nil
	}
	out := make([]Entry, len(b.block.entries))
	copy(out, b.block.entries)
	return out
}

// Submit moves the batch into its target buffer. The i-th command gets priority
// base+i, so commands keep their order and the whole batch sorts against other
// batches by base. The batch is empty afterwards and can be reused.
func (b *Batch) Submit(base uint) error {
	if b.block == nil {
		return ErrBatchReleased
	}
	if b.target == nil {
		return ErrNoTarget
	}
	return b.SubmitTo(b.target, base)
}

// SubmitTo is Submit with an explicit target buffer.
// On error the batch keeps its commands.
func (b *Batch) SubmitTo(buf *CommandBuffer, base uint) error {
	if b.block == nil {
		return ErrBatchReleased
	}
	if buf == nil {
		return ErrNoTarget
	}
	entries := b.block.entries
	for i := range entries {
		entries[i].Priority = base + uint(i)
	}
	if err := buf.Append(entries); err != nil {
		return err
	}
	clear(entries)
	b.block.entries = entries[:0]
	return nil
}

// Release returns the batch storage to its pool. Unsubmitted commands are
// discarded. Calling Release more than once is a no-op.
func (b *Batch) Release() {
	if b.block == nil {
		return
	}
	blk := b.block
	b.block = nil
	b.target = nil
	if b.pool != nil {
		b.pool.put(blk)
	}
}

// Cls clears the active console.
func (b *Batch) Cls() *Batch {
	return b.push(ClearScreen{})
}

// ClsColor clears the active console to a background color.
func (b *Batch) ClsColor(color palette.RGBA) *Batch {
	return b.push(ClearToColor{Color: color})
}

// Target switches the console that following commands draw on.
func (b *Batch) Target(console int) *Batch {
	return b.push(SetTarget{Console: console})
}

// Set sets a single cell glyph.
func (b *Batch) Set(pos geom.Point, color palette.ColorPair, glyph byte) *Batch {
	return b.push(Set{Pos: pos, Color: color, Glyph: glyph})
}

// SetBg sets a single cell background.
func (b *Batch) SetBg(pos geom.Point, bg palette.RGBA) *Batch {
	return b.push(SetBackground{Pos: pos, Bg: bg})
}

// Printer prints text with inline color markup, e.g.
// "#[blue]This blue text contains a #[pink]pink#[] word".
// A nil background keeps what is already drawn underneath.
func (b *Batch) Printer(pos geom.Point, text string, align geom.TextAlign, background *palette.RGBA) *Batch {
	var bg *palette.RGBA
	if background != nil {
		c := *background
		bg = &c
	}
	return b.push(Printer{Pos: pos, Text: text, Align: align, Background: bg})
}

// Print prints text in the default colors.
func (b *Batch) Print(pos geom.Point, text string) *Batch {
	return b.push(Print{Pos: pos, Text: text})
}

func (b *Batch) PrintColor(pos geom.Point, text string, color palette.ColorPair) *Batch {
	return b.push(PrintColor{Pos: pos, Text: text, Color: color})
}

// PrintCentered prints text centered across the console width on row y.
func (b *Batch) PrintCentered(y int, text string) *Batch {
	return b.push(PrintCentered{Y: y, Text: text})
}

func (b *Batch) PrintColorCentered(y int, text string, color palette.ColorPair) *Batch {
	return b.push(PrintColorCentered{Y: y, Text: text, Color: color})
}

// PrintCenteredAt prints text centered horizontally on pos.
func (b *Batch) PrintCenteredAt(pos geom.Point, text string) *Batch {
	return b.push(PrintCenteredAt{Pos: pos, Text: text})
}

func (b *Batch) PrintColorCenteredAt(pos geom.Point, text string, color palette.ColorPair) *Batch {
	return b.push(PrintColorCenteredAt{Pos: pos, Text: text, Color: color})
}

// PrintRight prints text so that it ends just before pos.
func (b *Batch) PrintRight(pos geom.Point, text string) *Batch {
	return b.push(PrintRight{Pos: pos, Text: text})
}

func (b *Batch) PrintColorRight(pos geom.Point, text string, color palette.ColorPair) *Batch {
	return b.push(PrintColorRight{Pos: pos, Text: text, Color: color})
}

// DrawBox draws a filled box with single-line borders.
func (b *Batch) DrawBox(rect geom.Rect, color palette.ColorPair) *Batch {
	return b.push(Box{Rect: rect, Color: color})
}

// DrawHollowBox draws only the single-line border of a box.
func (b *Batch) DrawHollowBox(rect geom.Rect, color palette.ColorPair) *Batch {
	return b.push(HollowBox{Rect: rect, Color: color})
}

// DrawDoubleBox draws a filled box with double-line borders.
func (b *Batch) DrawDoubleBox(rect geom.Rect, color palette.ColorPair) *Batch {
	return b.push(DoubleBox{Rect: rect, Color: color})
}

// DrawHollowDoubleBox draws only the double-line border of a box.
func (b *Batch) DrawHollowDoubleBox(rect geom.Rect, color palette.ColorPair) *Batch {
	return b.push(HollowDoubleBox{Rect: rect, Color: color})
}

// FillRegion fills every cell of rect with glyph.
func (b *Batch) FillRegion(rect geom.Rect, color palette.ColorPair, glyph byte) *Batch {
	return b.push(FillRegion{Rect: rect, Color: color, Glyph: glyph})
}

// BarHorizontal draws a progress bar of n out of max.
func (b *Batch) BarHorizontal(pos geom.Point, width, n, max int, color palette.ColorPair) *Batch {
	return b.push(BarHorizontal{Pos: pos, Width: width, N: n, Max: max, Color: color})
}

// BarVertical draws a progress bar of n out of max, filling bottom-up.
func (b *Batch) BarVertical(pos geom.Point, height, n, max int, color palette.ColorPair) *Batch {
	return b.push(BarVertical{Pos: pos, Height: height, N: n, Max: max, Color: color})
}

// SetClipping restricts drawing on the active console to clip. Pass nil to clear it.
func (b *Batch) SetClipping(clip *geom.Rect) *Batch {
	var r *geom.Rect
	if clip != nil {
		c := *clip
		r = &c
	}
	return b.push(SetClipping{Clip: r})
}

// SetAllFgAlpha sets the foreground alpha of every cell on the active console.
func (b *Batch) SetAllFgAlpha(alpha float32) *Batch {
	return b.push(SetFgAlpha{Alpha: alpha})
}

// SetAllBgAlpha sets the background alpha of every cell on the active console.
func (b *Batch) SetAllBgAlpha(alpha float32) *Batch {
	return b.push(SetBgAlpha{Alpha: alpha})
}

// SetAllAlpha sets both foreground and background alpha on the active console.
func (b *Batch) SetAllAlpha(fg, bg float32) *Batch {
	return b.push(SetAllAlpha{Fg: fg, Bg: bg})
}
