package draw

import (
	"fmt"
	"sort"
	"time"
)

// Replay applies every buffered command to d and empties the buffer.
//
// Commands run in ascending priority. Equal priorities keep submission order.
// Replay is the only place that touches the display; call it once per frame
// after all producers have submitted.
func (b *CommandBuffer) Replay(d Display) error {
	if err := b.lock(); err != nil {
		return err
	}
	defer b.unlock()

	start := time.Now()
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Priority < b.entries[j].Priority
	})
	for _, e := range b.entries {
		apply(d, e.Command)
	}
	n := len(b.entries)
	b.reset()

	b.logger.Debug("replayed command buffer", "commands", n, "duration", time.Since(start))
	return nil
}

func apply(d Display, cmd Command) {
	switch c := cmd.(type) {
	case ClearScreen:
		d.Cls()
	case ClearToColor:
		d.ClsBg(c.Color)
	case SetTarget:
		d.SetActiveConsole(c.Console)
	case Set:
		d.Set(c.Pos.X, c.Pos.Y, c.Color.Fg, c.Color.Bg, c.Glyph)
	case SetBackground:
		d.SetBg(c.Pos.X, c.Pos.Y, c.Bg)
	case Print:
		d.Print(c.Pos.X, c.Pos.Y, c.Text)
	case PrintColor:
		d.PrintColor(c.Pos.X, c.Pos.Y, c.Color.Fg, c.Color.Bg, c.Text)
	case PrintRight:
		d.PrintRight(c.Pos.X, c.Pos.Y, c.Text)
	case PrintColorRight:
		d.PrintColorRight(c.Pos.X, c.Pos.Y, c.Color.Fg, c.Color.Bg, c.Text)
	case PrintCentered:
		d.PrintCentered(c.Y, c.Text)
	case PrintColorCentered:
		d.PrintColorCentered(c.Y, c.Color.Fg, c.Color.Bg, c.Text)
	case PrintCenteredAt:
		d.PrintCenteredAt(c.Pos.X, c.Pos.Y, c.Text)
	case PrintColorCenteredAt:
		d.PrintColorCenteredAt(c.Pos.X, c.Pos.Y, c.Color.Fg, c.Color.Bg, c.Text)
	case Printer:
		d.Printer(c.Pos.X, c.Pos.Y, c.Text, c.Align, copyOf(c.Background))
	case Box:
		d.DrawBox(c.Rect.X1, c.Rect.Y1, c.Rect.Width(), c.Rect.Height(), c.Color.Fg, c.Color.Bg)
	case HollowBox:
		d.DrawHollowBox(c.Rect.X1, c.Rect.Y1, c.Rect.Width(), c.Rect.Height(), c.Color.Fg, c.Color.Bg)
	case DoubleBox:
		d.DrawBoxDouble(c.Rect.X1, c.Rect.Y1, c.Rect.Width(), c.Rect.Height(), c.Color.Fg, c.Color.Bg)
	case HollowDoubleBox:
		d.DrawHollowBoxDouble(c.Rect.X1, c.Rect.Y1, c.Rect.Width(), c.Rect.Height(), c.Color.Fg, c.Color.Bg)
	case FillRegion:
		d.FillRegion(c.Rect, c.Glyph, c.Color.Fg, c.Color.Bg)
	case BarHorizontal:
		d.DrawBarHorizontal(c.Pos.X, c.Pos.Y, c.Width, c.N, c.Max, c.Color.Fg, c.Color.Bg)
	case BarVertical:
		d.DrawBarVertical(c.Pos.X, c.Pos.Y, c.Height, c.N, c.Max, c.Color.Fg, c.Color.Bg)
	case SetClipping:
		d.SetClipping(copyOf(c.Clip))
	case SetFgAlpha:
		d.SetAllFgAlpha(c.Alpha)
	case SetBgAlpha:
		d.SetAllBgAlpha(c.Alpha)
	case SetAllAlpha:
		d.SetAllAlpha(c.Fg, c.Bg)
	default:
		panic(fmt.Sprintf("draw: unknown command %T", cmd))
	}
}

// copyOf hands the display its own copy so it cannot alter the buffered command.
func copyOf[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
