package testutil

import (
	"fmt"
	"sync"

	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
)

// Recorder is a draw.Display that records every call as a short string such as
// `Print(0,0,"hi")`. Colors are written as hex without alpha.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

var _ draw.Display = (*Recorder)(nil)

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = r.calls[:0]
}

func (r *Recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func hex(c palette.RGBA) string { return c.Hex() }

func rect(r *geom.Rect) string {
	if r == nil {
		return "nil"
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2)
}

func (r *Recorder) Cls()                  { r.record("Cls()") }
func (r *Recorder) ClsBg(bg palette.RGBA) { r.record("ClsBg(%s)", hex(bg)) }
func (r *Recorder) SetActiveConsole(console int) {
	r.record("SetActiveConsole(%d)", console)
}

func (r *Recorder) Set(x, y int, fg, bg palette.RGBA, glyph byte) {
	r.record("Set(%d,%d,%s,%s,%d)", x, y, hex(fg), hex(bg), glyph)
}

func (r *Recorder) SetBg(x, y int, bg palette.RGBA) {
	r.record("SetBg(%d,%d,%s)", x, y, hex(bg))
}

func (r *Recorder) Print(x, y int, text string) {
	r.record("Print(%d,%d,%q)", x, y, text)
}

func (r *Recorder) PrintColor(x, y int, fg, bg palette.RGBA, text string) {
	r.record("PrintColor(%d,%d,%s,%s,%q)", x, y, hex(fg), hex(bg), text)
}

func (r *Recorder) PrintRight(x, y int, text string) {
	r.record("PrintRight(%d,%d,%q)", x, y, text)
}

func (r *Recorder) PrintColorRight(x, y int, fg, bg palette.RGBA, text string) {
	r.record("PrintColorRight(%d,%d,%s,%s,%q)", x, y, hex(fg), hex(bg), text)
}

func (r *Recorder) PrintCentered(y int, text string) {
	r.record("PrintCentered(%d,%q)", y, text)
}

func (r *Recorder) PrintColorCentered(y int, fg, bg palette.RGBA, text string) {
	r.record("PrintColorCentered(%d,%s,%s,%q)", y, hex(fg), hex(bg), text)
}

func (r *Recorder) PrintCenteredAt(x, y int, text string) {
	r.record("PrintCenteredAt(%d,%d,%q)", x, y, text)
}

func (r *Recorder) PrintColorCenteredAt(x, y int, fg, bg palette.RGBA, text string) {
	r.record("PrintColorCenteredAt(%d,%d,%s,%s,%q)", x, y, hex(fg), hex(bg), text)
}

func (r *Recorder) Printer(x, y int, text string, align geom.TextAlign, background *palette.RGBA) {
	bg := "nil"
	if background != nil {
		bg = hex(*background)
	}
	r.record("Printer(%d,%d,%q,%s,%s)", x, y, text, align, bg)
}

func (r *Recorder) DrawBox(x, y, width, height int, fg, bg palette.RGBA) {
	r.record("DrawBox(%d,%d,%d,%d,%s,%s)", x, y, width, height, hex(fg), hex(bg))
}

func (r *Recorder) DrawHollowBox(x, y, width, height int, fg, bg palette.RGBA) {
	r.record("DrawHollowBox(%d,%d,%d,%d,%s,%s)", x, y, width, height, hex(fg), hex(bg))
}

func (r *Recorder) DrawBoxDouble(x, y, width, height int, fg, bg palette.RGBA) {
	r.record("DrawBoxDouble(%d,%d,%d,%d,%s,%s)", x, y, width, height, hex(fg), hex(bg))
}

func (r *Recorder) DrawHollowBoxDouble(x, y, width, height int, fg, bg palette.RGBA) {
	r.record("DrawHollowBoxDouble(%d,%d,%d,%d,%s,%s)", x, y, width, height, hex(fg), hex(bg))
}

func (r *Recorder) FillRegion(rc geom.Rect, glyph byte, fg, bg palette.RGBA) {
	r.record("FillRegion(%s,%d,%s,%s)", rect(&rc), glyph, hex(fg), hex(bg))
}

func (r *Recorder) DrawBarHorizontal(x, y, width, n, maximum int, fg, bg palette.RGBA) {
	r.record("DrawBarHorizontal(%d,%d,%d,%d,%d,%s,%s)", x, y, width, n, maximum, hex(fg), hex(bg))
}

func (r *Recorder) DrawBarVertical(x, y, height, n, maximum int, fg, bg palette.RGBA) {
	r.record("DrawBarVertical(%d,%d,%d,%d,%d,%s,%s)", x, y, height, n, maximum, hex(fg), hex(bg))
}

func (r *Recorder) SetClipping(clip *geom.Rect) {
	r.record("SetClipping(%s)", rect(clip))
}

func (r *Recorder) SetAllFgAlpha(alpha float32) {
	r.record("SetAllFgAlpha(%g)", alpha)
}

func (r *Recorder) SetAllBgAlpha(alpha float32) {
	r.record("SetAllBgAlpha(%g)", alpha)
}

func (r *Recorder) SetAllAlpha(fg, bg float32) {
	r.record("SetAllAlpha(%g,%g)", fg, bg)
}
