package draw

import (
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
)

// Display is the surface buffered commands are replayed onto.
// Each method corresponds to exactly one Command type. Implementations are
// responsible for clamping or rejecting out-of-range input.
type Display interface {
	Cls()
	ClsBg(bg palette.RGBA)
	SetActiveConsole(console int)

	Set(x, y int, fg, bg palette.RGBA, glyph byte)
	SetBg(x, y int, bg palette.RGBA)

	Print(x, y int, text string)
	PrintColor(x, y int, fg, bg palette.RGBA, text string)
	PrintRight(x, y int, text string)
	PrintColorRight(x, y int, fg, bg palette.RGBA, text string)
	PrintCentered(y int, text string)
	PrintColorCentered(y int, fg, bg palette.RGBA, text string)
	PrintCenteredAt(x, y int, text string)
	PrintColorCenteredAt(x, y int, fg, bg palette.RGBA, text string)
	Printer(x, y int, text string, align geom.TextAlign, background *palette.RGBA)

	DrawBox(x, y, width, height int, fg, bg palette.RGBA)
	DrawHollowBox(x, y, width, height int, fg, bg palette.RGBA)
	DrawBoxDouble(x, y, width, height int, fg, bg palette.RGBA)
	DrawHollowBoxDouble(x, y, width, height int, fg, bg palette.RGBA)
	FillRegion(rect geom.Rect, glyph byte, fg, bg palette.RGBA)
	DrawBarHorizontal(x, y, width, n, maximum int, fg, bg palette.RGBA)
	DrawBarVertical(x, y, height, n, maximum int, fg, bg palette.RGBA)

	SetClipping(clip *geom.Rect)
	SetAllFgAlpha(alpha float32)
	SetAllBgAlpha(alpha float32)
	SetAllAlpha(fg, bg float32)
}
