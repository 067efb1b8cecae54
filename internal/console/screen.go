package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/idursun/drawbatch/internal/palette"
)

// Flush copies the composited console onto screen with its top-left corner
// at the screen origin. It does not call Show.
func (c *Console) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.Cell(x, y)
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.Fg)).
				Background(tcellColor(cell.Bg))
			screen.SetContent(x, y, cell.Glyph, nil, style)
		}
	}
}

func tcellColor(c palette.RGBA) tcell.Color {
	r, g, b := c.Colorful().Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
