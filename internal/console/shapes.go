package console

import "github.com/idursun/drawbatch/internal/palette"

// Code page 437 line drawing glyphs.
const (
	glyphSpace = 32

	glyphBarEmpty = 176
	glyphBarFull  = 178

	singleVertical    = 179
	singleTopRight    = 191
	singleBottomLeft  = 192
	singleHorizontal  = 196
	singleBottomRight = 217
	singleTopLeft     = 218

	doubleVertical    = 186
	doubleTopRight    = 187
	doubleBottomRight = 188
	doubleBottomLeft  = 200
	doubleTopLeft     = 201
	doubleHorizontal  = 205
)

type border struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical byte
}

var (
	singleBorder = border{singleTopLeft, singleTopRight, singleBottomLeft, singleBottomRight, singleHorizontal, singleVertical}
	doubleBorder = border{doubleTopLeft, doubleTopRight, doubleBottomLeft, doubleBottomRight, doubleHorizontal, doubleVertical}
)

// drawBorder draws the outline of a box whose corners are (x, y) and
// (x+width, y+height), both inclusive. fill also clears the interior.
func (c *Console) drawBorder(x, y, width, height int, fg, bg palette.RGBA, b border, fill bool) {
	if width < 0 || height < 0 {
		return
	}
	if fill {
		for cy := y; cy <= y+height; cy++ {
			for cx := x; cx <= x+width; cx++ {
				c.Set(cx, cy, fg, bg, glyphSpace)
			}
		}
	}
	for cx := x + 1; cx < x+width; cx++ {
		c.Set(cx, y, fg, bg, b.horizontal)
		c.Set(cx, y+height, fg, bg, b.horizontal)
	}
	for cy := y + 1; cy < y+height; cy++ {
		c.Set(x, cy, fg, bg, b.vertical)
		c.Set(x+width, cy, fg, bg, b.vertical)
	}
	c.Set(x, y, fg, bg, b.topLeft)
	c.Set(x+width, y, fg, bg, b.topRight)
	c.Set(x, y+height, fg, bg, b.bottomLeft)
	c.Set(x+width, y+height, fg, bg, b.bottomRight)
}

func (c *Console) DrawBox(x, y, width, height int, fg, bg palette.RGBA) {
	c.drawBorder(x, y, width, height, fg, bg, singleBorder, true)
}

func (c *Console) DrawHollowBox(x, y, width, height int, fg, bg palette.RGBA) {
	c.drawBorder(x, y, width, height, fg, bg, singleBorder, false)
}

func (c *Console) DrawBoxDouble(x, y, width, height int, fg, bg palette.RGBA) {
	c.drawBorder(x, y, width, height, fg, bg, doubleBorder, true)
}

func (c *Console) DrawHollowBoxDouble(x, y, width, height int, fg, bg palette.RGBA) {
	c.drawBorder(x, y, width, height, fg, bg, doubleBorder, false)
}

// filled returns how many of size cells a bar showing n out of maximum fills.
func filled(size, n, maximum int) int {
	if maximum <= 0 || n <= 0 || size <= 0 {
		return 0
	}
	if n >= maximum {
		return size
	}
	return size * n / maximum
}

// DrawBarHorizontal draws width cells, filled left to right.
func (c *Console) DrawBarHorizontal(x, y, width, n, maximum int, fg, bg palette.RGBA) {
	fill := filled(width, n, maximum)
	for i := 0; i < width; i++ {
		glyph := byte(glyphBarEmpty)
		if i < fill {
			glyph = glyphBarFull
		}
		c.Set(x+i, y, fg, bg, glyph)
	}
}

// DrawBarVertical draws height cells, filled bottom to top.
func (c *Console) DrawBarVertical(x, y, height, n, maximum int, fg, bg palette.RGBA) {
	fill := filled(height, n, maximum)
	for i := 0; i < height; i++ {
		glyph := byte(glyphBarEmpty)
		if i < fill {
			glyph = glyphBarFull
		}
		c.Set(x, y+height-1-i, fg, bg, glyph)
	}
}
