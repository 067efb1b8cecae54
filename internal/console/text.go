package console

import (
	"strings"

	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
	"github.com/rivo/uniseg"
)

// textWidth counts grapheme clusters; every cluster takes one cell.
func textWidth(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// writeText writes one cluster per cell starting at x. paint receives each
// destination cell and the first rune of its cluster.
func (c *Console) writeText(x, y int, text string, paint func(cell *Cell, r rune)) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if cell := c.at(x, y); cell != nil {
			paint(cell, g.Runes()[0])
		}
		x++
	}
}

func glyphOnly(cell *Cell, r rune) {
	cell.Glyph = r
}

func colored(fg, bg palette.RGBA) func(*Cell, rune) {
	return func(cell *Cell, r rune) {
		cell.Glyph = r
		cell.Fg = fg
		cell.Bg = bg
	}
}

// Print writes text keeping the colors already in place.
func (c *Console) Print(x, y int, text string) {
	c.writeText(x, y, text, glyphOnly)
}

func (c *Console) PrintColor(x, y int, fg, bg palette.RGBA, text string) {
	c.writeText(x, y, text, colored(fg, bg))
}

// PrintRight writes text so that it ends at column x-1.
func (c *Console) PrintRight(x, y int, text string) {
	c.writeText(x-textWidth(text), y, text, glyphOnly)
}

func (c *Console) PrintColorRight(x, y int, fg, bg palette.RGBA, text string) {
	c.writeText(x-textWidth(text), y, text, colored(fg, bg))
}

// PrintCentered centers text over the full console width.
func (c *Console) PrintCentered(y int, text string) {
	c.writeText((c.width-textWidth(text))/2, y, text, glyphOnly)
}

func (c *Console) PrintColorCentered(y int, fg, bg palette.RGBA, text string) {
	c.writeText((c.width-textWidth(text))/2, y, text, colored(fg, bg))
}

// PrintCenteredAt centers text on column x.
func (c *Console) PrintCenteredAt(x, y int, text string) {
	c.writeText(x-textWidth(text)/2, y, text, glyphOnly)
}

func (c *Console) PrintColorCenteredAt(x, y int, fg, bg palette.RGBA, text string) {
	c.writeText(x-textWidth(text)/2, y, text, colored(fg, bg))
}

// Printer writes text containing color markup. "#[name]" switches the
// foreground to a named or "#rrggbb" color, "#[]" returns to the previous one.
// Unknown names keep the current color. Text starts white.
func (c *Console) Printer(x, y int, text string, align geom.TextAlign, background *palette.RGBA) {
	runs := parseMarkup(text)
	width := 0
	for _, r := range runs {
		width += textWidth(r.text)
	}
	switch align {
	case geom.AlignCenter:
		x -= width / 2
	case geom.AlignRight:
		x -= width
	}
	for _, r := range runs {
		fg := r.fg
		c.writeText(x, y, r.text, func(cell *Cell, ch rune) {
			cell.Glyph = ch
			cell.Fg = fg
			if background != nil {
				cell.Bg = *background
			}
		})
		x += textWidth(r.text)
	}
}

type markupRun struct {
	text string
	fg   palette.RGBA
}

func parseMarkup(text string) []markupRun {
	stack := []palette.RGBA{palette.White}
	var runs []markupRun
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		runs = append(runs, markupRun{text: current.String(), fg: stack[len(stack)-1]})
		current.Reset()
	}

	for len(text) > 0 {
		start := strings.Index(text, "#[")
		if start < 0 {
			current.WriteString(text)
			break
		}
		end := strings.IndexByte(text[start:], ']')
		if end < 0 {
			current.WriteString(text)
			break
		}
		current.WriteString(text[:start])
		flush()

		name := text[start+2 : start+end]
		if name == "" {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		} else {
			next := stack[len(stack)-1]
			if col, ok := palette.Named(name); ok {
				next = col
			}
			stack = append(stack, next)
		}
		text = text[start+end+1:]
	}
	flush()
	return runs
}
