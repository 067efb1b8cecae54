package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/drawbatch/internal/palette"
)

// Cell returns the composited cell at x/y: layers are stacked bottom-up,
// backgrounds alpha-blended, and the topmost drawn glyph wins.
// The returned colors are opaque.
func (c *Console) Cell(x, y int) Cell {
	out := Cell{Glyph: ' ', Fg: palette.White, Bg: palette.Black}
	if !c.inBounds(x, y) {
		return out
	}
	idx := y*c.width + x
	for _, l := range c.layers {
		cell := l.cells[idx]
		out.Bg = cell.Bg.Over(out.Bg)
		if cell.Glyph != 0 {
			out.Glyph = cell.Glyph
			out.Fg = cell.Fg
		}
	}
	out.Fg = out.Fg.Over(out.Bg)
	out.Fg.A, out.Bg.A = 1, 1
	return out
}

// Snapshot composites all layers into a new cellbuf buffer.
func (c *Console) Snapshot() *cellbuf.Buffer {
	buf := cellbuf.NewBuffer(c.width, c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.Cell(x, y)
			buf.SetCell(x, y, &cellbuf.Cell{
				Rune:  cell.Glyph,
				Width: 1,
				Style: cellbuf.Style{Fg: cell.Fg, Bg: cell.Bg},
			})
		}
	}
	return buf
}

// Render returns the composited console as a string with true-color ANSI sequences.
func (c *Console) Render() string {
	return cellbuf.Render(c.Snapshot())
}

// Plain returns the composited glyphs only, one line per row, with trailing
// spaces removed.
func (c *Console) Plain() string {
	lines := make([]string, c.height)
	var row strings.Builder
	for y := 0; y < c.height; y++ {
		row.Reset()
		for x := 0; x < c.width; x++ {
			row.WriteRune(c.Cell(x, y).Glyph)
		}
		lines[y] = strings.TrimRight(row.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Styled renders the console through a lipgloss renderer so colors are
// reduced to what the renderer's color profile supports. Adjacent cells with
// the same colors are rendered as one styled run.
func (c *Console) Styled(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	lines := make([]string, c.height)
	var line, run strings.Builder
	for y := 0; y < c.height; y++ {
		line.Reset()
		run.Reset()
		var runFg, runBg palette.RGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := r.NewStyle().Foreground(runFg.Lipgloss()).Background(runBg.Lipgloss())
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.Cell(x, y)
			if run.Len() > 0 && (cell.Fg.Hex() != runFg.Hex() || cell.Bg.Hex() != runBg.Hex()) {
				flush()
			}
			runFg, runBg = cell.Fg, cell.Bg
			run.WriteRune(cell.Glyph)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
