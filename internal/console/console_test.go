package console

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Print(t *testing.T) {
	c := New(10, 3)
	c.Print(1, 0, "hi")
	c.Print(8, 2, "overflow")
	assert.Equal(t, " hi\n\n        ov", c.Plain())
}

func TestConsole_PrintKeepsColors(t *testing.T) {
	c := New(4, 1)
	c.PrintColor(0, 0, palette.Red, palette.Blue, "ab")
	c.Print(0, 0, "x")

	cell, ok := c.LayerCell(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 'x', cell.Glyph)
	assert.Equal(t, palette.Red, cell.Fg)
	assert.Equal(t, palette.Blue, cell.Bg)
}

func TestConsole_Alignment(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Console)
		want string
	}{
		{"centered", func(c *Console) { c.PrintCentered(0, "abcd") }, "   abcd"},
		{"centered at", func(c *Console) { c.PrintCenteredAt(5, 0, "abc") }, "    abc"},
		{"right", func(c *Console) { c.PrintRight(10, 0, "end") }, "       end"},
		{"color centered", func(c *Console) { c.PrintColorCentered(0, palette.Red, palette.Black, "ab") }, "    ab"},
		{"color right", func(c *Console) { c.PrintColorRight(3, 0, palette.Red, palette.Black, "ab") }, " ab"},
		{"color centered at", func(c *Console) { c.PrintColorCenteredAt(2, 0, palette.Red, palette.Black, "abcd") }, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(10, 1)
			tt.draw(c)
			assert.Equal(t, tt.want, c.Plain())
		})
	}
}

func TestConsole_GraphemesTakeOneCell(t *testing.T) {
	c := New(5, 1)
	c.Print(0, 0, "éx")
	assert.Equal(t, 'e', c.Cell(0, 0).Glyph)
	assert.Equal(t, 'x', c.Cell(1, 0).Glyph)
}

func TestConsole_Printer(t *testing.T) {
	c := New(10, 1)
	c.Printer(0, 0, "#[red]R#[]W", geom.AlignLeft, nil)

	assert.Equal(t, "RW", c.Plain())
	r, _ := c.LayerCell(0, 0, 0)
	w, _ := c.LayerCell(0, 1, 0)
	assert.Equal(t, palette.Red, r.Fg)
	assert.Equal(t, palette.White, w.Fg)
	assert.Equal(t, palette.Black, r.Bg)
}

func TestConsole_PrinterAlignAndBackground(t *testing.T) {
	c := New(6, 1)
	bg := palette.Green
	c.Printer(5, 0, "#[#0000ff]ab", geom.AlignRight, &bg)
	assert.Equal(t, "   ab", c.Plain())

	cell, _ := c.LayerCell(0, 3, 0)
	assert.Equal(t, "#0000ff", cell.Fg.Hex())
	assert.Equal(t, palette.Green, cell.Bg)

	c = New(6, 1)
	c.Printer(3, 0, "abcd", geom.AlignCenter, nil)
	assert.Equal(t, " abcd", c.Plain())
}

func TestParseMarkup(t *testing.T) {
	runs := parseMarkup("#[blue]This blue text contains a #[pink]pink#[] word")
	require.Len(t, runs, 3)
	assert.Equal(t, "This blue text contains a ", runs[0].text)
	assert.Equal(t, palette.Blue, runs[0].fg)
	assert.Equal(t, "pink", runs[1].text)
	assert.Equal(t, palette.Pink, runs[1].fg)
	assert.Equal(t, " word", runs[2].text)
	assert.Equal(t, palette.Blue, runs[2].fg)

	runs = parseMarkup("#[nope]x#[]#[]y #[unterminated")
	require.Len(t, runs, 2)
	assert.Equal(t, palette.White, runs[0].fg)
	assert.Equal(t, "y #[unterminated", runs[1].text)
}

func TestConsole_Boxes(t *testing.T) {
	c := New(6, 3)
	c.DrawHollowBox(0, 0, 4, 2, palette.White, palette.Black)
	assert.Equal(t, "┌───┐\n│   │\n└───┘", c.Plain())

	c = New(6, 3)
	c.DrawHollowBoxDouble(0, 0, 4, 2, palette.White, palette.Black)
	assert.Equal(t, "╔═══╗\n║   ║\n╚═══╝", c.Plain())
}

func TestConsole_FilledBoxClearsInterior(t *testing.T) {
	c := New(5, 3)
	for y := 0; y < 3; y++ {
		c.Print(0, y, "xxxxx")
	}
	c.DrawBox(0, 0, 3, 2, palette.White, palette.Black)
	assert.Equal(t, "┌──┐x\n│  │x\n└──┘x", c.Plain())

	c.DrawBoxDouble(0, 0, 3, 2, palette.White, palette.Black)
	assert.Equal(t, "╔══╗x\n║  ║x\n╚══╝x", c.Plain())
}

func TestConsole_HollowBoxKeepsInterior(t *testing.T) {
	c := New(3, 3)
	c.Print(1, 1, "x")
	c.DrawHollowBox(0, 0, 2, 2, palette.White, palette.Black)
	assert.Equal(t, "┌─┐\n│x│\n└─┘", c.Plain())
}

func TestConsole_FillRegion(t *testing.T) {
	c := New(4, 2)
	c.FillRegion(geom.WithSize(1, 0, 2, 2), '#', palette.White, palette.Black)
	assert.Equal(t, " ##\n ##", c.Plain())
}

func TestConsole_Set(t *testing.T) {
	c := New(4, 1)
	c.Set(0, 0, palette.Red, palette.Black, '@')
	c.Set(1, 0, palette.Red, palette.Black, 1)
	c.Set(2, 0, palette.Red, palette.Black, 219)
	c.Set(9, 9, palette.Red, palette.Black, '@')
	assert.Equal(t, "@☺█", c.Plain())

	c.SetBg(0, 0, palette.Green)
	assert.Equal(t, "#00ff00", c.Cell(0, 0).Bg.Hex())
}

func TestConsole_Bars(t *testing.T) {
	c := New(10, 1)
	c.DrawBarHorizontal(0, 0, 10, 5, 10, palette.White, palette.Black)
	assert.Equal(t, "▓▓▓▓▓░░░░░", c.Plain())

	c.DrawBarHorizontal(0, 0, 10, 0, 0, palette.White, palette.Black)
	assert.Equal(t, "░░░░░░░░░░", c.Plain())

	c.DrawBarHorizontal(0, 0, 10, 20, 10, palette.White, palette.Black)
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓", c.Plain())

	v := New(1, 4)
	v.DrawBarVertical(0, 0, 4, 1, 4, palette.White, palette.Black)
	assert.Equal(t, "░\n░\n░\n▓", v.Plain())
}

func TestConsole_Clipping(t *testing.T) {
	c := New(5, 1)
	clip := geom.WithSize(0, 0, 2, 1)
	c.SetClipping(&clip)
	c.Print(0, 0, "abcd")
	assert.Equal(t, "ab", c.Plain())

	c.SetClipping(nil)
	c.Print(0, 0, "wxyz")
	assert.Equal(t, "wxyz", c.Plain())
}

func TestConsole_LayersComposite(t *testing.T) {
	c := New(4, 1, WithLayers(2))
	c.Print(0, 0, "ab")
	c.SetActiveConsole(1)
	c.Print(1, 0, "Z")
	assert.Equal(t, "aZ", c.Plain())

	c.SetActiveConsole(5)
	assert.Equal(t, 1, c.Active(), "unknown layers are ignored")
	assert.Equal(t, 2, c.Layers())
}

func TestConsole_SpaceOnUpperLayerHidesLower(t *testing.T) {
	c := New(2, 1, WithLayers(2))
	c.Print(0, 0, "ab")
	c.SetActiveConsole(1)
	c.Print(0, 0, " ")
	assert.Equal(t, " b", c.Plain())
}

func TestConsole_GlyphZeroIsSeeThrough(t *testing.T) {
	c := New(3, 1, WithLayers(2))
	c.Print(0, 0, "abc")
	c.SetActiveConsole(1)
	c.Set(0, 0, palette.Red, palette.Transparent, 0)
	c.FillRegion(geom.WithSize(1, 0, 1, 1), 0, palette.Red, palette.Transparent)

	assert.Equal(t, "abc", c.Plain())
	cell, _ := c.LayerCell(1, 0, 0)
	assert.Equal(t, rune(0), cell.Glyph)
}

func TestConsole_ClsBg(t *testing.T) {
	c := New(2, 1)
	c.Print(0, 0, "ab")
	c.ClsBg(palette.Red)
	assert.Equal(t, "", c.Plain())
	assert.Equal(t, "#ff0000", c.Cell(1, 0).Bg.Hex())

	c.Cls()
	assert.Equal(t, "#000000", c.Cell(1, 0).Bg.Hex())
}

func TestConsole_AlphaChannelsAreIndependent(t *testing.T) {
	c := New(1, 1, WithLayers(2))
	c.SetActiveConsole(1)
	c.PrintColor(0, 0, palette.Red, palette.Blue, "X")

	c.SetAllBgAlpha(0.5)
	cell, _ := c.LayerCell(1, 0, 0)
	assert.Equal(t, float32(1), cell.Fg.A)
	assert.Equal(t, float32(0.5), cell.Bg.A)
	assert.Equal(t, "#000080", c.Cell(0, 0).Bg.Hex())

	c.SetAllFgAlpha(0.25)
	cell, _ = c.LayerCell(1, 0, 0)
	assert.Equal(t, float32(0.25), cell.Fg.A)
	assert.Equal(t, float32(0.5), cell.Bg.A)

	c.SetAllAlpha(1, 0)
	cell, _ = c.LayerCell(1, 0, 0)
	assert.Equal(t, float32(1), cell.Fg.A)
	assert.Equal(t, float32(0), cell.Bg.A)
	assert.Equal(t, "#000000", c.Cell(0, 0).Bg.Hex())
	assert.Equal(t, "#ff0000", c.Cell(0, 0).Fg.Hex())
}

func TestConsole_RenderAndSnapshot(t *testing.T) {
	c := New(5, 1)
	c.Print(0, 0, "hi")

	buf := c.Snapshot()
	require.NotNil(t, buf.Cell(0, 0))
	assert.Equal(t, 'h', buf.Cell(0, 0).Rune)
	assert.Contains(t, c.Render(), "hi")
}

func TestConsole_Styled(t *testing.T) {
	c := New(3, 2)
	c.Print(0, 0, "ab")

	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "ab \n   ", c.Styled(plain))

	colored := lipgloss.NewRenderer(io.Discard)
	colored.SetColorProfile(termenv.TrueColor)
	out := c.Styled(colored)
	assert.True(t, strings.Contains(out, "\x1b["), "expected ANSI sequences in %q", out)
}
