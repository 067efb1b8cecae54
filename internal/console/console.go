// Package console is a layered character-grid implementation of draw.Display.
//
// Each layer is a grid of cells. Layer 0 is opaque; higher layers start out
// empty and transparent so they can be composited over the layers below.
// Writes outside the console bounds or the active layer's clip rectangle are
// dropped.
package console

import (
	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
	"golang.org/x/text/encoding/charmap"
)

// Cell is one character position on a layer. A zero Glyph means "nothing
// drawn" and lets lower layers show through.
type Cell struct {
	Glyph rune
	Fg    palette.RGBA
	Bg    palette.RGBA
}

type layer struct {
	cells []Cell
	clip  *geom.Rect
}

// Console is not safe for concurrent use. It is meant to be driven by
// draw.CommandBuffer.Replay from the goroutine that owns the frame.
type Console struct {
	width, height int
	layers        []*layer
	active        int
}

var _ draw.Display = (*Console)(nil)

// Option configures a Console.
type Option func(*options)

type options struct {
	layers int
}

// WithLayers sets the number of layers. Values below 1 are treated as 1.
func WithLayers(n int) Option {
	return func(o *options) {
		o.layers = n
	}
}

// New creates a cleared console of the given size.
func New(width, height int, opts ...Option) *Console {
	o := options{layers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	width, height = max(width, 0), max(height, 0)
	c := &Console{
		width:  width,
		height: height,
		layers: make([]*layer, max(o.layers, 1)),
	}
	for i := range c.layers {
		c.layers[i] = &layer{cells: make([]Cell, width*height)}
		c.clearLayer(i, c.blank(i))
	}
	return c
}

func (c *Console) Width() int  { return c.width }
func (c *Console) Height() int { return c.height }

// Layers returns the number of layers.
func (c *Console) Layers() int { return len(c.layers) }

// Active returns the index of the layer commands currently draw on.
func (c *Console) Active() int { return c.active }

// LayerCell returns the raw cell of a layer, before compositing.
func (c *Console) LayerCell(layer, x, y int) (Cell, bool) {
	if layer < 0 || layer >= len(c.layers) || !c.inBounds(x, y) {
		return Cell{}, false
	}
	return c.layers[layer].cells[y*c.width+x], true
}

func (c *Console) blank(layer int) Cell {
	if layer == 0 {
		return Cell{Glyph: ' ', Fg: palette.White, Bg: palette.Black}
	}
	return Cell{Fg: palette.White, Bg: palette.Transparent}
}

func (c *Console) clearLayer(i int, cell Cell) {
	l := c.layers[i]
	for idx := range l.cells {
		l.cells[idx] = cell
	}
}

func (c *Console) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// at returns the writable cell of the active layer, or nil when the position
// is out of bounds or clipped away.
func (c *Console) at(x, y int) *Cell {
	if !c.inBounds(x, y) {
		return nil
	}
	l := c.layers[c.active]
	if l.clip != nil && !l.clip.Contains(geom.Pt(x, y)) {
		return nil
	}
	return &l.cells[y*c.width+x]
}

func (c *Console) set(x, y int, fg, bg palette.RGBA, glyph rune) {
	if cell := c.at(x, y); cell != nil {
		cell.Glyph = glyph
		cell.Fg = fg
		cell.Bg = bg
	}
}

// lowGlyphs are the pictographs code page 437 shows for the control range.
var lowGlyphs = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// glyphRune maps a code page 437 glyph index to its Unicode rune.
// Index 0 stays 0 so the cell is left see-through.
func glyphRune(glyph byte) rune {
	switch {
	case glyph == 0:
		return 0
	case int(glyph) < len(lowGlyphs):
		return lowGlyphs[glyph]
	case glyph == 127:
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(glyph)
}

func (c *Console) Cls() {
	c.clearLayer(c.active, c.blank(c.active))
}

func (c *Console) ClsBg(bg palette.RGBA) {
	cell := c.blank(c.active)
	cell.Glyph = ' '
	cell.Bg = bg
	c.clearLayer(c.active, cell)
}

// SetActiveConsole switches layers. Unknown indexes are ignored.
func (c *Console) SetActiveConsole(console int) {
	if console < 0 || console >= len(c.layers) {
		return
	}
	c.active = console
}

func (c *Console) Set(x, y int, fg, bg palette.RGBA, glyph byte) {
	c.set(x, y, fg, bg, glyphRune(glyph))
}

func (c *Console) SetBg(x, y int, bg palette.RGBA) {
	if cell := c.at(x, y); cell != nil {
		cell.Bg = bg
	}
}

func (c *Console) FillRegion(rect geom.Rect, glyph byte, fg, bg palette.RGBA) {
	r := glyphRune(glyph)
	rect.ForEach(func(p geom.Point) {
		c.set(p.X, p.Y, fg, bg, r)
	})
}

// SetClipping restricts the active layer to clip. Nil removes the restriction.
func (c *Console) SetClipping(clip *geom.Rect) {
	if clip == nil {
		c.layers[c.active].clip = nil
		return
	}
	r := *clip
	c.layers[c.active].clip = &r
}

func (c *Console) SetAllFgAlpha(alpha float32) {
	l := c.layers[c.active]
	for i := range l.cells {
		l.cells[i].Fg.A = alpha
	}
}

func (c *Console) SetAllBgAlpha(alpha float32) {
	l := c.layers[c.active]
	for i := range l.cells {
		l.cells[i].Bg.A = alpha
	}
}

func (c *Console) SetAllAlpha(fg, bg float32) {
	l := c.layers[c.active]
	for i := range l.cells {
		l.cells[i].Fg.A = fg
		l.cells[i].Bg.A = bg
	}
}
