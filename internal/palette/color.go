// Package palette provides the color values stored in draw commands.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// New creates a color from its four components.
func New(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromU8 creates an opaque color from 8-bit channels.
func FromU8(r, g, b uint8) RGBA {
	return RGBA{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// Hex parses "#rrggbb" or "#rgb" into an opaque color.
func Hex(s string) (RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a colorful.Color to an opaque RGBA.
func FromColorful(c colorful.Color) RGBA {
	c = c.Clamped()
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// Colorful drops alpha and returns the color in go-colorful's representation.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Lipgloss returns the color as a lipgloss color, ignoring alpha.
func (c RGBA) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// WithAlpha returns a copy of c with alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

// Over composites c on top of under using c's alpha.
func (c RGBA) Over(under RGBA) RGBA {
	a := clamp01(c.A)
	out := FromColorful(under.Colorful().BlendRgb(c.Colorful(), float64(a)))
	out.A = a + clamp01(under.A)*(1-a)
	return out
}

// RGBA implements color.Color. Channels are alpha-premultiplied as the interface requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(math.Round(float64(clamp01(c.R)*alpha) * 0xffff))
	g = uint32(math.Round(float64(clamp01(c.G)*alpha) * 0xffff))
	b = uint32(math.Round(float64(clamp01(c.B)*alpha) * 0xffff))
	a = uint32(math.Round(float64(alpha) * 0xffff))
	return r, g, b, a
}

var _ color.Color = RGBA{}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorPair is a foreground/background pair.
type ColorPair struct {
	Fg RGBA
	Bg RGBA
}

// Pair creates a ColorPair.
func Pair(fg, bg RGBA) ColorPair {
	return ColorPair{Fg: fg, Bg: bg}
}
