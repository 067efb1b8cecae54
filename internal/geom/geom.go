// Package geom holds the grid geometry values carried by draw commands.
package geom

import "github.com/charmbracelet/x/cellbuf"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is a rectangle given by its top-left (X1, Y1) and bottom-right (X2, Y2) corners.
// X2 and Y2 are exclusive when iterating cells.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// WithSize creates a rectangle at x/y with the given extents.
func WithSize(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// WithExact creates a rectangle from two corners.
func WithExact(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2-X1, never negative.
func (r Rect) Width() int {
	return max(r.X2-r.X1, 0)
}

// Height returns Y2-Y1, never negative.
func (r Rect) Height() int {
	return max(r.Y2-r.Y1, 0)
}

// TopLeft returns the first corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// BottomRight returns the second corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.X2, Y: r.Y2}
}

// Center returns the middle cell, rounded towards the top-left.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies inside the half-open rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Intersect returns the overlap of r and o. The result is empty when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
		X2: min(r.X2, o.X2),
		Y2: min(r.Y2, o.Y2),
	}
	if out.X2 < out.X1 {
		out.X2 = out.X1
	}
	if out.Y2 < out.Y1 {
		out.Y2 = out.Y1
	}
	return out
}

// ForEach calls fn for every cell in the rectangle, row by row.
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Cellbuf converts the rectangle to a cellbuf.Rectangle.
func (r Rect) Cellbuf() cellbuf.Rectangle {
	return cellbuf.Rect(r.X1, r.Y1, r.Width(), r.Height())
}

// FromCellbuf converts a cellbuf.Rectangle.
func FromCellbuf(r cellbuf.Rectangle) Rect {
	return Rect{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// TextAlign controls how Printer positions text around its anchor.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}
