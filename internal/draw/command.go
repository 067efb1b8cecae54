package draw

import (
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
)

// Kind identifies the drawing primitive a Command replays as.
type Kind uint8

const (
	KindClearScreen Kind = iota
	KindClearToColor
	KindSetTarget
	KindSet
	KindSetBackground
	KindPrint
	KindPrintColor
	KindPrintRight
	KindPrintColorRight
	KindPrintCentered
	KindPrintColorCentered
	KindPrintCenteredAt
	KindPrintColorCenteredAt
	KindPrinter
	KindBox
	KindHollowBox
	KindDoubleBox
	KindHollowDoubleBox
	KindFillRegion
	KindBarHorizontal
	KindBarVertical
	KindSetClipping
	KindSetFgAlpha
	KindSetBgAlpha
	KindSetAllAlpha

	kindCount
)

var kindNames = [...]string{
	KindClearScreen:          "ClearScreen",
	KindClearToColor:         "ClearToColor",
	KindSetTarget:            "SetTarget",
	KindSet:                  "Set",
	KindSetBackground:        "SetBackground",
	KindPrint:                "Print",
	KindPrintColor:           "PrintColor",
	KindPrintRight:           "PrintRight",
	KindPrintColorRight:      "PrintColorRight",
	KindPrintCentered:        "PrintCentered",
	KindPrintColorCentered:   "PrintColorCentered",
	KindPrintCenteredAt:      "PrintCenteredAt",
	KindPrintColorCenteredAt: "PrintColorCenteredAt",
	KindPrinter:              "Printer",
	KindBox:                  "Box",
	KindHollowBox:            "HollowBox",
	KindDoubleBox:            "DoubleBox",
	KindHollowDoubleBox:      "HollowDoubleBox",
	KindFillRegion:           "FillRegion",
	KindBarHorizontal:        "BarHorizontal",
	KindBarVertical:          "BarVertical",
	KindSetClipping:          "SetClipping",
	KindSetFgAlpha:           "SetFgAlpha",
	KindSetBgAlpha:           "SetBgAlpha",
	KindSetAllAlpha:          "SetAllAlpha",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds returns every known Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Command is one buffered drawing primitive. The set of implementations is closed:
// only the types in this file satisfy it.
type Command interface {
	Kind() Kind
	command()
}

// Entry pairs a command with its replay priority. Lower priorities replay first.
type Entry struct {
	Priority uint
	Command  Command
}

type ClearScreen struct{}

type ClearToColor struct {
	Color palette.RGBA
}

// SetTarget switches the console subsequent commands draw on.
type SetTarget struct {
	Console int
}

type Set struct {
	Pos   geom.Point
	Color palette.ColorPair
	Glyph byte
}

type SetBackground struct {
	Pos geom.Point
	Bg  palette.RGBA
}

type Print struct {
	Pos  geom.Point
	Text string
}

type PrintColor struct {
	Pos   geom.Point
	Text  string
	Color palette.ColorPair
}

type PrintRight struct {
	Pos  geom.Point
	Text string
}

type PrintColorRight struct {
	Pos   geom.Point
	Text  string
	Color palette.ColorPair
}

// PrintCentered centers text across the full console width on row Y.
type PrintCentered struct {
	Y    int
	Text string
}

type PrintColorCentered struct {
	Y     int
	Text  string
	Color palette.ColorPair
}

// PrintCenteredAt centers text horizontally around Pos.
type PrintCenteredAt struct {
	Pos  geom.Point
	Text string
}

type PrintColorCenteredAt struct {
	Pos   geom.Point
	Text  string
	Color palette.ColorPair
}

// Printer prints text with inline color markup. Background is nil when the
// existing background should be kept.
type Printer struct {
	Pos        geom.Point
	Text       string
	Align      geom.TextAlign
	Background *palette.RGBA
}

type Box struct {
	Rect  geom.Rect
	Color palette.ColorPair
}

type HollowBox struct {
	Rect  geom.Rect
	Color palette.ColorPair
}

type DoubleBox struct {
	Rect  geom.Rect
	Color palette.ColorPair
}

type HollowDoubleBox struct {
	Rect  geom.Rect
	Color palette.ColorPair
}

type FillRegion struct {
	Rect  geom.Rect
	Color palette.ColorPair
	Glyph byte
}

type BarHorizontal struct {
	Pos   geom.Point
	Width int
	N     int
	Max   int
	Color palette.ColorPair
}

type BarVertical struct {
	Pos    geom.Point
	Height int
	N      int
	Max    int
	Color  palette.ColorPair
}

// SetClipping restricts drawing to Clip. A nil Clip removes clipping.
type SetClipping struct {
	Clip *geom.Rect
}

type SetFgAlpha struct {
	Alpha float32
}

type SetBgAlpha struct {
	Alpha float32
}

type SetAllAlpha struct {
	Fg float32
	Bg float32
}

func (ClearScreen) Kind() Kind          { return KindClearScreen }
func (ClearToColor) Kind() Kind         { return KindClearToColor }
func (SetTarget) Kind() Kind            { return KindSetTarget }
func (Set) Kind() Kind                  { return KindSet }
func (SetBackground) Kind() Kind        { return KindSetBackground }
func (Print) Kind() Kind                { return KindPrint }
func (PrintColor) Kind() Kind           { return KindPrintColor }
func (PrintRight) Kind() Kind           { return KindPrintRight }
func (PrintColorRight) Kind() Kind      { return KindPrintColorRight }
func (PrintCentered) Kind() Kind        { return KindPrintCentered }
func (PrintColorCentered) Kind() Kind   { return KindPrintColorCentered }
func (PrintCenteredAt) Kind() Kind      { return KindPrintCenteredAt }
func (PrintColorCenteredAt) Kind() Kind { return KindPrintColorCenteredAt }
func (Printer) Kind() Kind              { return KindPrinter }
func (Box) Kind() Kind                  { return KindBox }
func (HollowBox) Kind() Kind            { return KindHollowBox }
func (DoubleBox) Kind() Kind            { return KindDoubleBox }
func (HollowDoubleBox) Kind() Kind      { return KindHollowDoubleBox }
func (FillRegion) Kind() Kind           { return KindFillRegion }
func (BarHorizontal) Kind() Kind        { return KindBarHorizontal }
func (BarVertical) Kind() Kind          { return KindBarVertical }
func (SetClipping) Kind() Kind          { return KindSetClipping }
func (SetFgAlpha) Kind() Kind           { return KindSetFgAlpha }
func (SetBgAlpha) Kind() Kind           { return KindSetBgAlpha }
func (SetAllAlpha) Kind() Kind          { return KindSetAllAlpha }

func (ClearScreen) command()          {}
func (ClearToColor) command()         {}
func (SetTarget) command()            {}
func (Set) command()                  {}
func (SetBackground) command()        {}
func (Print) command()                {}
func (PrintColor) command()           {}
func (PrintRight) command()           {}
func (PrintColorRight) command()      {}
func (PrintCentered) command()        {}
func (PrintColorCentered) command()   {}
func (PrintCenteredAt) command()      {}
func (PrintColorCenteredAt) command() {}
func (Printer) command()              {}
func (Box) command()                  {}
func (HollowBox) command()            {}
func (DoubleBox) command()            {}
func (HollowDoubleBox) command()      {}
func (FillRegion) command()           {}
func (BarHorizontal) command()        {}
func (BarVertical) command()          {}
func (SetClipping) command()          {}
func (SetFgAlpha) command()           {}
func (SetBgAlpha) command()           {}
func (SetAllAlpha) command()          {}

var (
	_ Command = ClearScreen{}
	_ Command = ClearToColor{}
	_ Command = SetTarget{}
	_ Command = Set{}
	_ Command = SetBackground{}
	_ Command = Print{}
	_ Command = PrintColor{}
	_ Command = PrintRight{}
	_ Command = PrintColorRight{}
	_ Command = PrintCentered{}
	_ Command = PrintColorCentered{}
	_ Command = PrintCenteredAt{}
	_ Command = PrintColorCenteredAt{}
	_ Command = Printer{}
	_ Command = Box{}
	_ Command = HollowBox{}
	_ Command = DoubleBox{}
	_ Command = HollowDoubleBox{}
	_ Command = FillRegion{}
	_ Command = BarHorizontal{}
	_ Command = BarVertical{}
	_ Command = SetClipping{}
	_ Command = SetFgAlpha{}
	_ Command = SetBgAlpha{}
	_ Command = SetAllAlpha{}
)
