package ui

import (
	"context"
	"fmt"

	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/frame"
	"github.com/idursun/drawbatch/internal/geom"
	"github.com/idursun/drawbatch/internal/palette"
)

const (
	layerWorld   = 0
	layerOverlay = 1

	glyphDot    = 250
	glyphClub   = 5
	glyphPlayer = '@'
	glyphGhost  = 2
)

// scene holds what the producers draw. It is only written between frames.
type scene struct {
	width, height int
	tick          uint64
	shade         float32
	layers        int
}

type namedProducer struct {
	name string
	fn   frame.Producer
}

// producers lists the scene producers. Draw order comes from their z layers,
// not from this order.
func (s *scene) producers() []namedProducer {
	return []namedProducer{
		{"world", s.world},
		{"entities", s.entities},
		{"hud", s.hud},
		{"overlay", s.overlay},
	}
}

func submit(buf *draw.CommandBuffer, z uint, fill func(b *draw.Batch)) error {
	b := buf.Acquire()
	defer b.Release()
	fill(b)
	return b.Submit(z)
}

func (s *scene) world(_ context.Context, buf *draw.CommandBuffer) error {
	return submit(buf, draw.ZWorld, func(b *draw.Batch) {
		b.Target(layerWorld).Cls()
		ground := palette.Pair(palette.DarkGrey, palette.Black)
		trees := palette.Pair(palette.Green, palette.Black)
		geom.WithSize(0, 0, s.width, s.height).ForEach(func(p geom.Point) {
			if (p.X*7+p.Y*13)%11 == 0 {
				b.Set(p, trees, glyphClub)
				return
			}
			if (p.X+p.Y)%2 == 0 {
				b.Set(p, ground, glyphDot)
			}
		})
	})
}

func (s *scene) entities(_ context.Context, buf *draw.CommandBuffer) error {
	return submit(buf, draw.ZEntities, func(b *draw.Batch) {
		b.Target(layerWorld)
		inner := max(s.width-2, 1)
		x := 1 + int(s.tick%uint64(inner))
		b.Set(geom.Pt(x, s.height/2), palette.Pair(palette.Yellow, palette.Black), glyphPlayer)

		span := max(s.height-3, 1)
		y := 1 + int(s.tick%uint64(2*span))
		if y > span {
			y = 2*span - y + 2
		}
		b.Set(geom.Pt(s.width/3, y), palette.Pair(palette.Pink, palette.Black), glyphGhost)
	})
}

func (s *scene) hud(_ context.Context, buf *draw.CommandBuffer) error {
	return submit(buf, draw.ZUI, func(b *draw.Batch) {
		frameColor := palette.Pair(palette.LightGrey, palette.Black)
		b.Target(layerWorld).
			DrawHollowBox(geom.WithSize(0, 0, s.width-1, s.height-1), frameColor).
			PrintColorCentered(0, " drawbatch ", palette.Pair(palette.Yellow, palette.Navy))

		progress := int(s.tick % 101)
		barWidth := max(s.width-4, 0)
		b.BarHorizontal(geom.Pt(2, s.height-2), barWidth, progress, 100, palette.Pair(palette.Cyan, palette.Black))
		b.BarVertical(geom.Pt(s.width-2, 1), max(s.height-3, 0), 100-progress, 100, palette.Pair(palette.Orange, palette.Black))
	})
}

func (s *scene) overlay(_ context.Context, buf *draw.CommandBuffer) error {
	if s.layers <= layerOverlay {
		return nil
	}
	return submit(buf, draw.ZOverlay, func(b *draw.Batch) {
		b.Target(layerOverlay).Cls()
		panel := geom.WithSize(2, 1, 14, 1)
		b.SetClipping(&panel).
			Printer(panel.TopLeft(), fmt.Sprintf("#[cyan]tick#[] %d", s.tick), geom.AlignLeft, nil).
			SetClipping(nil).
			SetAllBgAlpha(s.shade).
			Target(layerWorld)
	})
}
