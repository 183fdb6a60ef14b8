package object

import (
	"github.com/tomz197/planetbeat/internal/game"
)

// endWidth is the width of the blinking markers at both ends of the bar.
const endWidth = 6.0

// Threshold draws the gate bar. It is filled while armed and its end markers
// blink in time with the song.
type Threshold struct {
	Gate     func() *game.Gate
	BeatRate float64 // Blinks per second
}

func (t *Threshold) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

func (t *Threshold) Draw(ctx DrawContext) error {
	if t.Gate == nil {
		return nil
	}
	g := t.Gate()
	if g == nil {
		return nil
	}
	b := g.Bounds
	ctx.Canvas.DrawRect(b.X+endWidth, b.Y, b.W-2*endWidth, b.H, g.Armed())
	if BeatOn(ctx.Elapsed, t.BeatRate) {
		ctx.Canvas.DrawRect(b.X, b.Y, endWidth-2, b.H, true)
		ctx.Canvas.DrawRect(b.Right()-endWidth+2, b.Y, endWidth-2, b.H, true)
	}
	return nil
}
