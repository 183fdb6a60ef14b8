package object

import (
	"github.com/tomz197/planetbeat/internal/draw"
	"github.com/tomz197/planetbeat/internal/game"
)

// Satellites draws every satellite still owned by the current track.
// Missed satellites are drawn hollow as they drift away.
type Satellites struct {
	Track func() *game.Track
}

func (s *Satellites) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

func (s *Satellites) Draw(ctx DrawContext) error {
	if s.Track == nil {
		return nil
	}
	t := s.Track()
	if t == nil {
		return nil
	}
	height := ctx.Canvas.LogicalHeight()
	t.Each(func(sat *game.Satellite) {
		// Most of the schedule is still far below the playfield.
		if sat.Y > height || sat.Y+sat.Size < 0 {
			return
		}
		pts := ctx.Canvas.Points(4)
		diamond(pts, sat.X, sat.Y, sat.Size)
		ctx.Canvas.DrawPolygon(pts, !sat.Missed())
	})
	return nil
}

// diamond fills pts with the four corners of a diamond inscribed in the box.
func diamond(pts []draw.Point, x, y, size float64) {
	half := size / 2
	pts[0] = draw.Point{X: x + half, Y: y}
	pts[1] = draw.Point{X: x + size, Y: y + half}
	pts[2] = draw.Point{X: x + half, Y: y + size}
	pts[3] = draw.Point{X: x, Y: y + half}
}
