package object

import (
	"math"

	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/physics"
)

type orbiter struct {
	angle  float64
	radius float64
	size   float64
}

// Orbit holds the caught satellites circling the planet.
type Orbit struct {
	CX, CY float64
	Radius float64
	Speed  float64 // Radians per second
	bodies []orbiter
}

// NewOrbit creates an empty orbit around (cx, cy).
func NewOrbit(cx, cy, radius, speed float64) *Orbit {
	return &Orbit{CX: cx, CY: cy, Radius: radius, Speed: speed}
}

// Capture puts a caught satellite into orbit on the side it was caught from.
func (o *Orbit) Capture(s game.Satellite) {
	n := len(o.bodies)
	sx, sy := s.Bounds().Center()
	o.bodies = append(o.bodies, orbiter{
		angle:  math.Atan2(sy-o.CY, sx-o.CX),
		radius: o.Radius + float64(n%3)*4,
		size:   s.Size / 3,
	})
}

// Clear destroys every orbiting satellite.
func (o *Orbit) Clear() {
	o.bodies = o.bodies[:0]
}

// Len returns the number of satellites in orbit.
func (o *Orbit) Len() int {
	return len(o.bodies)
}

func (o *Orbit) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	for i := range o.bodies {
		b := &o.bodies[i]
		// Inner rings turn faster.
		b.angle += o.Speed * dt * o.Radius / b.radius
		if b.angle > 2*math.Pi {
			b.angle -= 2 * math.Pi
		}
	}
	return false, nil
}

func (o *Orbit) Draw(ctx DrawContext) error {
	for _, b := range o.bodies {
		x, y := physics.PointOnCircle(o.CX, o.CY, b.radius, b.angle)
		ctx.Canvas.DrawRect(x-b.size/2, y-b.size/2, b.size, b.size, true)
	}
	return nil
}
