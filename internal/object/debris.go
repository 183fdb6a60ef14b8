package object

import (
	"math"
	"math/rand"
	"sync"
)

// debrisPool reuses debris between explosions.
var debrisPool = sync.Pool{
	New: func() any {
		return &Debris{}
	},
}

// Debris is one chunk of an exploded planet. It flies outwards, slows down
// and shrinks to nothing over its lifetime.
type Debris struct {
	X, Y     float64
	VX, VY   float64
	Size     float64 // Edge length at spawn
	Life     float64 // Seconds remaining
	MaxLife  float64
	Friction float64 // Velocity kept per second, 1 = none lost
}

// NewDebris takes a chunk from the pool.
func NewDebris(x, y, vx, vy, size, life float64) *Debris {
	d := debrisPool.Get().(*Debris)
	*d = Debris{
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Size:     size,
		Life:     life,
		MaxLife:  life,
		Friction: 0.2,
	}
	return d
}

// Release returns the chunk to the pool.
func (d *Debris) Release() {
	debrisPool.Put(d)
}

// SpawnExplosion bursts count chunks out of a body of the given radius.
// Chunk speeds range from half to one and a half times speed and lifetimes
// from half to all of life.
func SpawnExplosion(x, y, radius float64, count int, speed, life float64, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)
		// Start somewhere inside the body so the burst is not a ring.
		r := radius * rand.Float64()
		spd := speed * (0.5 + rand.Float64())

		spawner.Spawn(NewDebris(
			x+cos*r, y+sin*r,
			cos*spd, sin*spd,
			1+rand.Float64()*3,
			life*(0.5+rand.Float64()*0.5),
		))
	}
}

func (d *Debris) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	d.Life -= dt
	if d.Life <= 0 {
		return true, nil
	}
	keep := math.Pow(d.Friction, dt)
	d.VX *= keep
	d.VY *= keep
	d.X += d.VX * dt
	d.Y += d.VY * dt
	return false, nil
}

// Draw renders the chunk as a square shrinking with its remaining life.
func (d *Debris) Draw(ctx DrawContext) error {
	size := d.Size * d.Life / d.MaxLife
	if size < 1 {
		ctx.Canvas.SetFloat(d.X, d.Y)
		return nil
	}
	ctx.Canvas.DrawRect(d.X-size/2, d.Y-size/2, size, size, true)
	return nil
}
