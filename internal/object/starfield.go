package object

import (
	"math/rand"
)

type star struct {
	x, y  float64
	group int // Stars in group 0 and 1 blink on alternate beats
}

// Starfield is the background. Half of the stars blink on each beat.
type Starfield struct {
	stars    []star
	BeatRate float64
}

// NewStarfield scatters count stars over a width x height area. The same seed
// yields the same sky.
func NewStarfield(width, height float64, count int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			group: i % 2,
		}
	}
	return &Starfield{stars: stars}
}

// Len returns the number of stars.
func (f *Starfield) Len() int {
	return len(f.stars)
}

func (f *Starfield) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

func (f *Starfield) Draw(ctx DrawContext) error {
	on := BeatOn(ctx.Elapsed, f.BeatRate)
	for _, s := range f.stars {
		if (s.group == 0) == on {
			ctx.Canvas.SetFloat(s.x, s.y)
		}
	}
	return nil
}
