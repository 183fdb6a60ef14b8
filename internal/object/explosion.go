package object

// Explosion is the shockwave left when the planet blows up. When it expires
// it calls done exactly once.
type Explosion struct {
	X, Y      float64
	MaxRadius float64
	total     float64
	remaining float64
	done      func()
	fired     bool
}

// NewExplosion creates a shockwave lasting lifetime seconds.
func NewExplosion(x, y, maxRadius, lifetime float64, done func()) *Explosion {
	return &Explosion{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		total:     lifetime,
		remaining: lifetime,
		done:      done,
	}
}

// Finished reports whether the completion callback has run.
func (e *Explosion) Finished() bool {
	return e.fired
}

func (e *Explosion) Update(ctx UpdateContext) (bool, error) {
	e.remaining -= ctx.Delta.Seconds()
	if e.remaining > 0 {
		return false, nil
	}
	if !e.fired {
		e.fired = true
		if e.done != nil {
			e.done()
		}
	}
	return true, nil
}

func (e *Explosion) Draw(ctx DrawContext) error {
	if e.total <= 0 || e.remaining <= 0 {
		return nil
	}
	progress := 1 - e.remaining/e.total
	ctx.Canvas.DrawCircle(e.X, e.Y, e.MaxRadius*progress, false)
	return nil
}
