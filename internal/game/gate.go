package game

import (
	"time"

	"github.com/tomz197/planetbeat/internal/physics"
)

// Gate is the threshold catch zone.
type Gate struct {
	Bounds     physics.Rect
	boxOffsetY float64
	armed      bool
	unarm      *Timer
}

// NewGate places the threshold across the world at the configured distance.
func NewGate(cfg Config) *Gate {
	return &Gate{
		Bounds: physics.Rect{
			X: 0,
			Y: cfg.ThresholdDistance,
			W: cfg.WorldWidth,
			H: cfg.GateHeight,
		},
		boxOffsetY: cfg.BoxOffsetY,
	}
}

// TestCollision reports whether a satellite's corrected hit box overlaps the
// threshold bounds. Edges that only touch do not count.
func TestCollision(bounds physics.Rect, s *Satellite, offsetY float64) bool {
	return physics.RectsOverlap(bounds, s.HitBox(offsetY))
}

// Armed reports whether the threshold is in its pressed state.
func (g *Gate) Armed() bool { return g.armed }

// Pulse arms the threshold and schedules it to disarm after d.
// A pulse while already armed restarts the window.
func (g *Gate) Pulse(s *Scheduler, d time.Duration) {
	g.unarm.Cancel()
	g.armed = true
	g.unarm = s.After(d, func() {
		g.armed = false
		g.unarm = nil
	})
}

// Catch returns the active satellite credited for a tap, or nil.
// When several overlap, the earliest beat time wins, then the lowest id.
func (g *Gate) Catch(t *Track) *Satellite {
	if t == nil {
		return nil
	}
	var best *Satellite
	t.ForEachActive(func(s *Satellite) {
		if !TestCollision(g.Bounds, s, g.boxOffsetY) {
			return
		}
		if best == nil || s.BeatTime < best.BeatTime ||
			(s.BeatTime == best.BeatTime && s.ID < best.ID) {
			best = s
		}
	})
	return best
}

// Passed reports whether a satellite has risen beyond the threshold.
func (g *Gate) Passed(s *Satellite) bool {
	return s.Y < g.Bounds.Y-g.Bounds.H
}
