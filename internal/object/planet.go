package object

import (
	"github.com/tomz197/planetbeat/internal/physics"
)

// Planet is the body the player defends. It is drawn solid while it has
// health, hollow on its last life and hidden once destroyed.
type Planet struct {
	X, Y      float64
	Radius    float64
	MaxHealth int
	Destroyed bool
	Health    func() int
}

// NewPlanet creates a planet centred at (x, y).
func NewPlanet(x, y, radius float64, maxHealth int) *Planet {
	return &Planet{X: x, Y: y, Radius: radius, MaxHealth: maxHealth}
}

func (p *Planet) health() int {
	if p.Health == nil {
		return 0
	}
	return p.Health()
}

func (p *Planet) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

func (p *Planet) Draw(ctx DrawContext) error {
	if p.Destroyed {
		return nil
	}
	ctx.Canvas.DrawCircle(p.X, p.Y, p.Radius, p.health() > 1)

	// One crater per lost life.
	lost := p.MaxHealth - p.health()
	for i := 0; i < lost; i++ {
		angle := float64(i) * 2.4
		cx, cy := physics.PointOnCircle(p.X, p.Y, p.Radius/2, angle)
		ctx.Canvas.DrawCircle(cx, cy, p.Radius/5, false)
	}
	return nil
}
