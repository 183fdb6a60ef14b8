package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectsOverlap(t *testing.T) {
	gate := Rect{X: 0, Y: 100, W: 160, H: 10}

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside", Rect{X: 70, Y: 100, W: 12, H: 12}, true},
		{"partially above", Rect{X: 70, Y: 95, W: 12, H: 12}, true},
		{"fully below", Rect{X: 70, Y: 130, W: 12, H: 12}, false},
		{"touching bottom edge", Rect{X: 70, Y: 110, W: 12, H: 12}, false},
		{"touching top edge", Rect{X: 70, Y: 88, W: 12, H: 12}, false},
		{"outside horizontally", Rect{X: 170, Y: 100, W: 12, H: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectsOverlap(gate, tt.box))
			assert.Equal(t, tt.want, RectsOverlap(tt.box, gate), "overlap must be symmetric")
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 4, H: 6}
	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
	assert.Equal(t, Rect{X: 10, Y: 13, W: 4, H: 6}, r.Translate(0, -7))

	cx, cy := r.Center()
	assert.Equal(t, 12.0, cx)
	assert.Equal(t, 23.0, cy)
}

func TestPointOnCircle(t *testing.T) {
	x, y := PointOnCircle(10, 10, 5, 0)
	assert.InDelta(t, 15.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)
}
