package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/planetbeat/internal/physics"
)

func TestTestCollision(t *testing.T) {
	cfg := DefaultConfig()
	gate := NewGate(cfg)

	at := func(y float64) *Satellite {
		return &Satellite{ID: 1, X: 70, Y: y, Size: cfg.SatelliteSize}
	}

	assert.True(t, TestCollision(gate.Bounds, at(100), cfg.BoxOffsetY), "aligned with the threshold")
	assert.False(t, TestCollision(gate.Bounds, at(160), cfg.BoxOffsetY), "well below")
	assert.False(t, TestCollision(gate.Bounds, at(40), cfg.BoxOffsetY), "well above")

	// Shifted box top edge touches the threshold bottom edge: 117-7 == 110.
	touching := at(117)
	for i := 0; i < 5; i++ {
		assert.False(t, TestCollision(gate.Bounds, touching, cfg.BoxOffsetY))
	}

	// The correction credits a sprite just below the threshold and not one just above.
	assert.True(t, TestCollision(gate.Bounds, at(112), cfg.BoxOffsetY))
	assert.False(t, TestCollision(gate.Bounds, at(112), 0))
	assert.False(t, TestCollision(gate.Bounds, at(90.5), cfg.BoxOffsetY))
	assert.True(t, TestCollision(gate.Bounds, at(90.5), 0))
}

func TestCatchPrefersEarliestBeat(t *testing.T) {
	cfg := DefaultConfig()
	gate := NewGate(cfg)
	track := NewTrack([]float64{1.0, 1.02, 5.0}, cfg)

	// Move so that both early satellites overlap the threshold.
	track.Advance(1.01)

	s := gate.Catch(track)
	if assert.NotNil(t, s) {
		assert.Equal(t, SatelliteID(1), s.ID)
	}

	_, _ = track.Remove(1)
	s = gate.Catch(track)
	if assert.NotNil(t, s) {
		assert.Equal(t, SatelliteID(2), s.ID)
	}
}

func TestCatchEmpty(t *testing.T) {
	gate := NewGate(DefaultConfig())
	assert.Nil(t, gate.Catch(nil))
	assert.Nil(t, gate.Catch(NewTrack(nil, DefaultConfig())))
}

func TestPassed(t *testing.T) {
	gate := NewGate(DefaultConfig())
	assert.False(t, gate.Passed(&Satellite{Y: 95}))
	assert.False(t, gate.Passed(&Satellite{Y: 90}))
	assert.True(t, gate.Passed(&Satellite{Y: 89.9}))
}

func TestPulse(t *testing.T) {
	cfg := DefaultConfig()
	gate := NewGate(cfg)
	var s Scheduler

	gate.Pulse(&s, cfg.PulseDuration)
	assert.True(t, gate.Armed())

	s.Advance(0.05)
	assert.True(t, gate.Armed())

	// A second pulse restarts the window.
	gate.Pulse(&s, cfg.PulseDuration)
	s.Advance(0.11)
	assert.True(t, gate.Armed())

	s.Advance(0.16)
	assert.False(t, gate.Armed())
	assert.Equal(t, 0, s.Len())
}

func TestGateBounds(t *testing.T) {
	cfg := DefaultConfig()
	gate := NewGate(cfg)
	assert.Equal(t, physics.Rect{X: 0, Y: 100, W: cfg.WorldWidth, H: cfg.GateHeight}, gate.Bounds)
}
