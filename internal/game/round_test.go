package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundExplodesOnAllowedMisses(t *testing.T) {
	r := NewRound(1, 3)

	r.OnTap(false)
	r.OnTap(false)
	assert.False(t, r.Evaluate(), "two misses keep the round playing")
	assert.Equal(t, PhasePlaying, r.Phase())
	assert.Equal(t, 1, r.Health())

	r.OnTap(false)
	assert.Equal(t, PhasePlaying, r.Phase(), "transition happens on evaluation")
	assert.True(t, r.Evaluate())
	assert.Equal(t, PhaseExploding, r.Phase())
	assert.Equal(t, 0, r.Health())

	assert.False(t, r.Evaluate(), "re-entry is a no-op")
	assert.Equal(t, PhaseExploding, r.Phase())
}

func TestRoundCountersFreezeOutsidePlaying(t *testing.T) {
	r := NewRound(1, 1)
	r.OnTap(true)
	r.OnTap(false)
	require.True(t, r.Evaluate())

	r.OnTap(true)
	r.OnTap(false)
	assert.Equal(t, 1, r.Hits())
	assert.Equal(t, 1, r.Misses())

	cfg := DefaultConfig()
	s := &Satellite{ID: 1, Y: 0, Size: cfg.SatelliteSize}
	assert.False(t, r.OnFlyBy(s, NewGate(cfg)))
	assert.False(t, s.Missed())
}

func TestRoundFlyByCountsOnce(t *testing.T) {
	cfg := DefaultConfig()
	gate := NewGate(cfg)
	r := NewRound(1, 3)
	s := &Satellite{ID: 1, Y: 150, Size: cfg.SatelliteSize}

	assert.False(t, r.OnFlyBy(s, gate), "not past the threshold yet")

	s.Y = 50
	assert.True(t, r.OnFlyBy(s, gate))
	for i := 0; i < 10; i++ {
		assert.False(t, r.OnFlyBy(s, gate))
	}
	assert.Equal(t, 1, r.Misses())
	assert.True(t, s.Missed())
}

func TestRoundFinishExplosion(t *testing.T) {
	r := NewRound(2, 1)
	assert.False(t, r.FinishExplosion(), "only valid while exploding")

	r.OnTap(false)
	require.True(t, r.Evaluate())
	assert.True(t, r.FinishExplosion())
	assert.Equal(t, PhaseRestarting, r.Phase())
	assert.False(t, r.FinishExplosion(), "signal is consumed once")

	stats := r.Stats()
	assert.Equal(t, Stats{Round: 2, Hits: 0, Misses: 1, Health: 0, Phase: PhaseRestarting}, stats)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "exploding", PhaseExploding.String())
	assert.Equal(t, "restarting", PhaseRestarting.String())
}
