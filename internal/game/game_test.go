package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartBeginsMusic(t *testing.T) {
	g, clock, rec := newTestGame([]float64{1, 2, 3})

	assert.Equal(t, []string{"test"}, rec.tracksPlayed)
	assert.Equal(t, []int{1}, rec.roundsSeen)
	assert.Equal(t, PhasePlaying, g.Round().Phase())
	assert.Equal(t, 3, g.Track().Len())

	clock.Advance(2 * time.Second)
	mt, err := g.Clock().MusicTime()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mt, 1e-9)
}

func TestUpdateBeforeStartIsNoop(t *testing.T) {
	g := New(Schedule{Beats: []float64{1}}, Options{})
	g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: true})
	g.Update()
	g.ExplosionFinished()

	assert.Nil(t, g.Round())
	assert.Equal(t, 0, g.PendingTaps())
}

func TestTapCatchesSatelliteOnBeat(t *testing.T) {
	g, clock, rec := newTestGame([]float64{1.0, 3.0})

	runFrames(g, clock, 60)
	tap(g)
	assert.Equal(t, 1, g.PendingTaps())
	g.Update()

	assert.Equal(t, 1, g.Round().Hits())
	assert.Equal(t, 0, g.Round().Misses())
	require.Len(t, rec.captured, 1)
	assert.Equal(t, SatelliteID(1), rec.captured[0].ID)
	assert.Equal(t, SatelliteCaught, rec.captured[0].State())
	assert.Equal(t, 1, g.Track().Len())
	assert.True(t, g.Gate().Armed())

	// The caught satellite never counts as a fly-by.
	runFrames(g, clock, 30)
	assert.Equal(t, 0, g.Round().Misses())
	assert.False(t, g.Gate().Armed(), "pulse ends after 100ms")
}

func TestTapWithNothingInGateIsMiss(t *testing.T) {
	g, clock, rec := newTestGame([]float64{5.0})

	runFrames(g, clock, 10)
	tap(g)
	g.Update()

	assert.Equal(t, 0, g.Round().Hits())
	assert.Equal(t, 1, g.Round().Misses())
	assert.Equal(t, 1, rec.missShown)
	assert.Equal(t, []bool{false}, rec.taps)
	assert.Empty(t, rec.captured)
}

func TestHeldInputTapsOnce(t *testing.T) {
	g, clock, _ := newTestGame([]float64{5.0})

	for i := 0; i < 20; i++ {
		g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: true})
		clock.Advance(frame)
		g.Update()
	}
	assert.Equal(t, 1, g.Round().Misses())

	g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: false})
	g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: true})
	g.Update()
	assert.Equal(t, 2, g.Round().Misses())
}

func TestFlyByMissesExplodeAndRestart(t *testing.T) {
	g, clock, rec := newTestGame([]float64{0.5, 1.0, 1.5, 2.0})

	// 0.5s beat passes the fly-by line shortly after; run until three are gone.
	for g.Round().Phase() == PhasePlaying {
		runFrames(g, clock, 1)
		require.Less(t, g.Clock().Elapsed(), 5.0, "round should have exploded")
	}

	assert.Equal(t, PhaseExploding, g.Round().Phase())
	assert.Equal(t, 3, g.Round().Misses())
	assert.Equal(t, 3, rec.flyBys)
	assert.Equal(t, 3, rec.missShown)
	assert.Equal(t, 1, rec.trackStops)
	assert.Equal(t, []string{SoundExplosion}, rec.oneShots)
	assert.Equal(t, 1, rec.explosions)
	require.Len(t, rec.exploded, 1)
	assert.Equal(t, 3, rec.exploded[0].Misses)

	// Frozen while exploding: no motion, no taps, no more misses.
	before, _ := g.Track().Get(4)
	y := before.Y
	tap(g)
	runFrames(g, clock, 120)
	assert.Equal(t, 3, g.Round().Misses())
	assert.InDelta(t, y, before.Y, 1e-9)
	assert.Equal(t, 1, rec.explosions, "explosion is not re-triggered")

	g.ExplosionFinished()
	assert.Equal(t, PhaseRestarting, g.Round().Phase())
	g.ExplosionFinished()

	g.Update()
	assert.Equal(t, PhasePlaying, g.Round().Phase())
	assert.Equal(t, 2, g.Round().Number())
	assert.Equal(t, 0, g.Round().Hits())
	assert.Equal(t, 0, g.Round().Misses())
	assert.Equal(t, 4, g.Track().ActiveCount())
	assert.Equal(t, 1, rec.resets)
	assert.Equal(t, []string{"test", "test"}, rec.tracksPlayed)
	assert.Equal(t, []int{1, 2}, rec.roundsSeen)
}

func TestRestartCancelsPendingPulse(t *testing.T) {
	g, clock, _ := newTestGame([]float64{10})
	g.cfg.AllowedMisses = 1
	g.round = NewRound(1, 1)

	tap(g)
	g.Update()
	require.Equal(t, PhaseExploding, g.Round().Phase())
	require.True(t, g.Gate().Armed())
	oldGate := g.Gate()

	g.ExplosionFinished()
	g.Update()
	assert.Equal(t, 0, g.sched.Len(), "stale un-arm timer dropped")

	clock.Advance(time.Second)
	g.Update()
	assert.True(t, oldGate.Armed(), "torn-down gate is never touched again")
	assert.False(t, g.Gate().Armed())
}

func TestMissesNeverExceedSatellites(t *testing.T) {
	beats := []float64{0.2, 0.3, 0.4, 0.5, 0.6}
	g, clock, _ := newTestGame(beats)
	g.cfg.AllowedMisses = 100
	g.round = NewRound(1, 100)

	prev := 0
	for i := 0; i < 180; i++ {
		runFrames(g, clock, 1)
		r := g.Round()
		assert.GreaterOrEqual(t, r.Misses(), prev)
		prev = r.Misses()
		assert.LessOrEqual(t, r.Hits()+r.Misses(), len(beats))
	}
	assert.Equal(t, len(beats), g.Round().Misses())
}

func TestTapBeforeFlyByInSameFrame(t *testing.T) {
	g, clock, rec := newTestGame([]float64{1.0})

	// Step to just before the beat, then tap in the frame that reaches it.
	runFrames(g, clock, 59)
	tap(g)
	runFrames(g, clock, 1)
	runFrames(g, clock, 60)

	assert.Equal(t, 1, g.Round().Hits())
	assert.Equal(t, 0, g.Round().Misses())
	assert.Equal(t, 0, rec.flyBys)
}
