package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockElapsedAndTick(t *testing.T) {
	src := newManualTime()
	c := NewClock(src)

	assert.Equal(t, 0.0, c.Elapsed())

	src.Advance(250 * time.Millisecond)
	assert.InDelta(t, 0.25, c.Tick(), 1e-9)
	src.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.1, c.Tick(), 1e-9)
	assert.InDelta(t, 0.35, c.Elapsed(), 1e-9)
	assert.Equal(t, 0.0, c.Tick(), "no time passed since previous tick")
}

func TestClockIsMonotonic(t *testing.T) {
	src := newManualTime()
	c := NewClock(src)

	src.Advance(time.Second)
	require.InDelta(t, 1.0, c.Elapsed(), 1e-9)

	src.Advance(-500 * time.Millisecond)
	assert.InDelta(t, 1.0, c.Elapsed(), 1e-9, "elapsed must not decrease")
	assert.GreaterOrEqual(t, c.Tick(), 0.0)
}

func TestClockMusicTime(t *testing.T) {
	src := newManualTime()
	c := NewClock(src)

	_, err := c.MusicTime()
	assert.ErrorIs(t, err, ErrNotStarted)

	src.Advance(2 * time.Second)
	c.StartMusic(src.Now())
	src.Advance(1500 * time.Millisecond)

	mt, err := c.MusicTime()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, mt, 1e-9)
	assert.InDelta(t, 3.5, c.Elapsed(), 1e-9)

	c.Reset()
	_, err = c.MusicTime()
	assert.ErrorIs(t, err, ErrNotStarted, "reset forgets the music start")
}

func TestBeatInterval(t *testing.T) {
	assert.InDelta(t, 0.5, BeatInterval(120), 1e-9)
	assert.InDelta(t, 0.6, BeatInterval(100), 1e-9)
	assert.Equal(t, 0.0, BeatInterval(0))
	assert.InDelta(t, 2.0, BeatRate(120), 1e-9)
	assert.Equal(t, 0.0, BeatRate(-1))
}
