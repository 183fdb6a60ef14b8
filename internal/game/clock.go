package game

import (
	"errors"
	"time"
)

// ErrNotStarted is returned when music time is queried before playback began.
var ErrNotStarted = errors.New("music has not started")

// TimeSource provides the current wall-clock time.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time { return time.Now() }

// Clock tracks elapsed round time and derives music time from it.
type Clock struct {
	src        TimeSource
	start      time.Time
	latest     time.Time // Highest reading seen, keeps Elapsed non-decreasing
	lastTick   time.Time
	musicStart time.Time
	playing    bool
}

// NewClock creates a clock started at the source's current time.
func NewClock(src TimeSource) *Clock {
	if src == nil {
		src = SystemTime{}
	}
	c := &Clock{src: src}
	c.Reset()
	return c
}

// Reset restarts elapsed time at zero and forgets the music start.
func (c *Clock) Reset() {
	now := c.src.Now()
	c.start = now
	c.latest = now
	c.lastTick = now
	c.musicStart = time.Time{}
	c.playing = false
}

func (c *Clock) now() time.Time {
	if now := c.src.Now(); now.After(c.latest) {
		c.latest = now
	}
	return c.latest
}

// Elapsed returns seconds since the clock was started or reset.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Tick returns the seconds passed since the previous Tick (or Reset).
func (c *Clock) Tick() float64 {
	now := c.now()
	dt := now.Sub(c.lastTick).Seconds()
	c.lastTick = now
	return dt
}

// StartMusic records the moment the track began playing.
func (c *Clock) StartMusic(at time.Time) {
	c.musicStart = at
	c.playing = true
}

// MusicTime returns seconds since the track began playing.
func (c *Clock) MusicTime() (float64, error) {
	if !c.playing {
		return 0, ErrNotStarted
	}
	return c.now().Sub(c.musicStart).Seconds(), nil
}

// BeatInterval returns the duration of one beat in seconds.
func BeatInterval(bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return 60 / bpm
}

// BeatRate returns beats per second, the frequency of beat-synced animations.
func BeatRate(bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return bpm / 60
}
