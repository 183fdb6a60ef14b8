package game

import "time"

// One-shot sound ids requested by the core.
const (
	SoundExplosion = "explosion1"
)

// Audio plays the round's track and sound effects.
type Audio interface {
	// PlayTrack starts the track and returns the moment playback started.
	PlayTrack(id string) time.Time
	StopTrack()
	PlayOneShot(id string)
}

// Orbit receives caught satellites. The core never inspects it afterwards.
type Orbit interface {
	Capture(s Satellite)
}

// Notifier shows transient feedback. The receiver owns the fade timing.
type Notifier interface {
	ShowMiss()
}

// Effects runs the planet explosion and tears down round entities.
// When the explosion sequence ends, the host calls Game.ExplosionFinished.
type Effects interface {
	Explode()
	Reset()
}

// Observer is told about round events, for metrics and diagnostics.
type Observer interface {
	RoundStarted(round int)
	Tapped(hit bool)
	FlewBy()
	Exploded(stats Stats)
}

type nopAudio struct{}

func (nopAudio) PlayTrack(string) time.Time { return time.Now() }
func (nopAudio) StopTrack()                 {}
func (nopAudio) PlayOneShot(string)         {}

type nopHost struct{}

func (nopHost) Capture(Satellite) {}
func (nopHost) ShowMiss()         {}
func (nopHost) Explode()          {}
func (nopHost) Reset()            {}
func (nopHost) RoundStarted(int)  {}
func (nopHost) Tapped(bool)       {}
func (nopHost) FlewBy()           {}
func (nopHost) Exploded(Stats)    {}
