// Package audio plays the synthesized beat track and sound effects through
// the system speaker. Without a working audio device it stays silent and the
// game keeps running on the wall clock.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/song"
)

const (
	sampleRate = beep.SampleRate(44100)

	// trackTail keeps the track playing for a moment after the last tick.
	trackTail = time.Second
)

// Player implements game.Audio on top of a beep mixer.
type Player struct {
	mu          sync.Mutex
	songs       map[string]song.Song
	mixer       *beep.Mixer
	volume      *effects.Volume
	track       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player that knows the given songs. Call Initialize to
// open the speaker.
func NewPlayer(logger *log.Logger, songs ...song.Song) *Player {
	mixer := &beep.Mixer{}
	p := &Player{
		songs:  make(map[string]song.Song, len(songs)),
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
		logger: logger,
	}
	for _, s := range songs {
		p.songs[s.ID] = s
	}
	return p
}

// SetVolume sets the master volume as a base-2 exponent: 0 is unchanged,
// -1 is half as loud. Values at or below -10 mute.
func (p *Player) SetVolume(v float64) {
	speaker.Lock()
	defer speaker.Unlock()
	p.volume.Volume = v
	p.volume.Silent = v <= -10
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Cleanup stops every sound.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.track = nil
	p.initialized = false
}

// PlayTrack starts the named track from the beginning and returns the
// moment playback started.
func (p *Player) PlayTrack(id string) time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.songs[id]
	if !ok {
		p.logger.Warn("unknown track", "id", id)
		return time.Now()
	}
	if !p.initialized {
		return time.Now()
	}

	speaker.Lock()
	if p.track != nil {
		p.track.Paused = true
		p.track.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: NewTrackStreamer(sampleRate, s)}
	p.track = ctrl
	p.mixer.Add(ctrl)
	started := time.Now()
	speaker.Unlock()

	return started
}

// StopTrack stops the current track.
func (p *Player) StopTrack() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.track == nil {
		return
	}
	speaker.Lock()
	p.track.Paused = true
	p.track.Streamer = nil
	speaker.Unlock()
	p.track = nil
}

// PlayOneShot plays a named effect over the track.
func (p *Player) PlayOneShot(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	streamer := oneShot(id)
	if streamer == nil {
		p.logger.Warn("unknown sound", "id", id)
		return
	}
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

func oneShot(id string) beep.Streamer {
	switch id {
	case game.SoundExplosion:
		return beep.Take(sampleRate.N(900*time.Millisecond), NewExplosionGenerator(sampleRate, time.Now().UnixNano()))
	default:
		return nil
	}
}

// Ensure Player implements game.Audio.
var _ game.Audio = (*Player)(nil)

// TrackLength returns the number of samples in the track for s.
func TrackLength(sr beep.SampleRate, s song.Song) int {
	return sr.N(time.Duration(s.Duration()*float64(time.Second)) + trackTail)
}

// NewTrackStreamer renders a song as a kick on every beat and a bright
// click on every tick.
func NewTrackStreamer(sr beep.SampleRate, s song.Song) beep.Streamer {
	return beep.Take(TrackLength(sr, s), NewTrackGenerator(sr, s))
}

// TrackGenerator synthesizes the beat track of a song.
type TrackGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int   // Samples per beat
	ticks    []int // Tick positions in samples
	next     int   // Index of the next tick to start
	tickFrom int   // Start of the sounding tick, -1 if none
}

// NewTrackGenerator creates a generator for s.
func NewTrackGenerator(sr beep.SampleRate, s song.Song) *TrackGenerator {
	ticks := make([]int, len(s.Ticks))
	for i, t := range s.Ticks {
		ticks[i] = sr.N(time.Duration(t * float64(time.Second)))
	}
	return &TrackGenerator{
		sr:       sr,
		beat:     sr.N(time.Duration(game.BeatInterval(s.BPM) * float64(time.Second))),
		ticks:    ticks,
		tickFrom: -1,
	}
}

const (
	kickLength  = 90 * time.Millisecond
	clickLength = 60 * time.Millisecond
	clickFreq   = 880.0
)

func (g *TrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(kickLength)
	clickLen := g.sr.N(clickLength)

	for i := range samples {
		for g.next < len(g.ticks) && g.ticks[g.next] <= g.pos {
			g.tickFrom = g.ticks[g.next]
			g.next++
		}

		sample := 0.0

		// Kick drum on every beat
		if g.beat > 0 {
			beatPos := g.pos % g.beat
			if beatPos < kickLen {
				env := 1 - float64(beatPos)/float64(kickLen)
				t := float64(beatPos) / float64(g.sr)
				freq := 55 * (1 + 2*env)
				sample += 0.35 * env * math.Sin(2*math.Pi*freq*t)
			}
		}

		// Click on every tick
		if g.tickFrom >= 0 {
			tickPos := g.pos - g.tickFrom
			if tickPos < clickLen {
				env := math.Exp(-float64(tickPos) / float64(clickLen) * 5)
				t := float64(tickPos) / float64(g.sr)
				sample += 0.25 * env * math.Sin(2*math.Pi*clickFreq*t)
			} else {
				g.tickFrom = -1
			}
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TrackGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates a noisy rumble that decays away.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	lp   float64 // Low-pass filter state
}

// NewExplosionGenerator creates an explosion generator.
func NewExplosionGenerator(sr beep.SampleRate, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: seed}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slow decay
		envelope := math.Exp(-t * 4)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lp += 0.08 * (noise - g.lp)

		rumble := 0.4 * math.Sin(2*math.Pi*45*t)
		sample := envelope * (0.6*g.lp + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}
