// Package song holds track metadata: the beat schedule and tempo that drive
// satellite spawning.
package song

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultID is the identifier of the built-in track.
const DefaultID = "planets"

var (
	ErrNoTicks    = errors.New("song has no ticks")
	ErrInvalidBPM = errors.New("song bpm must be positive")
)

// Song is the immutable metadata of one musical track.
type Song struct {
	ID    string    `json:"id"`
	BPM   float64   `json:"bpm"`
	Ticks []float64 `json:"ticks"` // Music-time seconds at which a satellite reaches the threshold
}

// Validate checks the tempo and that ticks are non-negative and ordered.
func (s Song) Validate() error {
	if s.BPM <= 0 {
		return ErrInvalidBPM
	}
	if len(s.Ticks) == 0 {
		return ErrNoTicks
	}
	prev := 0.0
	for i, t := range s.Ticks {
		if t < prev {
			return fmt.Errorf("tick %d (%.3fs) is before %.3fs", i, t, prev)
		}
		prev = t
	}
	return nil
}

// Duration returns the music time of the last tick.
func (s Song) Duration() float64 {
	if len(s.Ticks) == 0 {
		return 0
	}
	return s.Ticks[len(s.Ticks)-1]
}

// Load reads a song from a JSON file and validates it.
func Load(path string) (Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Song{}, fmt.Errorf("read song: %w", err)
	}
	var s Song
	if err := json.Unmarshal(data, &s); err != nil {
		return Song{}, fmt.Errorf("parse song %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Song{}, fmt.Errorf("invalid song %s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in track: 100 BPM with a pattern that starts on
// every second beat and tightens to every beat, with an off-beat every
// fourth bar.
func Default() Song {
	const (
		bpm   = 100.0
		lead  = 4 // Beats of silence before the first satellite
		beats = 160
	)
	interval := 60 / bpm

	var ticks []float64
	for beat := lead; beat < beats; beat++ {
		switch {
		case beat < 32:
			if beat%2 == 0 {
				ticks = append(ticks, float64(beat)*interval)
			}
		default:
			ticks = append(ticks, float64(beat)*interval)
			if beat%16 == 6 {
				ticks = append(ticks, (float64(beat)+0.5)*interval)
			}
		}
	}

	return Song{ID: DefaultID, BPM: bpm, Ticks: ticks}
}
