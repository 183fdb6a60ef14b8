package game

import "github.com/tomz197/planetbeat/internal/physics"

// SatelliteID identifies a satellite within one round.
type SatelliteID int

// SatelliteState is the lifecycle stage of a satellite.
type SatelliteState int

const (
	SatelliteActive SatelliteState = iota // Rising, can be caught or missed
	SatelliteCaught                       // Handed to the orbit
	SatelliteMissed                       // Passed the threshold unclaimed
)

func (s SatelliteState) String() string {
	switch s {
	case SatelliteActive:
		return "active"
	case SatelliteCaught:
		return "caught"
	case SatelliteMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// laneCount is the number of horizontal lanes satellites are spread across.
const laneCount = 3

// Satellite rises toward the threshold and must be tapped while inside it.
type Satellite struct {
	ID       SatelliteID
	Beat     int     // Index in the beat schedule
	BeatTime float64 // Music time at which the top edge reaches the threshold
	X, Y     float64 // Top-left corner
	Size     float64
	state    SatelliteState
}

// State returns the lifecycle stage.
func (s *Satellite) State() SatelliteState { return s.state }

// Missed reports whether the satellite passed the threshold unclaimed.
func (s *Satellite) Missed() bool { return s.state == SatelliteMissed }

// Bounds returns the sprite box.
func (s *Satellite) Bounds() physics.Rect {
	return physics.Rect{X: s.X, Y: s.Y, W: s.Size, H: s.Size}
}

// HitBox returns the sprite box shifted vertically by offsetY.
func (s *Satellite) HitBox(offsetY float64) physics.Rect {
	return s.Bounds().Translate(0, offsetY)
}

// markMissed flags the satellite as missed. Only active satellites can be missed.
func (s *Satellite) markMissed() bool {
	if s.state != SatelliteActive {
		return false
	}
	s.state = SatelliteMissed
	return true
}

// Track owns the satellites of a round and moves them uniformly.
type Track struct {
	speed      float64
	satellites []*Satellite // Insertion order == beat order
	byID       map[SatelliteID]*Satellite
}

// NewTrack creates one satellite per beat, placed so that moving at the
// configured speed each one reaches the threshold at its beat time.
func NewTrack(beats []float64, cfg Config) *Track {
	t := &Track{
		speed:      cfg.SatelliteSpeed,
		satellites: make([]*Satellite, 0, len(beats)),
		byID:       make(map[SatelliteID]*Satellite, len(beats)),
	}

	laneWidth := cfg.WorldWidth / laneCount
	for i, beatTime := range beats {
		lane := i % laneCount
		s := &Satellite{
			ID:       SatelliteID(i + 1),
			Beat:     i,
			BeatTime: beatTime,
			X:        laneWidth*float64(lane) + (laneWidth-cfg.SatelliteSize)/2,
			Y:        cfg.ThresholdDistance + beatTime*cfg.SatelliteSpeed,
			Size:     cfg.SatelliteSize,
		}
		t.satellites = append(t.satellites, s)
		t.byID[s.ID] = s
	}
	return t
}

// Advance moves every satellite still owned by the track up by speed*dt.
// Missed satellites keep drifting so they leave the screen.
func (t *Track) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	dy := t.speed * dt
	for _, s := range t.satellites {
		s.Y -= dy
	}
}

// ForEachActive calls fn for every active satellite in insertion order.
func (t *Track) ForEachActive(fn func(s *Satellite)) {
	for _, s := range t.satellites {
		if s.state == SatelliteActive {
			fn(s)
		}
	}
}

// Each calls fn for every satellite the track still owns (active and missed).
func (t *Track) Each(fn func(s *Satellite)) {
	for _, s := range t.satellites {
		fn(s)
	}
}

// Get returns the satellite with the given id, if the track still owns it.
func (t *Track) Get(id SatelliteID) (*Satellite, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Remove transfers an active satellite out of the track and returns a copy
// marked caught. Missed or unknown satellites are rejected.
func (t *Track) Remove(id SatelliteID) (Satellite, bool) {
	s, ok := t.byID[id]
	if !ok || s.state != SatelliteActive {
		return Satellite{}, false
	}

	delete(t.byID, id)
	for i, other := range t.satellites {
		if other == s {
			t.satellites = append(t.satellites[:i], t.satellites[i+1:]...)
			break
		}
	}
	s.state = SatelliteCaught
	return *s, true
}

// Len returns how many satellites the track still owns.
func (t *Track) Len() int {
	return len(t.satellites)
}

// ActiveCount returns how many satellites can still be caught or missed.
func (t *Track) ActiveCount() int {
	n := 0
	t.ForEachActive(func(*Satellite) { n++ })
	return n
}
