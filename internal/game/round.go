package game

// Phase is the stage of a round.
type Phase int

const (
	PhasePlaying    Phase = iota // Satellites move, taps and misses count
	PhaseExploding               // Planet destroyed, waiting for the explosion to finish
	PhaseRestarting              // Terminal: the round is torn down and rebuilt
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Round holds the hit/miss accounting of one playthrough.
// A new Round is built for every restart; counters never decrease.
type Round struct {
	number  int
	allowed int
	hits    int
	misses  int
	phase   Phase
}

// NewRound creates a round in the Playing phase.
func NewRound(number, allowedMisses int) *Round {
	return &Round{number: number, allowed: allowedMisses}
}

// Number returns the 1-based round counter.
func (r *Round) Number() int { return r.number }

// Hits returns the number of caught satellites.
func (r *Round) Hits() int { return r.hits }

// Misses returns failed taps plus satellites that flew by.
func (r *Round) Misses() int { return r.misses }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Health returns the remaining misses the planet can take.
func (r *Round) Health() int {
	if h := r.allowed - r.misses; h > 0 {
		return h
	}
	return 0
}

// OnTap records the outcome of a tap. Ignored outside Playing.
func (r *Round) OnTap(hit bool) {
	if r.phase != PhasePlaying {
		return
	}
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

// OnFlyBy flags s as missed and counts it if it has passed the gate.
// Returns true only the first time a satellite is counted.
func (r *Round) OnFlyBy(s *Satellite, g *Gate) bool {
	if r.phase != PhasePlaying || !g.Passed(s) {
		return false
	}
	if !s.markMissed() {
		return false
	}
	r.misses++
	return true
}

// Evaluate moves Playing to Exploding once the allowed misses are used up.
// Returns true when the transition happened.
func (r *Round) Evaluate() bool {
	if r.phase != PhasePlaying || r.misses < r.allowed {
		return false
	}
	r.phase = PhaseExploding
	return true
}

// FinishExplosion moves Exploding to Restarting. Returns false in any other phase.
func (r *Round) FinishExplosion() bool {
	if r.phase != PhaseExploding {
		return false
	}
	r.phase = PhaseRestarting
	return true
}

// Stats is a snapshot of a round's counters.
type Stats struct {
	Round  int
	Hits   int
	Misses int
	Health int
	Phase  Phase
}

// Stats returns the current counters.
func (r *Round) Stats() Stats {
	return Stats{
		Round:  r.number,
		Hits:   r.hits,
		Misses: r.misses,
		Health: r.Health(),
		Phase:  r.phase,
	}
}
