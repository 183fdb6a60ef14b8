package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Schedule is the track metadata a round is built from.
type Schedule struct {
	TrackID string
	BPM     float64
	Beats   []float64
}

// Options wires the collaborators. Nil fields default to no-ops.
type Options struct {
	Config   Config
	Time     TimeSource
	Audio    Audio
	Orbit    Orbit
	Notifier Notifier
	Effects  Effects
	Observer Observer
	Logger   *log.Logger
}

// Game runs rounds frame by frame.
type Game struct {
	cfg      Config
	schedule Schedule

	clock *Clock
	sched *Scheduler
	input InputGate

	track *Track
	gate  *Gate
	round *Round

	pendingTaps int
	rounds      int

	audio    Audio
	orbit    Orbit
	notifier Notifier
	effects  Effects
	observer Observer
	logger   *log.Logger
}

// New creates a game for the given schedule. Call Start to begin the first round.
func New(schedule Schedule, opts Options) *Game {
	if opts.Config == (Config{}) {
		opts.Config = DefaultConfig()
	}
	g := &Game{
		cfg:      opts.Config,
		schedule: schedule,
		clock:    NewClock(opts.Time),
		sched:    &Scheduler{},
		audio:    opts.Audio,
		orbit:    opts.Orbit,
		notifier: opts.Notifier,
		effects:  opts.Effects,
		observer: opts.Observer,
		logger:   opts.Logger,
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.orbit == nil {
		g.orbit = nopHost{}
	}
	if g.notifier == nil {
		g.notifier = nopHost{}
	}
	if g.effects == nil {
		g.effects = nopHost{}
	}
	if g.observer == nil {
		g.observer = nopHost{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Start builds the first round and starts the music.
func (g *Game) Start() {
	g.startRound()
}

// startRound replaces every per-round value with a fresh one.
func (g *Game) startRound() {
	g.sched.CancelAll()
	g.pendingTaps = 0
	g.rounds++

	g.clock.Reset()
	g.track = NewTrack(g.schedule.Beats, g.cfg)
	g.gate = NewGate(g.cfg)
	g.round = NewRound(g.rounds, g.cfg.AllowedMisses)

	g.clock.StartMusic(g.audio.PlayTrack(g.schedule.TrackID))
	g.observer.RoundStarted(g.rounds)
	g.logger.Info("round started", "round", g.rounds, "satellites", g.track.Len(), "bpm", g.schedule.BPM)
}

// HandleInput feeds a raw press/release into the input gate.
func (g *Game) HandleInput(ev InputEvent) {
	if g.input.Handle(ev) {
		g.pendingTaps++
	}
}

// Update advances one frame: motion, taps, fly-by misses, then phase transitions.
func (g *Game) Update() {
	if g.round == nil {
		g.pendingTaps = 0
		return
	}
	if g.round.Phase() == PhaseRestarting {
		g.effects.Reset()
		g.startRound()
		return
	}

	dt := g.clock.Tick()
	g.sched.Advance(g.clock.Elapsed())

	if g.round.Phase() != PhasePlaying {
		g.pendingTaps = 0
		return
	}

	g.track.Advance(dt)

	for ; g.pendingTaps > 0; g.pendingTaps-- {
		g.triggerTap()
	}

	g.track.ForEachActive(func(s *Satellite) {
		if g.round.OnFlyBy(s, g.gate) {
			g.notifier.ShowMiss()
			g.observer.FlewBy()
			g.logger.Debug("exceeded threshold", "satellite", s.ID, "misses", g.round.Misses())
		}
	})

	if g.round.Evaluate() {
		g.explode()
	}
}

func (g *Game) triggerTap() {
	g.gate.Pulse(g.sched, g.cfg.PulseDuration)

	s := g.gate.Catch(g.track)
	g.round.OnTap(s != nil)
	g.observer.Tapped(s != nil)

	if s == nil {
		g.notifier.ShowMiss()
		g.logger.Debug("tap missed", "misses", g.round.Misses(), "health", g.round.Health())
		return
	}
	if caught, ok := g.track.Remove(s.ID); ok {
		g.orbit.Capture(caught)
	}
	g.logger.Debug("threshold hit", "satellite", s.ID, "hits", g.round.Hits())
}

func (g *Game) explode() {
	g.audio.StopTrack()
	g.effects.Explode()
	g.audio.PlayOneShot(SoundExplosion)

	stats := g.round.Stats()
	g.observer.Exploded(stats)
	g.logger.Info("game over", "round", stats.Round, "hits", stats.Hits, "misses", stats.Misses)
}

// ExplosionFinished is the completion signal of the explosion sequence.
// It is consumed once; calls outside the Exploding phase are ignored.
func (g *Game) ExplosionFinished() {
	if g.round == nil {
		return
	}
	if g.round.FinishExplosion() {
		g.logger.Debug("explosion finished", "round", g.round.Number())
	}
}

// Round returns the current round.
func (g *Game) Round() *Round { return g.round }

// Track returns the current round's satellites.
func (g *Game) Track() *Track { return g.track }

// Gate returns the current round's threshold.
func (g *Game) Gate() *Gate { return g.gate }

// Clock returns the round clock.
func (g *Game) Clock() *Clock { return g.clock }

// Config returns the tuning in use.
func (g *Game) Config() Config { return g.cfg }

// Schedule returns the track metadata.
func (g *Game) Schedule() Schedule { return g.schedule }

// PendingTaps returns the taps waiting for the next Update.
func (g *Game) PendingTaps() int { return g.pendingTaps }
