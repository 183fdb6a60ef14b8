package loop

import (
	"time"

	"github.com/tomz197/planetbeat/internal/config"
	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/input"
	"github.com/tomz197/planetbeat/internal/object"
)

// GameState represents the current screen of a session.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Rounds are running
	GameStateShutdown                  // Server is going away
)

// World is the render side of a game. It owns the scene objects and plays
// the host roles the core calls into: orbit, miss notifier and effects.
type World struct {
	Objects []object.Object // Transient objects: particles and the shockwave
	toSpawn []object.Object // Objects to add after current update cycle

	Width, Height float64

	stars      *object.Starfield
	threshold  *object.Threshold
	satellites *object.Satellites
	planet     *object.Planet
	orbit      *object.Orbit
	miss       *object.MissText
	explosion  *object.Explosion

	onExplosionDone func()
}

// NewWorld creates the scene for a game with the given rules and tempo.
func NewWorld(cfg game.Config, bpm float64) *World {
	w, h := cfg.WorldWidth, cfg.WorldHeight
	rate := game.BeatRate(bpm)

	stars := object.NewStarfield(w, h, config.StarCount, config.StarSeed)
	stars.BeatRate = rate

	return &World{
		Width:      w,
		Height:     h,
		stars:      stars,
		threshold:  &object.Threshold{BeatRate: rate},
		satellites: &object.Satellites{},
		planet:     object.NewPlanet(w/2, config.PlanetY, config.PlanetRadius, cfg.AllowedMisses),
		orbit:      object.NewOrbit(w/2, config.PlanetY, config.OrbitRadius, config.OrbitSpeed),
		miss:       object.NewMissText(w/2, h/2+30, cfg.MissFadeDuration),
	}
}

// Bind points the scene at the game it draws.
func (w *World) Bind(g *game.Game) {
	allowed := g.Config().AllowedMisses
	w.planet.Health = func() int {
		if r := g.Round(); r != nil {
			return r.Health()
		}
		return allowed
	}
	w.threshold.Gate = g.Gate
	w.satellites.Track = g.Track
}

// OnExplosionFinished registers the callback run once the explosion has
// played out.
func (w *World) OnExplosionFinished(fn func()) {
	w.onExplosionDone = fn
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the scene and clears the queue.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	w.toSpawn = w.toSpawn[:0]
}

// Capture puts a caught satellite into orbit.
func (w *World) Capture(s game.Satellite) {
	w.orbit.Capture(s)
}

// ShowMiss restarts the "Miss!" fade.
func (w *World) ShowMiss() {
	w.miss.ShowMiss()
}

// Explode destroys the planet and its orbit and starts the explosion.
func (w *World) Explode() {
	if w.explosion != nil {
		return
	}
	p := w.planet
	p.Destroyed = true
	w.orbit.Clear()
	object.SpawnExplosion(p.X, p.Y, p.Radius, config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime, w)
	w.explosion = object.NewExplosion(p.X, p.Y, p.Radius*3, config.ExplosionLifetime, w.explosionDone)
	w.Spawn(w.explosion)
}

func (w *World) explosionDone() {
	if w.onExplosionDone != nil {
		w.onExplosionDone()
	}
}

// Exploding reports whether an explosion is still playing.
func (w *World) Exploding() bool {
	return w.explosion != nil && !w.explosion.Finished()
}

// Reset tears the scene down for a new round.
func (w *World) Reset() {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	for _, obj := range w.toSpawn {
		object.ReleaseObject(obj)
	}
	w.Objects = w.Objects[:0]
	w.toSpawn = w.toSpawn[:0]
	w.explosion = nil
	w.planet.Destroyed = false
	w.orbit.Clear()
	w.miss.Hide()
}

// Ensure World implements the host roles.
var (
	_ game.Orbit    = (*World)(nil)
	_ game.Notifier = (*World)(nil)
	_ game.Effects  = (*World)(nil)
)

// State holds the per-session state around one game.
type State struct {
	World     *World
	Game      *game.Game
	Input     input.Input
	GameState GameState
	Running   bool
	Delta     time.Duration // Frame delta time
	Elapsed   float64       // Seconds since the session started

	lastInput     time.Time
	isInactive    bool
	shutdownTimer float64
}

// NewState creates the session state for g drawn by w.
func NewState(g *game.Game, w *World) *State {
	return &State{
		World:     w,
		Game:      g,
		GameState: GameStateStart,
		Running:   true,
		lastInput: time.Now(),
	}
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Elapsed: s.Elapsed,
	}
}
