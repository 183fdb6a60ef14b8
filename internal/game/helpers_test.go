package game

import (
	"time"
)

// manualTime is a TimeSource advanced explicitly by tests.
type manualTime struct {
	now time.Time
}

func newManualTime() *manualTime {
	return &manualTime{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *manualTime) Now() time.Time { return m.now }

func (m *manualTime) Advance(d time.Duration) { m.now = m.now.Add(d) }

// recorder implements every collaborator and remembers the calls.
type recorder struct {
	clock *manualTime

	tracksPlayed []string
	trackStops   int
	oneShots     []string
	captured     []Satellite
	missShown    int
	explosions   int
	resets       int
	roundsSeen   []int
	taps         []bool
	flyBys       int
	exploded     []Stats
}

func (r *recorder) PlayTrack(id string) time.Time {
	r.tracksPlayed = append(r.tracksPlayed, id)
	return r.clock.Now()
}
func (r *recorder) StopTrack()             { r.trackStops++ }
func (r *recorder) PlayOneShot(id string)  { r.oneShots = append(r.oneShots, id) }
func (r *recorder) Capture(s Satellite)    { r.captured = append(r.captured, s) }
func (r *recorder) ShowMiss()              { r.missShown++ }
func (r *recorder) Explode()               { r.explosions++ }
func (r *recorder) Reset()                 { r.resets++ }
func (r *recorder) RoundStarted(round int) { r.roundsSeen = append(r.roundsSeen, round) }
func (r *recorder) Tapped(hit bool)        { r.taps = append(r.taps, hit) }
func (r *recorder) FlewBy()                { r.flyBys++ }
func (r *recorder) Exploded(stats Stats)   { r.exploded = append(r.exploded, stats) }

const frame = time.Second / 60

// newTestGame builds a started game on a manual clock with a recorder host.
func newTestGame(beats []float64) (*Game, *manualTime, *recorder) {
	clock := newManualTime()
	rec := &recorder{clock: clock}
	g := New(Schedule{TrackID: "test", BPM: 120, Beats: beats}, Options{
		Time:     clock,
		Audio:    rec,
		Orbit:    rec,
		Notifier: rec,
		Effects:  rec,
		Observer: rec,
	})
	g.Start()
	return g, clock, rec
}

// runFrames advances the clock one frame at a time, updating after each step.
func runFrames(g *Game, clock *manualTime, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(frame)
		g.Update()
	}
}

// tap sends one full press/release cycle on the keyboard.
func tap(g *Game) {
	g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: true})
	g.HandleInput(InputEvent{Device: DeviceKeyboard, Down: false})
}
