// Package loop runs one game session in a terminal: Input -> Update -> Draw
// at a fixed frame rate, with the title screen and text overlay around the
// gameplay core.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/planetbeat/internal/config"
	"github.com/tomz197/planetbeat/internal/draw"
	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/input"
	"github.com/tomz197/planetbeat/internal/object"
	"github.com/tomz197/planetbeat/internal/song"
)

// Options configures a session. Zero values fall back to defaults.
type Options struct {
	TermSizeFunc   draw.TermSizeFunc
	Song           song.Song
	Config         game.Config
	Audio          game.Audio
	Observer       game.Observer
	Logger         *log.Logger
	Events         <-chan Event // Server events, nil for local play
	DisconnectIdle bool         // End the session after a long stretch without input
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Song.ID == "" && len(o.Song.Ticks) == 0 {
		o.Song = song.Default()
	}
	if o.Config == (game.Config{}) {
		o.Config = game.DefaultConfig()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Run starts the session loop. Blocks until the player quits, the input
// closes or the server shuts the session down.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.Song.Validate(); err != nil {
		return fmt.Errorf("song %q: %w", opts.Song.ID, err)
	}

	world := NewWorld(opts.Config, opts.Song.BPM)
	g := game.New(game.Schedule{
		TrackID: opts.Song.ID,
		BPM:     opts.Song.BPM,
		Beats:   opts.Song.Ticks,
	}, game.Options{
		Config:   opts.Config,
		Audio:    opts.Audio,
		Orbit:    world,
		Notifier: world,
		Effects:  world,
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})
	world.Bind(g)
	world.OnExplosionFinished(g.ExplosionFinished)

	state := NewState(g, world)
	stream := input.StartStream(r)

	input.EnableReporting(w)
	defer input.DisableReporting(w)
	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	canvas := draw.NewScaledCanvas(1, 1, world.Width, world.Height)
	cw := draw.NewChunkWriter(w, 0, 0)
	if err := updateScreen(opts.TermSizeFunc, canvas, cw); err != nil {
		return err
	}

	opts.Logger.Debug("session loop started", "song", opts.Song.ID, "bpm", opts.Song.BPM)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		state.Elapsed += state.Delta.Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state, stream, opts.DisconnectIdle)
		processSessionEvents(state, opts.Events)

		// ===== UPDATE PHASE =====
		if err := updateScreen(opts.TermSizeFunc, canvas, cw); err != nil {
			return err
		}

		switch state.GameState {
		case GameStateStart:
			if err := updateObjects(state); err != nil {
				return err
			}
		case GameStatePlaying:
			if err := updatePlayingState(state); err != nil {
				return err
			}
		case GameStateShutdown:
			updateShutdownState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	if opts.Audio != nil {
		opts.Audio.StopTrack()
	}
	draw.ClearScreen(w)
	return nil
}

// processInput reads pending input and feeds activate events to the game.
// The press that leaves the title screen starts the first round without
// counting as a tap.
func processInput(state *State, stream *input.Stream, disconnectIdle bool) {
	state.Input = input.ReadInput(stream)

	idle := time.Since(state.lastInput).Seconds()
	switch {
	case len(state.Input.Pressed) > 0:
		state.lastInput = time.Now()
		state.isInactive = false
	case disconnectIdle && idle > config.InactivityDisconnectSeconds:
		state.Running = false
	case disconnectIdle && idle > config.InactivityWarnSeconds:
		state.isInactive = true
	}

	if state.Input.Quit {
		state.Running = false
	}
	if state.GameState == GameStateShutdown {
		return
	}

	start := false
	for _, ev := range state.Input.Events {
		state.Game.HandleInput(toGameEvent(ev))
		if state.GameState == GameStateStart && ev.Down {
			start = true
		}
	}
	if start {
		state.Game.Start()
		state.GameState = GameStatePlaying
	}
}

func toGameEvent(ev input.Event) game.InputEvent {
	device := game.DeviceKeyboard
	if ev.Device == input.Pointer {
		device = game.DevicePointer
	}
	return game.InputEvent{Device: device, Down: ev.Down}
}

// processSessionEvents handles events from the server.
func processSessionEvents(state *State, events <-chan Event) {
	if events == nil {
		return
	}
	for {
		select {
		case event, ok := <-events:
			if !ok {
				state.Running = false
				return
			}
			if event.Type == EventServerShutdown && state.GameState != GameStateShutdown {
				state.GameState = GameStateShutdown
				state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateShutdownState counts down the shutdown screen.
func updateShutdownState(state *State) {
	state.shutdownTimer -= state.Delta.Seconds()
	if state.shutdownTimer <= 0 {
		state.Running = false
	}
}

// updateScreen fits the canvas into the terminal, keeping the playfield's
// aspect ratio and centring it.
func updateScreen(sizeFunc draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	cols, rows, offCol, offRow := draw.FitArea(termWidth, termHeight, canvas.LogicalWidth(), canvas.LogicalHeight())
	if cols == 0 || rows == 0 {
		return nil
	}
	canvas.Resize(cols, rows)
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	return nil
}

// drawFrame clears the screen, draws the scene and overlay, and flushes the
// whole frame at once.
func drawFrame(state *State, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas:  canvas,
		Writer:  cw,
		Elapsed: state.Elapsed,
	}

	if state.GameState != GameStateShutdown {
		if err := drawWorld(state.World, ctx); err != nil {
			return err
		}
	}

	canvas.Render(cw)
	canvas.RenderBorder(cw)

	if state.GameState == GameStatePlaying {
		if err := drawOverlay(state.World, ctx); err != nil {
			return err
		}
	}
	drawUI(state, ctx)

	return cw.Flush()
}
