package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/object"
)

// drawUI draws the text overlay for the current screen.
func drawUI(state *State, ctx object.DrawContext) {
	termWidth := ctx.Canvas.TerminalWidth()
	termHeight := ctx.Canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(ctx, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, ctx, termWidth, termHeight)
	case GameStateShutdown:
		drawShutdownScreen(state, ctx, centerX, centerY)
	}

	if state.isInactive {
		text(ctx, object.Centered(centerX, termHeight-1, "Still there? Press any key or you will be disconnected."))
	}
}

func text(ctx object.DrawContext, t object.Text) {
	_ = t.Draw(ctx)
}

// drawStartScreen draws the title screen.
func drawStartScreen(ctx object.DrawContext, centerX, centerY int) {
	text(ctx, object.Centered(centerX, centerY-2, "P L A N E T B E A T"))
	text(ctx, object.Centered(centerX, centerY+1, "Press SPACE or click to start"))
	text(ctx, object.Centered(centerX, centerY+3, "Tap when a satellite crosses the bar. Q to quit"))
}

// drawPlayingHUD draws round, hits, health and music time.
func drawPlayingHUD(state *State, ctx object.DrawContext, termWidth, termHeight int) {
	g := state.Game
	r := g.Round()
	if r == nil {
		return
	}
	centerX := termWidth / 2
	centerY := termHeight / 2

	text(ctx, object.Text{X: 2, Y: 1, Value: fmt.Sprintf("Round %d  Hits %d", r.Number(), r.Hits())})

	allowed := g.Config().AllowedMisses
	health := r.Health()
	healthText := "Health " + strings.Repeat("♥", health) + strings.Repeat("·", allowed-health)
	text(ctx, object.Text{X: termWidth - len([]rune(healthText)), Y: 1, Value: healthText})

	if t, err := g.Clock().MusicTime(); err == nil && t >= 0 {
		clock := object.Centered(0, termHeight, "%5.1fs", t)
		clock.X = termWidth - len(clock.Value)
		text(ctx, clock)
	}

	switch r.Phase() {
	case game.PhaseExploding, game.PhaseRestarting:
		text(ctx, object.Centered(centerX, centerY+2, "PLANET LOST"))
	case game.PhasePlaying:
		if t := g.Track(); t != nil && t.ActiveCount() == 0 {
			text(ctx, object.Centered(centerX, centerY+2, "SONG COMPLETE"))
			text(ctx, object.Centered(centerX, centerY+4, "Caught %d of %d", r.Hits(), len(g.Schedule().Beats)))
		}
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func drawShutdownScreen(state *State, ctx object.DrawContext, centerX, centerY int) {
	remaining := int(state.shutdownTimer) + 1
	text(ctx, object.Centered(centerX, centerY-3, "SERVER SHUTTING DOWN"))
	text(ctx, object.Centered(centerX, centerY-1, "Please reconnect in a moment."))
	text(ctx, object.Centered(centerX, centerY+1, "Disconnecting in %d seconds...", remaining))
	text(ctx, object.Centered(centerX, centerY+3, "Press Q to disconnect now"))
}
