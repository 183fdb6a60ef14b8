package loop

import (
	"github.com/tomz197/planetbeat/internal/object"
)

// updatePlayingState advances the core one frame and then the scene.
func updatePlayingState(state *State) error {
	state.Game.Update()
	return updateObjects(state)
}

// updateObjects updates all scene objects and removes any that request removal.
func updateObjects(state *State) error {
	w := state.World
	ctx := state.UpdateContext()

	for _, obj := range []object.Object{w.stars, w.orbit, w.miss} {
		if _, err := obj.Update(ctx); err != nil {
			return err
		}
	}

	// Update objects and collect ones to keep
	kept := w.Objects[:0] // reuse backing array
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	w.Objects = kept

	// Add any newly spawned objects
	w.FlushSpawned()

	return nil
}

// drawWorld draws the scene shapes back to front.
func drawWorld(w *World, ctx object.DrawContext) error {
	layers := []object.Object{w.stars, w.threshold, w.satellites, w.planet, w.orbit}
	for _, obj := range layers {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	for _, obj := range w.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawOverlay draws scene text on top of the rendered canvas.
func drawOverlay(w *World, ctx object.DrawContext) error {
	return w.miss.Draw(ctx)
}
