// Package object holds the on-screen entities of the game scene and the
// host-side collaborators the gameplay core talks to.
package object

import (
	"time"

	"github.com/tomz197/planetbeat/internal/draw"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Elapsed float64 // Seconds since the scene started, drives beat-synced animation
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas  *draw.Canvas      // High-resolution canvas (2x vertical)
	Writer  *draw.ChunkWriter // Text overlay, written after the canvas
	Elapsed float64
}

// Object is a drawable and updatable scene entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// BeatOn reports whether a beat-synced animation is in the first half of its
// cycle at the given time. rate is in cycles per second.
func BeatOn(elapsed, rate float64) bool {
	if rate <= 0 {
		return true
	}
	phase := int(elapsed * rate * 2)
	return phase%2 == 0
}
