package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputGateHoldProducesOneTap(t *testing.T) {
	var g InputGate
	down := InputEvent{Device: DeviceKeyboard, Down: true}

	taps := 0
	for frame := 0; frame < 30; frame++ {
		if g.Handle(down) {
			taps++
		}
	}
	assert.Equal(t, 1, taps)
	assert.True(t, g.Held(DeviceKeyboard))

	assert.False(t, g.Handle(InputEvent{Device: DeviceKeyboard, Down: false}))
	assert.False(t, g.Held(DeviceKeyboard))
	assert.True(t, g.Handle(down), "re-press after release taps again")
}

func TestInputGateDevicesAreIndependent(t *testing.T) {
	var g InputGate

	assert.True(t, g.Handle(InputEvent{Device: DeviceKeyboard, Down: true}))
	assert.True(t, g.Handle(InputEvent{Device: DevicePointer, Down: true}))
	assert.False(t, g.Handle(InputEvent{Device: DevicePointer, Down: true}))

	// Releasing the pointer does not re-arm the keyboard.
	g.Handle(InputEvent{Device: DevicePointer, Down: false})
	assert.False(t, g.Handle(InputEvent{Device: DeviceKeyboard, Down: true}))
	assert.True(t, g.Handle(InputEvent{Device: DevicePointer, Down: true}))
}

func TestInputGateReleaseWithoutPress(t *testing.T) {
	var g InputGate
	assert.False(t, g.Handle(InputEvent{Device: DevicePointer, Down: false}))
	assert.False(t, g.Handle(InputEvent{Device: Device(7), Down: true}))
	assert.False(t, g.Held(Device(-1)))
}
