package game

// Device is an independent debounce channel.
type Device int

const (
	DeviceKeyboard Device = iota
	DevicePointer
	deviceCount
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DevicePointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// InputEvent is a device-agnostic activate press or release.
type InputEvent struct {
	Device Device
	Down   bool
}

// InputGate turns press/release events into one tap per press.
type InputGate struct {
	held [deviceCount]bool
}

// Handle updates the held state and reports whether ev is a new tap.
// Repeated downs while held are ignored until a release re-arms the device.
func (g *InputGate) Handle(ev InputEvent) bool {
	if ev.Device < 0 || ev.Device >= deviceCount {
		return false
	}
	if !ev.Down {
		g.held[ev.Device] = false
		return false
	}
	if g.held[ev.Device] {
		return false
	}
	g.held[ev.Device] = true
	return true
}

// Held reports whether the device is currently pressed.
func (g *InputGate) Held(d Device) bool {
	if d < 0 || d >= deviceCount {
		return false
	}
	return g.held[d]
}
