// Package input turns the raw terminal byte stream into device-agnostic
// press/release events for the activate input (SPACE/ENTER and the left
// mouse button).
package input

import (
	"bufio"
	"io"
	"time"
)

// keyHoldDuration is how long a legacy key is considered held after its last
// byte. Terminals without release reporting only send repeats while a key is
// down, so a gap this long counts as a release.
const keyHoldDuration = 100 * time.Millisecond

// Terminal mode sequences: SGR mouse button reporting and the kitty keyboard
// protocol with event types (press/repeat/release) for every key.
const (
	enableReporting  = "\033[?1000h\033[?1006h\033[>11u"
	disableReporting = "\033[<u\033[?1006l\033[?1000l"
)

// Device identifies the source of an activate event.
type Device int

const (
	Keyboard Device = iota
	Pointer
)

// Event is one press or release of the activate input.
type Event struct {
	Device Device
	Down   bool
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Events  []Event
	Pressed []byte
}

// Stream delivers input bytes via a channel and tracks key state between frames.
type Stream struct {
	ch     chan byte
	parser parser
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// EnableReporting asks the terminal for mouse button and key release reports.
// Terminals that do not understand a sequence ignore it.
func EnableReporting(w io.Writer) {
	io.WriteString(w, enableReporting)
}

// DisableReporting restores the terminal's default reporting.
func DisableReporting(w io.Writer) {
	io.WriteString(w, disableReporting)
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the events they produced. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := s.parser.feed(buf, time.Now())
	if closed {
		inp.Quit = true
	}
	return inp
}

// parser keeps the state needed across frames: incomplete escape sequences
// and the legacy key hold window.
type parser struct {
	pending   []byte
	kitty     bool // Terminal reports key releases itself
	keyHeld   bool
	lastKeyAt time.Time
}

// feed parses buf (prefixed by any incomplete sequence from the previous
// frame) and returns the frame's input.
func (p *parser) feed(buf []byte, now time.Time) Input {
	data := append(p.pending, buf...)
	p.pending = nil

	inp := Input{Pressed: buf}
	legacyKey := false

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == '\033' {
			if i+1 >= len(data) {
				p.pending = append(p.pending, data[i:]...)
				break
			}
			if data[i+1] != '[' {
				// Bare escape or alt-prefixed key.
				continue
			}
			end := csiEnd(data, i+2)
			if end < 0 {
				p.pending = append(p.pending, data[i:]...)
				break
			}
			if data[end] == 'M' && end == i+2 {
				// X10 mouse report: three raw bytes follow.
				if end+3 >= len(data) {
					p.pending = append(p.pending, data[i:]...)
					break
				}
				applyX10Mouse(data[end+1], &inp)
				i = end + 3
				continue
			}
			p.applyCSI(data[i+2:end], data[end], &inp)
			i = end
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			inp.Quit = true
		case ' ', '\r', '\n':
			legacyKey = true
		}
	}

	switch {
	case legacyKey:
		p.lastKeyAt = now
		if !p.keyHeld {
			p.keyHeld = true
			inp.Events = append(inp.Events, Event{Device: Keyboard, Down: true})
		}
	case p.keyHeld && !p.kitty && now.Sub(p.lastKeyAt) >= keyHoldDuration:
		p.keyHeld = false
		inp.Events = append(inp.Events, Event{Device: Keyboard, Down: false})
	}

	return inp
}

// csiEnd returns the index of the final byte of a CSI sequence whose
// parameters start at from, or -1 if the sequence is incomplete.
func csiEnd(data []byte, from int) int {
	for j := from; j < len(data); j++ {
		if data[j] >= 0x40 && data[j] <= 0x7e {
			return j
		}
	}
	return -1
}

// applyCSI handles the CSI sequences the game understands: kitty key events
// ("CSI code;mods:event u") and SGR mouse reports ("CSI < b;x;y M/m").
func (p *parser) applyCSI(params []byte, final byte, inp *Input) {
	switch {
	case final == 'u':
		p.applyKittyKey(params, inp)
	case (final == 'M' || final == 'm') && len(params) > 0 && params[0] == '<':
		fields := splitParams(params[1:], ';')
		if len(fields) < 3 {
			return
		}
		button := atoi(fields[0])
		if button&(32|64) != 0 || button&3 != 0 {
			// Motion, wheel, or not the left button.
			return
		}
		inp.Events = append(inp.Events, Event{Device: Pointer, Down: final == 'M'})
	}
}

// applyX10Mouse handles the legacy mouse encoding sent by terminals without
// SGR support. Releases carry button 3 and do not name the button.
func applyX10Mouse(b byte, inp *Input) {
	button := int(b) - 32
	if button&(32|64) != 0 {
		return
	}
	switch button & 3 {
	case 0:
		inp.Events = append(inp.Events, Event{Device: Pointer, Down: true})
	case 3:
		inp.Events = append(inp.Events, Event{Device: Pointer, Down: false})
	}
}

// Kitty key event types.
const (
	kittyPress   = 1
	kittyRepeat  = 2
	kittyRelease = 3
	kittyCtrlBit = 4
)

func (p *parser) applyKittyKey(params []byte, inp *Input) {
	fields := splitParams(params, ';')
	if len(fields) == 0 {
		return
	}
	code := atoi(splitParams(fields[0], ':')[0])

	mods, event := 0, kittyPress
	if len(fields) > 1 {
		sub := splitParams(fields[1], ':')
		if m := atoi(sub[0]); m > 0 {
			mods = m - 1
		}
		if len(sub) > 1 {
			event = atoi(sub[1])
		}
	}

	switch code {
	case 'q', 'Q':
		if event == kittyPress {
			inp.Quit = true
		}
	case 'c':
		if event == kittyPress && mods&kittyCtrlBit != 0 {
			inp.Quit = true
		}
	case ' ', '\r':
		p.kitty = true
		switch event {
		case kittyPress, kittyRepeat:
			inp.Events = append(inp.Events, Event{Device: Keyboard, Down: true})
		case kittyRelease:
			inp.Events = append(inp.Events, Event{Device: Keyboard, Down: false})
		}
	}
}

func splitParams(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	return append(out, b[start:])
}

func atoi(b []byte) int {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}
