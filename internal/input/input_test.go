package input

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestLegacySpaceHoldAndRelease(t *testing.T) {
	var p parser

	inp := p.feed([]byte(" "), t0)
	assert.Equal(t, []Event{{Device: Keyboard, Down: true}}, inp.Events)

	// Autorepeat while held produces no new press.
	inp = p.feed([]byte("   "), t0.Add(30*time.Millisecond))
	assert.Empty(t, inp.Events)

	inp = p.feed(nil, t0.Add(60*time.Millisecond))
	assert.Empty(t, inp.Events, "still inside the hold window")

	inp = p.feed(nil, t0.Add(30*time.Millisecond+keyHoldDuration))
	assert.Equal(t, []Event{{Device: Keyboard, Down: false}}, inp.Events)

	inp = p.feed([]byte("\r"), t0.Add(time.Second))
	assert.Equal(t, []Event{{Device: Keyboard, Down: true}}, inp.Events)
}

func TestQuit(t *testing.T) {
	var p parser
	assert.True(t, p.feed([]byte("q"), t0).Quit)
	assert.True(t, p.feed([]byte{0x03}, t0).Quit)
	assert.True(t, p.feed([]byte("\033[113u"), t0).Quit)
	assert.True(t, p.feed([]byte("\033[99;5u"), t0).Quit)
	assert.False(t, p.feed([]byte("\033[99u"), t0).Quit)
	assert.False(t, p.feed([]byte("x"), t0).Quit)
}

func TestKittyKeyEvents(t *testing.T) {
	var p parser

	inp := p.feed([]byte("\033[32u"), t0)
	assert.Equal(t, []Event{{Device: Keyboard, Down: true}}, inp.Events)

	inp = p.feed([]byte("\033[32;1:2u\033[32;1:2u"), t0.Add(500*time.Millisecond))
	assert.Equal(t, []Event{{Device: Keyboard, Down: true}, {Device: Keyboard, Down: true}}, inp.Events,
		"repeats are reported as downs and debounced by the game")

	inp = p.feed(nil, t0.Add(2*time.Second))
	assert.Empty(t, inp.Events, "no synthetic release when the terminal reports releases")

	inp = p.feed([]byte("\033[32;1:3u"), t0.Add(3*time.Second))
	assert.Equal(t, []Event{{Device: Keyboard, Down: false}}, inp.Events)
}

func TestMouseEvents(t *testing.T) {
	var p parser

	inp := p.feed([]byte("\033[<0;10;5M"), t0)
	assert.Equal(t, []Event{{Device: Pointer, Down: true}}, inp.Events)

	inp = p.feed([]byte("\033[<32;11;5M\033[<64;11;5M\033[<2;11;5M"), t0)
	assert.Empty(t, inp.Events, "drag, wheel and right button are ignored")

	inp = p.feed([]byte("\033[<0;11;5m"), t0)
	assert.Equal(t, []Event{{Device: Pointer, Down: false}}, inp.Events)
}

func TestX10MouseEvents(t *testing.T) {
	var p parser

	// Left press: button byte is ' ' (32) and must not read as the space key.
	inp := p.feed([]byte("\033[M !!"), t0)
	assert.Equal(t, []Event{{Device: Pointer, Down: true}}, inp.Events)

	inp = p.feed([]byte("\033[M#!"), t0)
	assert.Empty(t, inp.Events, "incomplete report waits for more bytes")
	inp = p.feed([]byte("!"), t0)
	assert.Equal(t, []Event{{Device: Pointer, Down: false}}, inp.Events)
}

func TestSplitSequenceAcrossFrames(t *testing.T) {
	var p parser

	inp := p.feed([]byte("\033[<0;1"), t0)
	assert.Empty(t, inp.Events)

	inp = p.feed([]byte("0;5M"), t0)
	assert.Equal(t, []Event{{Device: Pointer, Down: true}}, inp.Events)

	inp = p.feed([]byte("\033"), t0)
	assert.Empty(t, inp.Events)
	inp = p.feed([]byte("[A "), t0)
	assert.Equal(t, []Event{{Device: Keyboard, Down: true}}, inp.Events, "arrow key skipped, space pressed")
}

func TestReadInputFromStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	var inp Input
	require.Eventually(t, func() bool {
		inp = ReadInput(s)
		return inp.Quit
	}, time.Second, time.Millisecond, "closed stream reports quit")
}

func TestReporting(t *testing.T) {
	var buf bytes.Buffer
	EnableReporting(&buf)
	DisableReporting(&buf)
	assert.Equal(t, enableReporting+disableReporting, buf.String())
}
