package object

import (
	"fmt"
)

// Text is a simple drawable text object.
// Coordinates are 1-based canvas cell positions.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text at its position on the overlay.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" || ctx.Writer == nil {
		return nil
	}
	x := t.X
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	ctx.Writer.WriteAt(x, y, t.Value)
	return nil
}

// Update is a no-op for static text.
func (t Text) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Centered returns a Text horizontally centred on col.
func Centered(col, row int, format string, args ...any) Text {
	value := fmt.Sprintf(format, args...)
	return Text{X: col - len([]rune(value))/2, Y: row, Value: value}
}
