package object

import (
	"time"
)

// MissText is the transient "Miss!" feedback. Show resets it to full
// brightness and it fades linearly to nothing over the fade duration.
type MissText struct {
	X, Y  float64 // Logical position of the text centre
	Fade  time.Duration
	alpha float64
}

// NewMissText creates hidden miss feedback at the given logical position.
func NewMissText(x, y float64, fade time.Duration) *MissText {
	return &MissText{X: x, Y: y, Fade: fade}
}

// ShowMiss restarts the fade at full alpha.
func (m *MissText) ShowMiss() {
	m.alpha = 1
}

// Hide clears the text immediately.
func (m *MissText) Hide() {
	m.alpha = 0
}

// Alpha returns the current opacity in [0, 1].
func (m *MissText) Alpha() float64 {
	return m.alpha
}

// Update fades the text. It is never removed; it idles at zero alpha.
func (m *MissText) Update(ctx UpdateContext) (bool, error) {
	if m.alpha <= 0 {
		return false, nil
	}
	if m.Fade <= 0 {
		m.alpha = 0
		return false, nil
	}
	m.alpha -= ctx.Delta.Seconds() / m.Fade.Seconds()
	if m.alpha < 0 {
		m.alpha = 0
	}
	return false, nil
}

// Draw writes the text in a grey level matching its alpha.
func (m *MissText) Draw(ctx DrawContext) error {
	if m.alpha <= 0 || ctx.Writer == nil || ctx.Canvas == nil {
		return nil
	}
	const label = "Miss!"
	col, row := ctx.Canvas.LogicalToTerminal(m.X, m.Y)
	ctx.Writer.WriteAtGrey(col-len(label)/2, row, m.alpha, label)
	return nil
}
