package viu

import "strings"

// LineStyle is the set of characters used to draw lines and boxes.
type LineStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard line styles.
var (
	LineBarebones = LineStyle{'-', '|', '+', '+', '+', '+'}
	LineSimple    = LineStyle{'─', '│', '┌', '┐', '└', '┘'}
	LineRounded   = LineStyle{'─', '│', '╭', '╮', '╰', '╯'}
	LineDouble    = LineStyle{'═', '║', '╔', '╗', '╚', '╝'}
	LineHeavy     = LineStyle{'━', '┃', '┏', '┓', '┗', '┛'}
	LineDotted    = LineStyle{'┅', '┇', '┌', '┐', '└', '┘'}
)

// hline returns n horizontal line characters.
func (s LineStyle) hline(n int) string {
	return strings.Repeat(string(s.Horizontal), max(n, 0))
}

// drawBox outlines r with s and blanks its inside.
func drawBox(g Graphics, r Rect, s LineStyle) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	inner := r.Width - 2
	g.Write(r.X, r.Y, string(s.TopLeft)+s.hline(inner)+string(s.TopRight))
	side := string(s.Vertical) + strings.Repeat(" ", inner) + string(s.Vertical)
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		g.Write(r.X, y, side)
	}
	g.Write(r.X, r.Y+r.Height-1, string(s.BottomLeft)+s.hline(inner)+string(s.BottomRight))
}
