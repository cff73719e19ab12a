package viu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Align positions content inside a larger box. The zero value is the start
// edge (left or top).
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Cut selects where an overflowing string loses characters. The dropped
// part is replaced by an ellipsis.
type Cut uint8

const (
	CutEnd Cut = iota
	CutStart
	CutMiddle
)

const ellipsis = "…"

// Text is a single-line label.
type Text struct {
	Base

	Text       string
	Foreground Color
	Background Color

	// Selectable lets the label take focus, which draws it inverted.
	Selectable    bool
	ReverseColors bool

	HAlign Align
	VAlign Align
	Cut    Cut

	// ClearBlank pads the label to its full width so a shorter reprint
	// erases the previous text.
	ClearBlank bool

	focused bool
}

var _ Focusable = (*Text)(nil)

// NewText creates a label showing s.
func NewText(s string) *Text {
	return &Text{Text: s}
}

// ComputeDimensions is the display width of the text by one row.
func (t *Text) ComputeDimensions() Dimensions {
	return Dimensions{Width: runewidth.StringWidth(ansi.Strip(t.Text)), Height: 1}
}

// Print draws the label, escape sequences stripped.
func (t *Text) Print(g Graphics) {
	if !t.Visible() {
		return
	}
	r := t.Bounds()
	disp := fitText(ansi.Strip(t.Text), r.Width, t.Cut)
	dw := runewidth.StringWidth(disp)
	if t.ClearBlank && dw < r.Width {
		disp += strings.Repeat(" ", r.Width-dw)
		dw = r.Width
	}

	x, y := r.X, r.Y
	switch t.HAlign {
	case AlignCenter:
		x += (r.Width - dw) / 2
	case AlignEnd:
		x += r.Width - dw
	}
	switch t.VAlign {
	case AlignCenter:
		y += r.Height / 2
	case AlignEnd:
		y += r.Height - 1
	}

	if t.focused != t.ReverseColors {
		g.WriteInverted(x, y, disp, t.Foreground)
		return
	}
	if t.Foreground == ColorDefault && t.Background == ColorDefault {
		g.Write(x, y, disp)
		return
	}
	g.WriteColored(x, y, disp, t.Foreground, t.Background)
}

// fitText shortens s to w cells, marking the cut with an ellipsis.
func fitText(s string, w int, cut Cut) string {
	sw := runewidth.StringWidth(s)
	if sw <= w {
		return s
	}
	if w <= 0 {
		return ""
	}
	switch cut {
	case CutStart:
		return runewidth.TruncateLeft(s, sw-w+1, ellipsis)
	case CutMiddle:
		head := w / 2
		if w%2 == 0 {
			head--
		}
		tail := runewidth.TruncateLeft(s, sw-w/2, "")
		return runewidth.Truncate(s, head, "") + ellipsis + tail
	default:
		return runewidth.Truncate(s, w, ellipsis)
	}
}

// AcceptInput consumes nothing.
func (t *Text) AcceptInput(KeyEvent, Graphics) bool {
	return false
}

func (t *Text) IsFocusable() bool {
	return t.Visible() && t.Selectable
}

func (t *Text) SetFocused(focused bool, g Graphics) {
	t.focused = focused
	t.Print(g)
}

func (t *Text) IsFocused() bool {
	return t.focused
}
