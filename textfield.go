package viu

import (
	"slices"
	"unicode"
)

const hiddenText = "(hidden for privacy)"

// TextField is an editable single-line input. It draws a dotted underline
// on the row below unless ShowLine is off.
type TextField struct {
	Base

	Placeholder string
	HideText    bool
	ShowLine    bool

	// Locked keeps the field out of focus traversal.
	Locked bool

	// OnAction fires on the base action (Enter by default).
	OnAction func(ActionEvent)
	// OnTextChanged fires after every edit.
	OnTextChanged func(ActionEvent)

	text    []rune
	caret   int
	focused bool
}

var _ CursorFocusable = (*TextField)(nil)

// NewTextField creates an empty field with its underline shown.
func NewTextField() *TextField {
	return &TextField{ShowLine: true}
}

// Text returns the current content.
func (f *TextField) Text() string {
	return string(f.text)
}

// SetText replaces the content and moves the caret to its end.
func (f *TextField) SetText(s string) {
	f.text = []rune(s)
	f.caret = len(f.text)
}

// Caret returns the caret position in runes.
func (f *TextField) Caret() int {
	return f.caret
}

// SetCaret moves the caret, clamped to the content.
func (f *TextField) SetCaret(i int) {
	f.caret = clamp(i, 0, len(f.text))
}

func (f *TextField) ComputeDimensions() Dimensions {
	w := len(f.text)
	switch {
	case f.HideText:
		w = 0
	case w == 0:
		w = len([]rune(f.Placeholder))
	}
	h := 1
	if f.ShowLine {
		h = 2
	}
	return Dimensions{Width: max(20, w), Height: h}
}

func (f *TextField) Print(g Graphics) {
	if !f.Visible() {
		return
	}
	r := f.Bounds()
	shown, color := string(f.text), ColorDefault
	switch {
	case f.HideText:
		shown, color = hiddenText, Cyan
	case len(f.text) == 0:
		shown, color = f.Placeholder, DarkGray
	}
	g.ClearRect(r.X, r.Y, r.Width, 1)
	g.WriteColored(r.X, r.Y, fitText(shown, r.Width, CutEnd), color, ColorDefault)
	if f.ShowLine {
		g.Write(r.X, r.Y+1, LineDotted.hline(r.Width))
	}
}

// AcceptInput edits the content or moves the caret. Keys that would move
// the caret past either end are refused so the parent can move focus.
func (f *TextField) AcceptInput(ev KeyEvent, g Graphics) bool {
	defer f.UpdateCursorState(g)
	inputs := f.InputMap().Compile()
	is := func(action string) bool { return Corresponds(inputs, ev, action) }

	switch {
	case is(ActionMoveLeftWord):
		if f.caret == 0 {
			return true
		}
		f.caret = f.wordLeft()
		return true
	case is(ActionMoveRightWord):
		f.caret = f.wordRight()
		return true
	case is(ActionBase):
		if f.OnAction != nil {
			f.OnAction(ActionEvent{Source: f, Key: ev, Graphics: g})
		}
		return true
	case is(ActionMoveLeft):
		if f.caret == 0 {
			return false
		}
		f.caret--
		return true
	case is(ActionMoveRight):
		if f.caret >= len(f.text) {
			return false
		}
		f.caret++
		return true
	case is(ActionDeleteLeftWord):
		return f.deleteRange(f.wordLeft(), f.caret, ev, g)
	case is(ActionDeleteRightWord):
		return f.deleteRange(f.caret, f.wordRight(), ev, g)
	case is(ActionDeleteLeft):
		return f.deleteRange(f.caret-1, f.caret, ev, g)
	case is(ActionDeleteRight):
		return f.deleteRange(f.caret, f.caret+1, ev, g)
	case is(ActionMoveLineStart):
		if f.caret == 0 {
			return false
		}
		f.caret = 0
		return true
	case is(ActionMoveLineEnd):
		if f.caret >= len(f.text) {
			return false
		}
		f.caret = len(f.text)
		return true
	}

	if !insertable(ev) {
		return false
	}
	r := ev.Rune
	if ev.Key == KeySpace {
		r = ' '
	}
	f.text = slices.Insert(f.text, f.caret, r)
	f.caret++
	f.changed(ev, g)
	return true
}

// insertable reports whether ev types a character. Ctrl and Alt held
// together count as AltGr.
func insertable(ev KeyEvent) bool {
	if ev.Ctrl != ev.Alt {
		return false
	}
	switch ev.Key {
	case KeyRune:
		return ev.Rune > 31 && unicode.IsPrint(ev.Rune)
	case KeySpace:
		return true
	}
	return false
}

// wordLeft is the start of the word before the caret, skipping spaces.
func (f *TextField) wordLeft() int {
	i := f.caret
	for i > 0 && f.text[i-1] == ' ' {
		i--
	}
	for i > 0 && f.text[i-1] != ' ' {
		i--
	}
	return i
}

// wordRight is the end of the word after the caret, skipping spaces.
func (f *TextField) wordRight() int {
	i := f.caret
	for i < len(f.text) && f.text[i] == ' ' {
		i++
	}
	for i < len(f.text) && f.text[i] != ' ' {
		i++
	}
	return i
}

func (f *TextField) deleteRange(from, to int, ev KeyEvent, g Graphics) bool {
	from, to = max(from, 0), min(to, len(f.text))
	if from >= to {
		return false
	}
	f.text = slices.Delete(f.text, from, to)
	if f.caret > from {
		f.caret = max(from, f.caret-(to-from))
	}
	f.changed(ev, g)
	return true
}

func (f *TextField) changed(ev KeyEvent, g Graphics) {
	f.Print(g)
	if f.OnTextChanged != nil {
		f.OnTextChanged(ActionEvent{Source: f, Key: ev, Graphics: g})
	}
}

func (f *TextField) IsFocusable() bool {
	return f.Visible() && !f.Locked
}

func (f *TextField) SetFocused(focused bool, g Graphics) {
	f.focused = focused
	f.UpdateCursorState(g)
}

func (f *TextField) IsFocused() bool {
	return f.focused
}

// UpdateCursorState shows the cursor at the caret while focused. Hidden
// text keeps the cursor at the start of the field.
func (f *TextField) UpdateCursorState(g Graphics) {
	if !f.focused {
		g.SetCursorVisible(false)
		return
	}
	r := f.Bounds()
	x := r.X
	if !f.HideText {
		x += min(f.caret, max(r.Width-1, 0))
	}
	g.SetCursor(x, r.Y)
	g.SetCursorVisible(true)
}
