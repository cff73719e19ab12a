package viu

import "testing"

func newTestField(text string) (*TextField, *Canvas) {
	f := NewTextField()
	BaselineBindings(f.InputMap())
	f.SetText(text)
	f.SetBounds(Rect{Width: 20, Height: 2})
	return f, NewCanvas(20, 2)
}

func typeRunes(f *TextField, g Graphics, s string) {
	for _, r := range s {
		ev := KeyEvent{Key: KeyRune, Rune: r}
		if r == ' ' {
			ev = KeyEvent{Key: KeySpace, Rune: ' '}
		}
		f.AcceptInput(ev, g)
	}
}

func TestTextFieldEditing(t *testing.T) {
	t.Run("typing inserts at caret", func(t *testing.T) {
		f, g := newTestField("")
		var changes int
		f.OnTextChanged = func(ActionEvent) { changes++ }
		typeRunes(f, g, "helo")
		f.AcceptInput(KeyEvent{Key: KeyLeft}, g)
		typeRunes(f, g, "l")

		if f.Text() != "hello" {
			t.Errorf("expected 'hello', got %q", f.Text())
		}
		if f.Caret() != 4 {
			t.Errorf("expected caret 4, got %d", f.Caret())
		}
		if changes != 5 {
			t.Errorf("expected 5 change events, got %d", changes)
		}
	})

	t.Run("space inserts", func(t *testing.T) {
		f, g := newTestField("ab")
		typeRunes(f, g, " c")
		if f.Text() != "ab c" {
			t.Errorf("expected 'ab c', got %q", f.Text())
		}
	})

	t.Run("ctrl letters are not typed", func(t *testing.T) {
		f, g := newTestField("")
		if f.AcceptInput(KeyEvent{Key: KeyRune, Rune: 'a', Ctrl: true}, g) {
			t.Error("expected ctrl+a to be refused")
		}
		if !f.AcceptInput(KeyEvent{Key: KeyRune, Rune: '@', Ctrl: true, Alt: true}, g) {
			t.Error("expected altgr character to be typed")
		}
		if f.Text() != "@" {
			t.Errorf("expected '@', got %q", f.Text())
		}
	})

	t.Run("backspace and delete", func(t *testing.T) {
		f, g := newTestField("abcd")
		f.SetCaret(2)
		f.AcceptInput(KeyEvent{Key: KeyBackspace}, g)
		if f.Text() != "acd" || f.Caret() != 1 {
			t.Errorf("expected 'acd' caret 1, got %q caret %d", f.Text(), f.Caret())
		}
		f.AcceptInput(KeyEvent{Key: KeyDelete}, g)
		if f.Text() != "ad" || f.Caret() != 1 {
			t.Errorf("expected 'ad' caret 1, got %q caret %d", f.Text(), f.Caret())
		}
		f.SetCaret(0)
		if f.AcceptInput(KeyEvent{Key: KeyBackspace}, g) {
			t.Error("expected backspace at start to be refused")
		}
		f.SetCaret(2)
		if f.AcceptInput(KeyEvent{Key: KeyDelete}, g) {
			t.Error("expected delete at end to be refused")
		}
	})

	t.Run("delete word", func(t *testing.T) {
		f, g := newTestField("one two three")
		f.AcceptInput(KeyEvent{Key: KeyBackspace, Ctrl: true}, g)
		if f.Text() != "one two " {
			t.Errorf("expected 'one two ', got %q", f.Text())
		}
		f.SetCaret(0)
		f.AcceptInput(KeyEvent{Key: KeyDelete, Ctrl: true}, g)
		if f.Text() != " two " {
			t.Errorf("expected ' two ', got %q", f.Text())
		}
	})
}

func TestTextFieldMovement(t *testing.T) {
	t.Run("word moves", func(t *testing.T) {
		f, g := newTestField("one  two three")
		f.AcceptInput(KeyEvent{Key: KeyLeft, Ctrl: true}, g)
		if f.Caret() != 9 {
			t.Errorf("expected caret 9, got %d", f.Caret())
		}
		f.AcceptInput(KeyEvent{Key: KeyLeft, Ctrl: true}, g)
		if f.Caret() != 5 {
			t.Errorf("expected caret 5, got %d", f.Caret())
		}
		f.SetCaret(3)
		f.AcceptInput(KeyEvent{Key: KeyRight, Ctrl: true}, g)
		if f.Caret() != 8 {
			t.Errorf("expected caret 8, got %d", f.Caret())
		}
	})

	t.Run("arrows refuse at the edges", func(t *testing.T) {
		f, g := newTestField("ab")
		if f.AcceptInput(KeyEvent{Key: KeyRight}, g) {
			t.Error("expected right at end to be refused")
		}
		f.SetCaret(0)
		if f.AcceptInput(KeyEvent{Key: KeyLeft}, g) {
			t.Error("expected left at start to be refused")
		}
	})

	t.Run("home and end", func(t *testing.T) {
		f, g := newTestField("abc")
		f.AcceptInput(KeyEvent{Key: KeyHome}, g)
		if f.Caret() != 0 {
			t.Errorf("expected caret 0, got %d", f.Caret())
		}
		f.AcceptInput(KeyEvent{Key: KeyEnd}, g)
		if f.Caret() != 3 {
			t.Errorf("expected caret 3, got %d", f.Caret())
		}
	})

	t.Run("enter fires action", func(t *testing.T) {
		f, g := newTestField("abc")
		var got string
		f.OnAction = func(ev ActionEvent) { got = ev.Source.(*TextField).Text() }
		f.AcceptInput(KeyEvent{Key: KeyEnter}, g)
		if got != "abc" {
			t.Errorf("expected action with 'abc', got %q", got)
		}
	})
}

func TestTextFieldPrint(t *testing.T) {
	t.Run("text and underline", func(t *testing.T) {
		f, g := newTestField("hi")
		f.SetBounds(Rect{Width: 4, Height: 2})
		f.Print(g)
		if got := g.Buffer().GetLine(0); got != "hi" {
			t.Errorf("expected 'hi', got %q", got)
		}
		if got := g.Buffer().GetLine(1); got != "┅┅┅┅" {
			t.Errorf("expected dotted underline, got %q", got)
		}
	})

	t.Run("placeholder", func(t *testing.T) {
		f, g := newTestField("")
		f.Placeholder = "name"
		f.Print(g)
		if got := g.Buffer().GetLine(0); got != "name" {
			t.Errorf("expected 'name', got %q", got)
		}
		if fg := g.Buffer().Get(0, 0).Style.FG; fg != DarkGray {
			t.Errorf("expected dark gray, got %v", fg)
		}
	})

	t.Run("hidden", func(t *testing.T) {
		f, g := newTestField("secret")
		f.HideText = true
		f.Print(g)
		if got := g.Buffer().GetLine(0); got != hiddenText {
			t.Errorf("expected %q, got %q", hiddenText, got)
		}
	})

	t.Run("cursor follows caret", func(t *testing.T) {
		f, g := newTestField("abc")
		f.SetBounds(Rect{X: 2, Y: 1, Width: 10, Height: 1})
		f.SetFocused(true, g)
		x, y, visible := g.Cursor()
		if x != 5 || y != 1 || !visible {
			t.Errorf("expected visible cursor at 5,1, got %d,%d visible=%v", x, y, visible)
		}
		f.SetFocused(false, g)
		if _, _, visible := g.Cursor(); visible {
			t.Error("expected hidden cursor")
		}
	})

	t.Run("dimensions", func(t *testing.T) {
		f, _ := newTestField("")
		if d := f.ComputeDimensions(); d.Width != 20 || d.Height != 2 {
			t.Errorf("expected 20x2, got %dx%d", d.Width, d.Height)
		}
		f.ShowLine = false
		f.SetText("a very long value that exceeds twenty")
		if d := f.ComputeDimensions(); d.Width != 37 || d.Height != 1 {
			t.Errorf("expected 37x1, got %dx%d", d.Width, d.Height)
		}
	})
}
