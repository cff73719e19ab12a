package viu

import "testing"

func TestButton(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		b := NewButton("OK", nil)
		b.SetBounds(Rect{Width: 6, Height: 1})
		g := NewCanvas(6, 1)
		b.Print(g)
		if got := g.Buffer().GetLine(0); got != "[ OK ]" {
			t.Errorf("expected '[ OK ]', got %q", got)
		}
		if d := b.ComputeDimensions(); d.Width != 6 || d.Height != 1 {
			t.Errorf("expected 6x1, got %dx%d", d.Width, d.Height)
		}
	})

	t.Run("focus inverts", func(t *testing.T) {
		b := NewButton("OK", nil)
		b.SetBounds(Rect{Width: 6, Height: 1})
		g := NewCanvas(6, 1)
		b.SetFocused(true, g)
		if !g.Buffer().Get(0, 0).Style.Inverse {
			t.Error("expected focused button inverted")
		}
	})

	t.Run("action", func(t *testing.T) {
		fired := 0
		b := NewButton("OK", func(ActionEvent) { fired++ })
		BaselineBindings(b.InputMap())
		g := NewCanvas(6, 1)
		if !b.AcceptInput(KeyEvent{Key: KeyEnter}, g) {
			t.Error("expected enter to be consumed")
		}
		if b.AcceptInput(KeyEvent{Key: KeyRune, Rune: 'x'}, g) {
			t.Error("expected other keys to be refused")
		}
		if fired != 1 {
			t.Errorf("expected 1 action, got %d", fired)
		}
	})

	t.Run("locked", func(t *testing.T) {
		b := NewButton("OK", nil)
		b.Locked = true
		if b.IsFocusable() {
			t.Error("expected locked button to be unfocusable")
		}
	})
}

func TestSeparator(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		s := NewSeparator(Horizontal)
		s.SetBounds(Rect{Width: 3, Height: 1})
		g := NewCanvas(3, 1)
		s.Print(g)
		if got := g.Buffer().GetLine(0); got != "───" {
			t.Errorf("expected '───', got %q", got)
		}
	})

	t.Run("vertical", func(t *testing.T) {
		s := NewSeparator(Vertical)
		s.Style = LineBarebones
		s.SetBounds(Rect{Width: 1, Height: 2})
		g := NewCanvas(1, 2)
		s.Print(g)
		if g.Buffer().GetLine(0) != "|" || g.Buffer().GetLine(1) != "|" {
			t.Errorf("expected two '|' rows, got %q", g.Buffer().StringTrimmed())
		}
	})
}

func TestBox(t *testing.T) {
	t.Run("frames child", func(t *testing.T) {
		box := NewBox(NewText("hi"), LineSimple)
		box.SetBounds(Rect{Width: 6, Height: 3})
		box.Validate()
		g := NewCanvas(6, 3)
		box.Print(g)

		expect := "┌────┐\n│hi  │\n└────┘"
		if got := g.Buffer().StringTrimmed(); got != expect {
			t.Errorf("expected\n%s\ngot\n%s", expect, got)
		}
		if d := box.ComputeDimensions(); d.Width != 4 || d.Height != 3 {
			t.Errorf("expected 4x3, got %dx%d", d.Width, d.Height)
		}
	})

	t.Run("child bounds", func(t *testing.T) {
		txt := NewText("hi")
		box := NewBox(txt, LineSimple)
		box.SetBounds(Rect{X: 2, Y: 1, Width: 8, Height: 4})
		box.Validate()
		if got := txt.Bounds(); got != (Rect{X: 3, Y: 2, Width: 6, Height: 2}) {
			t.Errorf("expected inner rect, got %+v", got)
		}
	})

	t.Run("forwards focus and input", func(t *testing.T) {
		fired := false
		btn := NewButton("go", func(ActionEvent) { fired = true })
		box := NewBox(btn, LineDouble)
		BaselineBindings(box.InputMap())
		g := NewCanvas(10, 3)

		if !box.IsFocusable() {
			t.Fatal("expected box around a button to be focusable")
		}
		box.SetFocused(true, g)
		if !box.IsFocused() || !btn.IsFocused() {
			t.Error("expected focus forwarded to the child")
		}
		if !box.AcceptInput(KeyEvent{Key: KeyEnter}, g) || !fired {
			t.Error("expected enter forwarded to the child")
		}
	})

	t.Run("falls back to child action map", func(t *testing.T) {
		txt := NewText("x")
		txt.Selectable = true
		box := NewBox(txt, LineSimple)
		BaselineBindings(box.InputMap())
		var got string
		txt.ActionMap().Put(ActionCancel, func(ev ActionEvent) { got = ev.Source.(*Text).Text })

		if !box.AcceptInput(KeyEvent{Key: KeyEscape}, NewCanvas(3, 3)) {
			t.Error("expected escape handled through the action map")
		}
		if got != "x" {
			t.Errorf("expected action on child, got %q", got)
		}
	})

	t.Run("owned child rejected", func(t *testing.T) {
		txt := NewText("x")
		NewBox(txt, LineSimple)
		if err := NewBox(NewText("y"), LineSimple).SetChild(txt); err == nil {
			t.Error("expected error adding an owned child")
		}
	})
}
