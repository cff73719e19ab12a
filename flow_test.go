package viu

import "testing"

func TestFlowLayout(t *testing.T) {
	t.Run("left to right with gap", func(t *testing.T) {
		p := NewPanel(&Flow{HGap: 1})
		a, b := sized(3, 1), sized(4, 2)
		p.MustAdd(a, "").MustAdd(b, "")
		p.SetBounds(Rect{X: 2, Y: 1, Width: 20, Height: 5})
		p.Validate()
		if got := a.Bounds(); got != (Rect{X: 2, Y: 1, Width: 3, Height: 1}) {
			t.Errorf("expected a at 2,1 3x1, got %+v", got)
		}
		if got := b.Bounds(); got != (Rect{X: 6, Y: 1, Width: 4, Height: 2}) {
			t.Errorf("expected b at 6,1 4x2, got %+v", got)
		}
		if d := p.ComputeDimensions(); d.Width != 8 || d.Height != 2 {
			t.Errorf("expected 8x2, got %dx%d", d.Width, d.Height)
		}
	})

	t.Run("truncates without wrap", func(t *testing.T) {
		p := NewPanel(&Flow{})
		a, b := sized(6, 1), sized(6, 1)
		p.MustAdd(a, "").MustAdd(b, "")
		p.SetBounds(Rect{Width: 10, Height: 3})
		p.Validate()
		if got := b.Bounds(); got != (Rect{X: 6, Width: 4, Height: 1}) {
			t.Errorf("expected b cut to 4 wide, got %+v", got)
		}
	})

	t.Run("wraps", func(t *testing.T) {
		p := NewPanel(&Flow{Wrap: true, HGap: 1, VGap: 1})
		a, b, c := sized(6, 2), sized(6, 1), sized(3, 1)
		p.MustAdd(a, "").MustAdd(b, "").MustAdd(c, "")
		p.SetBounds(Rect{Width: 10, Height: 6})
		p.Validate()
		if got := b.Bounds(); got != (Rect{X: 0, Y: 3, Width: 6, Height: 1}) {
			t.Errorf("expected b wrapped below the tallest cell plus gap, got %+v", got)
		}
		if got := c.Bounds(); got != (Rect{X: 7, Y: 3, Width: 3, Height: 1}) {
			t.Errorf("expected c beside b, got %+v", got)
		}
		if d := p.ComputeDimensions(); d.Width != 10 || d.Height != 4 {
			t.Errorf("expected 10x4, got %dx%d", d.Width, d.Height)
		}
	})

	t.Run("child at row origin takes full width", func(t *testing.T) {
		p := NewPanel(&Flow{Wrap: true})
		wide := sized(30, 1)
		p.MustAdd(wide, "")
		p.SetBounds(Rect{Width: 10, Height: 2})
		p.Validate()
		if got := wide.Bounds().Width; got != 10 {
			t.Errorf("expected width clamped to 10, got %d", got)
		}
	})

	t.Run("hidden children skipped", func(t *testing.T) {
		p := NewPanel(&Flow{})
		a, b := sized(3, 1), sized(3, 1)
		a.SetVisible(false)
		p.MustAdd(a, "").MustAdd(b, "")
		p.SetBounds(Rect{Width: 10, Height: 1})
		p.Validate()
		if got := b.Bounds().X; got != 0 {
			t.Errorf("expected b at origin, got %d", got)
		}
	})
}

func TestFlowFocus(t *testing.T) {
	f := &Flow{}
	p := NewPanel(f)
	a, label, b, c := focusable("a"), sized(1, 1), focusable("b"), focusable("c")
	p.MustAdd(a, "").MustAdd(label, "").MustAdd(b, "").MustAdd(c, "")

	if got := f.Next(p, a); got != Focusable(b) {
		t.Errorf("expected next to skip the label, got %v", got)
	}
	if got := f.Prev(p, b); got != Focusable(a) {
		t.Errorf("expected prev a, got %v", got)
	}
	if got := f.Next(p, c); got != nil {
		t.Errorf("expected nothing after c, got %v", got)
	}
	if got := f.Down(p, nil); got != Focusable(a) {
		t.Errorf("expected down to enter at a, got %v", got)
	}
	if got := f.Up(p, nil); got != Focusable(c) {
		t.Errorf("expected up to enter at c, got %v", got)
	}
	if got := f.Down(p, a); got != nil {
		t.Errorf("expected down inside the row to leave, got %v", got)
	}
	if got := f.Next(p, sized(1, 1)); got != nil {
		t.Errorf("expected nothing for a foreign component, got %v", got)
	}
}

func TestFlowHints(t *testing.T) {
	p := NewPanel(&Flow{})
	if err := p.Add(sized(1, 1), "left"); err == nil {
		t.Error("expected flow to reject hints")
	}
}
