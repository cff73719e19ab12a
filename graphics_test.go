package viu

import "testing"

func TestCanvasClamping(t *testing.T) {
	t.Run("writes outside the surface are dropped", func(t *testing.T) {
		c := NewCanvas(6, 2)
		c.Write(4, 0, "abcdef")
		c.Write(0, -1, "lost")
		c.Write(0, 2, "lost")
		c.Write(10, 1, "lost")
		if got := c.Buffer().StringTrimmed(); got != "    ab" {
			t.Errorf("expected '    ab', got %q", got)
		}
	})

	t.Run("negative x skips leading cells", func(t *testing.T) {
		c := NewCanvas(6, 1)
		c.Write(-2, 0, "abcd")
		if got := c.Buffer().GetLine(0); got != "cd" {
			t.Errorf("expected 'cd', got %q", got)
		}
	})

	t.Run("cursor clamped", func(t *testing.T) {
		c := NewCanvas(5, 3)
		c.SetCursor(10, -4)
		if x, y, _ := c.Cursor(); x != 4 || y != 0 {
			t.Errorf("expected cursor at 4,0, got %d,%d", x, y)
		}
		c.Resize(2, 2)
		if x, y, _ := c.Cursor(); x != 1 || y != 0 {
			t.Errorf("expected cursor re-clamped to 1,0, got %d,%d", x, y)
		}
	})

	t.Run("ClearRect outside is harmless", func(t *testing.T) {
		c := NewCanvas(3, 1)
		c.Write(0, 0, "abc")
		c.ClearRect(-5, -5, 100, 2)
		c.ClearRect(7, 7, 3, 3)
		if got := c.Buffer().GetLine(0); got != "abc" {
			t.Errorf("expected row untouched, got %q", got)
		}
	})

	t.Run("ClearRect clips to the intersection", func(t *testing.T) {
		c := NewCanvas(3, 2)
		c.Write(0, 0, "abc")
		c.Write(0, 1, "def")
		c.ClearRect(-5, -1, 7, 2)
		if got := c.Buffer().GetLine(0); got != "  c" {
			t.Errorf("expected first two cells cleared, got %q", got)
		}
		if got := c.Buffer().GetLine(1); got != "def" {
			t.Errorf("expected second row untouched, got %q", got)
		}
	})
}

func TestCanvasColors(t *testing.T) {
	c := NewCanvas(10, 1)
	c.SetColors(Green, Black)
	c.Write(0, 0, "a")
	if st := c.Buffer().Get(0, 0).Style; st.FG != Green || st.BG != Black {
		t.Errorf("expected green on black, got %+v", st)
	}

	c.WriteColored(1, 0, "b", Red, ColorDefault)
	if st := c.Buffer().Get(1, 0).Style; st.FG != Red || st.BG != Black {
		t.Errorf("expected red keeping the black background, got %+v", st)
	}

	c.WriteInverted(2, 0, "c", ColorDefault)
	if st := c.Buffer().Get(2, 0).Style; !st.Inverse || st.FG != Green {
		t.Errorf("expected inverted green, got %+v", st)
	}

	if fg, bg := c.Colors(); fg != Green || bg != Black {
		t.Errorf("expected explicit writes to leave the pair alone, got %v/%v", fg, bg)
	}
	c.ResetColors()
	if fg, bg := c.Colors(); fg != ColorDefault || bg != ColorDefault {
		t.Errorf("expected defaults after reset, got %v/%v", fg, bg)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		c    Color
		ansi int
		name string
	}{
		{ColorDefault, -1, "default"},
		{Black, 0, "black"},
		{Blue, 4, "blue"},
		{BrightWhite, 15, "bright-white"},
		{DarkGray, 8, "bright-black"},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.ansi {
			t.Errorf("%s: expected ANSI %d, got %d", tt.name, tt.ansi, got)
		}
		if got := tt.c.String(); got != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, got)
		}
	}
}
