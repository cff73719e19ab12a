package viu

import "github.com/mattn/go-runewidth"

// Graphics is the character-grid drawing surface handed to every Print and
// input handler. Coordinates are clamped to the current bounds; nothing here
// returns an error, so a geometry computed just before a resize degrades to a
// partial paint instead of a crash.
type Graphics interface {
	// Size returns the current surface dimensions.
	Size() (width, height int)

	// Write draws s at (x, y) using the current color pair.
	Write(x, y int, s string)

	// WriteColored draws s with explicit colors. ColorDefault keeps the
	// current color for that channel.
	WriteColored(x, y int, s string, fg, bg Color)

	// WriteInverted draws s with foreground and background swapped.
	WriteInverted(x, y int, s string, fg Color)

	// SetColors changes the current color pair.
	SetColors(fg, bg Color)

	// ResetColors restores the default color pair.
	ResetColors()

	// Colors returns the current color pair.
	Colors() (fg, bg Color)

	SetCursor(x, y int)
	SetCursorVisible(visible bool)

	// ClearRect blanks the rectangle using the current background.
	ClearRect(x, y, width, height int)

	// Clear blanks the whole surface.
	Clear()

	SetTitle(title string)
}

// Surface is a resizable Graphics that can push its contents to a device.
// Screen and Canvas implement it.
type Surface interface {
	Graphics
	Resize(width, height int)
	Flush() error
}

// Canvas is a Graphics backed by a Buffer. It is the back buffer of Screen
// and the surface used in tests.
type Canvas struct {
	buf *Buffer

	fg, bg Color

	cursorX, cursorY int
	cursorVisible    bool

	title string
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{buf: NewBuffer(width, height)}
}

// Buffer returns the underlying cell grid.
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

func (c *Canvas) Size() (int, int) {
	return c.buf.Width(), c.buf.Height()
}

// Resize changes the canvas dimensions and re-clamps the cursor.
func (c *Canvas) Resize(width, height int) {
	c.buf.Resize(width, height)
	c.SetCursor(c.cursorX, c.cursorY)
}

func (c *Canvas) Write(x, y int, s string) {
	c.put(x, y, s, Style{FG: c.fg, BG: c.bg})
}

func (c *Canvas) WriteColored(x, y int, s string, fg, bg Color) {
	st := Style{FG: c.fg, BG: c.bg}
	if fg != ColorDefault {
		st.FG = fg
	}
	if bg != ColorDefault {
		st.BG = bg
	}
	c.put(x, y, s, st)
}

func (c *Canvas) WriteInverted(x, y int, s string, fg Color) {
	st := Style{FG: c.fg, BG: c.bg, Inverse: true}
	if fg != ColorDefault {
		st.FG = fg
	}
	c.put(x, y, s, st)
}

// put clips s to the buffer. Cells left of column 0 are skipped rather than
// shifting the text.
func (c *Canvas) put(x, y int, s string, st Style) {
	if y < 0 || y >= c.buf.Height() || x >= c.buf.Width() {
		return
	}
	if x < 0 {
		runes := []rune(s)
		i := 0
		for i < len(runes) && x < 0 {
			x += runewidth.RuneWidth(runes[i])
			i++
		}
		s = string(runes[i:])
	}
	c.buf.WriteString(x, y, s, st)
}

func (c *Canvas) SetColors(fg, bg Color) {
	c.fg, c.bg = fg, bg
}

func (c *Canvas) ResetColors() {
	c.fg, c.bg = ColorDefault, ColorDefault
}

func (c *Canvas) Colors() (fg, bg Color) {
	return c.fg, c.bg
}

func (c *Canvas) SetCursor(x, y int) {
	w, h := c.Size()
	c.cursorX = clamp(x, 0, max(w-1, 0))
	c.cursorY = clamp(y, 0, max(h-1, 0))
}

func (c *Canvas) SetCursorVisible(visible bool) {
	c.cursorVisible = visible
}

// Cursor returns the cursor position and visibility.
func (c *Canvas) Cursor() (x, y int, visible bool) {
	return c.cursorX, c.cursorY, c.cursorVisible
}

func (c *Canvas) ClearRect(x, y, width, height int) {
	c.buf.FillRect(x, y, width, height, Cell{Rune: ' ', Style: Style{BG: c.bg}})
}

func (c *Canvas) Clear() {
	c.buf.Clear()
}

func (c *Canvas) SetTitle(title string) {
	c.title = title
}

// Flush does nothing; a Canvas has no device behind it.
func (c *Canvas) Flush() error {
	return nil
}

// Title returns the last title set.
func (c *Canvas) Title() string {
	return c.title
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
