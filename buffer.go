package viu

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells. Writes outside the grid are ignored.
type Buffer struct {
	cells  []Cell
	dirty  []bool
	width  int
	height int
}

// NewBuffer creates a buffer filled with empty cells.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		dirty:  make([]bool, height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set sets the cell at (x, y). Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := y*b.width + x
	if b.cells[idx] != c {
		b.cells[idx] = c
		b.dirty[y] = true
	}
}

// Fill fills the whole buffer with c.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	for y := range b.dirty {
		b.dirty[y] = true
	}
}

// Clear resets every cell to an empty cell with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills the intersection of the rectangle and the buffer with c.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.width), min(y+height, b.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			b.Set(xx, yy, c)
		}
	}
}

// WriteString writes s starting at (x, y). Wide runes take two cells, the
// second holding a zero rune placeholder. Returns the number of cells used.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= b.width {
			break
		}
		if x+w > b.width {
			// a wide rune that would straddle the right edge is dropped
			break
		}
		b.Set(x, y, Cell{Rune: r, Style: style})
		if w == 2 {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
	}
	return x - start
}

// RowDirty reports whether row y changed since the last ClearDirty.
func (b *Buffer) RowDirty(y int) bool {
	return y >= 0 && y < b.height && b.dirty[y]
}

// ClearDirty resets dirty row tracking.
func (b *Buffer) ClearDirty() {
	for y := range b.dirty {
		b.dirty[y] = false
	}
}

// GetLine returns row y with trailing spaces removed.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.cells[y*b.width+x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer contents, rows separated by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				continue
			}
			sb.WriteRune(r)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer contents with trailing spaces removed per
// line and trailing empty lines dropped.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, 0, b.height)
	for y := 0; y < b.height; y++ {
		lines = append(lines, b.GetLine(y))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Resize changes the dimensions, preserving content where it fits.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell()
	}
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
	b.dirty = make([]bool, height)
	for y := range b.dirty {
		b.dirty[y] = true
	}
}
