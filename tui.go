// Package viu is a character-grid terminal UI toolkit: a component tree laid
// out by pluggable strategies, directional focus traversal, inheritable key
// and action bindings, an adaptive table, and a driver that serializes every
// mutation onto one event-processing goroutine.
package viu

// Color is one of the fixed console colors. The zero value is the terminal
// default.
type Color uint8

const (
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	// Bright variants
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Gray and DarkGray are aliases matching common console naming.
const (
	Gray     = White
	DarkGray = BrightBlack
)

var colorNames = [...]string{
	"default", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ANSI returns the 0-15 palette index, or -1 for ColorDefault.
func (c Color) ANSI() int {
	if c == ColorDefault || c > BrightWhite {
		return -1
	}
	return int(c) - 1
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Style is the color pair and inversion flag of a cell.
type Style struct {
	FG      Color
	BG      Color
	Inverse bool
}

// DefaultStyle returns a style with default colors.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Inverted returns a new style with foreground and background swapped.
func (s Style) Inverted() Style {
	s.Inverse = true
	return s
}

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Dimensions is a width and height pair.
type Dimensions struct {
	Width  int
	Height int
}

// Add grows d by dw and dh.
func (d Dimensions) Add(dw, dh int) Dimensions {
	return Dimensions{Width: d.Width + dw, Height: d.Height + dh}
}
