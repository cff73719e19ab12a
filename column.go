package viu

import (
	"cmp"
	"slices"

	"github.com/mattn/go-runewidth"
)

// Column renders one field of every row of a Table.
type Column[T any] interface {
	// Widths lists the candidate widths for data, ascending. The first is
	// the minimum.
	Widths(data []T) []int

	// Render builds the cell for item at row index.
	Render(item T, index, width int, focused, selected bool) Component

	// Title returns the header text for a column of the given width.
	Title(width int) string

	IsVisible(data []T) bool
	Sizing() ColumnSizing
}

// ColumnSizing steers width resolution. Higher Priority columns are widened
// first; Grow and Shrink weight the distribution of slack and overflow.
type ColumnSizing struct {
	Priority int
	Grow     int
	Shrink   int
}

// IndicatorColumn is a one-cell column marking the focused row with '>',
// selected rows with '*', and a focused selected row with '='.
type IndicatorColumn[T any] struct {
	ColumnSizing
}

func (IndicatorColumn[T]) Widths([]T) []int   { return []int{1} }
func (IndicatorColumn[T]) Title(int) string   { return " " }
func (IndicatorColumn[T]) IsVisible([]T) bool { return true }

func (c IndicatorColumn[T]) Sizing() ColumnSizing { return c.ColumnSizing }

func (IndicatorColumn[T]) Render(_ T, _, _ int, focused, selected bool) Component {
	mark := " "
	switch {
	case focused && selected:
		mark = "="
	case focused:
		mark = ">"
	case selected:
		mark = "*"
	}
	return &Text{Text: mark, ReverseColors: focused}
}

// BasicColumn shows one string per row. Its single candidate width fits the
// title and every value.
type BasicColumn[T any] struct {
	ColumnSizing

	Header string
	Value  func(T) string

	// Color, when set, colors the cell text, or the bar on the focused row.
	Color func(T) Color

	HAlign Align
}

// NewBasicColumn creates a column titled header.
func NewBasicColumn[T any](header string, value func(T) string) *BasicColumn[T] {
	return &BasicColumn[T]{Header: header, Value: value}
}

func (c *BasicColumn[T]) Widths(data []T) []int {
	w := runewidth.StringWidth(c.Header)
	for _, it := range data {
		w = max(w, runewidth.StringWidth(c.Value(it)))
	}
	return []int{w}
}

func (c *BasicColumn[T]) Render(item T, _, _ int, focused, _ bool) Component {
	return cellText(c.Value(item), c.Color, item, focused, c.HAlign)
}

func (c *BasicColumn[T]) Title(int) string     { return c.Header }
func (c *BasicColumn[T]) IsVisible([]T) bool   { return true }
func (c *BasicColumn[T]) Sizing() ColumnSizing { return c.ColumnSizing }

// MultistateColumn offers several renditions of a value, from terse to
// verbose. Each row shows the longest rendition fitting the resolved width
// and the header picks the longest title that fits.
type MultistateColumn[T any] struct {
	ColumnSizing

	titles   []string
	variants func(T) []string

	// Visible, when set, decides whether the column is shown at all.
	Visible func([]T) bool
	Color   func(T) Color
	HAlign  Align
}

// NewMultistateColumn creates a column with the given titles and per-row
// renditions.
func NewMultistateColumn[T any](titles []string, variants func(T) []string) *MultistateColumn[T] {
	ts := slices.Clone(titles)
	slices.SortStableFunc(ts, byWidth)
	return &MultistateColumn[T]{titles: ts, variants: variants}
}

func byWidth(a, b string) int {
	return cmp.Compare(runewidth.StringWidth(a), runewidth.StringWidth(b))
}

// Widths returns, for each rendition slot, the widest value across data,
// never narrower than the shortest title. The longest title is added when
// it exceeds them all.
func (c *MultistateColumn[T]) Widths(data []T) []int {
	var slot []int
	for _, it := range data {
		for i, v := range c.variants(it) {
			w := runewidth.StringWidth(v)
			if i >= len(slot) {
				slot = append(slot, w)
			} else {
				slot[i] = max(slot[i], w)
			}
		}
	}

	minTitle, maxTitle := 0, 0
	if len(c.titles) > 0 {
		minTitle = runewidth.StringWidth(c.titles[0])
		maxTitle = runewidth.StringWidth(c.titles[len(c.titles)-1])
	}
	out := make([]int, 0, len(slot)+1)
	for _, w := range slot {
		out = append(out, max(w, minTitle))
	}
	if len(out) == 0 || slices.Max(out) < maxTitle {
		out = append(out, maxTitle)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (c *MultistateColumn[T]) Render(item T, _, width int, focused, _ bool) Component {
	vs := slices.Clone(c.variants(item))
	if len(vs) == 0 {
		return &Text{ReverseColors: focused}
	}
	slices.SortStableFunc(vs, byWidth)
	pick := vs[0]
	for _, v := range vs {
		if runewidth.StringWidth(v) <= width {
			pick = v
		}
	}
	return cellText(pick, c.Color, item, focused, c.HAlign)
}

func (c *MultistateColumn[T]) Title(width int) string {
	title := ""
	for _, t := range c.titles {
		if runewidth.StringWidth(t) <= width {
			title = t
		}
	}
	return title
}

func (c *MultistateColumn[T]) IsVisible(data []T) bool {
	if c.Visible == nil {
		return true
	}
	return c.Visible(data)
}

func (c *MultistateColumn[T]) Sizing() ColumnSizing { return c.ColumnSizing }

func cellText[T any](s string, color func(T) Color, item T, focused bool, align Align) *Text {
	t := &Text{Text: s, ReverseColors: focused, HAlign: align}
	if color != nil {
		t.Foreground = color(item)
	}
	return t
}
