package viu

import (
	"slices"
	"strings"
)

// Repaint says how much of a table must be redrawn after a focus move.
type Repaint uint8

const (
	// RepaintNone means the move was refused.
	RepaintNone Repaint = iota
	// RepaintRows means only the old and new focused rows changed.
	RepaintRows
	// RepaintFull means the viewport scrolled.
	RepaintFull
)

// Table shows the rows of an Observable through a set of columns, with a
// header line, a scrolling viewport, a focused row and a selection.
//
// Selection is by value: two equal items are selected together. Use pointer
// items to select by identity.
type Table[T comparable] struct {
	Base

	HideHeader bool
	ColumnGap  int

	// OnActivate fires when the base action is pressed on the table.
	OnActivate func(ActionEvent)
	// OnItemActivate fires alongside OnActivate with the focused item and
	// its index in the data.
	OnItemActivate func(item T, index int)
	// OnFocusChange fires when a different row takes focus.
	OnFocusChange func(item T, index int)
	// OnSelectionChange fires after the selection is toggled.
	OnSelectionChange func(selected []T)

	data    *Observable[T]
	unsub   func()
	columns []Column[T]

	// view maps displayed rows to data indices. It is the identity unless
	// a filter is set.
	view     []int
	query    FilterQuery
	filterOn func(T) string

	selected map[T]struct{}
	focus    int
	offset   int
	focused  bool

	shown  []Column[T]
	widths []int

	// last is the surface of the most recent paint, used to redraw after
	// data changes.
	last Graphics
}

var _ Focusable = (*Table[int])(nil)

// NewTable creates a table over data. A nil data starts with an empty list.
func NewTable[T comparable](data *Observable[T], columns ...Column[T]) *Table[T] {
	t := &Table[T]{
		ColumnGap: 1,
		columns:   columns,
		selected:  make(map[T]struct{}),
		focus:     -1,
	}
	if data == nil {
		data = NewObservable[T]()
	}
	t.SetData(data)
	return t
}

// Data returns the backing list.
func (t *Table[T]) Data() *Observable[T] {
	return t.data
}

// SetData replaces the backing list. Selection and focus are cleared.
func (t *Table[T]) SetData(data *Observable[T]) {
	if t.unsub != nil {
		t.unsub()
	}
	t.data = data
	t.unsub = data.Subscribe(t.dataChanged)
	clear(t.selected)
	t.focus, t.offset = -1, 0
	t.rebuildView()
}

// Columns returns the column set.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// AddColumn appends a column.
func (t *Table[T]) AddColumn(c Column[T]) {
	t.columns = append(t.columns, c)
}

// Len returns the number of displayed rows.
func (t *Table[T]) Len() int {
	return len(t.view)
}

// SetFilter shows only the rows whose text matches query, in data order.
// An empty query shows every row. Selection is kept.
func (t *Table[T]) SetFilter(query string, text func(T) string) {
	keep := t.FocusedIndex()
	t.query = ParseFilterQuery(query)
	t.filterOn = text
	t.rebuildView()
	t.focus = -1
	if keep >= 0 {
		t.focus = t.viewPos(keep)
	}
	t.offset = 0
	if t.focus >= 0 {
		t.scrollTo(t.focus)
	}
	t.repaint()
}

func (t *Table[T]) rebuildView() {
	t.view = t.view[:0]
	for i := range t.data.Len() {
		if t.filterOn != nil && !t.query.Empty() && !t.query.Match(t.filterOn(t.data.At(i))) {
			continue
		}
		t.view = append(t.view, i)
	}
}

// viewPos returns the first displayed row at or after data index i, else
// the last displayed row, or -1 when nothing is displayed.
func (t *Table[T]) viewPos(i int) int {
	if len(t.view) == 0 {
		return -1
	}
	pos, _ := slices.BinarySearch(t.view, i)
	return min(pos, len(t.view)-1)
}

// dataChanged keeps focus and selection consistent with the new data.
func (t *Table[T]) dataChanged(c Change[T]) {
	fd := t.FocusedIndex()

	switch c.Type {
	case ChangeReset:
		clear(t.selected)
		t.rebuildView()
		t.focus, t.offset = -1, 0
		t.repaint()
		return

	case ChangeAdd:
		if fd >= c.Index {
			fd += len(c.Items)
		}

	case ChangeUpdate:
		for _, it := range c.Old {
			if !t.contains(it) {
				delete(t.selected, it)
			}
		}

	case ChangeRemove:
		for _, it := range c.Items {
			delete(t.selected, it)
		}
		if fd >= 0 {
			fd = survivor(fd, c.Indices, t.data.Len())
		}
	}

	t.rebuildView()
	t.focus = -1
	if fd >= 0 {
		t.focus = t.viewPos(fd)
	}
	t.clampOffset()
	if t.focus >= 0 && !t.rowVisible(t.focus) {
		t.scrollTo(t.focus)
	}
	t.repaint()
}

func (t *Table[T]) contains(item T) bool {
	for i := range t.data.Len() {
		if t.data.At(i) == item {
			return true
		}
	}
	return false
}

// survivor maps the focused data index fd across the removal of the
// ascending original indices removed, leaving n items. A removed fd moves to
// its nearest surviving successor, else its nearest surviving predecessor,
// else -1.
func survivor(fd int, removed []int, n int) int {
	k, hit := slices.BinarySearch(removed, fd)
	kept := fd - k
	switch {
	case !hit, kept < n:
		return kept
	case kept > 0:
		return kept - 1
	}
	return -1
}

// Focus moves the focus to displayed row i, scrolling if it lies outside
// the viewport.
func (t *Table[T]) Focus(i int) Repaint {
	if i < 0 || i >= len(t.view) {
		return RepaintNone
	}
	prev := t.focus
	t.focus = i
	if prev != i && t.OnFocusChange != nil {
		t.OnFocusChange(t.data.At(t.view[i]), t.view[i])
	}
	if t.rowVisible(i) {
		return RepaintRows
	}
	t.scrollTo(i)
	return RepaintFull
}

// FocusIndex focuses displayed row i and repaints what changed.
func (t *Table[T]) FocusIndex(i int, g Graphics) {
	prev := t.focus
	switch t.Focus(i) {
	case RepaintRows:
		t.printRow(prev, g)
		t.printRow(i, g)
	case RepaintFull:
		t.Print(g)
	}
}

// FocusedIndex returns the data index of the focused row, or -1.
func (t *Table[T]) FocusedIndex() int {
	if t.focus < 0 || t.focus >= len(t.view) {
		return -1
	}
	return t.view[t.focus]
}

// FocusedItem returns the focused item.
func (t *Table[T]) FocusedItem() (T, bool) {
	i := t.FocusedIndex()
	if i < 0 {
		var zero T
		return zero, false
	}
	return t.data.At(i), true
}

// Offset returns the data row shown at the top of the viewport.
func (t *Table[T]) Offset() int {
	return t.offset
}

func (t *Table[T]) headerSize() int {
	if t.HideHeader {
		return 0
	}
	return 1
}

// rows is the number of data rows the viewport holds.
func (t *Table[T]) rows() int {
	return max(t.Height()-t.headerSize(), 0)
}

func (t *Table[T]) rowVisible(i int) bool {
	return i-t.offset >= 0 && i-t.offset < t.rows()
}

// scrollTo moves the viewport so row i is its last row when scrolling down,
// or its first row when scrolling up. It does nothing before layout.
func (t *Table[T]) scrollTo(i int) {
	if t.rows() == 0 {
		return
	}
	if i >= t.offset {
		t.offset = i - t.rows() + 1
	} else {
		t.offset = i
	}
	t.clampOffset()
}

func (t *Table[T]) clampOffset() {
	t.offset = clamp(t.offset, 0, max(len(t.view)-t.rows(), 0))
}

// Toggle flips the selection of displayed row i.
func (t *Table[T]) Toggle(i int) {
	if i < 0 || i >= len(t.view) {
		return
	}
	item := t.data.At(t.view[i])
	if _, ok := t.selected[item]; ok {
		delete(t.selected, item)
	} else {
		t.selected[item] = struct{}{}
	}
	if t.OnSelectionChange != nil {
		t.OnSelectionChange(t.Selected())
	}
}

// Selected returns the selected items in data order.
func (t *Table[T]) Selected() []T {
	var out []T
	for i := range t.data.Len() {
		if it := t.data.At(i); t.IsSelected(it) {
			out = append(out, it)
		}
	}
	return out
}

func (t *Table[T]) IsSelected(item T) bool {
	_, ok := t.selected[item]
	return ok
}

// ClearSelection deselects every item.
func (t *Table[T]) ClearSelection() {
	clear(t.selected)
}

// resolve picks the visible columns and their widths for the current
// bounds.
func (t *Table[T]) resolve() {
	items := t.data.Snapshot()
	t.shown = t.shown[:0]
	specs := make([]ColumnSpec, 0, len(t.columns))
	for _, c := range t.columns {
		if !c.IsVisible(items) {
			continue
		}
		t.shown = append(t.shown, c)
		specs = append(specs, ColumnSpec{Widths: c.Widths(items), ColumnSizing: c.Sizing()})
	}
	t.widths = ResolveWidths(specs, t.Width(), t.ColumnGap)
}

// ComputeDimensions is the width of every visible column at its minimum
// and the height of every row plus the header.
func (t *Table[T]) ComputeDimensions() Dimensions {
	items := t.data.Snapshot()
	w, n := 0, 0
	for _, c := range t.columns {
		if !c.IsVisible(items) {
			continue
		}
		if ws := c.Widths(items); len(ws) > 0 {
			w += ws[0]
		}
		n++
	}
	if n > 1 {
		w += t.ColumnGap * (n - 1)
	}
	return Dimensions{Width: w, Height: len(t.view) + t.headerSize()}
}

func (t *Table[T]) Print(g Graphics) {
	if !t.Visible() {
		return
	}
	t.last = g
	t.resolve()
	r := t.Bounds()

	if !t.HideHeader {
		g.ClearRect(r.X, r.Y, r.Width, 1)
		x := r.X
		for i, c := range t.shown {
			w := t.widths[i]
			g.Write(x, r.Y, fitText(c.Title(w), w, CutEnd))
			x += w + t.ColumnGap
		}
	}

	end := min(len(t.view), t.offset+t.rows())
	for j := t.offset; j < end; j++ {
		t.paintRow(j, g)
	}
	if drawn := end - t.offset; drawn < t.rows() {
		top := r.Y + t.headerSize() + drawn
		g.ClearRect(r.X, top, r.Width, t.rows()-drawn)
	}
}

// printRow repaints displayed row j alone.
func (t *Table[T]) printRow(j int, g Graphics) {
	if !t.Visible() || len(t.widths) != len(t.shown) || len(t.shown) == 0 {
		t.Print(g)
		return
	}
	t.paintRow(j, g)
}

func (t *Table[T]) paintRow(j int, g Graphics) {
	if j < 0 || j >= len(t.view) || !t.rowVisible(j) {
		return
	}
	r := t.Bounds()
	y := r.Y + t.headerSize() + j - t.offset
	idx := t.view[j]
	item := t.data.At(idx)
	focused := t.focused && j == t.focus
	selected := t.IsSelected(item)

	fg, bg := g.Colors()
	defer g.SetColors(fg, bg)
	if selected {
		g.SetColors(Blue, bg)
	}
	if focused {
		g.WriteInverted(r.X, y, strings.Repeat(" ", max(r.Width, 0)), ColorDefault)
	} else {
		g.ClearRect(r.X, y, r.Width, 1)
	}

	x := r.X
	for i, c := range t.shown {
		w := t.widths[i]
		cell := c.Render(item, idx, w, focused, selected)
		cell.SetBounds(Rect{X: x, Y: y, Width: w, Height: 1})
		cell.Print(g)
		x += w + t.ColumnGap
	}
}

// repaint redraws on the last surface after a data change.
func (t *Table[T]) repaint() {
	if t.last == nil {
		return
	}
	r := t.Bounds()
	t.last.ClearRect(r.X, r.Y, r.Width, r.Height)
	t.Print(t.last)
}

func (t *Table[T]) AcceptInput(ev KeyEvent, g Graphics) bool {
	inputs := t.InputMap().Compile()
	switch {
	case Corresponds(inputs, ev, ActionMoveDown):
		return t.step(t.focus+1, g)
	case Corresponds(inputs, ev, ActionMoveUp):
		return t.step(t.focus-1, g)
	case Corresponds(inputs, ev, ActionPageDown):
		if t.focus >= len(t.view)-1 {
			return false
		}
		return t.step(min(t.focus+max(t.rows(), 1), len(t.view)-1), g)
	case Corresponds(inputs, ev, ActionPageUp):
		if t.focus <= 0 {
			return false
		}
		return t.step(max(t.focus-max(t.rows(), 1), 0), g)
	case Corresponds(inputs, ev, ActionSelect):
		if t.FocusedIndex() < 0 {
			return false
		}
		t.Toggle(t.focus)
		t.printRow(t.focus, g)
		return true
	case Corresponds(inputs, ev, ActionBase):
		idx := t.FocusedIndex()
		if idx < 0 {
			return false
		}
		if t.OnActivate != nil {
			t.OnActivate(ActionEvent{Source: t, Key: ev, Graphics: g})
		}
		if t.OnItemActivate != nil {
			t.OnItemActivate(t.data.At(idx), idx)
		}
		return true
	}
	return false
}

// step focuses row i, refusing moves past either end so the parent can
// move focus out of the table.
func (t *Table[T]) step(i int, g Graphics) bool {
	prev := t.focus
	switch t.Focus(i) {
	case RepaintNone:
		return false
	case RepaintRows:
		t.printRow(prev, g)
		t.printRow(i, g)
	case RepaintFull:
		t.Print(g)
	}
	return true
}

// IsFocusable reports whether there is a row and a visible column to show.
func (t *Table[T]) IsFocusable() bool {
	if !t.Visible() || len(t.view) == 0 {
		return false
	}
	items := t.data.Snapshot()
	for _, c := range t.columns {
		if c.IsVisible(items) {
			return true
		}
	}
	return false
}

func (t *Table[T]) SetFocused(focused bool, g Graphics) {
	t.focused = focused
	if focused && (t.focus < 0 || t.focus >= len(t.view)) {
		if t.Focus(0) == RepaintFull {
			t.Print(g)
			return
		}
	}
	t.printRow(t.focus, g)
}

func (t *Table[T]) IsFocused() bool {
	return t.focused
}
