package viu

// Box frames a single child with a line-style border. Focus, keys and
// cursor placement are forwarded to the child.
type Box struct {
	BaseContainer
	Style LineStyle
}

var (
	_ Container       = (*Box)(nil)
	_ CursorFocusable = (*Box)(nil)
)

// NewBox frames c with style. It panics if c already has a parent.
func NewBox(c Component, style LineStyle) *Box {
	b := &Box{Style: style}
	if err := b.SetChild(c); err != nil {
		panic(err)
	}
	return b
}

// SetChild replaces the framed component.
func (b *Box) SetChild(c Component) error {
	if old := b.child(); old != nil {
		b.detach(old)
	}
	if c == nil {
		return nil
	}
	return b.attach(b, c, "")
}

func (b *Box) child() Component {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}

func (b *Box) ComputeDimensions() Dimensions {
	if c := b.child(); c != nil {
		return sizeOf(c).Add(2, 2)
	}
	return Dimensions{Width: 2, Height: 2}
}

// Validate places the child inside the frame.
func (b *Box) Validate() {
	c := b.child()
	if c == nil {
		return
	}
	r := b.Bounds()
	c.SetBounds(Rect{X: r.X + 1, Y: r.Y + 1, Width: max(r.Width-2, 0), Height: max(r.Height-2, 0)})
	if ct, ok := c.(Container); ok {
		ct.Validate()
	}
}

func (b *Box) Print(g Graphics) {
	if !b.Visible() {
		return
	}
	drawBox(g, b.Bounds(), b.Style)
	c := b.child()
	if c == nil {
		return
	}
	c.Print(g)
	if cf, ok := c.(CursorFocusable); ok {
		cf.UpdateCursorState(g)
	}
}

// AcceptInput offers ev to the child, then to the child's action bound
// to ev.
func (b *Box) AcceptInput(ev KeyEvent, g Graphics) bool {
	c := b.child()
	if c == nil {
		return false
	}
	if f, ok := c.(Focusable); ok && f.AcceptInput(ev, g) {
		return true
	}
	name, ok := ActionFor(c.InputMap().Compile(), ev)
	if !ok {
		return false
	}
	act, ok := c.ActionMap().Get(name)
	if !ok || act == nil {
		return false
	}
	act(ActionEvent{Source: c, Key: ev, Graphics: g})
	return true
}

func (b *Box) IsFocusable() bool {
	return b.Visible() && canFocus(b.child())
}

func (b *Box) SetFocused(focused bool, g Graphics) {
	if f, ok := b.child().(Focusable); ok {
		f.SetFocused(focused, g)
	}
}

func (b *Box) IsFocused() bool {
	return hasFocus(b.child())
}

func (b *Box) UpdateCursorState(g Graphics) {
	if cf, ok := b.child().(CursorFocusable); ok {
		cf.UpdateCursorState(g)
	}
}
