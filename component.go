package viu

// Computed as a size hint means "use what ComputeDimensions reports".
const Computed = -1

// Component is the interface every on-screen element implements.
type Component interface {
	// Layout. Bounds are absolute screen coordinates assigned by the
	// parent's strategy, which may differ from the component's own sizes.
	Bounds() Rect
	SetBounds(Rect)
	ComputeDimensions() Dimensions
	PreferredSize() Dimensions
	MinSize() Dimensions
	MaxSize() Dimensions

	Visible() bool
	SetVisible(bool)

	// Hierarchy
	Parent() Container
	SetParent(Container)
	LayoutHint() string
	setLayoutHint(string)

	// Bindings
	InputMap() InputMap
	ActionMap() ActionMap

	// Rendering
	Print(g Graphics)
}

// Focusable is a component that can hold focus and consume keys.
type Focusable interface {
	Component

	// AcceptInput handles ev and reports whether it was consumed.
	AcceptInput(ev KeyEvent, g Graphics) bool
	IsFocusable() bool
	SetFocused(focused bool, g Graphics)
	IsFocused() bool
}

// CursorFocusable is a Focusable that places the terminal cursor when it
// holds focus.
type CursorFocusable interface {
	Focusable
	UpdateCursorState(g Graphics)
}

// Container is a component that owns children.
type Container interface {
	Component
	Children() []Component

	// Validate lays out the children and recurses into child containers.
	Validate()
}

// Base provides the bookkeeping shared by all components.
// Embed this in your component structs.
type Base struct {
	bounds Rect
	hidden bool

	pref, minSize, maxSize Dimensions
	prefSet                [2]bool

	parent Container
	hint   string

	inputs  InputMap
	actions ActionMap
}

// Bounds returns the rectangle assigned by the last layout pass.
func (b *Base) Bounds() Rect {
	return b.bounds
}

// SetBounds assigns the component's rectangle.
func (b *Base) SetBounds(r Rect) {
	b.bounds = r
}

// X, Y, Width and Height are shorthands for the bounds fields.
func (b *Base) X() int      { return b.bounds.X }
func (b *Base) Y() int      { return b.bounds.Y }
func (b *Base) Width() int  { return b.bounds.Width }
func (b *Base) Height() int { return b.bounds.Height }

// ComputeDimensions reports a 1x1 minimum. Components override it.
func (b *Base) ComputeDimensions() Dimensions {
	return Dimensions{Width: 1, Height: 1}
}

// PreferredSize returns the requested size; Computed fields defer to
// ComputeDimensions.
func (b *Base) PreferredSize() Dimensions {
	d := Dimensions{Width: Computed, Height: Computed}
	if b.prefSet[0] {
		d.Width = b.pref.Width
	}
	if b.prefSet[1] {
		d.Height = b.pref.Height
	}
	return d
}

// SetPreferredSize requests a size. Pass Computed for either axis to use
// the computed value.
func (b *Base) SetPreferredSize(width, height int) {
	b.pref = Dimensions{Width: width, Height: height}
	b.prefSet = [2]bool{width >= 0, height >= 0}
}

// MinSize returns the minimum size hint. Zero means unconstrained.
func (b *Base) MinSize() Dimensions {
	return b.minSize
}

// SetMinSize sets the minimum size hint.
func (b *Base) SetMinSize(width, height int) {
	b.minSize = Dimensions{Width: width, Height: height}
}

// MaxSize returns the maximum size hint. Zero means unconstrained.
func (b *Base) MaxSize() Dimensions {
	return b.maxSize
}

// SetMaxSize sets the maximum size hint.
func (b *Base) SetMaxSize(width, height int) {
	b.maxSize = Dimensions{Width: width, Height: height}
}

// Visible reports whether the component takes part in layout and painting.
func (b *Base) Visible() bool {
	return !b.hidden
}

// SetVisible shows or hides the component.
func (b *Base) SetVisible(v bool) {
	b.hidden = !v
}

// Parent returns the owning container, or nil.
func (b *Base) Parent() Container {
	return b.parent
}

// SetParent sets the owner and rebinds both dictionaries to the owner's,
// so inherited bindings follow the tree. Containers call this; use
// Panel.Add and Panel.Remove instead.
func (b *Base) SetParent(p Container) {
	b.parent = p
	if p == nil {
		b.InputMap().SetParent(nil)
		b.ActionMap().SetParent(nil)
		return
	}
	b.InputMap().SetParent(p.InputMap())
	b.ActionMap().SetParent(p.ActionMap())
}

// LayoutHint returns the hint the component was added with.
func (b *Base) LayoutHint() string {
	return b.hint
}

func (b *Base) setLayoutHint(h string) {
	b.hint = h
}

// InputMap returns the key stroke to action name bindings.
func (b *Base) InputMap() InputMap {
	if b.inputs == nil {
		b.inputs = NewDictionary[KeyStroke, string]()
	}
	return b.inputs
}

// SetInputMap replaces the input bindings, keeping the current parent.
// Containers must rebind their children afterwards.
func (b *Base) SetInputMap(m InputMap) {
	m.SetParent(b.InputMap().Parent())
	b.inputs = m
}

// ActionMap returns the action name to effect bindings.
func (b *Base) ActionMap() ActionMap {
	if b.actions == nil {
		b.actions = NewDictionary[string, Action]()
	}
	return b.actions
}

// Print does nothing. Components override it.
func (b *Base) Print(Graphics) {}

// BaseContainer provides child ownership for containers.
// Embed this in container structs.
type BaseContainer struct {
	Base
	children []Component

	// ClearBeforePrint blanks the container's rectangle before its
	// children are drawn.
	ClearBeforePrint bool
}

// Children returns the child components in order.
func (c *BaseContainer) Children() []Component {
	return c.children
}

// SetInputMap replaces the container's input bindings and rebinds the
// children to it.
func (c *BaseContainer) SetInputMap(m InputMap) {
	c.Base.SetInputMap(m)
	for _, ch := range c.children {
		ch.InputMap().SetParent(m)
	}
}

// attach appends child, owned by self. self is the outer container that
// embeds c; dictionaries are rebound to its maps.
func (c *BaseContainer) attach(self Container, child Component, hint string) error {
	if child.Parent() != nil {
		return ErrAlreadyOwned
	}
	c.children = append(c.children, child)
	child.SetParent(self)
	child.setLayoutHint(hint)
	return nil
}

// detach removes child and clears its parent pointer.
func (c *BaseContainer) detach(child Component) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.SetParent(nil)
			child.setLayoutHint("")
			return true
		}
	}
	return false
}

// printChildren draws the visible children in order.
func (c *BaseContainer) printChildren(g Graphics) {
	if c.ClearBeforePrint {
		r := c.Bounds()
		g.ClearRect(r.X, r.Y, r.Width, r.Height)
	}
	for _, ch := range c.children {
		if ch.Visible() {
			ch.Print(g)
		}
	}
}

// sizeOf returns the size a strategy should request for c: the preferred
// size with Computed axes filled in, clamped by the min and max hints.
func sizeOf(c Component) Dimensions {
	pref := c.PreferredSize()
	if pref.Width < 0 || pref.Height < 0 {
		comp := c.ComputeDimensions()
		if pref.Width < 0 {
			pref.Width = comp.Width
		}
		if pref.Height < 0 {
			pref.Height = comp.Height
		}
	}
	lo, hi := c.MinSize(), c.MaxSize()
	if lo.Width > 0 {
		pref.Width = max(pref.Width, lo.Width)
	}
	if lo.Height > 0 {
		pref.Height = max(pref.Height, lo.Height)
	}
	if hi.Width > 0 {
		pref.Width = min(pref.Width, hi.Width)
	}
	if hi.Height > 0 {
		pref.Height = min(pref.Height, hi.Height)
	}
	return pref
}

// canFocus reports whether c is a visible component able to take focus.
func canFocus(c Component) bool {
	if c == nil || !c.Visible() {
		return false
	}
	f, ok := c.(Focusable)
	return ok && f.IsFocusable()
}

// hasFocus reports whether c currently holds focus.
func hasFocus(c Component) bool {
	f, ok := c.(Focusable)
	return ok && f.IsFocused()
}
