package viu

import "fmt"

// Panel is a container whose children are arranged by a LayoutStrategy. It
// routes keys to its focused child and moves focus between children.
type Panel struct {
	BaseContainer
	strategy LayoutStrategy
}

var _ Focusable = (*Panel)(nil)

// NewPanel creates a panel using s. A nil strategy means a plain Flow.
func NewPanel(s LayoutStrategy) *Panel {
	if s == nil {
		s = &Flow{}
	}
	return &Panel{strategy: s}
}

// Strategy returns the panel's layout strategy.
func (p *Panel) Strategy() LayoutStrategy {
	return p.strategy
}

// Add attaches c with the given layout hint ("" for none). It fails if c
// already has a parent or the strategy rejects the hint.
func (p *Panel) Add(c Component, hint string) error {
	if c.Parent() != nil {
		return fmt.Errorf("add %T: %w", c, ErrAlreadyOwned)
	}
	if !p.strategy.AllowsHint(hint) {
		return fmt.Errorf("add %T with hint %q: %w", c, hint, ErrUnsupportedHint)
	}
	if err := p.strategy.Added(p, c, hint); err != nil {
		return fmt.Errorf("add %T with hint %q: %w", c, hint, err)
	}
	return p.attach(p, c, hint)
}

// MustAdd is Add for static tree assembly; it panics on error.
func (p *Panel) MustAdd(c Component, hint string) *Panel {
	if err := p.Add(c, hint); err != nil {
		panic(err)
	}
	return p
}

// Remove detaches c. It reports whether c was a child. A focused child is
// unfocused first and focus re-enters the panel through its strategy.
func (p *Panel) Remove(c Component) bool {
	if indexOf(p.children, c) < 0 {
		return false
	}
	g := NewCanvas(0, 0)
	focused := hasFocus(c)
	if focused {
		c.(Focusable).SetFocused(false, g)
	}
	// the strategy sees c still attached, with its hint
	p.strategy.Removed(p, c)
	ok := p.detach(c)
	if focused && p.IsFocusable() {
		p.SetFocused(true, g)
	}
	return ok
}

// Validate applies the strategy, then validates child containers.
func (p *Panel) Validate() {
	p.strategy.Layout(p)
	for _, c := range p.children {
		if ct, ok := c.(Container); ok {
			ct.Validate()
		}
	}
}

// ComputeDimensions asks the strategy for the panel's natural size.
func (p *Panel) ComputeDimensions() Dimensions {
	return p.strategy.Dimensions(p)
}

// Print draws visible children, then lets the deepest focused component
// place the cursor.
func (p *Panel) Print(g Graphics) {
	if !p.Visible() {
		return
	}
	p.printChildren(g)
	if cf, ok := p.FocusedChild(true).(CursorFocusable); ok {
		cf.UpdateCursorState(g)
	}
}

// FocusedChild returns the child holding focus, or nil. With deep set it
// descends through nested panels to the innermost focused component.
func (p *Panel) FocusedChild(deep bool) Component {
	for _, c := range p.children {
		if !hasFocus(c) {
			continue
		}
		if inner, ok := c.(*Panel); ok && deep {
			if d := inner.FocusedChild(true); d != nil {
				return d
			}
		}
		return c
	}
	return nil
}

// AcceptInput offers ev to the focused child, then to the action bound to
// ev in that child's maps, and finally uses ev to move focus.
func (p *Panel) AcceptInput(ev KeyEvent, g Graphics) bool {
	for _, c := range p.children {
		f, ok := c.(Focusable)
		if !ok || !f.IsFocusable() || !f.IsFocused() {
			continue
		}
		if f.AcceptInput(ev, g) {
			return true
		}
		if name, ok := ActionFor(c.InputMap().Compile(), ev); ok {
			if act, ok := c.ActionMap().Get(name); ok && act != nil {
				act(ActionEvent{Source: c, Key: ev, Graphics: g})
				return true
			}
		}
	}

	inputs := p.InputMap().Compile()
	for _, dir := range [...]string{ActionMoveUp, ActionMoveLeft, ActionMoveRight, ActionMoveDown} {
		if Corresponds(inputs, ev, dir) {
			return p.moveFocus(dir, g)
		}
	}
	return false
}

// moveFocus asks the strategy for the next target in direction dir and
// transfers focus to it.
func (p *Panel) moveFocus(dir string, g Graphics) bool {
	prev := p.FocusedChild(false)
	var next Focusable
	switch dir {
	case ActionMoveUp:
		next = p.strategy.Up(p, prev)
	case ActionMoveDown:
		next = p.strategy.Down(p, prev)
	case ActionMoveLeft:
		next = p.strategy.Prev(p, prev)
	case ActionMoveRight:
		next = p.strategy.Next(p, prev)
	}
	if next == nil {
		return false
	}
	if f, ok := prev.(Focusable); ok {
		f.SetFocused(false, g)
	}
	next.SetFocused(true, g)
	return true
}

// IsFocusable reports whether any child can take focus.
func (p *Panel) IsFocusable() bool {
	if !p.Visible() {
		return false
	}
	for _, c := range p.children {
		if canFocus(c) {
			return true
		}
	}
	return false
}

// IsFocused reports whether any child holds focus.
func (p *Panel) IsFocused() bool {
	for _, c := range p.children {
		if hasFocus(c) {
			return true
		}
	}
	return false
}

// SetFocused enters the panel through the strategy's entry target, falling
// back to the first visible focusable child. Unfocusing clears every child.
func (p *Panel) SetFocused(focused bool, g Graphics) {
	if focused {
		target := p.strategy.Next(p, nil)
		if target == nil {
			target = focusableAfter(p, nil)
		}
		if target == nil {
			return
		}
		target.SetFocused(true, g)
		if cf, ok := target.(CursorFocusable); ok {
			cf.UpdateCursorState(g)
		}
		return
	}
	for _, c := range p.children {
		f, ok := c.(Focusable)
		if !ok {
			continue
		}
		wasFocused := f.IsFocused()
		f.SetFocused(false, g)
		if cf, ok := f.(CursorFocusable); ok && wasFocused {
			cf.UpdateCursorState(g)
		}
	}
}

// FocusFirst focuses the panel if nothing inside it holds focus yet.
func (p *Panel) FocusFirst(g Graphics) {
	if !p.IsFocused() && p.IsFocusable() {
		p.SetFocused(true, g)
	}
}
