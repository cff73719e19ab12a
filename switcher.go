package viu

import (
	"errors"
	"fmt"
)

// Switcher shows exactly one child at a time. Children added with a hint
// can be switched to by that hint.
type Switcher struct {
	panel    *Panel
	current  Component
	bindings map[string]Component
}

var _ LayoutStrategy = (*Switcher)(nil)

// NewSwitcher creates a switcher. It binds to the first panel it is used on.
func NewSwitcher() *Switcher {
	return &Switcher{bindings: make(map[string]Component)}
}

// NewSwitcherPanel returns a panel laid out by a new switcher.
func NewSwitcherPanel() (*Panel, *Switcher) {
	s := NewSwitcher()
	return NewPanel(s), s
}

var errForeignPanel = errors.New("switcher already bound to another panel")

// Layout gives every child the full panel and shows only the current one.
func (s *Switcher) Layout(p *Panel) {
	pr := p.Bounds()
	for _, c := range p.children {
		r := pr
		if pref := c.PreferredSize(); pref.Width >= 0 {
			r.Width = pref.Width
		}
		if pref := c.PreferredSize(); pref.Height >= 0 {
			r.Height = pref.Height
		}
		c.SetBounds(r)
		c.SetVisible(c == s.current)
	}
}

func (s *Switcher) Dimensions(*Panel) Dimensions {
	if s.current == nil {
		return Dimensions{}
	}
	return sizeOf(s.current)
}

// AllowsHint accepts any hint.
func (s *Switcher) AllowsHint(string) bool {
	return true
}

func (s *Switcher) Added(p *Panel, c Component, hint string) error {
	if s.panel == nil {
		s.panel = p
	} else if s.panel != p {
		return errForeignPanel
	}
	if hint != "" {
		s.bindings[hint] = c
	}
	if s.current == nil {
		s.current = c
	}
	c.SetVisible(c == s.current)
	return nil
}

// Removed drops every binding to c. If c was current, the first remaining
// child becomes current.
func (s *Switcher) Removed(p *Panel, c Component) {
	for h, bound := range s.bindings {
		if bound == c {
			delete(s.bindings, h)
		}
	}
	if s.current != c {
		return
	}
	s.current = nil
	for _, ch := range p.children {
		if ch != c {
			s.current = ch
			break
		}
	}
	if s.current != nil {
		s.current.SetVisible(true)
	}
}

// Current returns the visible child, or nil when the panel is empty.
func (s *Switcher) Current() Component {
	return s.current
}

// SwitchTo makes c current. If the panel holds focus, the old current child
// is unfocused and c focused in the same step.
func (s *Switcher) SwitchTo(c Component, g Graphics) error {
	if s.panel == nil || indexOf(s.panel.children, c) < 0 {
		return fmt.Errorf("switch to %T: %w", c, ErrNotChild)
	}
	if c == s.current {
		return nil
	}
	if g == nil {
		g = NewCanvas(0, 0)
	}

	transfer := s.panel.IsFocused()
	if f, ok := s.current.(Focusable); ok && transfer && f.IsFocused() {
		f.SetFocused(false, g)
	}
	if s.current != nil {
		s.current.SetVisible(false)
	}
	s.current = c
	c.SetVisible(true)
	if f, ok := c.(Focusable); ok && transfer && f.IsFocusable() {
		f.SetFocused(true, g)
	}
	return nil
}

// SwitchToHint switches to the child bound to hint. It reports false and
// changes nothing if no child is bound to it.
func (s *Switcher) SwitchToHint(hint string, g Graphics) bool {
	c, ok := s.bindings[hint]
	if !ok {
		return false
	}
	return s.SwitchTo(c, g) == nil
}

// Has reports whether a child is bound to hint.
func (s *Switcher) Has(hint string) bool {
	_, ok := s.bindings[hint]
	return ok
}

func (s *Switcher) enter(from Component) Focusable {
	if from != nil {
		return nil
	}
	if canFocus(s.current) {
		return s.current.(Focusable)
	}
	return nil
}

func (s *Switcher) Next(_ *Panel, from Component) Focusable { return s.enter(from) }
func (s *Switcher) Prev(_ *Panel, from Component) Focusable { return s.enter(from) }
func (s *Switcher) Up(_ *Panel, from Component) Focusable   { return s.enter(from) }
func (s *Switcher) Down(_ *Panel, from Component) Focusable { return s.enter(from) }
