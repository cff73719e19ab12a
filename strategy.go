package viu

// LayoutStrategy assigns geometry to a panel's children and answers the
// directional focus queries. A nil from means focus is entering the panel
// from outside; strategies must then return a deterministic target.
type LayoutStrategy interface {
	Layout(p *Panel)
	Dimensions(p *Panel) Dimensions
	AllowsHint(hint string) bool

	// Added and Removed let strategies keep per-child state. Added runs
	// before the child is attached and may veto it.
	Added(p *Panel, c Component, hint string) error
	Removed(p *Panel, c Component)

	Next(p *Panel, from Component) Focusable
	Prev(p *Panel, from Component) Focusable
	Up(p *Panel, from Component) Focusable
	Down(p *Panel, from Component) Focusable
}

// noState implements the bookkeeping hooks for stateless strategies.
type noState struct{}

func (noState) Added(*Panel, Component, string) error { return nil }
func (noState) Removed(*Panel, Component)             {}

// visibleChildren returns the children that take part in layout.
func visibleChildren(p *Panel) []Component {
	out := make([]Component, 0, len(p.children))
	for _, c := range p.children {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// focusableAfter scans forward from the child after from. A nil from
// starts at the first child.
func focusableAfter(p *Panel, from Component) Focusable {
	start := 0
	if from != nil {
		start = indexOf(p.children, from) + 1
		if start == 0 {
			return nil
		}
	}
	for i := start; i < len(p.children); i++ {
		if canFocus(p.children[i]) {
			return p.children[i].(Focusable)
		}
	}
	return nil
}

// focusableBefore scans backward from the child before from. A nil from
// starts at the last child.
func focusableBefore(p *Panel, from Component) Focusable {
	start := len(p.children) - 1
	if from != nil {
		start = indexOf(p.children, from) - 1
		if start == -2 {
			return nil
		}
	}
	for i := start; i >= 0; i-- {
		if canFocus(p.children[i]) {
			return p.children[i].(Focusable)
		}
	}
	return nil
}

func indexOf(cs []Component, c Component) int {
	for i, x := range cs {
		if x == c {
			return i
		}
	}
	return -1
}
