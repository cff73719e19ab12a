package viu

// Border slot hints.
const (
	BorderTop    = "top"
	BorderBottom = "bottom"
	BorderLeft   = "left"
	BorderRight  = "right"
	BorderCenter = "center"
)

// Border arranges up to five children in named slots. Top and bottom span
// the full width at their natural height, left and right take the remaining
// height at their natural width, and center fills the rest.
type Border struct {
	noState
}

var _ LayoutStrategy = (*Border)(nil)

// borderMoves lists, per direction and per currently focused slot, the slots
// to try in order. The "" entry is used when entering the panel.
var borderMoves = map[string]map[string][]string{
	ActionMoveDown: {
		"":           {BorderTop, BorderCenter, BorderLeft, BorderRight, BorderBottom},
		BorderTop:    {BorderCenter, BorderLeft, BorderRight},
		BorderCenter: {BorderBottom},
		BorderLeft:   {BorderBottom},
		BorderRight:  {BorderBottom},
	},
	ActionMoveUp: {
		"":           {BorderTop, BorderCenter, BorderLeft, BorderRight, BorderBottom},
		BorderBottom: {BorderCenter, BorderLeft, BorderRight},
		BorderCenter: {BorderTop},
		BorderLeft:   {BorderTop},
		BorderRight:  {BorderTop},
	},
	ActionMoveRight: {
		"":           {BorderLeft, BorderCenter, BorderTop, BorderRight, BorderBottom},
		BorderCenter: {BorderRight},
		BorderLeft:   {BorderCenter, BorderRight},
		BorderTop:    {BorderRight, BorderCenter, BorderLeft, BorderBottom},
		BorderBottom: {BorderRight},
	},
	ActionMoveLeft: {
		"":           {BorderRight, BorderCenter, BorderBottom, BorderLeft, BorderTop},
		BorderCenter: {BorderLeft},
		BorderRight:  {BorderCenter, BorderLeft},
		BorderBottom: {BorderLeft, BorderCenter, BorderRight, BorderTop},
		BorderTop:    {BorderLeft},
	},
}

// slots maps each slot name to its visible child.
func (b *Border) slots(p *Panel) map[string]Component {
	m := make(map[string]Component, 5)
	for _, c := range visibleChildren(p) {
		m[c.LayoutHint()] = c
	}
	return m
}

func (b *Border) Layout(p *Panel) {
	pr := p.Bounds()
	s := b.slots(p)
	topH, botH, leftW, rightW := 0, 0, 0, 0

	if c := s[BorderTop]; c != nil {
		topH = sizeOf(c).Height
		c.SetBounds(Rect{X: pr.X, Y: pr.Y, Width: pr.Width, Height: topH})
	}
	if c := s[BorderBottom]; c != nil {
		botH = sizeOf(c).Height
		c.SetBounds(Rect{X: pr.X, Y: pr.Y + pr.Height - botH, Width: pr.Width, Height: botH})
	}
	midH := max(pr.Height-topH-botH, 0)
	if c := s[BorderLeft]; c != nil {
		leftW = sizeOf(c).Width
		c.SetBounds(Rect{X: pr.X, Y: pr.Y + topH, Width: leftW, Height: midH})
	}
	if c := s[BorderRight]; c != nil {
		rightW = sizeOf(c).Width
		c.SetBounds(Rect{X: pr.X + pr.Width - rightW, Y: pr.Y + topH, Width: rightW, Height: midH})
	}
	if c := s[BorderCenter]; c != nil {
		c.SetBounds(Rect{
			X:      pr.X + leftW,
			Y:      pr.Y + topH,
			Width:  max(pr.Width-leftW-rightW, 0),
			Height: midH,
		})
	}
}

func (b *Border) Dimensions(p *Panel) Dimensions {
	s := b.slots(p)
	var d Dimensions
	if c := s[BorderLeft]; c != nil {
		d.Width += sizeOf(c).Width
	}
	if c := s[BorderRight]; c != nil {
		d.Width += sizeOf(c).Width
	}
	if c := s[BorderTop]; c != nil {
		d.Height += sizeOf(c).Height
	}
	if c := s[BorderBottom]; c != nil {
		d.Height += sizeOf(c).Height
	}
	if c := s[BorderCenter]; c != nil {
		cd := sizeOf(c)
		d.Width += cd.Width
		d.Height += cd.Height
	}
	return d
}

func (b *Border) AllowsHint(hint string) bool {
	switch hint {
	case BorderTop, BorderBottom, BorderLeft, BorderRight, BorderCenter:
		return true
	}
	return false
}

// Added rejects a second child for an occupied slot.
func (b *Border) Added(p *Panel, c Component, hint string) error {
	for _, ch := range p.children {
		if ch.LayoutHint() == hint {
			return ErrSlotTaken
		}
	}
	return nil
}

func (b *Border) move(p *Panel, dir string, from Component) Focusable {
	key := ""
	if from != nil {
		key = from.LayoutHint()
	}
	s := b.slots(p)
	for _, slot := range borderMoves[dir][key] {
		if c := s[slot]; canFocus(c) {
			return c.(Focusable)
		}
	}
	return nil
}

func (b *Border) Next(p *Panel, from Component) Focusable {
	return b.move(p, ActionMoveRight, from)
}

func (b *Border) Prev(p *Panel, from Component) Focusable {
	return b.move(p, ActionMoveLeft, from)
}

func (b *Border) Up(p *Panel, from Component) Focusable {
	return b.move(p, ActionMoveUp, from)
}

func (b *Border) Down(p *Panel, from Component) Focusable {
	return b.move(p, ActionMoveDown, from)
}
