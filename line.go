package viu

// Orientation is the stacking axis of a Line.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Line stacks children along one axis and stretches them across the other.
// Vertical lines move focus with up/down, horizontal ones with left/right.
type Line struct {
	noState

	Orientation Orientation
	Gap         int

	// Centered places the stack in the middle of the main axis.
	Centered bool
}

var _ LayoutStrategy = (*Line)(nil)

func (l *Line) Layout(p *Panel) {
	pr := p.Bounds()
	children := visibleChildren(p)
	sizes := make([]Dimensions, len(children))
	for i, c := range children {
		sizes[i] = sizeOf(c)
	}
	req := l.required(sizes)

	x, y := pr.X, pr.Y
	if l.Centered {
		if l.Orientation == Vertical {
			y += (pr.Height - req) / 2
		} else {
			x += (pr.Width - req) / 2
		}
	}

	for i, c := range children {
		if l.Orientation == Vertical {
			h := sizes[i].Height
			c.SetBounds(Rect{X: x, Y: y, Width: pr.Width, Height: h})
			y += h + l.Gap
		} else {
			w := sizes[i].Width
			c.SetBounds(Rect{X: x, Y: y, Width: w, Height: pr.Height})
			x += w + l.Gap
		}
	}
}

// required is the main-axis length of the stack, gaps included.
func (l *Line) required(sizes []Dimensions) int {
	if len(sizes) == 0 {
		return 0
	}
	total := l.Gap * (len(sizes) - 1)
	for _, d := range sizes {
		if l.Orientation == Vertical {
			total += d.Height
		} else {
			total += d.Width
		}
	}
	return total
}

func (l *Line) Dimensions(p *Panel) Dimensions {
	pr := p.Bounds()
	children := visibleChildren(p)
	sizes := make([]Dimensions, len(children))
	cross := 0
	for i, c := range children {
		sizes[i] = sizeOf(c)
		if l.Orientation == Vertical {
			cross = max(cross, sizes[i].Width)
		} else {
			cross = max(cross, sizes[i].Height)
		}
	}
	main := l.required(sizes)

	if l.Orientation == Vertical {
		if l.Centered {
			main = max(main, pr.Height)
		}
		return Dimensions{Width: cross, Height: main}
	}
	if l.Centered {
		main = max(main, pr.Width)
	}
	return Dimensions{Width: main, Height: cross}
}

func (l *Line) AllowsHint(hint string) bool {
	return hint == ""
}

func (l *Line) Up(p *Panel, from Component) Focusable {
	if l.Orientation != Vertical {
		return nil
	}
	return focusableBefore(p, from)
}

func (l *Line) Down(p *Panel, from Component) Focusable {
	if l.Orientation != Vertical {
		return nil
	}
	return focusableAfter(p, from)
}

func (l *Line) Prev(p *Panel, from Component) Focusable {
	if l.Orientation != Horizontal {
		return nil
	}
	return focusableBefore(p, from)
}

func (l *Line) Next(p *Panel, from Component) Focusable {
	if l.Orientation != Horizontal {
		return nil
	}
	return focusableAfter(p, from)
}
