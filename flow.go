package viu

// Flow places children left to right on one row. A child overflowing the
// row wraps to a new row when Wrap is set, otherwise it is cut to the
// remaining width. A child that starts at the row origin never wraps; it is
// narrowed to the panel width instead.
type Flow struct {
	noState

	Wrap bool
	HGap int
	VGap int
}

var _ LayoutStrategy = (*Flow)(nil)

func (f *Flow) Layout(p *Panel) {
	pr := p.Bounds()
	x, y := pr.X, pr.Y
	rowH := 0

	for _, c := range visibleChildren(p) {
		d := sizeOf(c)
		w, h := d.Width, d.Height

		if x+w > pr.X+pr.Width {
			switch {
			case x == pr.X:
				w = pr.Width
			case f.Wrap:
				y += rowH + f.VGap
				x, rowH = pr.X, 0
				w = min(w, pr.Width)
			default:
				w = max(pr.X+pr.Width-x, 0)
			}
		}

		c.SetBounds(Rect{X: x, Y: y, Width: w, Height: h})
		rowH = max(rowH, h)
		x += w + f.HGap
	}
}

func (f *Flow) Dimensions(p *Panel) Dimensions {
	limit := p.Bounds().Width
	totalW, totalH := 0, 0
	rowW, rowH := 0, 0

	for _, c := range visibleChildren(p) {
		d := sizeOf(c)
		if f.Wrap && rowW > 0 && rowW+d.Width > limit {
			totalH += rowH + f.VGap
			totalW = max(totalW, rowW-f.HGap)
			rowW, rowH = d.Width+f.HGap, d.Height
			continue
		}
		rowH = max(rowH, d.Height)
		rowW += d.Width + f.HGap
	}

	return Dimensions{Width: max(totalW, rowW-f.HGap, 0), Height: totalH + rowH}
}

func (f *Flow) AllowsHint(hint string) bool {
	return hint == ""
}

func (f *Flow) Next(p *Panel, from Component) Focusable {
	return focusableAfter(p, from)
}

func (f *Flow) Prev(p *Panel, from Component) Focusable {
	return focusableBefore(p, from)
}

// Up only enters the row; it never moves within it.
func (f *Flow) Up(p *Panel, from Component) Focusable {
	if from != nil {
		return nil
	}
	return focusableBefore(p, nil)
}

// Down only enters the row; it never moves within it.
func (f *Flow) Down(p *Panel, from Component) Focusable {
	if from != nil {
		return nil
	}
	return focusableAfter(p, nil)
}
