package viu

// Separator draws a line across its bounds.
type Separator struct {
	Base

	Orientation Orientation
	Style       LineStyle
	Foreground  Color
}

// NewSeparator creates a simple separator along o.
func NewSeparator(o Orientation) *Separator {
	return &Separator{Orientation: o, Style: LineSimple}
}

func (s *Separator) ComputeDimensions() Dimensions {
	return Dimensions{Width: 1, Height: 1}
}

func (s *Separator) Print(g Graphics) {
	if !s.Visible() {
		return
	}
	r := s.Bounds()
	if s.Orientation == Vertical {
		for y := r.Y; y < r.Y+r.Height; y++ {
			g.WriteColored(r.X, y, string(s.Style.Vertical), s.Foreground, ColorDefault)
		}
		return
	}
	g.WriteColored(r.X, r.Y, s.Style.hline(r.Width), s.Foreground, ColorDefault)
}
