package viu

// Button is a focusable "[ label ]" that fires OnAction on the base action.
type Button struct {
	Base

	Label      string
	Foreground Color
	Locked     bool

	OnAction func(ActionEvent)

	focused bool
}

var _ Focusable = (*Button)(nil)

// NewButton creates a button with the given label and action.
func NewButton(label string, onAction func(ActionEvent)) *Button {
	return &Button{Label: label, OnAction: onAction}
}

func (b *Button) ComputeDimensions() Dimensions {
	return NewText(b.Label).ComputeDimensions().Add(4, 0)
}

func (b *Button) Print(g Graphics) {
	if !b.Visible() {
		return
	}
	r := b.Bounds()
	s := "[ " + b.Label + " ]"
	if b.focused {
		g.WriteInverted(r.X, r.Y, s, b.Foreground)
		return
	}
	g.WriteColored(r.X, r.Y, s, b.Foreground, ColorDefault)
}

func (b *Button) AcceptInput(ev KeyEvent, g Graphics) bool {
	if !Corresponds(b.InputMap().Compile(), ev, ActionBase) {
		return false
	}
	if b.OnAction != nil {
		b.OnAction(ActionEvent{Source: b, Key: ev, Graphics: g})
	}
	return true
}

func (b *Button) IsFocusable() bool {
	return b.Visible() && !b.Locked
}

// SetFocused repaints only when the state changes.
func (b *Button) SetFocused(focused bool, g Graphics) {
	if b.focused == focused {
		return
	}
	b.focused = focused
	b.Print(g)
}

func (b *Button) IsFocused() bool {
	return b.focused
}
