package viu

import "slices"

// Standard input mode names.
const (
	ModeNavigate = "NAV"
	ModeSearch   = "SEA"
	ModeCommand  = "COM"
)

// Keyed is implemented by components whose input map can be replaced. Base
// and BaseContainer both qualify.
type Keyed interface {
	InputMap() InputMap
	SetInputMap(m InputMap)
}

// Modes switches between named binding sets layered over a component's
// input map. The navigate mode has no layer of its own; every other mode
// overrides strokes for the component and everything below it.
type Modes struct {
	swap    *SwapDictionary[KeyStroke, string]
	layers  map[string]*Dictionary[KeyStroke, string]
	current string

	// OnSwitch runs after the mode changes.
	OnSwitch func(from, to string)
}

// NewModes wraps host's input map so modes can be swapped over it.
func NewModes(host Keyed) *Modes {
	swap := NewSwapDictionary(host.InputMap())
	host.SetInputMap(swap)
	return &Modes{
		swap:    swap,
		layers:  make(map[string]*Dictionary[KeyStroke, string]),
		current: ModeNavigate,
	}
}

// Define returns the binding layer for name, creating it on first use.
func (m *Modes) Define(name string) *Dictionary[KeyStroke, string] {
	if d, ok := m.layers[name]; ok {
		return d
	}
	d := NewDictionary[KeyStroke, string]()
	m.layers[name] = d
	return d
}

// Switch activates name and reports whether it is known. ModeNavigate is
// always known.
func (m *Modes) Switch(name string) bool {
	layer, ok := m.layers[name]
	if !ok && name != ModeNavigate {
		return false
	}
	if name == m.current {
		return true
	}
	prev := m.current
	m.swap.Swap(layer)
	m.current = name
	if m.OnSwitch != nil {
		m.OnSwitch(prev, name)
	}
	return true
}

// Current returns the active mode name.
func (m *Modes) Current() string {
	return m.current
}

// Names returns the defined modes, navigate first.
func (m *Modes) Names() []string {
	names := []string{ModeNavigate}
	for name := range m.layers {
		if name != ModeNavigate {
			names = append(names, name)
		}
	}
	slices.Sort(names[1:])
	return names
}
