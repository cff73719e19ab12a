package viu

import "maps"

// Bindings is a chained key/value lookup. Each component owns two of them
// (inputs and actions) whose parent is the owning container's, so a binding
// put on a container is inherited by everything below it.
type Bindings[K comparable, V any] interface {
	// Get returns the nearest bound value walking up the parent chain.
	Get(k K) (V, bool)

	// Put binds k locally. Parents are never modified.
	Put(k K, v V)

	// Delete drops a local binding, uncovering any inherited one.
	Delete(k K)

	// Compile flattens the chain; local entries win over inherited ones.
	Compile() map[K]V

	Parent() Bindings[K, V]
	SetParent(p Bindings[K, V])
}

// InputMap maps key strokes to the action names they trigger.
type InputMap = Bindings[KeyStroke, string]

// ActionMap maps action names to their effects.
type ActionMap = Bindings[string, Action]

// Dictionary is the plain Bindings implementation: a local map plus a
// non-owning parent pointer.
type Dictionary[K comparable, V any] struct {
	local  map[K]V
	parent Bindings[K, V]
}

var _ Bindings[string, int] = (*Dictionary[string, int])(nil)

// NewDictionary creates an empty dictionary with no parent.
func NewDictionary[K comparable, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{local: make(map[K]V)}
}

func (d *Dictionary[K, V]) Get(k K) (V, bool) {
	if v, ok := d.local[k]; ok {
		return v, true
	}
	if d.parent != nil {
		return d.parent.Get(k)
	}
	var zero V
	return zero, false
}

// Local returns the value bound directly on d, ignoring parents.
func (d *Dictionary[K, V]) Local(k K) (V, bool) {
	v, ok := d.local[k]
	return v, ok
}

func (d *Dictionary[K, V]) Put(k K, v V) {
	d.local[k] = v
}

func (d *Dictionary[K, V]) Delete(k K) {
	delete(d.local, k)
}

func (d *Dictionary[K, V]) Compile() map[K]V {
	var out map[K]V
	if d.parent != nil {
		out = d.parent.Compile()
	} else {
		out = make(map[K]V, len(d.local))
	}
	maps.Copy(out, d.local)
	return out
}

// Len returns the number of local entries.
func (d *Dictionary[K, V]) Len() int {
	return len(d.local)
}

func (d *Dictionary[K, V]) Parent() Bindings[K, V] {
	return d.parent
}

func (d *Dictionary[K, V]) SetParent(p Bindings[K, V]) {
	d.parent = p
}

// SwapDictionary layers a replaceable add-in over a backing dictionary. The
// add-in is consulted first; writes and the parent chain belong to the
// backing dictionary, so swapping the add-in never disturbs inheritance.
type SwapDictionary[K comparable, V any] struct {
	backing Bindings[K, V]
	addin   *Dictionary[K, V]
}

var _ Bindings[string, int] = (*SwapDictionary[string, int])(nil)

// NewSwapDictionary wraps backing. A nil backing gets a fresh Dictionary.
func NewSwapDictionary[K comparable, V any](backing Bindings[K, V]) *SwapDictionary[K, V] {
	if backing == nil {
		backing = NewDictionary[K, V]()
	}
	return &SwapDictionary[K, V]{backing: backing}
}

// Swap replaces the add-in layer. Pass nil to remove it. Only the add-in's
// local entries are used; its own parent is ignored.
func (s *SwapDictionary[K, V]) Swap(addin *Dictionary[K, V]) {
	s.addin = addin
}

// AddIn returns the current add-in layer, or nil.
func (s *SwapDictionary[K, V]) AddIn() *Dictionary[K, V] {
	return s.addin
}

func (s *SwapDictionary[K, V]) Get(k K) (V, bool) {
	if s.addin != nil {
		if v, ok := s.addin.Local(k); ok {
			return v, true
		}
	}
	return s.backing.Get(k)
}

func (s *SwapDictionary[K, V]) Put(k K, v V) {
	s.backing.Put(k, v)
}

func (s *SwapDictionary[K, V]) Delete(k K) {
	s.backing.Delete(k)
}

func (s *SwapDictionary[K, V]) Compile() map[K]V {
	out := s.backing.Compile()
	if s.addin != nil {
		maps.Copy(out, s.addin.local)
	}
	return out
}

func (s *SwapDictionary[K, V]) Parent() Bindings[K, V] {
	return s.backing.Parent()
}

func (s *SwapDictionary[K, V]) SetParent(p Bindings[K, V]) {
	s.backing.SetParent(p)
}
