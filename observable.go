package viu

import "slices"

// Observable is an ordered list that notifies subscribers after every
// structural change. It is not safe for concurrent use; mutate it from the
// event loop (Root.RunLater) when it backs a visible table.
type Observable[T any] struct {
	items     []T
	listeners []func(Change[T])
}

// Change describes one modification to an Observable.
type Change[T any] struct {
	Type ChangeType

	// Index is the first affected position.
	Index int

	// Items are the added, updated or removed values.
	Items []T

	// Indices are the original positions of removed items, ascending.
	Indices []int

	// Old holds the replaced values of an update.
	Old []T
}

type ChangeType int

const (
	ChangeAdd ChangeType = iota
	ChangeUpdate
	ChangeRemove
	ChangeReset
)

func (t ChangeType) String() string {
	switch t {
	case ChangeAdd:
		return "add"
	case ChangeUpdate:
		return "update"
	case ChangeRemove:
		return "remove"
	case ChangeReset:
		return "reset"
	}
	return "unknown"
}

// NewObservable creates a list holding items.
func NewObservable[T any](items ...T) *Observable[T] {
	return &Observable[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (o *Observable[T]) Len() int {
	return len(o.items)
}

// At returns the item at index i, or the zero value if out of bounds.
func (o *Observable[T]) At(i int) T {
	if i < 0 || i >= len(o.items) {
		var zero T
		return zero
	}
	return o.items[i]
}

// Snapshot returns a copy of the items.
func (o *Observable[T]) Snapshot() []T {
	return slices.Clone(o.items)
}

// Append adds items at the end.
func (o *Observable[T]) Append(items ...T) {
	o.Insert(len(o.items), items...)
}

// Insert adds items at index i, clamped to the list bounds.
func (o *Observable[T]) Insert(i int, items ...T) {
	if len(items) == 0 {
		return
	}
	i = clamp(i, 0, len(o.items))
	o.items = slices.Insert(o.items, i, items...)
	o.notify(Change[T]{Type: ChangeAdd, Index: i, Items: slices.Clone(items)})
}

// Set replaces the item at index i.
func (o *Observable[T]) Set(i int, item T) {
	if i < 0 || i >= len(o.items) {
		return
	}
	old := o.items[i]
	o.items[i] = item
	o.notify(Change[T]{Type: ChangeUpdate, Index: i, Items: []T{item}, Old: []T{old}})
}

// RemoveAt removes the item at index i.
func (o *Observable[T]) RemoveAt(i int) {
	if i < 0 || i >= len(o.items) {
		return
	}
	old := o.items[i]
	o.items = slices.Delete(o.items, i, i+1)
	o.notify(Change[T]{Type: ChangeRemove, Index: i, Items: []T{old}, Indices: []int{i}})
}

// RemoveWhere removes every item matching pred in one change and returns
// how many were removed.
func (o *Observable[T]) RemoveWhere(pred func(T) bool) int {
	var removed []T
	var indices []int
	kept := o.items[:0]
	for i, it := range o.items {
		if pred(it) {
			removed = append(removed, it)
			indices = append(indices, i)
			continue
		}
		kept = append(kept, it)
	}
	if len(indices) == 0 {
		return 0
	}
	clear(o.items[len(kept):])
	o.items = kept
	o.notify(Change[T]{Type: ChangeRemove, Index: indices[0], Items: removed, Indices: indices})
	return len(indices)
}

// Reset replaces every item.
func (o *Observable[T]) Reset(items []T) {
	o.items = slices.Clone(items)
	o.notify(Change[T]{Type: ChangeReset})
}

// Clear removes all items.
func (o *Observable[T]) Clear() {
	o.Reset(nil)
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (o *Observable[T]) Subscribe(fn func(Change[T])) func() {
	o.listeners = append(o.listeners, fn)
	idx := len(o.listeners) - 1
	return func() {
		// zero out to allow GC, don't reorder
		o.listeners[idx] = nil
	}
}

func (o *Observable[T]) notify(c Change[T]) {
	for _, fn := range o.listeners {
		if fn != nil {
			fn(c)
		}
	}
}
