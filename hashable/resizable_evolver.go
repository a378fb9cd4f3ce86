package hashable

import "github.com/lodestonelabs/hashssz"

// ResizableEvolver is the capability-extended Evolver used by resizable
// structures (List): in addition to in-range Set, it accepts Append/Extend
// and permits Set to target the staged appended tail. Modeled as a sibling
// type rather than an embedded override, since Set's bounds check genuinely
// differs.
type ResizableEvolver[T any] struct {
	original HashableStructure[T]
	updated  map[int]T
	appended []T
}

// Get returns updated[index] if staged, else the original element, else
// the staged appended element at index - len(original) if within the
// appended tail.
func (e *ResizableEvolver[T]) Get(index int) (T, error) {
	if v, ok := e.updated[index]; ok {
		return v, nil
	}
	if index >= 0 && index < e.original.Len() {
		return e.original.Get(index)
	}
	tailIndex := index - e.original.Len()
	if tailIndex >= 0 && tailIndex < len(e.appended) {
		return e.appended[tailIndex], nil
	}
	var zero T
	return zero, hashssz.NewErrIndexOutOfRange(index, e.original.Len()+len(e.appended))
}

// Set stages index to v. Unlike the base Evolver, a resizable evolver also
// accepts indices within the staged appended tail.
func (e *ResizableEvolver[T]) Set(index int, v T) error {
	if index < 0 || index >= e.original.Len()+len(e.appended) {
		return hashssz.NewErrIndexOutOfRange(index, e.original.Len()+len(e.appended))
	}
	if index < e.original.Len() {
		e.updated[index] = v
	} else {
		e.appended[index-e.original.Len()] = v
	}
	return nil
}

// Append stages a single element to be appended.
func (e *ResizableEvolver[T]) Append(v T) {
	e.appended = append(e.appended, v)
}

// Extend stages a sequence of elements to be appended, in order.
func (e *ResizableEvolver[T]) Extend(values []T) {
	e.appended = append(e.appended, values...)
}

// IsDirty reports whether any edit or append has been staged.
func (e *ResizableEvolver[T]) IsDirty() bool {
	return len(e.updated) > 0 || len(e.appended) > 0
}

// Persistent materializes the staged edits and appends into a new
// HashableStructure, or returns the original unchanged if nothing was
// staged.
func (e *ResizableEvolver[T]) Persistent() (HashableStructure[T], error) {
	if !e.IsDirty() {
		return e.original, nil
	}
	return materialize(e.original, e.updated, e.appended)
}
