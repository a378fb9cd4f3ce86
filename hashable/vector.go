package hashable

import (
	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree"
)

// Vector is a fixed-length HashableStructure whose root is its raw root
// with no length mixing.
type Vector[T any] struct {
	HashableStructure[T]
	sedes hashssz.VectorSedes[T]
}

// NewVector builds a Vector from elements, failing with ErrLengthMismatch
// if len(elements) != sedes.Length().
func NewVector[T any](elements []T, sedes hashssz.VectorSedes[T]) (Vector[T], error) {
	if len(elements) != sedes.Length() {
		return Vector[T]{}, hashssz.NewErrLengthMismatch(sedes.Length(), len(elements))
	}
	base, err := FromIterable[T](elements, sedes)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{HashableStructure: base, sedes: sedes}, nil
}

// Root returns the vector's hash-tree-root, identical to RawRoot (fixed
// length needs no length mixing).
func (v Vector[T]) Root() merkletree.Chunk {
	return v.RawRoot()
}

// Set replaces the element at index and returns a new Vector.
func (v Vector[T]) Set(index int, value T) (Vector[T], error) {
	base, err := v.HashableStructure.Set(index, value)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{HashableStructure: base, sedes: v.sedes}, nil
}

// Mset batch-sets (index, value) pairs and returns a new Vector.
func (v Vector[T]) Mset(args ...any) (Vector[T], error) {
	base, err := v.HashableStructure.Mset(args...)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{HashableStructure: base, sedes: v.sedes}, nil
}
