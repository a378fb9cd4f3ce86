package hashable

import (
	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree"
)

// List is a resizable HashableStructure whose root mixes in its current
// length.
type List[T any] struct {
	HashableStructure[T]
	sedes hashssz.ListSedes[T]
}

// NewList builds a List from elements against sedes.
func NewList[T any](elements []T, sedes hashssz.ListSedes[T]) (List[T], error) {
	base, err := FromIterable[T](elements, sedes)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{HashableStructure: base, sedes: sedes}, nil
}

// Root returns H(raw_root || le256(len)), the SSZ length-mixing rule.
func (l List[T]) Root() merkletree.Chunk {
	return merkletree.MixInLength(l.RawRoot(), uint64(l.Len()))
}

// Evolver returns a resizable batched edit accumulator rooted at this
// list, shadowing HashableStructure.Evolver with the Append/Extend
// capability extension.
func (l List[T]) Evolver() *ResizableEvolver[T] {
	return &ResizableEvolver[T]{original: l.HashableStructure, updated: make(map[int]T)}
}

func (l List[T]) rewrap(base HashableStructure[T], err error) (List[T], error) {
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{HashableStructure: base, sedes: l.sedes}, nil
}

// Set replaces the element at index and returns a new List.
func (l List[T]) Set(index int, value T) (List[T], error) {
	return l.rewrap(l.HashableStructure.Set(index, value))
}

// Mset batch-sets (index, value) pairs and returns a new List.
func (l List[T]) Mset(args ...any) (List[T], error) {
	return l.rewrap(l.HashableStructure.Mset(args...))
}

// Append appends a single value and returns a new List.
func (l List[T]) Append(value T) (List[T], error) {
	e := l.Evolver()
	e.Append(value)
	return l.rewrap(e.Persistent())
}

// Extend appends a sequence of values and returns a new List.
func (l List[T]) Extend(values []T) (List[T], error) {
	e := l.Evolver()
	e.Extend(values)
	return l.rewrap(e.Persistent())
}

// Concat appends the elements of another iterable and returns a new List.
func (l List[T]) Concat(values []T) (List[T], error) {
	return l.Extend(values)
}

// Repeat returns n concatenated copies of the list: n<=0 is an
// ArgumentError, n==1 returns the receiver unchanged, and n>1 is defined
// inductively as l.Repeat(n-1).Concat(l), i.e. exactly n copies of the
// original elements in order.
func (l List[T]) Repeat(n int) (List[T], error) {
	if n <= 0 {
		return List[T]{}, hashssz.NewErrArgumentError("repeat factor must be positive, got %d", n)
	}
	if n == 1 {
		return l, nil
	}
	prev, err := l.Repeat(n - 1)
	if err != nil {
		return List[T]{}, err
	}
	return prev.Concat(l.All())
}
