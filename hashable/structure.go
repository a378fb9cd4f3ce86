// Package hashable implements the immutable HashableStructure, its batched
// Evolver, and the Vector/List root-finalization wrappers.
package hashable

import (
	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree"
)

// HashableStructure is the immutable tuple (elements, hash tree, sedes).
// Every mutating operation returns a new HashableStructure sharing its
// unchanged hash-tree nodes with the receiver; the receiver itself is
// never modified.
type HashableStructure[T any] struct {
	elements []T
	tree     merkletree.HashTree
	sedes    hashssz.Sedes[T]
}

// FromIterable consumes elements into a persistent sequence, serializes
// each to leaf bytes via sedes, packs them into chunks, and builds the
// backing HashTree. The initial build always uses zero padding elements,
// since there is no pre-existing chunk vector to spill into.
func FromIterable[T any](elements []T, sedes hashssz.Sedes[T]) (HashableStructure[T], error) {
	owned := append([]T(nil), elements...)

	leaves := make([][]byte, len(owned))
	for i, e := range owned {
		b, err := sedes.SerializeLeaf(i, e)
		if err != nil {
			return HashableStructure[T]{}, err
		}
		leaves[i] = b
	}

	chunks := merkletree.GetAppendedChunks(leaves, 0)
	tree, err := merkletree.Compute(chunks, sedes.ChunkCount())
	if err != nil {
		return HashableStructure[T]{}, err
	}
	return HashableStructure[T]{elements: owned, tree: tree, sedes: sedes}, nil
}

// Len returns the number of elements.
func (s HashableStructure[T]) Len() int {
	return len(s.elements)
}

// Get returns the element at index.
func (s HashableStructure[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.elements) {
		return zero, hashssz.NewErrIndexOutOfRange(index, len(s.elements))
	}
	return s.elements[index], nil
}

// All returns a defensive copy of the element sequence.
func (s HashableStructure[T]) All() []T {
	return append([]T(nil), s.elements...)
}

// RawRoot returns the backing hash tree's root, with no length mixing.
func (s HashableStructure[T]) RawRoot() merkletree.Chunk {
	return s.tree.Root()
}

// Chunks returns the ordered sequence of backing tree leaves.
func (s HashableStructure[T]) Chunks() []merkletree.Chunk {
	return s.tree.Chunks()
}

// HashTree returns the backing persistent Merkle tree.
func (s HashableStructure[T]) HashTree() merkletree.HashTree {
	return s.tree
}

// Sedes returns the element schema this structure was built with.
func (s HashableStructure[T]) Sedes() hashssz.Sedes[T] {
	return s.sedes
}

// Set replaces the element at index, returning a new structure. A
// convenience over Evolver.
func (s HashableStructure[T]) Set(index int, value T) (HashableStructure[T], error) {
	e := s.Evolver()
	if err := e.Set(index, value); err != nil {
		return HashableStructure[T]{}, err
	}
	return e.Persistent()
}

// Mset batch-sets (index, value) pairs given as an alternating variadic
// list. An odd number of arguments is an ArgumentError.
func (s HashableStructure[T]) Mset(args ...any) (HashableStructure[T], error) {
	if len(args)%2 != 0 {
		return HashableStructure[T]{}, hashssz.NewErrArgumentError("mset requires an even number of arguments, got %d", len(args))
	}
	e := s.Evolver()
	for i := 0; i < len(args); i += 2 {
		index, ok := args[i].(int)
		if !ok {
			return HashableStructure[T]{}, hashssz.NewErrArgumentError("mset argument %d must be an int index, got %T", i, args[i])
		}
		value, ok := args[i+1].(T)
		if !ok {
			return HashableStructure[T]{}, hashssz.NewErrArgumentError("mset argument %d has the wrong element type %T", i+1, args[i+1])
		}
		if err := e.Set(index, value); err != nil {
			return HashableStructure[T]{}, err
		}
	}
	return e.Persistent()
}

// Evolver returns a batched edit accumulator rooted at this structure.
func (s HashableStructure[T]) Evolver() *Evolver[T] {
	return &Evolver[T]{original: s, updated: make(map[int]T)}
}
