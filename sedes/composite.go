package sedes

import "github.com/lodestonelabs/hashssz"

// CompositeVector is a fixed-length Sedes for composite element types:
// each element contributes exactly one 32-byte chunk, its own
// hash-tree-root.
//
// A fixed-field Container falls out of this directly: treat each field's
// already-computed HashTreeRoot as one CompositeVector element (wrap it in
// hashssz.Prehash if it has no natural HashableSSZ type of its own) and
// build a hashable.Vector[hashssz.HashableSSZ] of length == field count.
// Every get/set/evolver capability the core provides for vectors then
// applies to containers for free, without a bespoke struct-tag schema.
type CompositeVector[T hashssz.HashableSSZ] struct {
	length int
}

// NewCompositeVector builds a CompositeVector sedes for length
// one-chunk-per-element composite values.
func NewCompositeVector[T hashssz.HashableSSZ](length int) CompositeVector[T] {
	return CompositeVector[T]{length: length}
}

func (v CompositeVector[T]) SerializeLeaf(_ int, element T) ([]byte, error) {
	root, err := element.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	return root[:], nil
}

func (v CompositeVector[T]) ElementSize() int { return 32 }
func (v CompositeVector[T]) ChunkCount() int  { return v.length }
func (v CompositeVector[T]) Length() int      { return v.length }

// CompositeList is a resizable Sedes for composite element types,
// reserving capacity for up to maxLength one-chunk-per-element values.
type CompositeList[T hashssz.HashableSSZ] struct {
	maxLength int
}

// NewCompositeList builds a CompositeList sedes reserving capacity for
// maxLength composite elements.
func NewCompositeList[T hashssz.HashableSSZ](maxLength int) CompositeList[T] {
	return CompositeList[T]{maxLength: maxLength}
}

func (l CompositeList[T]) SerializeLeaf(_ int, element T) ([]byte, error) {
	root, err := element.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	return root[:], nil
}

func (l CompositeList[T]) ElementSize() int { return 32 }
func (l CompositeList[T]) ChunkCount() int  { return l.maxLength }
func (l CompositeList[T]) MaxLength() int   { return l.maxLength }
