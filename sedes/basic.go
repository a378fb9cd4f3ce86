// Package sedes provides concrete Sedes implementations exercising the
// hashssz.Sedes contract end to end: basic little-endian numeric/boolean
// encodings packed many-per-chunk, and composite encodings (one chunk per
// element) for nested hashable values.
package sedes

import (
	"encoding/binary"

	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree"
)

// Encoder turns an element into its fixed-width little-endian leaf bytes.
type Encoder[T any] func(T) []byte

func chunkCountFor(count, elementSize int) int {
	return (count*elementSize + merkletree.CHUNK_SIZE - 1) / merkletree.CHUNK_SIZE
}

// BasicVector is a fixed-length Sedes for basic (sub-chunk) element types,
// packing `length` elements of `elementSize` bytes each into
// ceil(length*elementSize/32) chunks.
type BasicVector[T any] struct {
	length      int
	elementSize int
	encode      Encoder[T]
}

// NewBasicVector builds a BasicVector sedes for length elements encoded by
// encode into elementSize-byte leaves.
func NewBasicVector[T any](length, elementSize int, encode Encoder[T]) BasicVector[T] {
	return BasicVector[T]{length: length, elementSize: elementSize, encode: encode}
}

func (v BasicVector[T]) SerializeLeaf(_ int, element T) ([]byte, error) {
	return v.encode(element), nil
}

func (v BasicVector[T]) ElementSize() int { return v.elementSize }
func (v BasicVector[T]) ChunkCount() int  { return chunkCountFor(v.length, v.elementSize) }
func (v BasicVector[T]) Length() int      { return v.length }

// BasicList is a resizable Sedes for basic element types, reserving
// capacity for up to maxLength elements.
type BasicList[T any] struct {
	maxLength   int
	elementSize int
	encode      Encoder[T]
}

// NewBasicList builds a BasicList sedes reserving capacity for maxLength
// elements encoded by encode into elementSize-byte leaves.
func NewBasicList[T any](maxLength, elementSize int, encode Encoder[T]) BasicList[T] {
	return BasicList[T]{maxLength: maxLength, elementSize: elementSize, encode: encode}
}

func (l BasicList[T]) SerializeLeaf(_ int, element T) ([]byte, error) {
	return l.encode(element), nil
}

func (l BasicList[T]) ElementSize() int { return l.elementSize }
func (l BasicList[T]) ChunkCount() int  { return chunkCountFor(l.maxLength, l.elementSize) }
func (l BasicList[T]) MaxLength() int   { return l.maxLength }

// Uint8 encodes a uint8 as its single byte.
func Uint8(v uint8) []byte { return []byte{v} }

// Bool encodes a bool as a single 0x00/0x01 byte.
func Bool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// Uint16 little-endian encodes a uint16.
func Uint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// Uint32 little-endian encodes a uint32.
func Uint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// Uint64 little-endian encodes a uint64.
func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// Uint128 is a 16-byte little-endian value with no native Go integer type.
type Uint128 [16]byte

// EncodeUint128 returns the 16 raw little-endian bytes of a Uint128.
func EncodeUint128(v Uint128) []byte {
	out := make([]byte, 16)
	copy(out, v[:])
	return out
}
