package sedes

// NewByteVector builds a fixed-length vector sedes over raw bytes, the
// `Vector[uint8, n]`/`ByteVector(n)` shape used throughout SSZ.
func NewByteVector(length int) BasicVector[byte] {
	return NewBasicVector[byte](length, 1, Uint8)
}

// NewByteList builds a resizable list sedes over raw bytes, reserving
// capacity for up to maxLength bytes.
func NewByteList(maxLength int) BasicList[byte] {
	return NewBasicList[byte](maxLength, 1, Uint8)
}

// NewUint128Vector builds a fixed-length vector sedes over 16-byte
// little-endian values.
func NewUint128Vector(length int) BasicVector[Uint128] {
	return NewBasicVector[Uint128](length, 16, EncodeUint128)
}

// NewUint128List builds a resizable list sedes over 16-byte little-endian
// values.
func NewUint128List(maxLength int) BasicList[Uint128] {
	return NewBasicList[Uint128](maxLength, 16, EncodeUint128)
}
