package sedes

import "github.com/holiman/uint256"

// EncodeUint256 little-endian encodes a uint256.Int into a 32-byte SSZ
// leaf. holiman/uint256's Bytes32 returns a big-endian representation (its
// native go-ethereum convention), so the bytes are reversed to match SSZ's
// little-endian basic-type encoding.
func EncodeUint256(v uint256.Int) []byte {
	be := v.Bytes32()
	out := make([]byte, 32)
	for i := range out {
		out[i] = be[31-i]
	}
	return out
}

// NewUint256Vector builds a fixed-length vector sedes over uint256.Int
// (32-byte elements, one per chunk).
func NewUint256Vector(length int) BasicVector[uint256.Int] {
	return NewBasicVector[uint256.Int](length, 32, EncodeUint256)
}

// NewUint256List builds a resizable list sedes over uint256.Int.
func NewUint256List(maxLength int) BasicList[uint256.Int] {
	return NewBasicList[uint256.Int](maxLength, 32, EncodeUint256)
}
