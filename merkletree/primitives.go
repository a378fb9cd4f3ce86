package merkletree

import (
	"encoding/binary"

	"github.com/lodestonelabs/hashssz/merkletree/bufpool"
)

// Uint64Root returns the little-endian chunk encoding of val, used for
// length mixing.
func Uint64Root(val uint64) (root Chunk) {
	binary.LittleEndian.PutUint64(root[:], val)
	return root
}

// MixInLength computes H(root || le256(length)), the SSZ list length-mixing
// rule.
func MixInLength(root Chunk, length uint64) Chunk {
	lengthRoot := Uint64Root(length)
	return Sha256(root[:], lengthRoot[:])
}

// PackBytes packs an arbitrary byte slice into zero-padded 32-byte chunks.
// Used by BytesRoot.
func PackBytes(data []byte) []Chunk {
	numChunks := ceilDiv(len(data), CHUNK_SIZE)
	if numChunks == 0 {
		numChunks = 1
	}
	buf := bufpool.Get(numChunks * CHUNK_SIZE)
	defer bufpool.Put(buf)
	copy(buf.B, data)

	out := make([]Chunk, numChunks)
	for i := range out {
		copy(out[i][:], buf.B[i*CHUNK_SIZE:(i+1)*CHUNK_SIZE])
	}
	return out
}

// BytesRoot returns the hash-tree-root of an arbitrary byte slice treated
// as a fixed-size byte vector: pack into chunks and merkleize with no
// length mixing.
func BytesRoot(b []byte) (Chunk, error) {
	chunks := PackBytes(b)
	t, err := Compute(chunks, len(chunks))
	if err != nil {
		return Chunk{}, err
	}
	return t.Root(), nil
}
