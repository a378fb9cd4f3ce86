package merkletree_test

import (
	"testing"

	"github.com/lodestonelabs/hashssz/merkletree"
	"github.com/stretchr/testify/require"
)

func chunkFrom(b ...byte) merkletree.Chunk {
	var c merkletree.Chunk
	copy(c[:], b)
	return c
}

func TestUpdateElementInChunk(t *testing.T) {
	original := chunkFrom([]byte("aabbcc")...)
	updated, err := merkletree.UpdateElementInChunk(original, 1, []byte("xx"))
	require.NoError(t, err)
	require.Equal(t, chunkFrom([]byte("aaxxcc")...), updated)
}

func TestUpdateElementInChunkErrors(t *testing.T) {
	var chunk merkletree.Chunk

	_, err := merkletree.UpdateElementInChunk(chunk, 0, nil)
	require.Error(t, err)

	_, err = merkletree.UpdateElementInChunk(chunk, 0, []byte{1, 2, 3})
	require.Error(t, err) // 3 is not a divisor of 32

	_, err = merkletree.UpdateElementInChunk(chunk, 16, []byte{1, 2})
	require.Error(t, err) // 32/2 == 16 slots, so index 16 is out of range
}

func TestGetNumPaddingElements(t *testing.T) {
	require.Equal(t, 0, merkletree.GetNumPaddingElements(1, 2, 16))
	require.Equal(t, 1, merkletree.GetNumPaddingElements(1, 1, 16))
	require.Equal(t, 2, merkletree.GetNumPaddingElements(1, 0, 16))
}

func TestGetUpdatedChunksEmptyChangeset(t *testing.T) {
	out, err := merkletree.GetUpdatedChunks(nil, nil, nil, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGetAppendedChunksPadsLastGroup(t *testing.T) {
	a := make([]byte, 16)
	for i := range a {
		a[i] = 0xaa
	}
	chunks := merkletree.GetAppendedChunks([][]byte{a}, 0)
	require.Len(t, chunks, 1)
	require.Equal(t, a, chunks[0][:16])
	require.Equal(t, make([]byte, 16), chunks[0][16:])
}

func TestGetAppendedChunksDropsPaddingPrefix(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	for i := range a {
		a[i] = 0xaa
		b[i] = 0xbb
	}
	// one element worth of padding was already consumed elsewhere
	chunks := merkletree.GetAppendedChunks([][]byte{a, b}, 1)
	require.Len(t, chunks, 1)
	require.Equal(t, b, chunks[0][:16])
}
