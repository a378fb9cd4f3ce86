package merkletree_test

import (
	"testing"

	"github.com/lodestonelabs/hashssz/merkletree"
	"github.com/stretchr/testify/require"
)

func TestGetDepthNonPowerOfTwo(t *testing.T) {
	// a chunk count of 3 (e.g. 5 packed uint128 elements) needs depth 2,
	// not depth 1, since 3 sits strictly between 2^1 and 2^2 leaf slots.
	require.Equal(t, uint8(0), merkletree.GetDepth(0))
	require.Equal(t, uint8(0), merkletree.GetDepth(1))
	require.Equal(t, uint8(1), merkletree.GetDepth(2))
	require.Equal(t, uint8(2), merkletree.GetDepth(3))
	require.Equal(t, uint8(2), merkletree.GetDepth(4))
	require.Equal(t, uint8(3), merkletree.GetDepth(5))
}

func TestNextPowerOfTwo(t *testing.T) {
	require.Equal(t, uint64(1), merkletree.NextPowerOfTwo(0))
	require.Equal(t, uint64(1), merkletree.NextPowerOfTwo(1))
	require.Equal(t, uint64(4), merkletree.NextPowerOfTwo(3))
	require.Equal(t, uint64(8), merkletree.NextPowerOfTwo(8))
}

func TestIsPowerOf2(t *testing.T) {
	require.False(t, merkletree.IsPowerOf2(0))
	require.True(t, merkletree.IsPowerOf2(1))
	require.True(t, merkletree.IsPowerOf2(8))
	require.False(t, merkletree.IsPowerOf2(3))
}
