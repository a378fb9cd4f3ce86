package hashable_test

import (
	"testing"

	"github.com/lodestonelabs/hashssz/hashable"
	"github.com/lodestonelabs/hashssz/merkletree"
	"github.com/lodestonelabs/hashssz/sedes"
	"github.com/stretchr/testify/require"
)

func u128(tag byte) sedes.Uint128 {
	var v sedes.Uint128
	v[0] = tag
	return v
}

var (
	elemA = u128(1)
	elemB = u128(2)
	elemC = u128(3)
	elemD = u128(4)
	elemE = u128(5)
)

func TestVectorRootSingleChunkNoHashing(t *testing.T) {
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB}, sedes.NewUint128Vector(2))
	require.NoError(t, err)

	var want merkletree.Chunk
	copy(want[:16], sedes.EncodeUint128(elemA))
	copy(want[16:], sedes.EncodeUint128(elemB))
	require.Equal(t, want, v.Root())
}

func TestVectorRootDepthTwoPaddedLeaf(t *testing.T) {
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB, elemC, elemD, elemE}, sedes.NewUint128Vector(5))
	require.NoError(t, err)

	chunk0 := merkletree.Chunk{}
	copy(chunk0[:16], sedes.EncodeUint128(elemA))
	copy(chunk0[16:], sedes.EncodeUint128(elemB))
	chunk1 := merkletree.Chunk{}
	copy(chunk1[:16], sedes.EncodeUint128(elemC))
	copy(chunk1[16:], sedes.EncodeUint128(elemD))
	chunk2 := merkletree.Chunk{}
	copy(chunk2[:16], sedes.EncodeUint128(elemE))

	left := merkletree.Sha256(chunk0[:], chunk1[:])
	right := merkletree.Sha256(chunk2[:], merkletree.ZeroChunk[:])
	want := merkletree.Sha256(left[:], right[:])
	require.Equal(t, want, v.Root())
}

func TestNewVectorRejectsLengthMismatch(t *testing.T) {
	_, err := hashable.NewVector([]sedes.Uint128{elemA}, sedes.NewUint128Vector(2))
	require.Error(t, err)
}

func TestListRootMixesLengthOverZeroPaddedRaw(t *testing.T) {
	l, err := hashable.NewList([]sedes.Uint128{elemA, elemB}, sedes.NewUint128List(4))
	require.NoError(t, err)

	chunk0 := merkletree.Chunk{}
	copy(chunk0[:16], sedes.EncodeUint128(elemA))
	copy(chunk0[16:], sedes.EncodeUint128(elemB))
	rawRoot := merkletree.Sha256(chunk0[:], merkletree.ZeroChunk[:])
	wantRoot := merkletree.MixInLength(rawRoot, 2)

	require.Equal(t, rawRoot, l.RawRoot())
	require.Equal(t, wantRoot, l.Root())
}

func TestListAppendMatchesFromIterable(t *testing.T) {
	sed := sedes.NewUint128List(4)

	built, err := hashable.NewList([]sedes.Uint128{elemA, elemB}, sed)
	require.NoError(t, err)

	grown, err := hashable.NewList([]sedes.Uint128(nil), sed)
	require.NoError(t, err)
	grown, err = grown.Append(elemA)
	require.NoError(t, err)
	grown, err = grown.Append(elemB)
	require.NoError(t, err)

	require.Equal(t, built.Root(), grown.Root())
	require.Equal(t, []sedes.Uint128{elemA, elemB}, grown.All())
}

func TestListEvolverSetMatchesDirectRebuild(t *testing.T) {
	sed := sedes.NewUint128List(4)

	edited, err := hashable.NewList([]sedes.Uint128{elemA, elemB, elemC}, sed)
	require.NoError(t, err)
	edited, err = edited.Set(1, elemD)
	require.NoError(t, err)

	rebuilt, err := hashable.NewList([]sedes.Uint128{elemA, elemD, elemC}, sed)
	require.NoError(t, err)

	require.Equal(t, rebuilt.Root(), edited.Root())
}

func TestEvolverPersistenceLeavesOriginalUntouched(t *testing.T) {
	sed := sedes.NewUint128List(4)
	original, err := hashable.NewList([]sedes.Uint128{elemA, elemB}, sed)
	require.NoError(t, err)
	originalRoot := original.Root()

	e := original.Evolver()
	e.Append(elemC)
	updated, err := e.Persistent()
	require.NoError(t, err)

	require.Equal(t, originalRoot, original.Root())
	require.NotEqual(t, originalRoot, merkletree.MixInLength(updated.RawRoot(), uint64(updated.Len())))
	require.Equal(t, 2, original.Len())
	require.Equal(t, 3, updated.Len())
}

func TestEvolverNoEditsReturnsOriginal(t *testing.T) {
	sed := sedes.NewUint128Vector(2)
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB}, sed)
	require.NoError(t, err)

	e := v.HashableStructure.Evolver()
	require.False(t, e.IsDirty())
	same, err := e.Persistent()
	require.NoError(t, err)
	require.Equal(t, v.RawRoot(), same.RawRoot())
}

func TestSetIsIdempotentUnderRepetition(t *testing.T) {
	sed := sedes.NewUint128Vector(3)
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB, elemC}, sed)
	require.NoError(t, err)

	once, err := v.Set(0, elemD)
	require.NoError(t, err)
	twice, err := once.Set(0, elemD)
	require.NoError(t, err)

	require.Equal(t, once.Root(), twice.Root())
}

func TestMsetCommutesOverDisjointIndices(t *testing.T) {
	sed := sedes.NewUint128Vector(3)
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB, elemC}, sed)
	require.NoError(t, err)

	order1, err := v.Mset(0, elemD, 2, elemE)
	require.NoError(t, err)
	order2, err := v.Mset(2, elemE, 0, elemD)
	require.NoError(t, err)

	require.Equal(t, order1.Root(), order2.Root())
}

func TestMsetRejectsOddArgumentCount(t *testing.T) {
	sed := sedes.NewUint128Vector(2)
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB}, sed)
	require.NoError(t, err)

	_, err = v.Mset(0, elemA, 1)
	require.Error(t, err)
}

func TestListRepeatProducesNCopies(t *testing.T) {
	sed := sedes.NewUint128List(8)
	l, err := hashable.NewList([]sedes.Uint128{elemA, elemB}, sed)
	require.NoError(t, err)

	thrice, err := l.Repeat(3)
	require.NoError(t, err)
	require.Equal(t, 6, thrice.Len())
	require.Equal(t, []sedes.Uint128{elemA, elemB, elemA, elemB, elemA, elemB}, thrice.All())
}

func TestListRepeatRejectsNonPositive(t *testing.T) {
	sed := sedes.NewUint128List(4)
	l, err := hashable.NewList([]sedes.Uint128{elemA}, sed)
	require.NoError(t, err)
	_, err = l.Repeat(0)
	require.Error(t, err)
}

func TestResizableEvolverGetSeesAppendedTail(t *testing.T) {
	sed := sedes.NewUint128List(4)
	l, err := hashable.NewList([]sedes.Uint128{elemA}, sed)
	require.NoError(t, err)

	e := l.Evolver()
	e.Append(elemB)
	got, err := e.Get(1)
	require.NoError(t, err)
	require.Equal(t, elemB, got)

	_, err = e.Get(2)
	require.Error(t, err)
}

func TestStructuralSharingAcrossDerivedStructures(t *testing.T) {
	sed := sedes.NewUint128Vector(4)
	v, err := hashable.NewVector([]sedes.Uint128{elemA, elemB, elemC, elemD}, sed)
	require.NoError(t, err)

	derived, err := v.Set(3, elemE)
	require.NoError(t, err)

	// only the affected leaf and its ancestors change; everything else in
	// the chunk vector is untouched between the two trees.
	originalChunks := v.Chunks()
	derivedChunks := derived.Chunks()
	require.Equal(t, originalChunks[0], derivedChunks[0])
	require.NotEqual(t, originalChunks[1], derivedChunks[1])
}
