package merkletree

// MerkleizeVector merkleizes a slice of already-composite chunk roots
// (one chunk per element) against a reserved capacity of limit leaf slots,
// returning the tree's root. The zero-element case needs no special
// handling: an all-zero tree stores no nodes, so Root() already resolves
// to the level-depth zero-hash via Compute's sparse representation.
func MerkleizeVector(elements []Chunk, limit uint64) (Chunk, error) {
	t, err := Compute(elements, int(limit))
	if err != nil {
		return Chunk{}, err
	}
	return t.Root(), nil
}
