package hashssz

// HashableSSZ is implemented by composite values that can compute their
// own hash-tree-root. A Sedes for a composite element type
// (vectors/lists/containers of containers) uses this to obtain the one
// chunk a nested composite contributes.
type HashableSSZ interface {
	HashTreeRoot() ([32]byte, error)
}

// Prehash wraps an already-computed root so it satisfies HashableSSZ,
// useful for tests and for composing structures whose nested roots were
// computed out of band.
type Prehash [32]byte

func (p Prehash) HashTreeRoot() ([32]byte, error) {
	return p, nil
}
