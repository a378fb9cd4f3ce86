package hashable

import (
	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree"
)

// Evolver accumulates in-range edits against an immutable original
// structure and materializes a new structure in a single batched rebuild.
// An Evolver is a single-threaded staging buffer: concurrent mutation of
// the same Evolver is not supported, but independent Evolvers over the same
// parent may run on separate goroutines freely.
type Evolver[T any] struct {
	original HashableStructure[T]
	updated  map[int]T
}

// Get returns updated[index] if staged, else the original element.
func (e *Evolver[T]) Get(index int) (T, error) {
	if v, ok := e.updated[index]; ok {
		return v, nil
	}
	return e.original.Get(index)
}

// Set stages index to v. Index must be within the original structure's
// range; resizable evolvers additionally accept indices in the appended
// tail (see ResizableEvolver.Set).
func (e *Evolver[T]) Set(index int, v T) error {
	if index < 0 || index >= e.original.Len() {
		return hashssz.NewErrIndexOutOfRange(index, e.original.Len())
	}
	e.updated[index] = v
	return nil
}

// IsDirty reports whether any edit has been staged.
func (e *Evolver[T]) IsDirty() bool {
	return len(e.updated) > 0
}

// Persistent materializes the staged edits into a new HashableStructure,
// or returns the original unchanged if nothing was staged.
func (e *Evolver[T]) Persistent() (HashableStructure[T], error) {
	if !e.IsDirty() {
		return e.original, nil
	}
	return materialize(e.original, e.updated, nil)
}

// materialize serializes the staged edit set, computes the minimal set of
// chunk replacements and appended chunks, rebuilds the backing tree and
// element sequence, and returns the resulting structure. Shared between
// Evolver and ResizableEvolver so append handling is only implemented once.
func materialize[T any](original HashableStructure[T], updated map[int]T, appended []T) (HashableStructure[T], error) {
	sedes := original.sedes

	updatedBytes := make(map[int][]byte, len(updated))
	for index, value := range updated {
		b, err := sedes.SerializeLeaf(index, value)
		if err != nil {
			return HashableStructure[T]{}, err
		}
		updatedBytes[index] = b
	}

	appendedBytes := make([][]byte, len(appended))
	for i, value := range appended {
		b, err := sedes.SerializeLeaf(original.Len()+i, value)
		if err != nil {
			return HashableStructure[T]{}, err
		}
		appendedBytes[i] = b
	}

	originalChunks := original.tree.Chunks()

	numPadding := 0
	if elementSize := inferElementSize(updatedBytes, appendedBytes); elementSize > 0 {
		numPadding = merkletree.GetNumPaddingElements(len(originalChunks), original.Len(), elementSize)
	}

	updatedChunks, err := merkletree.GetUpdatedChunks(updatedBytes, appendedBytes, originalChunks, original.Len())
	if err != nil {
		return HashableStructure[T]{}, err
	}
	appendedChunks := merkletree.GetAppendedChunks(appendedBytes, numPadding)

	tree, err := original.tree.Mset(updatedChunks)
	if err != nil {
		return HashableStructure[T]{}, err
	}
	tree, err = tree.Extend(appendedChunks)
	if err != nil {
		return HashableStructure[T]{}, err
	}

	elements := append([]T(nil), original.elements...)
	for index, value := range updated {
		elements[index] = value
	}
	elements = append(elements, appended...)

	return HashableStructure[T]{elements: elements, tree: tree, sedes: sedes}, nil
}

func inferElementSize(updated map[int][]byte, appended [][]byte) int {
	for _, b := range updated {
		return len(b)
	}
	if len(appended) > 0 {
		return len(appended[0])
	}
	return 0
}
