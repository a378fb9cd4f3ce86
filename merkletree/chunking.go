package merkletree

import "github.com/lodestonelabs/hashssz"

// UpdateElementInChunk replaces the index-th element_size-wide slot inside
// chunk with element.
func UpdateElementInChunk(chunk Chunk, index int, element []byte) (Chunk, error) {
	elementSize := len(element)
	if elementSize == 0 || CHUNK_SIZE%elementSize != 0 {
		return Chunk{}, hashssz.NewErrInvalidElementSize(elementSize)
	}
	slots := CHUNK_SIZE / elementSize
	if index < 0 || index >= slots {
		return Chunk{}, hashssz.NewErrIndexOutOfRange(index, slots)
	}
	out := chunk
	copy(out[index*elementSize:(index+1)*elementSize], element)
	return out, nil
}

// updateElementsInChunk applies every (index, element) update in the
// changeset to chunk. Map iteration order is unspecified; each index names
// a distinct slot, so the resulting chunk does not depend on it.
func updateElementsInChunk(chunk Chunk, changeset map[int][]byte) (Chunk, error) {
	out := chunk
	for index, element := range changeset {
		var err error
		out, err = UpdateElementInChunk(out, index, element)
		if err != nil {
			return Chunk{}, err
		}
	}
	return out, nil
}

// GetNumPaddingElements returns the number of element_size-wide slots still
// free in the last existing chunk.
func GetNumPaddingElements(numOriginalChunks, numOriginalElements, elementSize int) int {
	totalSize := numOriginalChunks * CHUNK_SIZE
	usedSize := numOriginalElements * elementSize
	return (totalSize - usedSize) / elementSize
}

// GetUpdatedChunks computes the set of chunk-index -> updated chunk
// replacements needed to apply updatedElements (in-range edits) and the
// prefix of appendedElements that spills into the unused tail of the final
// existing chunk. The element size is inferred from whichever of
// updatedElements/appendedElements is non-empty; if both are empty, the
// changeset is a no-op.
func GetUpdatedChunks(
	updatedElements map[int][]byte,
	appendedElements [][]byte,
	originalChunks []Chunk,
	numOriginalElements int,
) (map[int]Chunk, error) {
	numPadding := 0
	elementSize := 0
	switch {
	case len(updatedElements) > 0:
		for _, v := range updatedElements {
			elementSize = len(v)
			break
		}
	case len(appendedElements) > 0:
		elementSize = len(appendedElements[0])
	default:
		return map[int]Chunk{}, nil
	}
	if len(originalChunks) > 0 {
		numPadding = GetNumPaddingElements(len(originalChunks), numOriginalElements, elementSize)
	}

	effectiveAppended := appendedElements
	if len(effectiveAppended) > numPadding {
		effectiveAppended = effectiveAppended[:numPadding]
	}

	elementsPerChunk := CHUNK_SIZE / elementSize

	byChunk := make(map[int]map[int][]byte)
	addElement := func(elementIndex int, element []byte) {
		chunkIndex := elementIndex / elementsPerChunk
		slot := elementIndex % elementsPerChunk
		changeset, ok := byChunk[chunkIndex]
		if !ok {
			changeset = make(map[int][]byte)
			byChunk[chunkIndex] = changeset
		}
		changeset[slot] = element
	}
	for index, element := range updatedElements {
		addElement(index, element)
	}
	for i, element := range effectiveAppended {
		addElement(numOriginalElements+i, element)
	}

	out := make(map[int]Chunk, len(byChunk))
	for chunkIndex, changeset := range byChunk {
		if chunkIndex >= len(originalChunks) {
			return nil, hashssz.NewErrIndexOutOfRange(chunkIndex, len(originalChunks))
		}
		updated, err := updateElementsInChunk(originalChunks[chunkIndex], changeset)
		if err != nil {
			return nil, err
		}
		out[chunkIndex] = updated
	}
	return out, nil
}

// GetAppendedChunks partitions the tail of appendedElements that did not
// spill into the last existing chunk (the first numPaddingElements were
// already consumed by GetUpdatedChunks) into brand-new, zero-padded chunks.
func GetAppendedChunks(appendedElements [][]byte, numPaddingElements int) []Chunk {
	if len(appendedElements) <= numPaddingElements {
		return nil
	}
	elementSize := len(appendedElements[0])
	elementsPerChunk := CHUNK_SIZE / elementSize

	remaining := appendedElements[numPaddingElements:]
	out := make([]Chunk, 0, ceilDiv(len(remaining), elementsPerChunk))
	for start := 0; start < len(remaining); start += elementsPerChunk {
		end := start + elementsPerChunk
		if end > len(remaining) {
			end = len(remaining)
		}
		var chunk Chunk
		pos := 0
		for _, element := range remaining[start:end] {
			pos += copy(chunk[pos:], element)
		}
		out = append(out, chunk)
	}
	return out
}
