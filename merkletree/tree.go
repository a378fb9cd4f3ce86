package merkletree

import (
	"github.com/lodestonelabs/hashssz"
	"github.com/lodestonelabs/hashssz/merkletree/internal/pnode"
	"github.com/prysmaticlabs/gohashtree"
)

// HashTree is a sparse, persistent padded-binary Merkle tree over a chunk
// vector. Every mutating operation (Mset, Extend) returns a new HashTree
// sharing every untouched internal node with its parent via the persistent
// node map in package pnode; old trees remain valid and independently
// readable forever.
//
// Internally this batches dirty positions level by level into a single
// recompute pass rather than rehashing pair by pair, replacing what would
// otherwise be a mutable flat-array layer cache (which could not be shared
// across versions) with the persistent node map.
type HashTree struct {
	nodes    pnode.Map // key = level<<56 | position -> digest; absent == zero-subtree
	count    int       // number of populated (possibly zero-valued) chunk leaves
	depth    uint8
	capacity uint64
}

func nodeKey(level uint8, position uint64) uint64 {
	return uint64(level)<<56 | position
}

// Compute builds a HashTree from scratch over chunks, reserving chunkCount
// leaf slots. An empty chunks slice is treated as a single ZeroChunk.
func Compute(chunks []Chunk, chunkCount int) (HashTree, error) {
	if len(chunks) == 0 {
		chunks = []Chunk{ZeroChunk}
	}
	if chunkCount > 0 && len(chunks) > chunkCount {
		return HashTree{}, hashssz.NewErrCapacityExceeded(len(chunks), chunkCount)
	}
	depth := GetDepth(uint64(max(chunkCount, 1)))
	t := HashTree{depth: depth, capacity: PowerOf2(depth)}

	affected := make([]uint64, len(chunks))
	for i, c := range chunks {
		t.nodes = setLevel0(t.nodes, uint64(i), c)
		affected[i] = uint64(i)
	}
	t.count = len(chunks)
	t.nodes = propagate(t.nodes, affected, depth)
	return t, nil
}

func setLevel0(nodes pnode.Map, position uint64, c Chunk) pnode.Map {
	if c == ZeroChunk {
		return nodes.Delete(nodeKey(0, position))
	}
	return nodes.Set(nodeKey(0, position), c)
}

// getNode returns the digest stored at (level, position), falling back to
// the zero-hash for that level when absent. Per the sparse representation
// policy, absence always means a zero subtree: every non-zero subtree's
// digest is stored.
func (t HashTree) getNode(level uint8, position uint64) Chunk {
	if v, ok := t.nodes.Get(nodeKey(level, position)); ok {
		return v
	}
	return ZeroHash(level)
}

// propagate recomputes every level from 1 to depth affected by the given
// level-0 positions, batching each level's hashing into a single
// gohashtree call, and returns the resulting node map.
func propagate(nodes pnode.Map, affectedLevel0 []uint64, depth uint8) pnode.Map {
	cur := dedupe(affectedLevel0)
	get := func(level uint8, position uint64) Chunk {
		if v, ok := nodes.Get(nodeKey(level, position)); ok {
			return v
		}
		return ZeroHash(level)
	}
	for level := uint8(1); level <= depth; level++ {
		parents := dedupe(halveAll(cur))
		pairs := make([]Chunk, 0, 2*len(parents))
		for _, q := range parents {
			pairs = append(pairs, get(level-1, 2*q), get(level-1, 2*q+1))
		}
		digests := hashPairsBatch(pairs)
		for i, q := range parents {
			h := digests[i]
			if h == ZeroHash(level) {
				nodes = nodes.Delete(nodeKey(level, q))
			} else {
				nodes = nodes.Set(nodeKey(level, q), h)
			}
		}
		cur = parents
	}
	return nodes
}

func dedupe(positions []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(positions))
	out := make([]uint64, 0, len(positions))
	for _, p := range positions {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func halveAll(positions []uint64) []uint64 {
	out := make([]uint64, len(positions))
	for i, p := range positions {
		out[i] = p / 2
	}
	return out
}

// hashPairsBatch hashes each consecutive (left, right) pair in pairs in one
// batched call via prysmaticlabs/gohashtree.
func hashPairsBatch(pairs []Chunk) []Chunk {
	n := len(pairs) / 2
	if n == 0 {
		return nil
	}
	out := make([]Chunk, n)
	if err := gohashtree.Hash(out, pairs); err != nil {
		// gohashtree only fails on malformed slice lengths, which cannot
		// happen here since pairs is always built in pairs above.
		panic(hashssz.NewErrInvariantViolation("batched hash failed: %v", err))
	}
	return out
}

// Root returns the tree's root digest.
func (t HashTree) Root() Chunk {
	if t.depth == 0 {
		return t.getNode(0, 0)
	}
	return t.getNode(t.depth, 0)
}

// Chunks returns the ordered sequence of populated leaves.
func (t HashTree) Chunks() []Chunk {
	out := make([]Chunk, t.count)
	for i := range out {
		out[i] = t.getNode(0, uint64(i))
	}
	return out
}

// Len returns the number of populated chunk leaves.
func (t HashTree) Len() int {
	return t.count
}

// Capacity returns the tree's leaf capacity, 2^depth.
func (t HashTree) Capacity() uint64 {
	return t.capacity
}

// Mset replaces a batch of chunks at existing leaf positions, returning a
// new HashTree that shares every untouched internal node with the
// receiver. Indices must be within [0, Len()).
func (t HashTree) Mset(updates map[int]Chunk) (HashTree, error) {
	if len(updates) == 0 {
		return t, nil
	}
	nodes := t.nodes
	affected := make([]uint64, 0, len(updates))
	for index, c := range updates {
		if index < 0 || index >= t.count {
			return HashTree{}, hashssz.NewErrIndexOutOfRange(index, t.count)
		}
		nodes = setLevel0(nodes, uint64(index), c)
		affected = append(affected, uint64(index))
	}
	nodes = propagate(nodes, affected, t.depth)
	return HashTree{nodes: nodes, count: t.count, depth: t.depth, capacity: t.capacity}, nil
}

// Extend appends newChunks after the current chunk vector, returning a new
// HashTree. The resulting length must not exceed the tree's capacity.
func (t HashTree) Extend(newChunks []Chunk) (HashTree, error) {
	if len(newChunks) == 0 {
		return t, nil
	}
	newCount := t.count + len(newChunks)
	if uint64(newCount) > t.capacity {
		return HashTree{}, hashssz.NewErrCapacityExceeded(newCount, int(t.capacity))
	}
	nodes := t.nodes
	affected := make([]uint64, 0, len(newChunks))
	for i, c := range newChunks {
		position := uint64(t.count + i)
		nodes = setLevel0(nodes, position, c)
		affected = append(affected, position)
	}
	nodes = propagate(nodes, affected, t.depth)
	return HashTree{nodes: nodes, count: newCount, depth: t.depth, capacity: t.capacity}, nil
}
