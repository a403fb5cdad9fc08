// Package merkle implements a binary Merkle hash tree over an ordered
// sequence of opaque byte-string elements. The tree keeps every node digest
// in a single flat list with the levels concatenated root-first, supports
// appending elements to an existing tree, and produces and verifies
// inclusion proofs for single leaves.
package merkle

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/toni-calvin/merkle-tree/hashing"
)

var (
	ErrNoElements      = errors.New("tree requires at least one element")
	ErrNotPowerOfTwo   = errors.New("leaf count must be a power of two")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

type Options struct {
	Hasher hashing.TreeHasher
}

type Option func(*Options)

// WithHasher sets the hash function used to digest leaves and combine
// sibling nodes. Defaults to SHA3-256.
func WithHasher(h hashing.TreeHasher) Option {
	return func(opts *Options) {
		opts.Hasher = h
	}
}

// Tree is a complete binary Merkle tree.
//
// Its nodes are stored as one flat list holding every tree level
// concatenated from the root level down to the leaf level, each level
// ordered left to right. A level of size s starts at index s-1 because the
// ancestor level sizes (which halve going up) sum to s-1. Consequently
// nodes[0] is the root and the leaf level occupies the final count
// positions. All proof index arithmetic relies on this layout.
//
// A Tree is not safe for concurrent use: Add rebuilds the node list and
// callers needing concurrent reads during mutation must synchronize
// externally.
type Tree struct {
	hasher hashing.TreeHasher

	nodes []hashing.Digest
	count int
}

// New builds a tree over the given elements. The element count must be a
// non-zero power of two, otherwise ErrNoElements or ErrNotPowerOfTwo is
// returned. The tree retains only the element digests, not the elements
// themselves.
func New(elements [][]byte, setters ...Option) (*Tree, error) {
	// default options:
	opts := &Options{
		Hasher: hashing.NewSha3Hasher(),
	}
	for _, setter := range setters {
		setter(opts)
	}
	if err := validLeafCount(len(elements)); err != nil {
		return nil, err
	}
	t := &Tree{
		hasher: opts.Hasher,
		count:  len(elements),
	}
	t.nodes = t.buildNodes(t.hashElements(elements))
	return t, nil
}

func validLeafCount(count int) error {
	if count == 0 {
		return ErrNoElements
	}
	if bits.OnesCount(uint(count)) != 1 {
		return fmt.Errorf("%w: got: %v", ErrNotPowerOfTwo, count)
	}
	return nil
}

// Root returns the digest summarizing the entire tree.
func (t *Tree) Root() hashing.Digest {
	return t.nodes[0]
}

// LeafCount returns the number of current leaf elements.
func (t *Tree) LeafCount() int {
	return t.count
}

// Leaves returns a copy of the current leaf digests, left to right.
func (t *Tree) Leaves() []hashing.Digest {
	leaves := make([]hashing.Digest, t.count)
	copy(leaves, t.nodes[len(t.nodes)-t.count:])
	return leaves
}

// Nodes returns a copy of the full flat node list, root first, leaves last.
// It is meant for diagnostics; all regular use goes through Root, Prove and
// Verify.
func (t *Tree) Nodes() []hashing.Digest {
	nodes := make([]hashing.Digest, len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// Add appends elements to the tree and rebuilds every level from the
// concatenation of the current leaves and the new leaf digests. The
// resulting leaf count must again be a power of two; on error the tree is
// left unchanged. The rebuild is O(n) in the new total leaf count, so
// callers growing a tree in many small steps should batch their appends.
func (t *Tree) Add(elements ...[]byte) error {
	if len(elements) == 0 {
		return ErrNoElements
	}
	total := t.count + len(elements)
	if err := validLeafCount(total); err != nil {
		return err
	}
	leaves := append(t.Leaves(), t.hashElements(elements)...)
	t.count = total
	t.nodes = t.buildNodes(leaves)
	return nil
}

func (t *Tree) hashElements(elements [][]byte) []hashing.Digest {
	leaves := make([]hashing.Digest, len(elements))
	for i, element := range elements {
		leaves[i] = t.hasher.HashLeaf(element)
	}
	return leaves
}

// buildNodes computes all tree levels bottom-up from the given leaf digests
// and returns them concatenated root-first. An explicit loop is used rather
// than call-stack recursion so very large trees cannot exhaust the stack.
// Requires a power-of-two leaf count so every level pairs up evenly.
func (t *Tree) buildNodes(leaves []hashing.Digest) []hashing.Digest {
	levels := [][]hashing.Digest{leaves}
	for level := leaves; len(level) > 1; {
		level = t.hashLevel(level)
		levels = append(levels, level)
	}
	nodes := make([]hashing.Digest, 0, 2*len(leaves)-1)
	for i := len(levels) - 1; i >= 0; i-- {
		nodes = append(nodes, levels[i]...)
	}
	return nodes
}

// hashLevel combines adjacent siblings of a level into the parent level:
// parent[i] = HashPair(level[2i], level[2i+1]). Hashers that support whole
// level batching take the batched path; both paths produce identical
// digests.
func (t *Tree) hashLevel(level []hashing.Digest) []hashing.Digest {
	if batcher, ok := t.hasher.(hashing.LevelHasher); ok {
		if parents, err := batcher.HashLevel(level); err == nil {
			return parents
		}
	}
	parents := make([]hashing.Digest, len(level)/2)
	for i := range parents {
		parents[i] = t.hasher.HashPair(level[2*i], level[2*i+1])
	}
	return parents
}
