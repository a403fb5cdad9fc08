package merkle

import (
	"fmt"

	"github.com/toni-calvin/merkle-tree/hashing"
)

// Proof is an inclusion proof for a single leaf: the ordered sibling
// digests, one per level from the leaf level up to but not including the
// root, such that folding the leaf digest into them reproduces the root.
type Proof struct {
	// index of the leaf this proof was generated for.
	leafIndex int
	// sibling digests in leaf-to-root order.
	siblings []hashing.Digest
}

// NewProof constructs a proof for the leaf at leafIndex from sibling
// digests in leaf-to-root order.
func NewProof(leafIndex int, siblings []hashing.Digest) Proof {
	return Proof{leafIndex: leafIndex, siblings: siblings}
}

// LeafIndex returns the index of the leaf this proof was generated for.
func (proof Proof) LeafIndex() int {
	return proof.leafIndex
}

// Siblings returns the sibling digests that together with the leaf digest
// can be used to recompute the root.
func (proof Proof) Siblings() []hashing.Digest {
	return proof.siblings
}

// Prove generates the inclusion proof for the leaf at the given index.
// Returns ErrIndexOutOfRange if the index does not address a current leaf.
func (t *Tree) Prove(leafIndex int) (Proof, error) {
	if leafIndex < 0 || leafIndex >= t.count {
		return Proof{}, fmt.Errorf("%w: got: %v, want: 0 <= index < %v", ErrIndexOutOfRange, leafIndex, t.count)
	}
	siblings := make([]hashing.Digest, 0, treeHeight(t.count))
	idx := leafIndex
	// levelStart is the absolute offset of the current level in the flat
	// node list; a level of size s starts at s-1. The walk stops once the
	// next level up is the single-node root level, which has no sibling.
	for levelStart := t.count - 1; levelStart != 0; levelStart = (levelStart+1)/2 - 1 {
		if idx%2 == 0 {
			siblings = append(siblings, t.nodes[levelStart+idx+1])
		} else {
			siblings = append(siblings, t.nodes[levelStart+idx-1])
		}
		idx /= 2
	}
	return Proof{leafIndex: leafIndex, siblings: siblings}, nil
}

// Verify recomputes the root from the stored leaf digest at the proof's
// index and the proof's sibling digests. At each level the parity of the
// working index decides whether the running digest is the left or the right
// HashPair argument. Returns true iff the result equals the tree's root
// byte-for-byte; malformed proofs and out-of-range indices verify as false,
// they never panic.
func (t *Tree) Verify(proof Proof) bool {
	idx := proof.leafIndex
	if idx < 0 || idx >= t.count {
		return false
	}
	if len(proof.siblings) != treeHeight(t.count) {
		return false
	}
	running := t.nodes[len(t.nodes)-t.count+idx]
	for _, sibling := range proof.siblings {
		if idx%2 == 0 {
			running = t.hasher.HashPair(running, sibling)
		} else {
			running = t.hasher.HashPair(sibling, running)
		}
		idx /= 2
	}
	return running.Equal(t.Root())
}

// treeHeight returns the number of levels above the leaf level for a
// power-of-two leaf count, which is also the sibling count of any proof.
func treeHeight(count int) int {
	height := 0
	for count > 1 {
		count /= 2
		height++
	}
	return height
}
