package hashing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Digest is the raw output of a cryptographic hash function.
type Digest []byte

// Equal returns true if d == other, otherwise, false.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// String returns the hexadecimal encoding of the digest. The output of
// d.String() is not equivalent to string(d).
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// Clone returns a copy of the digest that does not share memory with d.
func (d Digest) Clone() Digest {
	return append(Digest(nil), d...)
}

// TreeHasher computes the digests a Merkle tree is assembled from.
//
// HashPair is not commutative: HashPair(l, r) and HashPair(r, l) differ for
// l != r, which is what makes left/right position meaningful in inclusion
// proofs.
type TreeHasher interface {
	// HashLeaf defines how a raw element is hashed into a leaf digest.
	HashLeaf(data []byte) Digest

	// HashPair defines how two sibling digests are combined into their
	// parent digest. It hashes the concatenation of left then right.
	HashPair(left, right Digest) Digest

	// Size returns the number of bytes of a produced Digest.
	Size() int
}

type treeHasher struct {
	base hash.Hash
}

// NewSha3Hasher returns a TreeHasher backed by SHA3-256. This is the
// hash function the tree uses unless configured otherwise.
func NewSha3Hasher() TreeHasher {
	return &treeHasher{base: sha3.New256()}
}

func (t *treeHasher) HashLeaf(data []byte) Digest {
	t.base.Reset()
	//nolint:errcheck
	t.base.Write(data)
	return t.base.Sum(nil)
}

func (t *treeHasher) HashPair(left, right Digest) Digest {
	t.base.Reset()
	//nolint:errcheck
	t.base.Write(left)
	//nolint:errcheck
	t.base.Write(right)
	return t.base.Sum(nil)
}

func (t *treeHasher) Size() int {
	return t.base.Size()
}

// Sha256Hasher is a TreeHasher backed by SHA-256. Unlike the SHA3 hasher it
// can also combine a whole tree level in one batched call, see HashLevel.
type Sha256Hasher struct {
	treeHasher
}

func NewSha256Hasher() *Sha256Hasher {
	return &Sha256Hasher{treeHasher{base: sha256.New()}}
}
