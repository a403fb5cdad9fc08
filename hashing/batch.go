package hashing

import (
	"crypto/sha256"
	"fmt"

	"github.com/prysmaticlabs/gohashtree"
)

// LevelHasher is implemented by hashers that can combine a whole tree level
// at once. The result must be byte-for-byte identical to calling HashPair on
// each adjacent pair of the level left to right.
type LevelHasher interface {
	HashLevel(level []Digest) ([]Digest, error)
}

var _ LevelHasher = (*Sha256Hasher)(nil)

// HashLevel hashes each adjacent pair of the given level into its parent
// digest using gohashtree's vectorized SHA-256. The level size must be even
// and every digest must be sha256.Size bytes.
func (s *Sha256Hasher) HashLevel(level []Digest) ([]Digest, error) {
	if len(level)%2 != 0 {
		return nil, fmt.Errorf("level size must be even, got %d", len(level))
	}
	chunks := make([]byte, 0, len(level)*sha256.Size)
	for _, d := range level {
		if len(d) != sha256.Size {
			return nil, fmt.Errorf("digest size must be %d, got %d", sha256.Size, len(d))
		}
		chunks = append(chunks, d...)
	}
	digests := make([]byte, len(level)/2*sha256.Size)
	if err := gohashtree.HashByteSlice(digests, chunks); err != nil {
		return nil, err
	}
	parents := make([]Digest, len(level)/2)
	for i := range parents {
		parents[i] = digests[i*sha256.Size : (i+1)*sha256.Size]
	}
	return parents, nil
}
