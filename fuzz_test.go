package merkle_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	merkle "github.com/toni-calvin/merkle-tree"
	"github.com/toni-calvin/merkle-tree/hashing"
)

func TestFuzzProveVerifyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzProveVerifyRoundTrip skipped in short mode.")
	}
	f := fuzz.NewWithSeed(1337)

	hashers := map[string]hashing.TreeHasher{
		"sha3-256": hashing.NewSha3Hasher(),
		"sha256":   hashing.NewSha256Hasher(),
	}
	for name, hasher := range hashers {
		for _, count := range []int{1, 2, 4, 8, 16, 32, 64, 128} {
			elements := make([][]byte, count)
			for i := range elements {
				f.Fuzz(&elements[i])
			}

			tree, err := merkle.New(elements, merkle.WithHasher(hasher))
			require.NoError(t, err)

			for i := 0; i < count; i++ {
				proof, err := tree.Prove(i)
				require.NoError(t, err)
				require.True(t, tree.Verify(proof),
					"%v: round trip failed for leaf %d of %d", name, i, count)

				if len(proof.Siblings()) == 0 {
					continue
				}
				tampered := make([]hashing.Digest, len(proof.Siblings()))
				for j, s := range proof.Siblings() {
					tampered[j] = s.Clone()
				}
				tampered[i%len(tampered)][0] ^= 0xFF
				require.False(t, tree.Verify(merkle.NewProof(i, tampered)),
					"%v: tampered proof accepted for leaf %d of %d", name, i, count)
			}
		}
	}
}

func TestFuzzAddMatchesFreshConstruction(t *testing.T) {
	if testing.Short() {
		t.Skip("TestFuzzAddMatchesFreshConstruction skipped in short mode.")
	}
	f := fuzz.NewWithSeed(42)

	for _, split := range [][2]int{{1, 1}, {2, 2}, {4, 4}, {8, 8}, {16, 16}, {32, 32}} {
		initial := make([][]byte, split[0])
		added := make([][]byte, split[1])
		for i := range initial {
			f.Fuzz(&initial[i])
		}
		for i := range added {
			f.Fuzz(&added[i])
		}

		grown, err := merkle.New(initial)
		require.NoError(t, err)
		require.NoError(t, grown.Add(added...))

		fresh, err := merkle.New(append(append([][]byte{}, initial...), added...))
		require.NoError(t, err)

		require.Equal(t, fresh.Root(), grown.Root())
		require.Equal(t, fresh.Nodes(), grown.Nodes())
	}
}
