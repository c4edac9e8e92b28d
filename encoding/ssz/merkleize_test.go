package ssz_test

import (
	"testing"

	"github.com/prysmaticlabs/phase0/container/trie"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/encoding/ssz"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestDepth(t *testing.T) {
	trieSizes := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	expected := []uint8{0, 0, 1, 2, 2, 3, 3, 3, 3, 4}
	for i, size := range trieSizes {
		assert.Equal(t, expected[i], ssz.Depth(size))
	}
}

func TestBitwiseMerkleize_SingleChunkIdentity(t *testing.T) {
	chunk := make([]byte, 32)
	chunk[0] = 1
	root, err := ssz.BitwiseMerkleize(hash.CustomSHA256Hasher(), [][]byte{chunk}, 1, 1)
	require.NoError(t, err)
	// Merkleizing a single chunk is the identity.
	var want [32]byte
	copy(want[:], chunk)
	assert.Equal(t, want, root)
}

func TestBitwiseMerkleize_OverLimit(t *testing.T) {
	chunks := [][]byte{make([]byte, 32), make([]byte, 32)}
	_, err := ssz.BitwiseMerkleize(hash.CustomSHA256Hasher(), chunks, 2, 1)
	require.ErrorContains(t, "merkleizing list that is too large", err)
}

func TestMerkleizeVector_EmptyReturnsZerohashAtDepth(t *testing.T) {
	assert.Equal(t, trie.ZeroHashes[2], ssz.MerkleizeVector([][32]byte{}, 4))
}

func TestMerkleizeVector_MatchesBitwiseMerkleize(t *testing.T) {
	elements := make([][32]byte, 5)
	for i := range elements {
		elements[i][0] = byte(i + 1)
	}
	chunks := make([][]byte, len(elements))
	for i := range elements {
		chunks[i] = elements[i][:]
	}
	want, err := ssz.BitwiseMerkleize(hash.CustomSHA256Hasher(), chunks, uint64(len(chunks)), 8)
	require.NoError(t, err)
	assert.Equal(t, want, ssz.MerkleizeVector(elements, 8))
}

func TestMerkleizeByteSliceSSZ(t *testing.T) {
	_, err := ssz.MerkleizeByteSliceSSZ([]byte{})
	require.ErrorContains(t, "invalid empty slice", err)

	input := make([]byte, 64)
	input[0] = 1
	input[32] = 2
	root, err := ssz.MerkleizeByteSliceSSZ(input)
	require.NoError(t, err)

	var left, right [32]byte
	left[0] = 1
	right[0] = 2
	want := hash.Hash(append(left[:], right[:]...))
	assert.Equal(t, want, root)
}
