package stateutil

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/crypto/hash/htr"
	"github.com/prysmaticlabs/phase0/math"
)

// MerkleizeTrieLeaves merkleize the trie leaves.
func MerkleizeTrieLeaves(layers [][][32]byte, hashLayer [][32]byte) ([][][32]byte, [][32]byte, error) {
	// We keep track of the hash layers of a Merkle trie until we reach
	// the top layer of length 1, which contains the single root element.
	//        [Root]      -> Top layer has length 1.
	//    [E]       [F]   -> This layer has length 2.
	// [A]  [B]  [C]  [D] -> The bottom layer has length 4 (needs to be a power of two).
	i := 1
	for len(hashLayer) > 1 && i < len(layers) {
		if !math.IsPowerOf2(uint64(len(hashLayer))) {
			return nil, nil, errors.Errorf("hash layer is a non power of 2: %d", len(hashLayer))
		}
		hashLayer = htr.VectorizedSha256(hashLayer)
		layers[i] = hashLayer
		i++
	}
	return layers, hashLayer, nil
}
