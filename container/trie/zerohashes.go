package trie

import (
	"github.com/prysmaticlabs/phase0/crypto/hash"
)

// ZeroHashes is a representation of all the zero hashes of varying depths.
var ZeroHashes [][32]byte

func init() {
	ZeroHashes = make([][32]byte, 65)
	for i := 0; i < len(ZeroHashes)-1; i++ {
		ZeroHashes[i+1] = hash.Hash(append(ZeroHashes[i][:], ZeroHashes[i][:]...))
	}
}
