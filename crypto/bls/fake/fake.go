// Package fake implements the BLS signature interfaces with a deterministic
// keyed-hash scheme. It is not cryptographically secure and exists to run
// transition code and tests quickly on platforms where the blst bindings are
// unavailable, or when the blst_disabled build tag is set.
//
// Signatures are derived from the public key and message alone, so signing is
// deterministic and verification recomputes the expected bytes. Aggregation is
// a bytewise XOR, which keeps the scheme commutative and associative the same
// way point addition does for real BLS.
package fake

import (
	"github.com/prysmaticlabs/phase0/crypto/bls/common"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/crypto/rand"
)

// fakeSecretKey is a 32 byte scalar with no group structure behind it.
type fakeSecretKey struct {
	k [32]byte
}

// RandKey creates a new private key using a cryptographically secure source.
func RandKey() (common.SecretKey, error) {
	var k [32]byte
	if _, err := rand.NewGenerator().Read(k[:]); err != nil {
		return nil, err
	}
	if k == common.ZeroSecretKey {
		return nil, common.ErrZeroKey
	}
	return &fakeSecretKey{k: k}, nil
}

// SecretKeyFromBytes creates a private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != common.BLSSecretKeyLength {
		return nil, common.ErrSecretUnmarshal
	}
	var k [32]byte
	copy(k[:], privKey)
	if k == common.ZeroSecretKey {
		return nil, common.ErrZeroKey
	}
	return &fakeSecretKey{k: k}, nil
}

// PublicKey derives the public key bytes from the secret scalar.
func (s *fakeSecretKey) PublicKey() common.PublicKey {
	return &PublicKey{keys: [][48]byte{derivePublicKey(s.k)}}
}

// Sign produces sigOf(pubkey, msg). The secret key only participates through
// the derived public key, which is what lets verification recompute the
// signature without it.
func (s *fakeSecretKey) Sign(msg []byte) common.Signature {
	return &Signature{s: sigOf(derivePublicKey(s.k), msg)}
}

// Marshal a secret key into a byte slice.
func (s *fakeSecretKey) Marshal() []byte {
	k := s.k
	return k[:]
}

// derivePublicKey expands the secret scalar into 48 pubkey bytes through two
// rounds of hashing.
func derivePublicKey(k [32]byte) [48]byte {
	h1 := hash.Hash(append([]byte("pubkey"), k[:]...))
	h2 := hash.Hash(h1[:])
	var pub [48]byte
	copy(pub[:32], h1[:])
	copy(pub[32:], h2[:16])
	return pub
}

// sigOf computes the unique valid signature for a pubkey and message as a
// 96 byte hash chain.
func sigOf(pub [48]byte, msg []byte) [96]byte {
	h1 := hash.Hash(append(pub[:], msg...))
	h2 := hash.Hash(h1[:])
	h3 := hash.Hash(h2[:])
	var sig [96]byte
	copy(sig[:32], h1[:])
	copy(sig[32:64], h2[:])
	copy(sig[64:], h3[:])
	return sig
}

func xorSig(a, b [96]byte) [96]byte {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}
