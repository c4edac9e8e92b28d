package bls

import "github.com/pkg/errors"

// SignatureSet collects signatures with their messages and public keys so
// they can be checked in one batched verification pass instead of one
// pairing per signature. Entries at the same index belong together.
type SignatureSet struct {
	Signatures [][]byte
	PublicKeys []PublicKey
	Messages   [][32]byte
}

// NewSet constructs an empty signature set object.
func NewSet() *SignatureSet {
	return &SignatureSet{
		Signatures: [][]byte{},
		PublicKeys: []PublicKey{},
		Messages:   [][32]byte{},
	}
}

// Join appends the entries of the provided set onto the receiver and
// returns the receiver for chaining.
func (s *SignatureSet) Join(set *SignatureSet) *SignatureSet {
	s.Signatures = append(s.Signatures, set.Signatures...)
	s.PublicKeys = append(s.PublicKeys, set.PublicKeys...)
	s.Messages = append(s.Messages, set.Messages...)
	return s
}

// Len returns the number of signature/message/key triples in the set.
func (s *SignatureSet) Len() int {
	return len(s.Signatures)
}

// Verify checks every triple in the set using the batch verify algorithm.
func (s *SignatureSet) Verify() (bool, error) {
	if len(s.Signatures) != len(s.PublicKeys) || len(s.Signatures) != len(s.Messages) {
		return false, errors.Errorf(
			"mismatched signature set lengths: %d signatures, %d public keys, %d messages",
			len(s.Signatures), len(s.PublicKeys), len(s.Messages),
		)
	}
	return VerifyMultipleSignatures(s.Signatures, s.Messages, s.PublicKeys)
}

// Copy returns a deep copy of the set, sharing no backing arrays with the
// receiver.
func (s *SignatureSet) Copy() *SignatureSet {
	signatures := make([][]byte, len(s.Signatures))
	pubkeys := make([]PublicKey, len(s.PublicKeys))
	messages := make([][32]byte, len(s.Messages))
	for i := range s.Signatures {
		sig := make([]byte, len(s.Signatures[i]))
		copy(sig, s.Signatures[i])
		signatures[i] = sig
	}
	for i := range s.PublicKeys {
		pubkeys[i] = s.PublicKeys[i].Copy()
	}
	for i := range s.Messages {
		copy(messages[i][:], s.Messages[i][:])
	}
	return &SignatureSet{
		Signatures: signatures,
		PublicKeys: pubkeys,
		Messages:   messages,
	}
}
