package fake

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/crypto/bls/common"
)

// Signature is 96 opaque bytes under the keyed-hash scheme.
type Signature struct {
	s [96]byte
}

// SignatureFromBytes creates a signature from a byte slice. Any 96 byte value
// deserializes, mirroring how group checks are deferred to verification here.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != common.BLSSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", common.BLSSignatureLength)
	}
	s := &Signature{}
	copy(s.s[:], sig)
	return s, nil
}

// Verify recomputes the expected signature bytes for every member key of the
// given public key and compares the XOR of those against the signature.
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	var expected [96]byte
	for _, k := range pubKey.(*PublicKey).keys {
		expected = xorSig(expected, sigOf(k, msg))
	}
	return expected == s.s
}

// AggregateVerify verifies each public key against its respective message.
func (s *Signature) AggregateVerify(pubKeys []common.PublicKey, msgs [][32]byte) bool {
	size := len(pubKeys)
	if size == 0 {
		return false
	}
	if size != len(msgs) {
		return false
	}
	var expected [96]byte
	for i := 0; i < size; i++ {
		for _, k := range pubKeys[i].(*PublicKey).keys {
			expected = xorSig(expected, sigOf(k, msgs[i][:]))
		}
	}
	return expected == s.s
}

// FastAggregateVerify verifies all the provided public keys with their aggregated signature.
func (s *Signature) FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) bool {
	if len(pubKeys) == 0 {
		return false
	}
	var expected [96]byte
	for _, pub := range pubKeys {
		for _, k := range pub.(*PublicKey).keys {
			expected = xorSig(expected, sigOf(k, msg[:]))
		}
	}
	return expected == s.s
}

// Eth2FastAggregateVerify accepts the point at infinity signature when the
// pubkey list is empty, then falls through to FastAggregateVerify.
func (s *Signature) Eth2FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) bool {
	if len(pubKeys) == 0 && bytes.Equal(s.Marshal(), common.InfiniteSignature[:]) {
		return true
	}
	return s.FastAggregateVerify(pubKeys, msg)
}

// NewAggregateSignature creates a blank aggregate signature.
func NewAggregateSignature() common.Signature {
	return &Signature{s: sigOf([48]byte{}, []byte{'m', 'o', 'c', 'k'})}
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []common.Signature) common.Signature {
	if len(sigs) == 0 {
		return nil
	}
	var agg [96]byte
	for _, sig := range sigs {
		agg = xorSig(agg, sig.(*Signature).s)
	}
	return &Signature{s: agg}
}

// AggregateCompressedSignatures converts a list of compressed signatures into a single, aggregated sig.
func AggregateCompressedSignatures(multiSigs [][]byte) (common.Signature, error) {
	sigs := make([]common.Signature, 0, len(multiSigs))
	for _, s := range multiSigs {
		sig, err := SignatureFromBytes(s)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	agg := AggregateSignatures(sigs)
	if agg == nil {
		return nil, errors.New("nil or empty signatures")
	}
	return agg, nil
}

// VerifyMultipleSignatures verifies multiple signatures for distinct messages
// one by one. There is no batching shortcut for the hash scheme, the loop is
// already cheap.
func VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubKeys []common.PublicKey) (bool, error) {
	if len(sigs) == 0 || len(pubKeys) == 0 {
		return false, nil
	}
	length := len(sigs)
	if length != len(pubKeys) || length != len(msgs) {
		return false, errors.Errorf("provided signatures, pubkeys and messages have differing lengths. S: %d, P: %d,M %d",
			length, len(pubKeys), len(msgs))
	}
	for i := 0; i < length; i++ {
		sig, err := SignatureFromBytes(sigs[i])
		if err != nil {
			return false, err
		}
		if !sig.Verify(pubKeys[i], msgs[i][:]) {
			return false, nil
		}
	}
	return true, nil
}

// Marshal a signature into a byte slice.
func (s *Signature) Marshal() []byte {
	sig := s.s
	return sig[:]
}

// Copy returns a full deep copy of a signature.
func (s *Signature) Copy() common.Signature {
	sign := s.s
	return &Signature{s: sign}
}

// VerifySignature verifies a single signature using public key and message.
func VerifySignature(sig []byte, msg [32]byte, pubKey common.PublicKey) (bool, error) {
	rSig, err := SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	return rSig.Verify(pubKey, msg[:]), nil
}
