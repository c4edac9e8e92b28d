package fake

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/crypto/bls/common"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// PublicKey tracks the multiset of member keys behind an aggregate. Keeping
// the members lets Verify recompute per-key signatures for an XOR aggregate,
// which a single combined 48 byte value could not support.
type PublicKey struct {
	keys [][48]byte
}

// PublicKeyFromBytes creates a public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	if len(pubKey) != common.BLSPubkeyLength {
		return nil, fmt.Errorf("public key must be %d bytes", common.BLSPubkeyLength)
	}
	if bytes.Equal(pubKey, common.InfinitePublicKey[:]) {
		return nil, common.ErrInfinitePubKey
	}
	return &PublicKey{keys: [][48]byte{bytesutil.ToBytes48(pubKey)}}, nil
}

// AggregatePublicKeys aggregates the provided raw public keys into a single key.
func AggregatePublicKeys(pubs [][]byte) (common.PublicKey, error) {
	if len(pubs) == 0 {
		return nil, errors.New("nil or empty public keys")
	}
	agg := &PublicKey{keys: make([][48]byte, 0, len(pubs))}
	for _, pubkey := range pubs {
		pubKeyObj, err := PublicKeyFromBytes(pubkey)
		if err != nil {
			return nil, err
		}
		agg.keys = append(agg.keys, pubKeyObj.(*PublicKey).keys...)
	}
	return agg, nil
}

// AggregateMultiplePubkeys aggregates the provided decompressed keys into a single key.
func AggregateMultiplePubkeys(pubkeys []common.PublicKey) common.PublicKey {
	agg := &PublicKey{keys: make([][48]byte, 0, len(pubkeys))}
	for _, pubkey := range pubkeys {
		agg.keys = append(agg.keys, pubkey.(*PublicKey).keys...)
	}
	return agg
}

// Marshal a public key into a byte slice. An aggregate marshals as the XOR of
// its members, so the result is independent of aggregation order.
func (p *PublicKey) Marshal() []byte {
	var out [48]byte
	for _, k := range p.keys {
		for i := range out {
			out[i] ^= k[i]
		}
	}
	return out[:]
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() common.PublicKey {
	keys := make([][48]byte, len(p.keys))
	copy(keys, p.keys)
	return &PublicKey{keys: keys}
}

// IsInfinite checks if the public key is infinite.
func (p *PublicKey) IsInfinite() bool {
	return bytes.Equal(p.Marshal(), common.InfinitePublicKey[:])
}

// Equals checks if the provided public key is equal to
// the current one.
func (p *PublicKey) Equals(p2 common.PublicKey) bool {
	return bytes.Equal(p.Marshal(), p2.Marshal())
}

// Aggregate two public keys.
func (p *PublicKey) Aggregate(p2 common.PublicKey) common.PublicKey {
	if p == nil {
		return nil
	}
	p.keys = append(p.keys, p2.(*PublicKey).keys...)
	return p
}
