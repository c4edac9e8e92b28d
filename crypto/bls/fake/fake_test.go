package fake_test

import (
	"testing"

	"github.com/prysmaticlabs/phase0/crypto/bls/common"
	"github.com/prysmaticlabs/phase0/crypto/bls/fake"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func keyFromByte(t *testing.T, b byte) common.SecretKey {
	raw := bytesutil.ToBytes32([]byte{b})
	sk, err := fake.SecretKeyFromBytes(raw[:])
	require.NoError(t, err)
	return sk
}

func TestSignVerify(t *testing.T) {
	priv := keyFromByte(t, 1)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
	assert.Equal(t, false, sig.Verify(pub, []byte("world")), "Signature verified a different message")
}

func TestSignDeterministic(t *testing.T) {
	msg := []byte("hello")
	sigA := keyFromByte(t, 1).Sign(msg)
	sigB := keyFromByte(t, 1).Sign(msg)
	assert.DeepEqual(t, sigA.Marshal(), sigB.Marshal(), "Same key and message produced differing signatures")

	sigC := keyFromByte(t, 2).Sign(msg)
	assert.DeepNotEqual(t, sigA.Marshal(), sigC.Marshal(), "Different keys produced the same signature")
}

func TestCorruptedSignatureFails(t *testing.T) {
	priv := keyFromByte(t, 1)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sigBytes := priv.Sign(msg).Marshal()
	sigBytes[5] ^= 0xFF

	sig, err := fake.SignatureFromBytes(sigBytes)
	require.NoError(t, err)
	assert.Equal(t, false, sig.Verify(pub, msg), "Corrupted signature verified")
}

func TestAggregateSignatures_OrderIndependent(t *testing.T) {
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	var sigs []common.Signature
	for i := byte(1); i <= 8; i++ {
		sigs = append(sigs, keyFromByte(t, i).Sign(msg[:]))
	}
	forward := fake.AggregateSignatures(sigs)

	reversed := make([]common.Signature, len(sigs))
	for i := range sigs {
		reversed[len(sigs)-1-i] = sigs[i]
	}
	backward := fake.AggregateSignatures(reversed)
	assert.DeepEqual(t, forward.Marshal(), backward.Marshal(), "Aggregation depended on ordering")
}

func TestFastAggregateVerify(t *testing.T) {
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	var pubs []common.PublicKey
	var sigs []common.Signature
	for i := byte(1); i <= 8; i++ {
		priv := keyFromByte(t, i)
		pubs = append(pubs, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]))
	}
	aggSig := fake.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.FastAggregateVerify(pubs, msg), "Aggregate signature did not verify")

	wrong := [32]byte{'w', 'o', 'r', 'l', 'd'}
	assert.Equal(t, false, aggSig.FastAggregateVerify(pubs, wrong), "Aggregate signature verified a different message")
	assert.Equal(t, false, aggSig.FastAggregateVerify(pubs[:7], msg), "Aggregate signature verified with a missing key")
}

func TestVerifyWithAggregatedPublicKey(t *testing.T) {
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	var pubs []common.PublicKey
	var sigs []common.Signature
	for i := byte(1); i <= 4; i++ {
		priv := keyFromByte(t, i)
		pubs = append(pubs, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]))
	}
	aggSig := fake.AggregateSignatures(sigs)
	aggPub := fake.AggregateMultiplePubkeys(pubs)
	assert.Equal(t, true, aggSig.Verify(aggPub, msg[:]), "Aggregate signature did not verify against aggregate key")
}

func TestAggregateVerify(t *testing.T) {
	var pubs []common.PublicKey
	var sigs []common.Signature
	var msgs [][32]byte
	for i := byte(1); i <= 8; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', i}
		priv := keyFromByte(t, i)
		pubs = append(pubs, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]))
		msgs = append(msgs, msg)
	}
	aggSig := fake.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.AggregateVerify(pubs, msgs), "Signature did not verify")
}

func TestVerifyMultipleSignatures(t *testing.T) {
	var pubs []common.PublicKey
	var sigs [][]byte
	var msgs [][32]byte
	for i := byte(1); i <= 8; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', i}
		priv := keyFromByte(t, i)
		pubs = append(pubs, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]).Marshal())
		msgs = append(msgs, msg)
	}
	verified, err := fake.VerifyMultipleSignatures(sigs, msgs, pubs)
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Signatures did not verify")

	sigs[3][10] ^= 0xFF
	verified, err = fake.VerifyMultipleSignatures(sigs, msgs, pubs)
	require.NoError(t, err)
	assert.Equal(t, false, verified, "Corrupted batch verified")
}

func TestInfinitePublicKeyRejected(t *testing.T) {
	_, err := fake.PublicKeyFromBytes(common.InfinitePublicKey[:])
	require.Equal(t, common.ErrInfinitePubKey, err)
}

func TestZeroSecretKeyRejected(t *testing.T) {
	_, err := fake.SecretKeyFromBytes(common.ZeroSecretKey[:])
	require.Equal(t, common.ErrZeroKey, err)
}

func TestEth2FastAggregateVerify_ReturnsTrueOnInfiniteSignature(t *testing.T) {
	sig, err := fake.SignatureFromBytes(common.InfiniteSignature[:])
	require.NoError(t, err)
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	assert.Equal(t, true, sig.Eth2FastAggregateVerify(nil, msg))
}

func TestPublicKeyRoundTrip(t *testing.T) {
	priv := keyFromByte(t, 1)
	pubBytes := priv.PublicKey().Marshal()
	pub, err := fake.PublicKeyFromBytes(pubBytes)
	require.NoError(t, err)
	assert.DeepEqual(t, pubBytes, pub.Marshal())
}
