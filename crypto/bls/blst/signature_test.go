//go:build ((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64)) && !blst_disabled

package blst_test

import (
	"errors"
	"testing"

	"github.com/prysmaticlabs/phase0/crypto/bls/blst"
	"github.com/prysmaticlabs/phase0/crypto/bls/common"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
}

func TestAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
		msgs = append(msgs, msg)
	}
	aggSig := blst.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.AggregateVerify(pubkeys, msgs), "Signature did not verify")
}

func TestAggregateVerify_CompressedSignatures(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	var sigBytes [][]byte
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
		sigBytes = append(sigBytes, sig.Marshal())
		msgs = append(msgs, msg)
	}
	aggSig := blst.AggregateSignatures(sigs)
	aggSig2, err := blst.AggregateCompressedSignatures(sigBytes)
	require.NoError(t, err)
	assert.DeepEqual(t, aggSig.Marshal(), aggSig2.Marshal(), "Signature did not match up")
	assert.Equal(t, true, aggSig2.AggregateVerify(pubkeys, msgs), "Signature did not verify")
}

func TestFastAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	for i := 0; i < 100; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
	}
	aggSig := blst.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.FastAggregateVerify(pubkeys, msg), "Signature did not verify")
}

func TestVerifyCompressed(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Non compressed signature did not verify")
	valid, err := blst.VerifySignature(sig.Marshal(), [32]byte{'h', 'e', 'l', 'l', 'o'}, pub)
	assert.NoError(t, err)
	assert.Equal(t, false, valid, "Invalid message should not verify")
	compressedMsg := [32]byte{}
	copy(compressedMsg[:], msg)
	valid, err = blst.VerifySignature(sig.Marshal(), compressedMsg, pub)
	assert.NoError(t, err)
	assert.Equal(t, false, valid, "Padded message should not verify")
}

func TestMultipleSignatureVerification(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([][]byte, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:]).Marshal()
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
		msgs = append(msgs, msg)
	}
	verify, err := blst.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	assert.NoError(t, err, "Signature did not verify")
	assert.Equal(t, true, verify, "Signature did not verify")
}

func TestMultipleSignatureVerification_FailsCorrectly(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([][]byte, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig.Marshal())
		msgs = append(msgs, msg)
	}
	// We mess with the last 2 signatures, where we modify their values
	// such that they wqould not pass in a non-aggregated signature verification.
	lastSig := sigs[len(sigs)-1]
	secondLastSig := sigs[len(sigs)-2]
	// Convert to object form
	lastSigObj, err := blst.SignatureFromBytes(lastSig)
	require.NoError(t, err, "Could not convert signature to object")
	secondLastSigObj, err := blst.SignatureFromBytes(secondLastSig)
	require.NoError(t, err, "Could not convert signature to object")

	// Aggregate lastSig with secondLastSig
	aggSig := blst.AggregateSignatures([]common.Signature{secondLastSigObj, lastSigObj})
	// Replace original signatures with their aggregated versions.
	sigs[len(sigs)-1] = aggSig.Marshal()
	sigs[len(sigs)-2] = aggSig.Marshal()

	verify, err := blst.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	assert.NoError(t, err, "Signature did not verify")
	assert.Equal(t, false, verify, "Signature verified when it was not supposed to")
}

func TestEth2FastAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	for i := 0; i < 100; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
	}
	aggSig := blst.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.Eth2FastAggregateVerify(pubkeys, msg), "Signature did not verify")
}

func TestEth2FastAggregateVerify_ReturnsFalseOnEmptyPubKeyList(t *testing.T) {
	var pubkeys []common.PublicKey
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}

	aggSig := blst.NewAggregateSignature()
	assert.Equal(t, false, aggSig.Eth2FastAggregateVerify(pubkeys, msg), "Expected verification to fail for nil pubkeys")
}

func TestEth2FastAggregateVerify_ReturnsTrueOnG2PointAtInfinity(t *testing.T) {
	var pubkeys []common.PublicKey
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}

	g2PointAtInfinity := append([]byte{0xC0}, make([]byte, 95)...)
	aggSig, err := blst.SignatureFromBytes(g2PointAtInfinity)
	require.NoError(t, err)
	assert.Equal(t, true, aggSig.Eth2FastAggregateVerify(pubkeys, msg))
}

func TestSignatureFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{
			name: "Nil",
			err:  errors.New("signature must be 96 bytes"),
		},
		{
			name:  "Empty",
			input: []byte{},
			err:   errors.New("signature must be 96 bytes"),
		},
		{
			name:  "Short",
			input: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			err:   errors.New("signature must be 96 bytes"),
		},
		{
			name:  "Bad",
			input: hexDecodeOrDie(t, "3fbfbd3d3d186d5ba27bbd87326f0b3bd1d8aa9c3a01ab8d47decb29ff3d26aea741a37f314a0ba4b521e0b9823b44bbd7ed5a810eab7b558f7a2200a56a59b0df2158da125e0056e4130135f24eb50c4608586a77a9ad2efedfe1f09f528f6a"),
			err:   errors.New("could not unmarshal bytes into signature"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := blst.SignatureFromBytes(test.input)
			assert.NotEqual(t, nil, err, "No error returned")
			assert.ErrorContains(t, test.err.Error(), err, "Unexpected error returned")
		})
	}
	t.Run("Good", func(t *testing.T) {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		sigBytes := priv.Sign([]byte("pepper")).Marshal()
		res, err := blst.SignatureFromBytes(sigBytes)
		require.NoError(t, err)
		assert.DeepEqual(t, sigBytes, res.Marshal())
	})
}

func TestCopy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)

	signatureA := priv.Sign([]byte("foo"))
	signatureB := signatureA.Copy()
	assert.DeepEqual(t, signatureA.Marshal(), signatureB.Marshal())
}
