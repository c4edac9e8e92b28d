package bls_test

import (
	"testing"

	"github.com/prysmaticlabs/phase0/crypto/bls"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestSignatureSet_Join(t *testing.T) {
	setA := bls.NewSet()
	setB := bls.NewSet()
	for i := 0; i < 3; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		msg := [32]byte{byte(i)}
		setA.Join(&bls.SignatureSet{
			Signatures: [][]byte{priv.Sign(msg[:]).Marshal()},
			PublicKeys: []bls.PublicKey{priv.PublicKey()},
			Messages:   [][32]byte{msg},
		})
		msg = [32]byte{byte(i), 1}
		setB.Join(&bls.SignatureSet{
			Signatures: [][]byte{priv.Sign(msg[:]).Marshal()},
			PublicKeys: []bls.PublicKey{priv.PublicKey()},
			Messages:   [][32]byte{msg},
		})
	}
	joined := setA.Join(setB)
	assert.Equal(t, 6, joined.Len())
	assert.Equal(t, 6, len(joined.Signatures))
	assert.Equal(t, 6, len(joined.PublicKeys))
	assert.Equal(t, 6, len(joined.Messages))

	verified, err := joined.Verify()
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Joined set did not verify")
}

func TestSignatureSet_VerifyDetectsBadEntry(t *testing.T) {
	set := bls.NewSet()
	for i := 0; i < 3; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		msg := [32]byte{byte(i)}
		set.Join(&bls.SignatureSet{
			Signatures: [][]byte{priv.Sign(msg[:]).Marshal()},
			PublicKeys: []bls.PublicKey{priv.PublicKey()},
			Messages:   [][32]byte{msg},
		})
	}
	// Tamper with one message so its signature no longer matches.
	set.Messages[1] = [32]byte{0xde, 0xad}
	verified, err := set.Verify()
	require.NoError(t, err)
	assert.Equal(t, false, verified, "Set with a tampered message verified")
}

func TestSignatureSet_VerifyMismatchedLengths(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	msg := [32]byte{1}
	set := &bls.SignatureSet{
		Signatures: [][]byte{priv.Sign(msg[:]).Marshal()},
		PublicKeys: []bls.PublicKey{priv.PublicKey(), priv.PublicKey()},
		Messages:   [][32]byte{msg},
	}
	_, err = set.Verify()
	assert.ErrorContains(t, "mismatched signature set lengths", err)
}

func TestSignatureSet_Copy(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	msg := [32]byte{1}
	set := &bls.SignatureSet{
		Signatures: [][]byte{priv.Sign(msg[:]).Marshal()},
		PublicKeys: []bls.PublicKey{priv.PublicKey()},
		Messages:   [][32]byte{msg},
	}
	cp := set.Copy()
	cp.Signatures[0][0] ^= 0xFF
	cp.Messages[0] = [32]byte{2}

	verified, err := set.Verify()
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Original set was mutated through its copy")
}
