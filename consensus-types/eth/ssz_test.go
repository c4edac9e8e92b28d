package eth

import (
	"encoding/hex"
	"testing"

	fssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func validAttestationData() *AttestationData {
	return &AttestationData{
		Slot:            3,
		CommitteeIndex:  1,
		BeaconBlockRoot: make([]byte, 32),
		Source:          &Checkpoint{Epoch: 0, Root: make([]byte, 32)},
		Target:          &Checkpoint{Epoch: 1, Root: make([]byte, 32)},
	}
}

func validIndexedAttestation() *IndexedAttestation {
	return &IndexedAttestation{
		AttestingIndices: []uint64{1, 2, 3},
		Data:             validAttestationData(),
		Signature:        make([]byte, 96),
	}
}

func validSignedHeader() *SignedBeaconBlockHeader {
	return &SignedBeaconBlockHeader{
		Header: &BeaconBlockHeader{
			Slot:          5,
			ProposerIndex: 10,
			ParentRoot:    make([]byte, 32),
			StateRoot:     make([]byte, 32),
			BodyRoot:      make([]byte, 32),
		},
		Signature: make([]byte, 96),
	}
}

func validSignedBlock() *SignedBeaconBlock {
	proof := make([][]byte, 33)
	for i := range proof {
		proof[i] = make([]byte, 32)
	}
	return &SignedBeaconBlock{
		Block: &BeaconBlock{
			Slot:          16,
			ProposerIndex: 7,
			ParentRoot:    make([]byte, 32),
			StateRoot:     make([]byte, 32),
			Body: &BeaconBlockBody{
				RandaoReveal: make([]byte, 96),
				Eth1Data: &Eth1Data{
					DepositRoot:  make([]byte, 32),
					DepositCount: 8,
					BlockHash:    make([]byte, 32),
				},
				Graffiti: make([]byte, 32),
				ProposerSlashings: []*ProposerSlashing{
					{Header_1: validSignedHeader(), Header_2: validSignedHeader()},
				},
				AttesterSlashings: []*AttesterSlashing{
					{Attestation_1: validIndexedAttestation(), Attestation_2: validIndexedAttestation()},
				},
				Attestations: []*Attestation{
					{
						AggregationBits: bitfield.NewBitlist(8),
						Data:            validAttestationData(),
						Signature:       make([]byte, 96),
					},
				},
				Deposits: []*Deposit{
					{
						Proof: proof,
						Data: &DepositData{
							PublicKey:             make([]byte, 48),
							WithdrawalCredentials: make([]byte, 32),
							Amount:                32000000000,
							Signature:             make([]byte, 96),
						},
					},
				},
				VoluntaryExits: []*SignedVoluntaryExit{
					{Exit: &VoluntaryExit{Epoch: 2, ValidatorIndex: 3}, Signature: make([]byte, 96)},
				},
				Transfers: []*Transfer{
					{
						Sender:    1,
						Recipient: 2,
						Amount:    100,
						Fee:       1,
						Slot:      16,
						Pubkey:    make([]byte, 48),
						Signature: make([]byte, 96),
					},
				},
			},
		},
		Signature: make([]byte, 96),
	}
}

func TestSignedBeaconBlock_RoundTrip(t *testing.T) {
	blk := validSignedBlock()
	enc, err := blk.MarshalSSZ()
	require.NoError(t, err)
	assert.Equal(t, blk.SizeSSZ(), len(enc))

	decoded := &SignedBeaconBlock{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	require.DeepEqual(t, blk, decoded)

	r1, err := blk.HashTreeRoot()
	require.NoError(t, err)
	r2, err := decoded.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestSignedBeaconBlock_UnmarshalTruncated(t *testing.T) {
	blk := validSignedBlock()
	enc, err := blk.MarshalSSZ()
	require.NoError(t, err)

	decoded := &SignedBeaconBlock{}
	assert.NotNil(t, decoded.UnmarshalSSZ(enc[:50]))
}

func TestTransfer_RoundTrip(t *testing.T) {
	tr := &Transfer{
		Sender:    4,
		Recipient: 5,
		Amount:    1000,
		Fee:       10,
		Slot:      42,
		Pubkey:    make([]byte, 48),
		Signature: make([]byte, 96),
	}
	enc, err := tr.MarshalSSZ()
	require.NoError(t, err)
	assert.Equal(t, 184, len(enc))

	decoded := &Transfer{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	require.DeepEqual(t, tr, decoded)
}

func TestCheckpoint_HashTreeRoot_Zero(t *testing.T) {
	cp := &Checkpoint{Epoch: 0, Root: make([]byte, 32)}
	root, err := cp.HashTreeRoot()
	require.NoError(t, err)

	// Root of two zero chunks.
	want, err := hex.DecodeString("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	require.NoError(t, err)
	assert.DeepEqual(t, want, root[:])
}

func TestBeaconBlockBody_SizeAccountsForOperations(t *testing.T) {
	body := &BeaconBlockBody{
		RandaoReveal: make([]byte, 96),
		Eth1Data: &Eth1Data{
			DepositRoot:  make([]byte, 32),
			DepositCount: 0,
			BlockHash:    make([]byte, 32),
		},
		Graffiti: make([]byte, 32),
	}
	base := body.SizeSSZ()
	body.VoluntaryExits = []*SignedVoluntaryExit{
		{Exit: &VoluntaryExit{}, Signature: make([]byte, 96)},
	}
	assert.Equal(t, base+112, body.SizeSSZ())
}

func TestMarshalSSZ_BadFixedFieldLengths(t *testing.T) {
	f := &Fork{
		PreviousVersion: make([]byte, 3),
		CurrentVersion:  make([]byte, 4),
	}
	_, err := f.MarshalSSZ()
	require.ErrorIs(t, err, fssz.ErrBytesLength)

	proof := make([][]byte, 32)
	for i := range proof {
		proof[i] = make([]byte, 32)
	}
	d := &Deposit{
		Proof: proof,
		Data: &DepositData{
			PublicKey:             make([]byte, 48),
			WithdrawalCredentials: make([]byte, 32),
			Amount:                32,
			Signature:             make([]byte, 96),
		},
	}
	_, err = d.MarshalSSZ()
	require.ErrorIs(t, err, fssz.ErrVectorLength)
}

func TestMarshalSSZ_ListOverLimit(t *testing.T) {
	att := validIndexedAttestation()
	att.AttestingIndices = make([]uint64, 2049)
	_, err := att.MarshalSSZ()
	require.ErrorIs(t, err, fssz.ErrListTooBig)
}

func TestUnmarshalSSZ_BadSize(t *testing.T) {
	f := &Fork{}
	require.ErrorIs(t, f.UnmarshalSSZ(make([]byte, 15)), fssz.ErrSize)
}
