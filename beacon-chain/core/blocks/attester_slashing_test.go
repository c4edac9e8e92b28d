package blocks_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestSlashableAttestationData_CanSlash(t *testing.T) {
	att1 := util.HydrateAttestationData(&ethpb.AttestationData{
		Target: &ethpb.Checkpoint{Epoch: 1},
		Source: &ethpb.Checkpoint{Root: bytesutil.PadTo([]byte{'A'}, 32)},
	})
	att2 := util.HydrateAttestationData(&ethpb.AttestationData{
		Target: &ethpb.Checkpoint{Epoch: 1},
		Source: &ethpb.Checkpoint{Root: bytesutil.PadTo([]byte{'B'}, 32)},
	})
	assert.Equal(t, true, blocks.IsSlashableAttestationData(att1, att2), "Atts should have been slashable")

	att1.Target.Epoch = 4
	att1.Source.Epoch = 2
	att2.Source.Epoch = 3
	assert.Equal(t, true, blocks.IsSlashableAttestationData(att1, att2), "Atts should have been slashable")
}

func TestProcessAttesterSlashings_DataNotSlashable(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)

	slashings := []*ethpb.AttesterSlashing{
		{
			Attestation_1: util.HydrateIndexedAttestation(&ethpb.IndexedAttestation{}),
			Attestation_2: util.HydrateIndexedAttestation(&ethpb.IndexedAttestation{}),
		},
	}
	_, err = blocks.ProcessAttesterSlashings(context.Background(), cfg, beaconState, slashings)
	assert.ErrorContains(t, "attestations are not slashable", err)
}

func TestProcessAttesterSlashings_IndexedAttestationFailedToVerify(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)

	slashings := []*ethpb.AttesterSlashing{
		{
			Attestation_1: util.HydrateIndexedAttestation(&ethpb.IndexedAttestation{
				Data: &ethpb.AttestationData{
					Source: &ethpb.Checkpoint{Epoch: 1},
				},
				AttestingIndices: make([]uint64, cfg.MaxValidatorsPerCommittee+1),
			}),
			Attestation_2: util.HydrateIndexedAttestation(&ethpb.IndexedAttestation{
				AttestingIndices: make([]uint64, cfg.MaxValidatorsPerCommittee+1),
			}),
		},
	}
	_, err = blocks.ProcessAttesterSlashings(context.Background(), cfg, beaconState, slashings)
	assert.ErrorContains(t, "validator indices count exceeds MAX_VALIDATORS_PER_COMMITTEE", err)
}

func TestProcessAttesterSlashings_AppliesCorrectStatus(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	slashing, err := util.GenerateAttesterSlashingForValidator(cfg, beaconState, privKeys[1], types.ValidatorIndex(1))
	require.NoError(t, err)

	newState, err := blocks.ProcessAttesterSlashings(context.Background(), cfg, beaconState, []*ethpb.AttesterSlashing{slashing})
	require.NoError(t, err)

	slashedValidator := newState.Validators[1]
	require.Equal(t, true, slashedValidator.Slashed, "Validator not slashed despite slashing object being processed")
	require.NotEqual(t, cfg.FarFutureEpoch, slashedValidator.ExitEpoch, "Validator exit epoch was not set")
	require.Equal(t, cfg.MaxEffectiveBalance, newState.Slashings[0], "Slashed balance was not recorded")
}

func TestProcessAttesterSlashings_AllTargetsAlreadySlashed(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	slashing, err := util.GenerateAttesterSlashingForValidator(cfg, beaconState, privKeys[1], types.ValidatorIndex(1))
	require.NoError(t, err)
	beaconState.Validators[1].Slashed = true

	_, err = blocks.ProcessAttesterSlashings(context.Background(), cfg, beaconState, []*ethpb.AttesterSlashing{slashing})
	require.ErrorIs(t, err, blocks.ErrDuplicateOrConflicting)
	assert.ErrorContains(t, "unable to slash any validator despite confirmed attester slashing", err)
}

func TestSlashableAttesterIndices_ReturnsIntersection(t *testing.T) {
	slashing := &ethpb.AttesterSlashing{
		Attestation_1: &ethpb.IndexedAttestation{
			AttestingIndices: []uint64{1, 2, 5},
		},
		Attestation_2: &ethpb.IndexedAttestation{
			AttestingIndices: []uint64{2, 5, 7},
		},
	}
	require.DeepEqual(t, []uint64{2, 5}, blocks.SlashableAttesterIndices(slashing))
	require.Equal(t, true, blocks.SlashableAttesterIndices(nil) == nil)
}
