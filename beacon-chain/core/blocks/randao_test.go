package blocks_test

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestProcessRandao_IncorrectProposerFailsVerification(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)
	// We fetch the proposer's index as that is whom the RANDAO will be verified against.
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)
	epoch := types.Epoch(0)
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint64(buf, uint64(epoch))
	domain, err := signing.Domain(beaconState.Fork, epoch, cfg.DomainRandao, beaconState.GenesisValidatorsRoot)
	require.NoError(t, err)
	root, err := (&ethpb.SigningData{ObjectRoot: buf, Domain: domain}).HashTreeRoot()
	require.NoError(t, err)
	// We make a validator other than the proposer sign the message.
	epochSignature := privKeys[(uint64(proposerIdx)+1)%uint64(beaconState.NumValidators())].Sign(root[:])
	body := &ethpb.BeaconBlockBody{
		RandaoReveal: epochSignature.Marshal(),
	}

	want := "randao reveal signature did not verify"
	_, err = blocks.ProcessRandao(context.Background(), cfg, beaconState, body)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, signing.ErrSigFailedToVerify)
}

func TestProcessRandao_SignatureVerifiesAndUpdatesLatestStateMixes(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	epoch := helpers.CurrentEpoch(cfg, beaconState)
	epochSignature, err := util.RandaoReveal(cfg, beaconState, epoch, privKeys)
	require.NoError(t, err)

	oldMix := make([]byte, 32)
	copy(oldMix, beaconState.RandaoMixes[epoch.Mod(uint64(cfg.EpochsPerHistoricalVector))])

	body := &ethpb.BeaconBlockBody{
		RandaoReveal: epochSignature,
	}
	newState, err := blocks.ProcessRandao(context.Background(), cfg, beaconState, body)
	require.NoError(t, err, "Unexpected error processing block randao")

	mix := newState.RandaoMixes[epoch.Mod(uint64(cfg.EpochsPerHistoricalVector))]
	assert.DeepNotEqual(t, oldMix, mix, "Expected the randao mix to be overwritten by the reveal")
}

func TestProcessRandaoNoVerify_UpdatesMix(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)

	body := &ethpb.BeaconBlockBody{
		RandaoReveal: make([]byte, 96),
	}
	newState, err := blocks.ProcessRandaoNoVerify(context.Background(), cfg, beaconState, body)
	require.NoError(t, err)
	mix := newState.RandaoMixes[0]
	assert.DeepNotEqual(t, cfg.ZeroHash[:], mix, "Expected the zero mix to be overwritten by the hashed reveal")
}

func TestRandaoSignatureSet_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	epoch := helpers.CurrentEpoch(cfg, beaconState)
	epochSignature, err := util.RandaoReveal(cfg, beaconState, epoch, privKeys)
	require.NoError(t, err)

	body := &ethpb.BeaconBlockBody{
		RandaoReveal: epochSignature,
	}
	set, err := blocks.RandaoSignatureSet(cfg, beaconState, body)
	require.NoError(t, err)
	verified, err := set.Verify()
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Unable to verify randao signature set")
}
