package transition_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/transition"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestExecuteStateTransitionNoVerify_FullProcess(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	eth1Data := &ethpb.Eth1Data{
		DepositCount: 100,
		DepositRoot:  bytesutil.PadTo([]byte{2}, 32),
		BlockHash:    make([]byte, 32),
	}
	beaconState.Slot = cfg.SlotsPerEpoch - 1
	beaconState.Eth1Data.DepositCount = 100
	beaconState.LatestBlockHeader.Slot = beaconState.Slot
	beaconState.Eth1DataVotes = []*ethpb.Eth1Data{eth1Data}

	beaconState.Slot++
	epoch := helpers.CurrentEpoch(cfg, beaconState)
	randaoReveal, err := util.RandaoReveal(cfg, beaconState, epoch, privKeys)
	require.NoError(t, err)
	beaconState.Slot--

	nextSlotState, err := transition.ProcessSlots(context.Background(), cfg, beaconState, beaconState.Slot+1)
	require.NoError(t, err)
	parentRoot, err := nextSlotState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, nextSlotState)
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.ProposerIndex = proposerIdx
	block.Block.Slot = beaconState.Slot + 1
	block.Block.ParentRoot = parentRoot[:]
	block.Block.Body.RandaoReveal = randaoReveal
	block.Block.Body.Eth1Data = eth1Data

	stateRoot, err := transition.CalculateStateRoot(context.Background(), cfg, beaconState, block)
	require.NoError(t, err)

	block.Block.StateRoot = stateRoot[:]

	sig, err := util.BlockSignature(cfg, beaconState, block.Block, privKeys)
	require.NoError(t, err)
	block.Signature = sig.Marshal()

	set, _, err := transition.ExecuteStateTransitionNoVerifyAnySig(context.Background(), cfg, beaconState, block)
	assert.NoError(t, err)
	verified, err := set.Verify()
	assert.NoError(t, err)
	assert.Equal(t, true, verified, "Could not verify signature set")
}

func TestExecuteStateTransitionNoVerifySignature_CouldNotVerifyStateRoot(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 100)

	eth1Data := &ethpb.Eth1Data{
		DepositCount: 100,
		DepositRoot:  bytesutil.PadTo([]byte{2}, 32),
		BlockHash:    make([]byte, 32),
	}
	beaconState.Slot = cfg.SlotsPerEpoch - 1
	beaconState.Eth1Data.DepositCount = 100
	beaconState.LatestBlockHeader.Slot = beaconState.Slot
	beaconState.Eth1DataVotes = []*ethpb.Eth1Data{eth1Data}

	beaconState.Slot++
	epoch := helpers.CurrentEpoch(cfg, beaconState)
	randaoReveal, err := util.RandaoReveal(cfg, beaconState, epoch, privKeys)
	require.NoError(t, err)
	beaconState.Slot--

	nextSlotState, err := transition.ProcessSlots(context.Background(), cfg, beaconState, beaconState.Slot+1)
	require.NoError(t, err)
	parentRoot, err := nextSlotState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, nextSlotState)
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.ProposerIndex = proposerIdx
	block.Block.Slot = beaconState.Slot + 1
	block.Block.ParentRoot = parentRoot[:]
	block.Block.Body.RandaoReveal = randaoReveal
	block.Block.Body.Eth1Data = eth1Data

	stateRoot, err := transition.CalculateStateRoot(context.Background(), cfg, beaconState, block)
	require.NoError(t, err)

	block.Block.StateRoot = stateRoot[:]

	sig, err := util.BlockSignature(cfg, beaconState, block.Block, privKeys)
	require.NoError(t, err)
	block.Signature = sig.Marshal()

	block.Block.StateRoot = bytesutil.PadTo([]byte{'a'}, 32)
	_, _, err = transition.ExecuteStateTransitionNoVerifyAnySig(context.Background(), cfg, beaconState, block)
	require.ErrorContains(t, "could not validate state root", err)
}

func TestProcessBlockNoVerify_PassesProcessingConditions(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 128)
	genConf := &util.BlockGenConfig{
		NumProposerSlashings: 1,
		NumAttesterSlashings: 1,
		NumAttestations:      1,
	}
	block, err := util.GenerateFullBlock(cfg, beaconState, privKeys, genConf, beaconState.Slot)
	require.NoError(t, err)

	beaconState, err = transition.ProcessSlots(context.Background(), cfg, beaconState, block.Block.Slot)
	require.NoError(t, err)
	set, _, err := transition.ProcessBlockNoVerifyAnySig(context.Background(), cfg, beaconState, block)
	require.NoError(t, err)
	// Test Signature set verifies.
	verified, err := set.Verify()
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Could not verify signature set")
}

func TestProcessOperationsNoVerifyAttsSigs_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 128)
	genConf := &util.BlockGenConfig{
		NumProposerSlashings: 1,
		NumAttesterSlashings: 1,
		NumAttestations:      1,
	}
	block, err := util.GenerateFullBlock(cfg, beaconState, privKeys, genConf, beaconState.Slot)
	require.NoError(t, err)

	beaconState, err = transition.ProcessSlots(context.Background(), cfg, beaconState, block.Block.Slot)
	require.NoError(t, err)
	_, err = transition.ProcessOperationsNoVerifyAttsSigs(context.Background(), cfg, beaconState, block.Block.Body)
	require.NoError(t, err)
}

func TestCalculateStateRoot_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	block, err := util.GenerateFullBlock(cfg, beaconState, privKeys, util.DefaultBlockGenConfig(), beaconState.Slot)
	require.NoError(t, err)

	r, err := transition.CalculateStateRoot(context.Background(), cfg, beaconState, block)
	require.NoError(t, err)
	require.DeepNotEqual(t, cfg.ZeroHash, r)
	assert.Equal(t, types.Slot(0), beaconState.Slot, "Input state was mutated")
}
