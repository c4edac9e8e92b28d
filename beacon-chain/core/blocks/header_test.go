package blocks_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestProcessBlockHeader_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Slot = 1

	parentRoot, err := beaconState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)

	block := util.NewBeaconBlock()
	block.Block.Slot = 1
	block.Block.ProposerIndex = proposerIdx
	block.Block.ParentRoot = parentRoot[:]
	block.Signature, err = signing.ComputeDomainAndSign(beaconState.Fork, beaconState.GenesisValidatorsRoot, 0, block.Block, cfg.DomainBeaconProposer, privKeys[proposerIdx])
	require.NoError(t, err)

	newState, err := blocks.ProcessBlockHeader(context.Background(), cfg, beaconState, block)
	require.NoError(t, err, "Failed to process block header")

	bodyRoot, err := block.Block.Body.HashTreeRoot()
	require.NoError(t, err)
	want := &ethpb.BeaconBlockHeader{
		Slot:          block.Block.Slot,
		ProposerIndex: proposerIdx,
		ParentRoot:    parentRoot[:],
		StateRoot:     cfg.ZeroHash[:],
		BodyRoot:      bodyRoot[:],
	}
	require.DeepEqual(t, want, newState.LatestBlockHeader, "Latest block header was not updated")
}

func TestProcessBlockHeader_WrongProposerSig(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Slot = 1

	parentRoot, err := beaconState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)

	block := util.NewBeaconBlock()
	block.Block.Slot = 1
	block.Block.ProposerIndex = proposerIdx
	block.Block.ParentRoot = parentRoot[:]
	// Sign with a key that does not belong to the proposer.
	wrongKey := privKeys[(uint64(proposerIdx)+1)%uint64(beaconState.NumValidators())]
	block.Signature, err = signing.ComputeDomainAndSign(beaconState.Fork, beaconState.GenesisValidatorsRoot, 0, block.Block, cfg.DomainBeaconProposer, wrongKey)
	require.NoError(t, err)

	_, err = blocks.ProcessBlockHeader(context.Background(), cfg, beaconState, block)
	require.ErrorIs(t, err, signing.ErrSigFailedToVerify)
}

func TestProcessBlockHeader_NilBlock(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)
	_, err = blocks.ProcessBlockHeader(context.Background(), cfg, beaconState, nil)
	assert.ErrorContains(t, "nil block", err)
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, nil)
	assert.ErrorContains(t, "nil block", err)
}

func TestProcessBlockHeaderNoVerify_StateSlotMismatch(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.Slot = 1

	want := "state slot 0 does not match block slot 1"
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, block.Block)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, blocks.ErrHeaderMismatch)
}

func TestProcessBlockHeaderNoVerify_WrongProposerIndex(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, _ := util.DeterministicGenesisState(t, cfg, 64)

	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.ProposerIndex = proposerIdx + 1

	want := fmt.Sprintf("proposer index %d does not match calculated proposer index %d", proposerIdx+1, proposerIdx)
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, block.Block)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, blocks.ErrHeaderMismatch)
}

func TestProcessBlockHeaderNoVerify_BlockSlotNotNewer(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, _ := util.DeterministicGenesisState(t, cfg, 64)

	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.ProposerIndex = proposerIdx

	want := "block slot 0 is not greater than latest header slot 0"
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, block.Block)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, blocks.ErrHeaderMismatch)
}

func TestProcessBlockHeaderNoVerify_ParentRootMismatch(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, _ := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Slot = 1

	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.Slot = 1
	block.Block.ProposerIndex = proposerIdx
	block.Block.ParentRoot = bytesutil.PadTo([]byte{'A'}, 32)

	want := "does not match the latest block header root"
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, block.Block)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, blocks.ErrHeaderMismatch)
}

func TestProcessBlockHeaderNoVerify_SlashedProposer(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, _ := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Slot = 1

	parentRoot, err := beaconState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)
	beaconState.Validators[proposerIdx].Slashed = true

	block := util.NewBeaconBlock()
	block.Block.Slot = 1
	block.Block.ProposerIndex = proposerIdx
	block.Block.ParentRoot = parentRoot[:]

	want := fmt.Sprintf("proposer at index %d was previously slashed", proposerIdx)
	_, err = blocks.ProcessBlockHeaderNoVerify(context.Background(), cfg, beaconState, block.Block)
	assert.ErrorContains(t, want, err)
	require.ErrorIs(t, err, blocks.ErrHeaderMismatch)
}

func TestBlockSignatureSet_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Slot = 1

	parentRoot, err := beaconState.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)

	block := util.NewBeaconBlock()
	block.Block.Slot = 1
	block.Block.ProposerIndex = proposerIdx
	block.Block.ParentRoot = parentRoot[:]
	block.Signature, err = signing.ComputeDomainAndSign(beaconState.Fork, beaconState.GenesisValidatorsRoot, 0, block.Block, cfg.DomainBeaconProposer, privKeys[proposerIdx])
	require.NoError(t, err)

	set, err := blocks.BlockSignatureSet(cfg, beaconState, block)
	require.NoError(t, err)
	verified, err := set.Verify()
	require.NoError(t, err)
	assert.Equal(t, true, verified, "Block signature set did not verify")
}

func TestBlockSignatureSet_UnknownProposer(t *testing.T) {
	cfg := params.MainnetConfig()
	beaconState, err := util.NewBeaconState()
	require.NoError(t, err)
	block := util.NewBeaconBlock()
	block.Block.ProposerIndex = types.ValidatorIndex(100)

	_, err = blocks.BlockSignatureSet(cfg, beaconState, block)
	require.ErrorIs(t, err, blocks.ErrUnknownValidator)
}
