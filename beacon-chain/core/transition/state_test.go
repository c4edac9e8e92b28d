package transition_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/transition"
	"github.com/prysmaticlabs/phase0/beacon-chain/state/stateutil"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestGenesisBeaconState_OK(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()

	genesisTime := uint64(99999)
	depositCount := uint64(64)

	deposits, _, err := util.DeterministicDepositsAndKeys(cfg, depositCount)
	require.NoError(t, err)
	eth1Data, err := util.DeterministicEth1Data(cfg, len(deposits))
	require.NoError(t, err)

	newState, err := transition.GenesisBeaconState(context.Background(), cfg, deposits, genesisTime, eth1Data)
	require.NoError(t, err)

	// Misc fields checks.
	assert.Equal(t, types.Slot(0), newState.Slot, "Slot was not correctly initialized")
	assert.Equal(t, genesisTime, newState.GenesisTime, "GenesisTime was not correctly initialized")
	assert.DeepEqual(t, cfg.GenesisForkVersion, newState.Fork.CurrentVersion, "Fork.CurrentVersion was not correctly initialized")
	assert.DeepEqual(t, cfg.GenesisForkVersion, newState.Fork.PreviousVersion, "Fork.PreviousVersion was not correctly initialized")
	assert.Equal(t, types.Epoch(0), newState.Fork.Epoch, "Fork.Epoch was not correctly initialized")

	// Validator registry fields checks.
	require.Equal(t, int(depositCount), len(newState.Validators), "Validators was not correctly initialized")
	require.Equal(t, int(depositCount), len(newState.Balances), "Balances was not correctly initialized")
	for i, balance := range newState.Balances {
		assert.Equal(t, cfg.MaxEffectiveBalance, balance, "Balance of validator %d was not correctly initialized", i)
	}
	activeCount, err := helpers.ActiveValidatorCount(cfg, newState, 0)
	require.NoError(t, err)
	assert.Equal(t, depositCount, activeCount, "All genesis validators should be active")

	validatorsRoot, err := stateutil.ValidatorRegistryRoot(cfg, newState.Validators)
	require.NoError(t, err)
	assert.DeepEqual(t, validatorsRoot[:], newState.GenesisValidatorsRoot, "GenesisValidatorsRoot was not correctly initialized")

	// Randomness and committees fields checks.
	require.Equal(t, int(cfg.EpochsPerHistoricalVector), len(newState.RandaoMixes), "RandaoMixes was not correctly initialized")
	assert.DeepEqual(t, eth1Data.BlockHash, newState.RandaoMixes[0], "RandaoMixes should be seeded with the eth1 block hash")

	// History fields checks.
	require.Equal(t, int(cfg.SlotsPerHistoricalRoot), len(newState.BlockRoots), "BlockRoots was not correctly initialized")
	require.Equal(t, int(cfg.SlotsPerHistoricalRoot), len(newState.StateRoots), "StateRoots was not correctly initialized")
	assert.DeepEqual(t, cfg.ZeroHash[:], newState.BlockRoots[0], "BlockRoots was not correctly initialized")
	assert.Equal(t, 0, len(newState.HistoricalRoots), "HistoricalRoots was not correctly initialized")
	require.NotNil(t, newState.LatestBlockHeader)
	assert.DeepEqual(t, cfg.ZeroHash[:], newState.LatestBlockHeader.ParentRoot, "LatestBlockHeader.ParentRoot was not correctly initialized")

	// Slashings fields checks.
	require.Equal(t, int(cfg.EpochsPerSlashingsVector), len(newState.Slashings), "Slashings was not correctly initialized")

	// Finality fields checks.
	assert.Equal(t, types.Epoch(0), newState.PreviousJustifiedCheckpoint.Epoch, "PreviousJustifiedCheckpoint.Epoch was not correctly initialized")
	assert.Equal(t, types.Epoch(0), newState.CurrentJustifiedCheckpoint.Epoch, "CurrentJustifiedCheckpoint.Epoch was not correctly initialized")
	assert.Equal(t, types.Epoch(0), newState.FinalizedCheckpoint.Epoch, "FinalizedCheckpoint.Epoch was not correctly initialized")

	// Eth1 data fields checks.
	assert.Equal(t, depositCount, newState.Eth1DepositIndex, "Eth1DepositIndex was not correctly initialized")
	assert.Equal(t, depositCount, newState.Eth1Data.DepositCount, "Eth1Data.DepositCount was not correctly initialized")
	assert.Equal(t, 0, len(newState.Eth1DataVotes), "Eth1DataVotes was not correctly initialized")
}

func TestGenesisBeaconState_NilEth1Data(t *testing.T) {
	cfg := params.MainnetConfig()
	deposits, _, err := util.DeterministicDepositsAndKeys(cfg, 1)
	require.NoError(t, err)

	_, err = transition.GenesisBeaconState(context.Background(), cfg, deposits, 0, nil)
	assert.ErrorContains(t, "no eth1data provided for genesis state", err)
}

func TestGenesisBeaconState_HashesConsistently(t *testing.T) {
	helpers.ClearCache()
	cfg := params.MainnetConfig()

	deposits, _, err := util.DeterministicDepositsAndKeys(cfg, 32)
	require.NoError(t, err)
	eth1Data, err := util.DeterministicEth1Data(cfg, len(deposits))
	require.NoError(t, err)

	st1, err := transition.GenesisBeaconState(context.Background(), cfg, deposits, 0, eth1Data)
	require.NoError(t, err)
	st2, err := transition.GenesisBeaconState(context.Background(), cfg, deposits, 0, eth1Data)
	require.NoError(t, err)

	r1, err := st1.HashTreeRoot(context.Background(), cfg)
	require.NoError(t, err)
	r2, err := st2.HashTreeRoot(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "Genesis state roots should be deterministic")
}

func TestEmptyGenesisState(t *testing.T) {
	cfg := params.MainnetConfig()
	st := transition.EmptyGenesisState(cfg)

	assert.Equal(t, types.Slot(0), st.Slot)
	assert.Equal(t, 0, len(st.Validators))
	assert.Equal(t, 0, len(st.Balances))
	assert.DeepEqual(t, cfg.GenesisForkVersion, st.Fork.CurrentVersion)
	assert.DeepEqual(t, &ethpb.Eth1Data{}, st.Eth1Data)
	assert.Equal(t, uint64(0), st.Eth1DepositIndex)
}
