package interop_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/config/params"
	"github.com/prysmaticlabs/phase0/container/trie"
	"github.com/prysmaticlabs/phase0/runtime/interop"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestGenerateGenesisState(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	numValidators := uint64(64)
	genesisState, deposits, err := interop.GenerateGenesisState(context.Background(), cfg, 0, numValidators)
	require.NoError(t, err)
	assert.Equal(t, int(numValidators), genesisState.NumValidators())
	assert.Equal(t, uint64(len(deposits)), genesisState.Eth1DepositIndex)
	for i, dep := range deposits {
		assert.Equal(t, true, len(dep.Proof) == int(cfg.DepositContractTreeDepth)+1, "deposit %d carries a short proof", i)
	}
}

func TestGenerateGenesisStateFromDepositData(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	privKeys, pubKeys, err := interop.DeterministicallyGenerateKeys(0 /*startIndex*/, 32)
	require.NoError(t, err)
	depositDataItems, depositDataRoots, err := interop.DepositDataFromKeys(cfg, privKeys, pubKeys)
	require.NoError(t, err)
	dt, err := trie.GenerateTrieFromItems(depositDataRoots, cfg.DepositContractTreeDepth)
	require.NoError(t, err)
	deposits, err := interop.GenerateDepositsFromData(depositDataItems, dt)
	require.NoError(t, err)
	root, err := dt.HashTreeRoot()
	require.NoError(t, err)
	genesisState, _, err := interop.GenerateGenesisStateFromDepositData(context.Background(), cfg, 72382623, depositDataItems, depositDataRoots)
	require.NoError(t, err)
	assert.Equal(t, 32, genesisState.NumValidators())
	assert.Equal(t, uint64(72382623), genesisState.GenesisTime)
	assert.DeepEqual(t, root[:], genesisState.Eth1Data.DepositRoot)
	assert.Equal(t, uint64(len(deposits)), genesisState.Eth1Data.DepositCount)
}

func TestDeterministicallyGenerateKeys_Deterministic(t *testing.T) {
	privKeys, pubKeys, err := interop.DeterministicallyGenerateKeys(0, 16)
	require.NoError(t, err)
	privKeysAgain, pubKeysAgain, err := interop.DeterministicallyGenerateKeys(0, 16)
	require.NoError(t, err)
	require.Equal(t, len(privKeys), len(privKeysAgain))
	for i := range pubKeys {
		assert.DeepEqual(t, privKeys[i].Marshal(), privKeysAgain[i].Marshal())
		assert.DeepEqual(t, pubKeys[i].Marshal(), pubKeysAgain[i].Marshal())
	}
	_, laterKeys, err := interop.DeterministicallyGenerateKeys(8, 8)
	require.NoError(t, err)
	for i := range laterKeys {
		assert.DeepEqual(t, pubKeys[i+8].Marshal(), laterKeys[i].Marshal())
	}
}
