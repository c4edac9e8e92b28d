package helpers

import (
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func blockRootsForTest(cfg *params.BeaconChainConfig) [][]byte {
	roots := make([][]byte, cfg.SlotsPerHistoricalRoot)
	for i := 0; i < len(roots); i++ {
		roots[i] = bytesutil.Bytes32(uint64(i))
	}
	return roots
}

func TestBlockRootAtSlot_CorrectBlockRoot(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{BlockRoots: blockRootsForTest(cfg)}

	tests := []struct {
		slot      types.Slot
		stateSlot types.Slot
	}{
		{slot: 0, stateSlot: 1},
		{slot: 2, stateSlot: 5},
		{slot: 64, stateSlot: 128},
		{slot: 511, stateSlot: 1024},
		// The ring buffer wraps after SlotsPerHistoricalRoot slots.
		{slot: 2*8192 + 5, stateSlot: 2*8192 + 100},
		{slot: 8191, stateSlot: 8192},
	}
	for _, test := range tests {
		st.Slot = test.stateSlot
		root, err := BlockRootAtSlot(cfg, st, test.slot)
		require.NoError(t, err, "BlockRootAtSlot(%d)", test.slot)
		wanted := bytesutil.Bytes32(uint64(test.slot.ModSlot(cfg.SlotsPerHistoricalRoot)))
		assert.DeepEqual(t, wanted, root, "BlockRootAtSlot(%d)", test.slot)
	}
}

func TestBlockRootAtSlot_ReturnsCopy(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{
		Slot:       1,
		BlockRoots: blockRootsForTest(cfg),
	}

	root, err := BlockRootAtSlot(cfg, st, 0)
	require.NoError(t, err)
	root[0] ^= 0xff
	assert.DeepEqual(t, bytesutil.Bytes32(0), st.BlockRoots[0], "mutating the returned root changed the state")
}

func TestBlockRootAtSlot_OutOfBounds(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{BlockRoots: blockRootsForTest(cfg)}

	tests := []struct {
		slot      types.Slot
		stateSlot types.Slot
	}{
		// Requested slot is not in the past.
		{slot: 5, stateSlot: 5},
		{slot: 100, stateSlot: 30},
		// Requested slot dropped out of the ring buffer.
		{slot: 7, stateSlot: 8200},
	}
	for _, test := range tests {
		st.Slot = test.stateSlot
		_, err := BlockRootAtSlot(cfg, st, test.slot)
		assert.ErrorContains(t, "out of bounds", err, "BlockRootAtSlot(%d)", test.slot)
	}
}

func TestBlockRootAtSlot_ShortRootsList(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{
		Slot:       20,
		BlockRoots: blockRootsForTest(cfg)[:10],
	}
	_, err := BlockRootAtSlot(cfg, st, 15)
	assert.ErrorContains(t, "block root index 15 out of bounds", err)
}

func TestBlockRoot_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{
		Slot:       200,
		BlockRoots: blockRootsForTest(cfg),
	}

	tests := []struct {
		epoch types.Epoch
		want  types.Slot
	}{
		{epoch: 0, want: 0},
		{epoch: 1, want: 32},
		{epoch: 5, want: 160},
	}
	for _, test := range tests {
		root, err := BlockRoot(cfg, st, test.epoch)
		require.NoError(t, err, "BlockRoot(%d)", test.epoch)
		assert.DeepEqual(t, bytesutil.Bytes32(uint64(test.want)), root, "BlockRoot(%d)", test.epoch)
	}

	// Epoch 10 starts at slot 320, past the state slot.
	_, err := BlockRoot(cfg, st, 10)
	assert.ErrorContains(t, "out of bounds", err)
}
