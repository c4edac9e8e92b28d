package helpers

import (
	"fmt"

	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// BlockRootAtSlot returns the block root stored in the BeaconState for a recent slot.
// It returns an error if the requested block root is not within the slot range.
//
// Spec pseudocode definition:
//  def get_block_root_at_slot(state: BeaconState, slot: Slot) -> Root:
//    """
//    Return the block root at a recent ``slot``.
//    """
//    assert slot < state.slot <= slot + SLOTS_PER_HISTORICAL_ROOT
//    return state.block_roots[slot % SLOTS_PER_HISTORICAL_ROOT]
func BlockRootAtSlot(cfg *params.BeaconChainConfig, st *state.BeaconState, slot types.Slot) ([]byte, error) {
	if slot >= st.Slot || st.Slot > slot.Add(uint64(cfg.SlotsPerHistoricalRoot)) {
		return []byte{}, fmt.Errorf("slot %d out of bounds", slot)
	}
	idx := slot.ModSlot(cfg.SlotsPerHistoricalRoot)
	if uint64(idx) >= uint64(len(st.BlockRoots)) {
		return []byte{}, fmt.Errorf("block root index %d out of bounds", idx)
	}
	return bytesutil.SafeCopyBytes(st.BlockRoots[idx]), nil
}

// BlockRoot returns the block root stored in the BeaconState for epoch start slot.
//
// Spec pseudocode definition:
//  def get_block_root(state: BeaconState, epoch: Epoch) -> Root:
//    """
//    Return the block root at the start of a recent ``epoch``.
//    """
//    return get_block_root_at_slot(state, compute_start_slot_at_epoch(epoch))
func BlockRoot(cfg *params.BeaconChainConfig, st *state.BeaconState, epoch types.Epoch) ([]byte, error) {
	s, err := StartSlot(cfg, epoch)
	if err != nil {
		return nil, err
	}
	return BlockRootAtSlot(cfg, st, s)
}
