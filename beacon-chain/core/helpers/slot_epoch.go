package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// SlotToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//  def compute_epoch_at_slot(slot: Slot) -> Epoch:
//    """
//    Return the epoch number at ``slot``.
//    """
//    return Epoch(slot // SLOTS_PER_EPOCH)
func SlotToEpoch(cfg *params.BeaconChainConfig, slot types.Slot) types.Epoch {
	return types.Epoch(slot.DivSlot(cfg.SlotsPerEpoch))
}

// CurrentEpoch returns the current epoch number calculated from
// the slot number stored in beacon state.
//
// Spec pseudocode definition:
//  def get_current_epoch(state: BeaconState) -> Epoch:
//    """
//    Return the current epoch.
//    """
//    return compute_epoch_at_slot(state.slot)
func CurrentEpoch(cfg *params.BeaconChainConfig, state *state.BeaconState) types.Epoch {
	return SlotToEpoch(cfg, state.Slot)
}

// PrevEpoch returns the previous epoch number calculated from
// the slot number stored in beacon state. It also checks for
// underflow condition.
//
// Spec pseudocode definition:
//  def get_previous_epoch(state: BeaconState) -> Epoch:
//    """`
//    Return the previous epoch (unless the current epoch is ``GENESIS_EPOCH``).
//    """
//    current_epoch = get_current_epoch(state)
//    return GENESIS_EPOCH if current_epoch == GENESIS_EPOCH else Epoch(current_epoch - 1)
func PrevEpoch(cfg *params.BeaconChainConfig, state *state.BeaconState) types.Epoch {
	current := CurrentEpoch(cfg, state)
	if current == 0 {
		return current
	}
	return current - 1
}

// NextEpoch returns the next epoch number calculated from
// the slot number stored in beacon state.
func NextEpoch(cfg *params.BeaconChainConfig, state *state.BeaconState) types.Epoch {
	return SlotToEpoch(cfg, state.Slot) + 1
}

// StartSlot returns the first slot number of the
// current epoch.
//
// Spec pseudocode definition:
//  def compute_start_slot_at_epoch(epoch: Epoch) -> Slot:
//    """
//    Return the start slot of ``epoch``.
//    """
//    return Slot(epoch * SLOTS_PER_EPOCH)
func StartSlot(cfg *params.BeaconChainConfig, epoch types.Epoch) (types.Slot, error) {
	slot, err := cfg.SlotsPerEpoch.SafeMul(uint64(epoch))
	if err != nil {
		return slot, errors.Errorf("start slot calculation overflows: %v", err)
	}
	return slot, nil
}

// EndSlot returns the last slot number of the
// current epoch.
func EndSlot(cfg *params.BeaconChainConfig, epoch types.Epoch) (types.Slot, error) {
	if epoch == types.Epoch(^uint64(0)) {
		return 0, errors.New("start slot calculation overflows")
	}
	slot, err := StartSlot(cfg, epoch+1)
	if err != nil {
		return 0, err
	}
	return slot - 1, nil
}

// IsEpochStart returns true if the given slot number is an epoch starting slot
// number.
func IsEpochStart(cfg *params.BeaconChainConfig, slot types.Slot) bool {
	return slot%cfg.SlotsPerEpoch == 0
}

// IsEpochEnd returns true if the given slot number is an epoch ending slot
// number.
func IsEpochEnd(cfg *params.BeaconChainConfig, slot types.Slot) bool {
	return IsEpochStart(cfg, slot+1)
}

// SlotsSinceEpochStarts returns number of slots since the start of the epoch.
func SlotsSinceEpochStarts(cfg *params.BeaconChainConfig, slot types.Slot) types.Slot {
	return slot.ModSlot(cfg.SlotsPerEpoch)
}
