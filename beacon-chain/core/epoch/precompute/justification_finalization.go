package precompute

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
)

// ProcessJustificationAndFinalizationPreCompute processes justification and finalization during
// epoch processing. This is where a beacon node can justify and finalize a new epoch.
// Note: this is an optimized version by passing in precomputed total and attesting balances.
//
// Spec pseudocode definition:
//
//  def process_justification_and_finalization(state: BeaconState) -> None:
//    # Initial FFG checkpoint values have a `0x00` stub for `root`.
//    # Skip FFG updates in the first two epochs to avoid corner cases that might result in modifying this stub.
//    if get_current_epoch(state) <= GENESIS_EPOCH + 1:
//        return
//    previous_epoch = get_previous_epoch(state)
//    current_epoch = get_current_epoch(state)
//    old_previous_justified_checkpoint = state.previous_justified_checkpoint
//    old_current_justified_checkpoint = state.current_justified_checkpoint
//
//    # Process justifications
//    state.previous_justified_checkpoint = state.current_justified_checkpoint
//    state.justification_bits[1:] = state.justification_bits[:-1]
//    state.justification_bits[0] = 0b0
//    matching_target_attestations = get_matching_target_attestations(state, previous_epoch)  # Previous epoch
//    if get_attesting_balance(state, matching_target_attestations) * 3 >= get_total_active_balance(state) * 2:
//        state.current_justified_checkpoint = Checkpoint(epoch=previous_epoch,
//                                                        root=get_block_root(state, previous_epoch))
//        state.justification_bits[1] = 0b1
//    matching_target_attestations = get_matching_target_attestations(state, current_epoch)  # Current epoch
//    if get_attesting_balance(state, matching_target_attestations) * 3 >= get_total_active_balance(state) * 2:
//        state.current_justified_checkpoint = Checkpoint(epoch=current_epoch,
//                                                        root=get_block_root(state, current_epoch))
//        state.justification_bits[0] = 0b1
//
//    # Process finalizations
//    bits = state.justification_bits
//    # The 2nd/3rd/4th most recent epochs are justified, the 2nd using the 4th as source
//    if all(bits[1:4]) and old_previous_justified_checkpoint.epoch + 3 == current_epoch:
//        state.finalized_checkpoint = old_previous_justified_checkpoint
//    # The 2nd/3rd most recent epochs are justified, the 2nd using the 3rd as source
//    if all(bits[1:3]) and old_previous_justified_checkpoint.epoch + 2 == current_epoch:
//        state.finalized_checkpoint = old_previous_justified_checkpoint
//    # The 1st/2nd/3rd most recent epochs are justified, the 1st using the 3rd as source
//    if all(bits[0:3]) and old_current_justified_checkpoint.epoch + 2 == current_epoch:
//        state.finalized_checkpoint = old_current_justified_checkpoint
//    # The 1st/2nd most recent epochs are justified, the 1st using the 2nd as source
//    if all(bits[0:2]) and old_current_justified_checkpoint.epoch + 1 == current_epoch:
//        state.finalized_checkpoint = old_current_justified_checkpoint
func ProcessJustificationAndFinalizationPreCompute(cfg *params.BeaconChainConfig, st *state.BeaconState, pBal *Balance) (*state.BeaconState, error) {
	if helpers.CurrentEpoch(cfg, st) <= cfg.GenesisEpoch+1 {
		return st, nil
	}
	return processJustificationAndFinalization(cfg, st, pBal.ActivePrevEpoch, pBal.ActiveCurrentEpoch, pBal.PrevEpochTargetAttested, pBal.CurrentEpochTargetAttested)
}

func processJustificationAndFinalization(
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	prevEpochTotal, currEpochTotal, prevEpochTargetAttested, currEpochTargetAttested uint64,
) (*state.BeaconState, error) {
	prevEpoch := helpers.PrevEpoch(cfg, st)
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	oldPrevJustifiedCheckpoint := ethpb.CopyCheckpoint(st.PreviousJustifiedCheckpoint)
	oldCurrJustifiedCheckpoint := ethpb.CopyCheckpoint(st.CurrentJustifiedCheckpoint)

	// Process justifications.
	st.PreviousJustifiedCheckpoint = ethpb.CopyCheckpoint(st.CurrentJustifiedCheckpoint)
	newBits := st.JustificationBits
	newBits.Shift(1)
	st.JustificationBits = newBits

	// Note: the spec refers to the bit index position starting at 1 instead of starting at zero.
	// We will use that paradigm here for consistency with the godoc spec definition.

	// If 2/3 or more of total balance attested in the previous epoch.
	if 3*prevEpochTargetAttested >= 2*prevEpochTotal {
		blockRoot, err := helpers.BlockRoot(cfg, st, prevEpoch)
		if err != nil {
			return nil, errors.Wrapf(err, "could not get block root for previous epoch %d", prevEpoch)
		}
		st.CurrentJustifiedCheckpoint = &ethpb.Checkpoint{Epoch: prevEpoch, Root: blockRoot}
		newBits := st.JustificationBits
		newBits.SetBitAt(1, true)
		st.JustificationBits = newBits
	}

	// If 2/3 or more of the total balance attested in the current epoch.
	if 3*currEpochTargetAttested >= 2*currEpochTotal {
		blockRoot, err := helpers.BlockRoot(cfg, st, currentEpoch)
		if err != nil {
			return nil, errors.Wrapf(err, "could not get block root for current epoch %d", currentEpoch)
		}
		st.CurrentJustifiedCheckpoint = &ethpb.Checkpoint{Epoch: currentEpoch, Root: blockRoot}
		newBits := st.JustificationBits
		newBits.SetBitAt(0, true)
		st.JustificationBits = newBits
	}

	// Process finalization.
	justification := st.JustificationBits.Bytes()[0]

	// 2nd/3rd/4th (0b1110) most recent epochs are justified, the 2nd using the 4th as source.
	if justification&0x0E == 0x0E && (oldPrevJustifiedCheckpoint.Epoch+3) == currentEpoch {
		st.FinalizedCheckpoint = oldPrevJustifiedCheckpoint
	}

	// 2nd/3rd (0b0110) most recent epochs are justified, the 2nd using the 3rd as source.
	if justification&0x06 == 0x06 && (oldPrevJustifiedCheckpoint.Epoch+2) == currentEpoch {
		st.FinalizedCheckpoint = oldPrevJustifiedCheckpoint
	}

	// 1st/2nd/3rd (0b0111) most recent epochs are justified, the 1st using the 3rd as source.
	if justification&0x07 == 0x07 && (oldCurrJustifiedCheckpoint.Epoch+2) == currentEpoch {
		st.FinalizedCheckpoint = oldCurrJustifiedCheckpoint
	}

	// 1st/2nd (0b0011) most recent epochs are justified, the 1st using the 2nd as source.
	if justification&0x03 == 0x03 && (oldCurrJustifiedCheckpoint.Epoch+1) == currentEpoch {
		st.FinalizedCheckpoint = oldCurrJustifiedCheckpoint
	}
	return st, nil
}
