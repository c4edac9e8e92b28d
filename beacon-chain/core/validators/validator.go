// Package validators contains the registry mutations shared by block
// operations and epoch processing: initiating a voluntary or forced exit
// through the churn-limited exit queue, and slashing a validator with the
// associated penalty and whistleblower bookkeeping.
package validators

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// ErrInvalidChurnOrdering is returned when the computed exit queue epoch
// precedes an exit that is already scheduled. The exit queue only moves
// forward, so observing this error means the registry is corrupt, not that
// the operation was invalid.
var ErrInvalidChurnOrdering = errors.New("exit queue epoch precedes an already scheduled exit")

// InitiateValidatorExit takes in validator index and updates
// validator with correct voluntary exit parameters.
//
// Spec pseudocode definition:
//  def initiate_validator_exit(state: BeaconState, index: ValidatorIndex) -> None:
//    """
//    Initiate the exit of the validator with index ``index``.
//    """
//    # Return if validator already initiated exit
//    validator = state.validators[index]
//    if validator.exit_epoch != FAR_FUTURE_EPOCH:
//        return
//
//    # Compute exit queue epoch
//    exit_epochs = [v.exit_epoch for v in state.validators if v.exit_epoch != FAR_FUTURE_EPOCH]
//    exit_queue_epoch = max(exit_epochs + [compute_activation_exit_epoch(get_current_epoch(state))])
//    exit_queue_churn = len([v for v in state.validators if v.exit_epoch == exit_queue_epoch])
//    if exit_queue_churn >= get_validator_churn_limit(state):
//        exit_queue_epoch += Epoch(1)
//
//    # Set validator exit epoch and withdrawable epoch
//    validator.exit_epoch = exit_queue_epoch
//    validator.withdrawable_epoch = Epoch(validator.exit_epoch + MIN_VALIDATOR_WITHDRAWABILITY_DELAY)
func InitiateValidatorExit(cfg *params.BeaconChainConfig, st *state.BeaconState, idx types.ValidatorIndex) error {
	validator, ok := st.ValidatorAtIndex(idx)
	if !ok {
		return errors.Errorf("validator index %d does not exist", idx)
	}
	if validator.ExitEpoch != cfg.FarFutureEpoch {
		// Exit already initiated, nothing to do.
		return nil
	}

	currentEpoch := helpers.CurrentEpoch(cfg, st)

	// The exit queue epoch is the highest exit epoch already on the books,
	// floored at the earliest epoch a new exit may take effect.
	exitQueueEpoch := helpers.ActivationExitEpoch(cfg, currentEpoch)
	highestScheduledExit := types.Epoch(0)
	for _, val := range st.Validators {
		if val.ExitEpoch == cfg.FarFutureEpoch {
			continue
		}
		if val.ExitEpoch > highestScheduledExit {
			highestScheduledExit = val.ExitEpoch
		}
		if val.ExitEpoch > exitQueueEpoch {
			exitQueueEpoch = val.ExitEpoch
		}
	}

	exitQueueChurn := uint64(0)
	for _, val := range st.Validators {
		if val.ExitEpoch == exitQueueEpoch {
			exitQueueChurn++
		}
	}

	activeValidatorCount, err := helpers.ActiveValidatorCount(cfg, st, currentEpoch)
	if err != nil {
		return errors.Wrap(err, "could not get active validator count")
	}
	if exitQueueChurn >= helpers.ValidatorChurnLimit(cfg, activeValidatorCount) {
		exitQueueEpoch, err = exitQueueEpoch.SafeAdd(1)
		if err != nil {
			return err
		}
	}

	if exitQueueEpoch < highestScheduledExit {
		return errors.Wrapf(ErrInvalidChurnOrdering,
			"computed exit queue epoch %d behind scheduled exit at %d", exitQueueEpoch, highestScheduledExit)
	}

	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + cfg.MinValidatorWithdrawabilityDelay
	return nil
}

// SlashValidator slashes the malicious validator's balance and awards
// the whistleblower's balance.
//
// Spec pseudocode definition:
//  def slash_validator(state: BeaconState,
//                    slashed_index: ValidatorIndex,
//                    whistleblower_index: ValidatorIndex=None) -> None:
//    """
//    Slash the validator with index ``slashed_index``.
//    """
//    epoch = get_current_epoch(state)
//    initiate_validator_exit(state, slashed_index)
//    validator = state.validators[slashed_index]
//    validator.slashed = True
//    validator.withdrawable_epoch = max(validator.withdrawable_epoch, Epoch(epoch + EPOCHS_PER_SLASHINGS_VECTOR))
//    state.slashings[epoch % EPOCHS_PER_SLASHINGS_VECTOR] += validator.effective_balance
//    decrease_balance(state, slashed_index, validator.effective_balance // MIN_SLASHING_PENALTY_QUOTIENT)
//
//    # Apply proposer and whistleblower rewards
//    proposer_index = get_beacon_proposer_index(state)
//    if whistleblower_index is None:
//        whistleblower_index = proposer_index
//    whistleblower_reward = Gwei(validator.effective_balance // WHISTLEBLOWER_REWARD_QUOTIENT)
//    proposer_reward = Gwei(whistleblower_reward // PROPOSER_REWARD_QUOTIENT)
//    increase_balance(state, proposer_index, proposer_reward)
//    increase_balance(state, whistleblower_index, Gwei(whistleblower_reward - proposer_reward))
func SlashValidator(cfg *params.BeaconChainConfig, st *state.BeaconState, slashedIdx types.ValidatorIndex) error {
	if err := InitiateValidatorExit(cfg, st, slashedIdx); err != nil {
		return errors.Wrapf(err, "could not initiate validator %d exit", slashedIdx)
	}

	currentEpoch := helpers.CurrentEpoch(cfg, st)
	validator, ok := st.ValidatorAtIndex(slashedIdx)
	if !ok {
		return errors.Errorf("validator index %d does not exist", slashedIdx)
	}
	validator.Slashed = true
	maxWithdrawableEpoch := currentEpoch + cfg.EpochsPerSlashingsVector
	if maxWithdrawableEpoch > validator.WithdrawableEpoch {
		validator.WithdrawableEpoch = maxWithdrawableEpoch
	}

	slashingsIdx := uint64(currentEpoch) % uint64(cfg.EpochsPerSlashingsVector)
	if slashingsIdx >= uint64(len(st.Slashings)) {
		return errors.Errorf("slashings index %d out of range", slashingsIdx)
	}
	st.Slashings[slashingsIdx] += validator.EffectiveBalance
	if err := helpers.DecreaseBalance(st, slashedIdx, validator.EffectiveBalance/cfg.MinSlashingPenaltyQuotient); err != nil {
		return err
	}

	proposerIdx, err := helpers.BeaconProposerIndex(cfg, st)
	if err != nil {
		return errors.Wrap(err, "could not get proposer idx")
	}
	// In phase 0 the proposer is always the whistleblower.
	whistleBlowerIdx := proposerIdx
	whistleblowerReward := validator.EffectiveBalance / cfg.WhistleBlowerRewardQuotient
	proposerReward := whistleblowerReward / cfg.ProposerRewardQuotient
	if err := helpers.IncreaseBalance(st, proposerIdx, proposerReward); err != nil {
		return err
	}
	return helpers.IncreaseBalance(st, whistleBlowerIdx, whistleblowerReward-proposerReward)
}
