package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/math"
)

// TotalBalance returns the total amount at stake in Gwei
// of input validators.
//
// Spec pseudocode definition:
//  def get_total_balance(state: BeaconState, indices: Set[ValidatorIndex]) -> Gwei:
//    """
//    Return the combined effective balance of the ``indices``. (1 Gwei minimum to avoid divisions by zero.)
//    """
//    return Gwei(max(1, sum([state.validators[index].effective_balance for index in indices])))
func TotalBalance(st *state.BeaconState, indices []types.ValidatorIndex) uint64 {
	total := uint64(0)

	for _, idx := range indices {
		if uint64(idx) >= uint64(len(st.Validators)) {
			continue
		}
		total += st.Validators[idx].EffectiveBalance
	}

	// Return 1 Gwei minimum to avoid divisions by zero
	if total == 0 {
		return 1
	}

	return total
}

// TotalActiveBalance returns the total amount at stake in Gwei
// of active validators.
//
// Spec pseudocode definition:
//  def get_total_active_balance(state: BeaconState) -> Gwei:
//    """
//    Return the combined effective balance of the active validators.
//    """
//    return get_total_balance(state, set(get_active_validator_indices(state, get_current_epoch(state))))
func TotalActiveBalance(cfg *params.BeaconChainConfig, st *state.BeaconState) uint64 {
	total := uint64(0)
	epoch := CurrentEpoch(cfg, st)
	for _, val := range st.Validators {
		if IsActiveValidator(val, epoch) {
			total += val.EffectiveBalance
		}
	}

	// The 1 Gwei minimum of get_total_balance carries over so callers can
	// divide by the result without a zero check.
	if total == 0 {
		return 1
	}

	return total
}

// IncreaseBalance increases validator with the given 'index' balance by 'delta' in Gwei.
//
// Spec pseudocode definition:
//  def increase_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//    """
//    Increase the validator balance at index ``index`` by ``delta``.
//    """
//    state.balances[index] += delta
func IncreaseBalance(st *state.BeaconState, idx types.ValidatorIndex, delta uint64) error {
	if uint64(idx) >= uint64(len(st.Balances)) {
		return errors.Errorf("balance index %d out of range", idx)
	}
	st.Balances[idx] += delta
	return nil
}

// DecreaseBalance decreases validator with the given 'index' balance by 'delta' in Gwei.
//
// Spec pseudocode definition:
//  def decrease_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//    """
//    Decrease the validator balance at index ``index`` by ``delta``, with underflow protection.
//    """
//    state.balances[index] = 0 if delta > state.balances[index] else state.balances[index] - delta
func DecreaseBalance(st *state.BeaconState, idx types.ValidatorIndex, delta uint64) error {
	if uint64(idx) >= uint64(len(st.Balances)) {
		return errors.Errorf("balance index %d out of range", idx)
	}
	if delta > st.Balances[idx] {
		st.Balances[idx] = 0
		return nil
	}
	st.Balances[idx] -= delta
	return nil
}

// BaseReward takes state and validator index and calculate
// individual validator's base reward quotient.
//
// Spec pseudocode definition:
//  def get_base_reward(state: BeaconState, index: ValidatorIndex) -> Gwei:
//      total_balance = get_total_active_balance(state)
//      effective_balance = state.validators[index].effective_balance
//      return Gwei(effective_balance * BASE_REWARD_FACTOR // integer_squareroot(total_balance) // BASE_REWARDS_PER_EPOCH)
func BaseReward(cfg *params.BeaconChainConfig, st *state.BeaconState, index types.ValidatorIndex) (uint64, error) {
	totalBalance := TotalActiveBalance(cfg, st)
	val, ok := st.ValidatorAtIndex(index)
	if !ok {
		return 0, errors.Errorf("validator index %d does not exist", index)
	}
	baseReward := val.EffectiveBalance * cfg.BaseRewardFactor /
		math.IntegerSquareRoot(totalBalance) / cfg.BaseRewardsPerEpoch
	return baseReward, nil
}
