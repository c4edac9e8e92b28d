// Package epoch contains epoch processing libraries according to spec, able to
// process new balance for validators, justify and finalize new
// check points, and shuffle validators to different slots and
// shards.
package epoch

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/validators"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/phase0/math"
)

// AttestingBalance returns the total balance from all the attesting indices.
//
// WARNING: This method allocates a new copy of the attesting validator indices set and is
// considered to be very memory expensive. Avoid using this unless you really
// need to get attesting balance from attestations.
//
// Spec pseudocode definition:
//  def get_attesting_balance(state: BeaconState, attestations: List[PendingAttestation]) -> Gwei:
//    """
//    Return the combined effective balance of the set of unslashed validators participating in ``attestations``.
//    Note: ``get_total_balance`` returns ``EFFECTIVE_BALANCE_INCREMENT`` Gwei minimum to avoid divisions by zero.
//    """
//    return get_total_balance(state, get_unslashed_attesting_indices(state, attestations))
func AttestingBalance(cfg *params.BeaconChainConfig, st *state.BeaconState, atts []*ethpb.PendingAttestation) (uint64, error) {
	indices, err := UnslashedAttestingIndices(cfg, st, atts)
	if err != nil {
		return 0, errors.Wrap(err, "could not get attesting indices")
	}
	return helpers.TotalBalance(st, indices), nil
}

// UnslashedAttestingIndices returns all the attesting indices from a list of attestations which are not slashed.
//
// Spec pseudocode definition:
//  def get_unslashed_attesting_indices(state: BeaconState,
//                                    attestations: Sequence[PendingAttestation]) -> Set[ValidatorIndex]:
//    output = set()  # type: Set[ValidatorIndex]
//    for a in attestations:
//        output = output.union(get_attesting_indices(state, a.data, a.aggregation_bits))
//    return set(filter(lambda index: not state.validators[index].slashed, output))
func UnslashedAttestingIndices(cfg *params.BeaconChainConfig, st *state.BeaconState, atts []*ethpb.PendingAttestation) ([]types.ValidatorIndex, error) {
	var setIndices []types.ValidatorIndex
	seen := make(map[uint64]bool)

	for _, att := range atts {
		committee, err := helpers.BeaconCommitteeFromState(cfg, st, att.Data.Slot, att.Data.CommitteeIndex)
		if err != nil {
			return nil, err
		}
		attestingIndices, err := helpers.AttestingIndices(att.AggregationBits, committee)
		if err != nil {
			return nil, err
		}
		// Create a set for attesting indices.
		for _, index := range attestingIndices {
			if !seen[index] {
				setIndices = append(setIndices, types.ValidatorIndex(index))
			}
			seen[index] = true
		}
	}
	// Sort the attesting set indices by increasing order.
	sort.Slice(setIndices, func(i, j int) bool { return setIndices[i] < setIndices[j] })
	// Remove the slashed validator indices.
	for i := 0; i < len(setIndices); i++ {
		v, ok := st.ValidatorAtIndex(setIndices[i])
		if !ok {
			return nil, fmt.Errorf("validator index %d does not exist", setIndices[i])
		}
		if v != nil && v.Slashed {
			setIndices = append(setIndices[:i], setIndices[i+1:]...)
			i--
		}
	}
	return setIndices, nil
}

// ProcessRegistryUpdates rotates validators in and out of active pool.
// the amount to rotate is determined churn limit.
//
// Spec pseudocode definition:
//   def process_registry_updates(state: BeaconState) -> None:
//    # Process activation eligibility and ejections
//    for index, validator in enumerate(state.validators):
//        if is_eligible_for_activation_queue(validator):
//            validator.activation_eligibility_epoch = get_current_epoch(state) + 1
//
//        if is_active_validator(validator, get_current_epoch(state)) and validator.effective_balance <= EJECTION_BALANCE:
//            initiate_validator_exit(state, ValidatorIndex(index))
//
//    # Queue validators eligible for activation and not yet dequeued for activation
//    activation_queue = sorted([
//        index for index, validator in enumerate(state.validators)
//        if is_eligible_for_activation(state, validator)
//        # Order by the sequence of activation_eligibility_epoch setting and then index
//    ], key=lambda index: (state.validators[index].activation_eligibility_epoch, index))
//    # Dequeued validators for activation up to churn limit
//    for index in activation_queue[:get_validator_churn_limit(state)]:
//        validator = state.validators[index]
//        validator.activation_epoch = compute_activation_exit_epoch(get_current_epoch(state))
func ProcessRegistryUpdates(cfg *params.BeaconChainConfig, st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := helpers.CurrentEpoch(cfg, st)

	var activationQ []types.ValidatorIndex
	for idx, validator := range st.Validators {
		if validator == nil {
			return nil, fmt.Errorf("validator %d is nil in state", idx)
		}
		// Process the validators for activation eligibility.
		if helpers.IsEligibleForActivationQueue(cfg, validator) {
			validator.ActivationEligibilityEpoch = currentEpoch + 1
		}

		// Process the validators for ejection.
		isActive := helpers.IsActiveValidator(validator, currentEpoch)
		belowEjectionBalance := validator.EffectiveBalance <= cfg.EjectionBalance
		if isActive && belowEjectionBalance {
			if err := validators.InitiateValidatorExit(cfg, st, types.ValidatorIndex(idx)); err != nil {
				return nil, errors.Wrapf(err, "could not initiate exit for validator %d", idx)
			}
		}

		// Queue the validators whose eligible to activate and sort them by activation eligibility epoch.
		if helpers.IsEligibleForActivation(cfg, st, validator) {
			activationQ = append(activationQ, types.ValidatorIndex(idx))
		}
	}

	sort.Sort(sortableIndices{indices: activationQ, validators: st.Validators})

	// Only activate just enough validators according to the activation churn limit.
	limit := uint64(len(activationQ))
	activeValidatorCount, err := helpers.ActiveValidatorCount(cfg, st, currentEpoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active validator count")
	}

	churnLimit := helpers.ValidatorChurnLimit(cfg, activeValidatorCount)

	// Prevent churn limit cause index out of bound issue.
	if churnLimit < limit {
		limit = churnLimit
	}

	activationExitEpoch := helpers.ActivationExitEpoch(cfg, currentEpoch)
	for _, index := range activationQ[:limit] {
		st.Validators[index].ActivationEpoch = activationExitEpoch
	}
	return st, nil
}

// ProcessSlashings processes the slashed validators during epoch processing,
//
//  def process_slashings(state: BeaconState) -> None:
//    epoch = get_current_epoch(state)
//    total_balance = get_total_active_balance(state)
//    adjusted_total_slashing_balance = min(sum(state.slashings) * PROPORTIONAL_SLASHING_MULTIPLIER, total_balance)
//    for index, validator in enumerate(state.validators):
//        if validator.slashed and epoch + EPOCHS_PER_SLASHINGS_VECTOR // 2 == validator.withdrawable_epoch:
//            increment = EFFECTIVE_BALANCE_INCREMENT  # Factored out from penalty numerator to avoid uint64 overflow
//            penalty_numerator = validator.effective_balance // increment * adjusted_total_slashing_balance
//            penalty = penalty_numerator // total_balance * increment
//            decrease_balance(state, ValidatorIndex(index), penalty)
func ProcessSlashings(cfg *params.BeaconChainConfig, st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	totalBalance := helpers.TotalActiveBalance(cfg, st)

	// Compute slashed balances in the current epoch.
	exitLength := cfg.EpochsPerSlashingsVector

	// Compute the sum of state slashings.
	var totalSlashing uint64
	for _, slashing := range st.Slashings {
		totalSlashing += slashing
	}

	minSlashing := mathutil.Min(totalSlashing*cfg.ProportionalSlashingMultiplier, totalBalance)
	epochToWithdraw := currentEpoch + exitLength.Div(2)
	increment := cfg.EffectiveBalanceIncrement
	for idx, val := range st.Validators {
		if val == nil {
			return nil, fmt.Errorf("validator %d is nil in state", idx)
		}
		correctEpoch := epochToWithdraw == val.WithdrawableEpoch
		if val.Slashed && correctEpoch {
			penaltyNumerator := val.EffectiveBalance / increment * minSlashing
			penalty := penaltyNumerator / totalBalance * increment
			if err := helpers.DecreaseBalance(st, types.ValidatorIndex(idx), penalty); err != nil {
				return nil, err
			}
		}
	}
	return st, nil
}

// ProcessFinalUpdates processes the final updates during epoch processing. This function
// resets the eth1 data votes at the voting period boundary, updates effective balances
// with hysteresis, resets the slashing and randao entries of the next epoch, accumulates
// the historical root batch and rotates the pending attestations.
//
// Spec pseudocode definition:
//  def process_final_updates(state: BeaconState) -> None:
//    current_epoch = get_current_epoch(state)
//    next_epoch = Epoch(current_epoch + 1)
//    # Reset eth1 data votes
//    if (state.slot + 1) % SLOTS_PER_ETH1_VOTING_PERIOD == 0:
//        state.eth1_data_votes = []
//    # Update effective balances with hysteresis
//    for index, validator in enumerate(state.validators):
//        balance = state.balances[index]
//        HYSTERESIS_INCREMENT = EFFECTIVE_BALANCE_INCREMENT // HYSTERESIS_QUOTIENT
//        DOWNWARD_THRESHOLD = HYSTERESIS_INCREMENT * HYSTERESIS_DOWNWARD_MULTIPLIER
//        UPWARD_THRESHOLD = HYSTERESIS_INCREMENT * HYSTERESIS_UPWARD_MULTIPLIER
//        if (
//            balance + DOWNWARD_THRESHOLD < validator.effective_balance
//            or validator.effective_balance + UPWARD_THRESHOLD < balance
//        ):
//            validator.effective_balance = min(balance - balance % EFFECTIVE_BALANCE_INCREMENT, MAX_EFFECTIVE_BALANCE)
//    # Reset slashings
//    state.slashings[next_epoch % EPOCHS_PER_SLASHINGS_VECTOR] = Gwei(0)
//    # Set randao mix
//    state.randao_mixes[next_epoch % EPOCHS_PER_HISTORICAL_VECTOR] = get_randao_mix(state, current_epoch)
//    # Set historical root accumulator
//    if next_epoch % (SLOTS_PER_HISTORICAL_ROOT // SLOTS_PER_EPOCH) == 0:
//        historical_batch = HistoricalBatch(block_roots=state.block_roots, state_roots=state.state_roots)
//        state.historical_roots.append(hash_tree_root(historical_batch))
//    # Rotate current/previous epoch attestations
//    state.previous_epoch_attestations = state.current_epoch_attestations
//    state.current_epoch_attestations = []
func ProcessFinalUpdates(cfg *params.BeaconChainConfig, st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	nextEpoch := currentEpoch + 1

	// Reset ETH1 data votes.
	if st.Slot.Add(1).ModSlot(cfg.SlotsPerEth1VotingPeriod) == 0 {
		st.Eth1DataVotes = []*ethpb.Eth1Data{}
	}

	// Update effective balances with hysteresis.
	effBalanceInc := cfg.EffectiveBalanceIncrement
	hysteresisInc := effBalanceInc / cfg.HysteresisQuotient
	downwardThreshold := hysteresisInc * cfg.HysteresisDownwardMultiplier
	upwardThreshold := hysteresisInc * cfg.HysteresisUpwardMultiplier
	for idx, val := range st.Validators {
		if val == nil {
			return nil, fmt.Errorf("validator %d is nil in state", idx)
		}
		if idx >= len(st.Balances) {
			return nil, fmt.Errorf("validator index exceeds validator length in state %d >= %d", idx, len(st.Balances))
		}
		balance := st.Balances[idx]
		if balance+downwardThreshold < val.EffectiveBalance || val.EffectiveBalance+upwardThreshold < balance {
			val.EffectiveBalance = mathutil.Min(balance-balance%effBalanceInc, cfg.MaxEffectiveBalance)
		}
	}

	// Set total slashed balances.
	slashedExitLength := cfg.EpochsPerSlashingsVector
	slashedEpoch := nextEpoch.Mod(uint64(slashedExitLength))
	if uint64(len(st.Slashings)) != uint64(slashedExitLength) {
		return nil, fmt.Errorf(
			"state slashing length %d different than EpochsPerSlashingsVector %d",
			len(st.Slashings),
			slashedExitLength,
		)
	}
	st.Slashings[slashedEpoch] = 0

	// Set RANDAO mix.
	randaoMixLength := cfg.EpochsPerHistoricalVector
	if uint64(len(st.RandaoMixes)) != uint64(randaoMixLength) {
		return nil, fmt.Errorf(
			"state randao length %d different than EpochsPerHistoricalVector %d",
			len(st.RandaoMixes),
			randaoMixLength,
		)
	}
	mix, err := helpers.RandaoMix(cfg, st, currentEpoch)
	if err != nil {
		return nil, err
	}
	st.RandaoMixes[nextEpoch.Mod(uint64(randaoMixLength))] = mix

	// Set historical root accumulator.
	epochsPerHistoricalRoot := cfg.SlotsPerHistoricalRoot.DivSlot(cfg.SlotsPerEpoch)
	if nextEpoch.Mod(uint64(epochsPerHistoricalRoot)) == 0 {
		batch := &ethpb.HistoricalBatch{
			BlockRoots: st.BlockRoots,
			StateRoots: st.StateRoots,
		}
		batchRoot, err := batch.HashTreeRoot()
		if err != nil {
			return nil, errors.Wrap(err, "could not hash historical batch")
		}
		st.HistoricalRoots = append(st.HistoricalRoots, batchRoot[:])
	}

	// Rotate current and previous epoch attestations.
	st.PreviousEpochAttestations = st.CurrentEpochAttestations
	st.CurrentEpochAttestations = []*ethpb.PendingAttestation{}

	return st, nil
}
