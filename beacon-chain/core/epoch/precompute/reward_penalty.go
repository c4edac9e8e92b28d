package precompute

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/phase0/math"
)

// ProcessRewardsAndPenaltiesPrecompute processes the rewards and penalties of individual validator.
// This is an optimized version by passing in precomputed validator attesting records and total epoch balances.
func ProcessRewardsAndPenaltiesPrecompute(
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	pBal *Balance,
	vp []*Validator,
) (*state.BeaconState, error) {
	// Can't process rewards and penalties in genesis epoch.
	if helpers.CurrentEpoch(cfg, st) == 0 {
		return st, nil
	}

	numOfVals := st.NumValidators()
	// Guard against an out-of-bounds using validator balance precompute.
	if len(vp) != numOfVals || len(vp) != len(st.Balances) {
		return st, errors.New("precomputed registries not the same length as state registries")
	}

	attsRewards, attsPenalties, err := AttestationsDelta(cfg, st, pBal, vp)
	if err != nil {
		return nil, errors.Wrap(err, "could not get attestation delta")
	}
	proposerRewards, err := ProposersDelta(cfg, st, pBal, vp)
	if err != nil {
		return nil, errors.Wrap(err, "could not get proposer delta")
	}
	for i := 0; i < numOfVals; i++ {
		vp[i].BeforeEpochTransitionBalance = st.Balances[i]

		if err := helpers.IncreaseBalance(st, types.ValidatorIndex(i), attsRewards[i]+proposerRewards[i]); err != nil {
			return nil, err
		}
		if err := helpers.DecreaseBalance(st, types.ValidatorIndex(i), attsPenalties[i]); err != nil {
			return nil, err
		}

		vp[i].AfterEpochTransitionBalance = st.Balances[i]
	}

	return st, nil
}

// AttestationsDelta computes and returns the rewards and penalties differences for individual validators based on the
// voting records.
func AttestationsDelta(cfg *params.BeaconChainConfig, st *state.BeaconState, pBal *Balance, vp []*Validator) ([]uint64, []uint64, error) {
	numOfVals := st.NumValidators()
	rewards := make([]uint64, numOfVals)
	penalties := make([]uint64, numOfVals)

	for i, v := range vp {
		rewards[i], penalties[i] = attestationDelta(cfg, st, pBal, v)
	}
	return rewards, penalties, nil
}

func attestationDelta(cfg *params.BeaconChainConfig, st *state.BeaconState, pBal *Balance, v *Validator) (uint64, uint64) {
	eligible := v.IsActivePrevEpoch || (v.IsSlashed && !v.IsWithdrawableCurrentEpoch)
	if !eligible || pBal.ActiveCurrentEpoch == 0 {
		return 0, 0
	}

	baseRewardsPerEpoch := cfg.BaseRewardsPerEpoch
	effectiveBalanceIncrement := cfg.EffectiveBalanceIncrement
	vb := v.CurrentEpochEffectiveBalance
	br := vb * cfg.BaseRewardFactor / mathutil.IntegerSquareRoot(pBal.ActiveCurrentEpoch) / baseRewardsPerEpoch
	r, p := uint64(0), uint64(0)
	currentEpochBalance := pBal.ActiveCurrentEpoch / effectiveBalanceIncrement

	// Process source reward / penalty.
	if v.IsPrevEpochAttester && !v.IsSlashed {
		proposerReward := br / cfg.ProposerRewardQuotient
		maxAttesterReward := br - proposerReward
		r += maxAttesterReward / uint64(v.InclusionDistance)

		if isInInactivityLeak(cfg, st) {
			// Since full base reward will be canceled out by inactivity penalty deltas,
			// optimal participation receives full base reward compensation here.
			r += br
		} else {
			rewardNumerator := br * (pBal.PrevEpochAttested / effectiveBalanceIncrement)
			r += rewardNumerator / currentEpochBalance
		}
	} else {
		p += br
	}

	// Process target reward / penalty.
	if v.IsPrevEpochTargetAttester && !v.IsSlashed {
		if isInInactivityLeak(cfg, st) {
			// Since full base reward will be canceled out by inactivity penalty deltas,
			// optimal participation receives full base reward compensation here.
			r += br
		} else {
			rewardNumerator := br * (pBal.PrevEpochTargetAttested / effectiveBalanceIncrement)
			r += rewardNumerator / currentEpochBalance
		}
	} else {
		p += br
	}

	// Process head reward / penalty.
	if v.IsPrevEpochHeadAttester && !v.IsSlashed {
		if isInInactivityLeak(cfg, st) {
			// Since full base reward will be canceled out by inactivity penalty deltas,
			// optimal participation receives full base reward compensation here.
			r += br
		} else {
			rewardNumerator := br * (pBal.PrevEpochHeadAttested / effectiveBalanceIncrement)
			r += rewardNumerator / currentEpochBalance
		}
	} else {
		p += br
	}

	// Process finality delay penalty.
	if isInInactivityLeak(cfg, st) {
		// If validator is performing optimally, this cancels all rewards for a neutral balance.
		proposerReward := br / cfg.ProposerRewardQuotient
		p += baseRewardsPerEpoch*br - proposerReward
		// Apply an additional penalty to validators that did not vote on the correct target or have been slashed.
		// Equivalent to the following condition from the spec:
		// `index not in get_unslashed_attesting_indices(state, matching_target_attestations)`
		if !v.IsPrevEpochTargetAttester || v.IsSlashed {
			p += vb * uint64(finalityDelay(cfg, st)) / cfg.InactivityPenaltyQuotient
		}
	}
	return r, p
}

// ProposersDelta computes and returns the rewards and penalties differences for individual validators based on the
// proposer inclusion records.
func ProposersDelta(cfg *params.BeaconChainConfig, st *state.BeaconState, pBal *Balance, vp []*Validator) ([]uint64, error) {
	numOfVals := st.NumValidators()
	rewards := make([]uint64, numOfVals)

	totalBalance := pBal.ActiveCurrentEpoch

	balanceSqrt := mathutil.IntegerSquareRoot(totalBalance)
	// Balance square root cannot be 0, this prevents division by 0.
	if balanceSqrt == 0 {
		balanceSqrt = 1
	}

	baseRewardFactor := cfg.BaseRewardFactor
	baseRewardsPerEpoch := cfg.BaseRewardsPerEpoch
	proposerRewardQuotient := cfg.ProposerRewardQuotient
	for _, v := range vp {
		if uint64(v.ProposerIndex) >= uint64(len(rewards)) {
			// This should never happen with a valid state / validator.
			return nil, errors.New("proposer index out of range")
		}
		// Only apply inclusion rewards to proposer only if the attested hasn't been slashed.
		if v.IsPrevEpochAttester && !v.IsSlashed {
			vBalance := v.CurrentEpochEffectiveBalance
			baseReward := vBalance * baseRewardFactor / balanceSqrt / baseRewardsPerEpoch
			proposerReward := baseReward / proposerRewardQuotient
			rewards[v.ProposerIndex] += proposerReward
		}
	}
	return rewards, nil
}

// isInInactivityLeak returns true if the state is experiencing inactivity leak.
//
// Spec code:
// def is_in_inactivity_leak(state: BeaconState) -> bool:
//    return get_finality_delay(state) > MIN_EPOCHS_TO_INACTIVITY_PENALTY
func isInInactivityLeak(cfg *params.BeaconChainConfig, st *state.BeaconState) bool {
	return finalityDelay(cfg, st) > cfg.MinEpochsToInactivityPenalty
}

// finalityDelay returns the finality delay using the beacon state.
//
// Spec code:
// def get_finality_delay(state: BeaconState) -> uint64:
//    return get_previous_epoch(state) - state.finalized_checkpoint.epoch
func finalityDelay(cfg *params.BeaconChainConfig, st *state.BeaconState) types.Epoch {
	return helpers.PrevEpoch(cfg, st) - st.FinalizedCheckpoint.Epoch
}
