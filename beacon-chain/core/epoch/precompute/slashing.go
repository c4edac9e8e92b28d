package precompute

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/phase0/math"
)

// ProcessSlashingsPrecompute processes the slashed validators during epoch processing.
// This is an optimized version by passing in precomputed total epoch balances.
func ProcessSlashingsPrecompute(cfg *params.BeaconChainConfig, st *state.BeaconState, pBal *Balance) error {
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	exitLength := cfg.EpochsPerSlashingsVector

	// Compute the sum of state slashings.
	totalSlashing := uint64(0)
	for _, slashing := range st.Slashings {
		totalSlashing += slashing
	}

	minSlashing := mathutil.Min(totalSlashing*cfg.ProportionalSlashingMultiplier, pBal.ActiveCurrentEpoch)
	epochToWithdraw := currentEpoch + exitLength.Div(2)

	var hasSlashing bool
	// Iterate through validator list in state, stop until a validator satisfies slashing condition of current epoch.
	for _, v := range st.Validators {
		if v == nil {
			return errors.New("nil validator in state")
		}
		correctEpoch := epochToWithdraw == v.WithdrawableEpoch
		if v.Slashed && correctEpoch {
			hasSlashing = true
			break
		}
	}
	// Exit early if there's no meaningful slashing to process.
	if !hasSlashing {
		return nil
	}

	increment := cfg.EffectiveBalanceIncrement
	for idx, val := range st.Validators {
		correctEpoch := epochToWithdraw == val.WithdrawableEpoch
		if val.Slashed && correctEpoch {
			penaltyNumerator := val.EffectiveBalance / increment * minSlashing
			penalty := penaltyNumerator / pBal.ActiveCurrentEpoch * increment
			if err := helpers.DecreaseBalance(st, types.ValidatorIndex(idx), penalty); err != nil {
				return err
			}
		}
	}
	return nil
}
