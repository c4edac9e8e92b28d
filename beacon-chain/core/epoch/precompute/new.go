package precompute

import (
	"context"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	"go.opencensus.io/trace"
)

// New gets called at the beginning of process epoch cycle to return
// pre computed instances of validators attesting records and total
// balances attested in an epoch.
func New(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState) ([]*Validator, *Balance, error) {
	_, span := trace.StartSpan(ctx, "precomputeEpoch.New")
	defer span.End()

	pValidators := make([]*Validator, st.NumValidators())
	pBal := &Balance{}

	currentEpoch := helpers.CurrentEpoch(cfg, st)
	prevEpoch := helpers.PrevEpoch(cfg, st)

	for idx, val := range st.Validators {
		// Was validator withdrawable or slashed.
		withdrawable := currentEpoch >= val.WithdrawableEpoch
		pVal := &Validator{
			IsSlashed:                    val.Slashed,
			IsWithdrawableCurrentEpoch:   withdrawable,
			CurrentEpochEffectiveBalance: val.EffectiveBalance,
		}
		// Was validator active current epoch.
		if helpers.IsActiveValidator(val, currentEpoch) {
			pVal.IsActiveCurrentEpoch = true
			pBal.ActiveCurrentEpoch += val.EffectiveBalance
		}
		// Was validator active previous epoch.
		if helpers.IsActiveValidator(val, prevEpoch) {
			pVal.IsActivePrevEpoch = true
			pBal.ActivePrevEpoch += val.EffectiveBalance
		}
		// Set inclusion slot and inclusion distance to be max, they will be compared and replaced
		// with the lower values.
		pVal.InclusionSlot = cfg.FarFutureSlot
		pVal.InclusionDistance = cfg.FarFutureSlot

		pValidators[idx] = pVal
	}
	return pValidators, pBal, nil
}
