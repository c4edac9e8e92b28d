package precompute_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestNew(t *testing.T) {
	cfg := params.MainnetConfig()
	ffe := cfg.FarFutureEpoch
	ffs := cfg.FarFutureSlot
	st := &state.BeaconState{
		Slot: cfg.SlotsPerEpoch.Mul(1),
		Validators: []*ethpb.Validator{
			// Index 0 is never active.
			{ActivationEpoch: ffe, ExitEpoch: ffe, WithdrawableEpoch: ffe, EffectiveBalance: 100},
			// Index 1 is active in both current and previous epochs.
			{ActivationEpoch: 0, ExitEpoch: ffe, WithdrawableEpoch: ffe, EffectiveBalance: 100},
			// Index 2 was slashed and exited after the previous epoch.
			{ActivationEpoch: 0, ExitEpoch: 1, WithdrawableEpoch: 1, Slashed: true, EffectiveBalance: 100},
		},
		Balances: []uint64{100, 100, 100},
	}

	v, b, err := precompute.New(context.Background(), cfg, st)
	require.NoError(t, err)
	assert.DeepEqual(t, &precompute.Validator{
		CurrentEpochEffectiveBalance: 100,
		InclusionSlot:                ffs,
		InclusionDistance:            ffs,
	}, v[0], "Incorrect validator 0 status")
	assert.DeepEqual(t, &precompute.Validator{
		IsActiveCurrentEpoch:         true,
		IsActivePrevEpoch:            true,
		CurrentEpochEffectiveBalance: 100,
		InclusionSlot:                ffs,
		InclusionDistance:            ffs,
	}, v[1], "Incorrect validator 1 status")
	assert.DeepEqual(t, &precompute.Validator{
		IsSlashed:                    true,
		IsActivePrevEpoch:            true,
		IsWithdrawableCurrentEpoch:   true,
		CurrentEpochEffectiveBalance: 100,
		InclusionSlot:                ffs,
		InclusionDistance:            ffs,
	}, v[2], "Incorrect validator 2 status")

	assert.Equal(t, uint64(100), b.ActiveCurrentEpoch, "Incorrect current epoch active balance")
	assert.Equal(t, uint64(200), b.ActivePrevEpoch, "Incorrect previous epoch active balance")
}
