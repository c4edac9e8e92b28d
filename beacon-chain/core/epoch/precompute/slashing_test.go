package precompute_test

import (
	"fmt"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestProcessSlashingsPrecompute_NotSlashed(t *testing.T) {
	cfg := params.MainnetConfig()
	st := &state.BeaconState{
		Slot:       0,
		Validators: []*ethpb.Validator{{Slashed: true}},
		Balances:   []uint64{cfg.MaxEffectiveBalance},
		Slashings:  []uint64{0, 1e9},
	}
	pBal := &precompute.Balance{ActiveCurrentEpoch: cfg.MaxEffectiveBalance}
	require.NoError(t, precompute.ProcessSlashingsPrecompute(cfg, st, pBal))

	wanted := cfg.MaxEffectiveBalance
	assert.Equal(t, wanted, st.Balances[0], "Unexpected slashed balance")
}

func TestProcessSlashingsPrecompute_SlashedLess(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		state *state.BeaconState
		want  uint64
	}{
		{
			state: &state.BeaconState{
				Validators: []*ethpb.Validator{
					{Slashed: true,
						WithdrawableEpoch: cfg.EpochsPerSlashingsVector.Div(2),
						EffectiveBalance:  cfg.MaxEffectiveBalance},
					{ExitEpoch: cfg.FarFutureEpoch, EffectiveBalance: cfg.MaxEffectiveBalance},
				},
				Balances:  []uint64{cfg.MaxEffectiveBalance, cfg.MaxEffectiveBalance},
				Slashings: []uint64{0, 1e9},
			},
			// penalty    = validator balance / increment * (min(total_penalties * multiplier, total_balance)) / total_balance * increment
			// 1000000000 = (32 * 1e9)        / (1 * 1e9) * (1 * 1e9)                                          / (32 * 1e9)    * (1 * 1e9)
			want: uint64(31 * 1e9), // 32 * 1e9 - 1 * 1e9
		},
		{
			state: &state.BeaconState{
				Validators: []*ethpb.Validator{
					{Slashed: true,
						WithdrawableEpoch: cfg.EpochsPerSlashingsVector.Div(2),
						EffectiveBalance:  cfg.MaxEffectiveBalance},
					{ExitEpoch: cfg.FarFutureEpoch, EffectiveBalance: cfg.MaxEffectiveBalance},
				},
				Balances:  []uint64{cfg.MaxEffectiveBalance, cfg.MaxEffectiveBalance},
				Slashings: []uint64{0, 2 * 1e9},
			},
			// penalty    = validator balance / increment * (min(total_penalties * multiplier, total_balance)) / total_balance * increment
			// 2000000000 = (32 * 1e9)        / (1 * 1e9) * (2 * 1e9)                                          / (32 * 1e9)    * (1 * 1e9)
			want: uint64(30 * 1e9), // 32 * 1e9 - 2 * 1e9
		},
		{
			state: &state.BeaconState{
				Validators: []*ethpb.Validator{
					{Slashed: true,
						WithdrawableEpoch: cfg.EpochsPerSlashingsVector.Div(2),
						EffectiveBalance:  cfg.MaxEffectiveBalance},
					{ExitEpoch: cfg.FarFutureEpoch, EffectiveBalance: cfg.MaxEffectiveBalance},
				},
				Balances:  []uint64{cfg.MaxEffectiveBalance, cfg.MaxEffectiveBalance},
				Slashings: []uint64{0, 16 * 1e9},
			},
			// penalty     = validator balance / increment * (min(total_penalties * multiplier, total_balance)) / total_balance * increment
			// 16000000000 = (32 * 1e9)        / (1 * 1e9) * (16 * 1e9)                                         / (32 * 1e9)    * (1 * 1e9)
			want: uint64(16 * 1e9), // 32 * 1e9 - 16 * 1e9
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			pBal := &precompute.Balance{ActiveCurrentEpoch: cfg.MaxEffectiveBalance}
			require.NoError(t, precompute.ProcessSlashingsPrecompute(cfg, tt.state, pBal))
			assert.Equal(t, tt.want, tt.state.Balances[0], "Unexpected slashed balance")
		})
	}
}
