package precompute_test

import (
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/phase0/config/params"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

// attestedValidators returns precomputed records where every validator voted
// source, target and head with optimal inclusion.
func attestedValidators(cfg *params.BeaconChainConfig, count uint64) []*precompute.Validator {
	vp := make([]*precompute.Validator, count)
	for i := 0; i < len(vp); i++ {
		vp[i] = &precompute.Validator{
			IsActivePrevEpoch:            true,
			IsActiveCurrentEpoch:         true,
			IsPrevEpochAttester:          true,
			IsPrevEpochTargetAttester:    true,
			IsPrevEpochHeadAttester:      true,
			CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance,
			InclusionDistance:            1,
			InclusionSlot:                1,
		}
	}
	return vp
}

func attestedBalance(cfg *params.BeaconChainConfig, count uint64) *precompute.Balance {
	total := count * cfg.MaxEffectiveBalance
	return &precompute.Balance{
		ActiveCurrentEpoch:      total,
		ActivePrevEpoch:         total,
		PrevEpochAttested:       total,
		PrevEpochTargetAttested: total,
		PrevEpochHeadAttested:   total,
	}
}

func TestProcessRewardsAndPenaltiesPrecompute_GenesisEpoch(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, 0, 4)

	newState, err := precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, &precompute.Balance{}, nil)
	require.NoError(t, err)
	for i, bal := range newState.Balances {
		assert.Equal(t, cfg.MaxEffectiveBalance, bal, "Expected balance %d to stay untouched in genesis epoch", i)
	}
}

func TestProcessRewardsAndPenaltiesPrecompute_BadLength(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), 4)
	vp := []*precompute.Validator{{}}

	_, err := precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, &precompute.Balance{}, vp)
	assert.ErrorContains(t, "precomputed registries not the same length as state registries", err)
}

func TestProcessRewardsAndPenaltiesPrecompute_AllAttested(t *testing.T) {
	cfg := params.MainnetConfig()
	validatorCount := uint64(10)
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), validatorCount)
	vp := attestedValidators(cfg, validatorCount)
	pBal := attestedBalance(cfg, validatorCount)

	newState, err := precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, pBal, vp)
	require.NoError(t, err)

	for i, bal := range newState.Balances {
		assert.Equal(t, true, bal > cfg.MaxEffectiveBalance, "Expected balance to grow for validator %d", i)
	}
	// Identical votes with identical effective balances earn identical
	// attestation rewards. Validator 0 proposed every attestation so it
	// earns the inclusion rewards on top.
	for i := 2; i < len(newState.Balances); i++ {
		assert.Equal(t, newState.Balances[1], newState.Balances[i], "Expected equal rewards for validator %d", i)
	}
	assert.Equal(t, true, newState.Balances[0] > newState.Balances[1], "Expected proposer to earn inclusion rewards")
}

func TestProcessRewardsAndPenaltiesPrecompute_NoneAttested(t *testing.T) {
	cfg := params.MainnetConfig()
	validatorCount := uint64(10)
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), validatorCount)
	vp := make([]*precompute.Validator, validatorCount)
	for i := 0; i < len(vp); i++ {
		vp[i] = &precompute.Validator{
			IsActivePrevEpoch:            true,
			IsActiveCurrentEpoch:         true,
			CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance,
		}
	}
	total := validatorCount * cfg.MaxEffectiveBalance
	pBal := &precompute.Balance{ActiveCurrentEpoch: total, ActivePrevEpoch: total}

	newState, err := precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, pBal, vp)
	require.NoError(t, err)

	for i, bal := range newState.Balances {
		assert.Equal(t, true, bal < cfg.MaxEffectiveBalance, "Expected balance to shrink for validator %d", i)
	}
	for i := 1; i < len(newState.Balances); i++ {
		assert.Equal(t, newState.Balances[0], newState.Balances[i], "Expected equal penalties for validator %d", i)
	}
}

func TestProcessRewardsAndPenaltiesPrecompute_InactivityLeak(t *testing.T) {
	cfg := params.MainnetConfig()
	validatorCount := uint64(10)
	// Ten epochs without finality puts the state well past the inactivity
	// threshold.
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(10).Add(1), validatorCount)
	vp := attestedValidators(cfg, validatorCount)
	pBal := attestedBalance(cfg, validatorCount)

	newState, err := precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, pBal, vp)
	require.NoError(t, err)

	// During the leak the inactivity penalty exactly cancels the rewards of
	// an optimally performing validator. Validator 0 still collects the
	// proposer rewards.
	for i := 1; i < len(newState.Balances); i++ {
		assert.Equal(t, cfg.MaxEffectiveBalance, newState.Balances[i], "Expected neutral balance for optimal validator %d", i)
	}
	assert.Equal(t, true, newState.Balances[0] > cfg.MaxEffectiveBalance, "Expected proposer to earn inclusion rewards")
}

func TestAttestationsDelta_Eligibility(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), 4)
	vp := []*precompute.Validator{
		// Inactive validators receive no rewards and no penalties.
		{CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		// Active non voters are penalized.
		{IsActivePrevEpoch: true, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		// Slashed but not yet withdrawable validators are still penalized.
		{IsSlashed: true, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		// Slashed and withdrawable validators are out of the game.
		{IsSlashed: true, IsWithdrawableCurrentEpoch: true, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
	}
	total := uint64(4) * cfg.MaxEffectiveBalance
	pBal := &precompute.Balance{ActiveCurrentEpoch: total, ActivePrevEpoch: total}

	rewards, penalties, err := precompute.AttestationsDelta(cfg, st, pBal, vp)
	require.NoError(t, err)

	assert.Equal(t, uint64(0), rewards[0], "Unexpected reward for inactive validator")
	assert.Equal(t, uint64(0), penalties[0], "Unexpected penalty for inactive validator")
	assert.Equal(t, true, penalties[1] > 0, "Expected penalty for non voting validator")
	assert.Equal(t, uint64(0), rewards[1], "Unexpected reward for non voting validator")
	assert.Equal(t, true, penalties[2] > 0, "Expected penalty for slashed validator")
	assert.Equal(t, uint64(0), rewards[2], "Unexpected reward for slashed validator")
	assert.Equal(t, uint64(0), rewards[3], "Unexpected reward for withdrawn validator")
	assert.Equal(t, uint64(0), penalties[3], "Unexpected penalty for withdrawn validator")
}

func TestProposersDelta_AttesterCreditsProposer(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), 4)
	vp := []*precompute.Validator{
		{}, {},
		{IsPrevEpochAttester: true, ProposerIndex: 1, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		{},
	}
	pBal := &precompute.Balance{ActiveCurrentEpoch: 4 * cfg.MaxEffectiveBalance}

	rewards, err := precompute.ProposersDelta(cfg, st, pBal, vp)
	require.NoError(t, err)

	assert.Equal(t, true, rewards[1] > 0, "Expected proposer reward")
	assert.Equal(t, uint64(0), rewards[0], "Unexpected proposer reward")
	assert.Equal(t, uint64(0), rewards[2], "Unexpected proposer reward")
	assert.Equal(t, uint64(0), rewards[3], "Unexpected proposer reward")
}

func TestProposersDelta_SlashedAttester(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), 4)
	vp := []*precompute.Validator{
		{}, {},
		{IsPrevEpochAttester: true, IsSlashed: true, ProposerIndex: 1, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		{},
	}
	pBal := &precompute.Balance{ActiveCurrentEpoch: 4 * cfg.MaxEffectiveBalance}

	rewards, err := precompute.ProposersDelta(cfg, st, pBal, vp)
	require.NoError(t, err)
	assert.DeepEqual(t, make([]uint64, 4), rewards, "Expected no proposer rewards")
}

func TestProposersDelta_OutOfRangeProposer(t *testing.T) {
	cfg := params.MainnetConfig()
	st := testState(cfg, cfg.SlotsPerEpoch.Mul(2).Add(1), 2)
	vp := []*precompute.Validator{
		{IsPrevEpochAttester: true, ProposerIndex: 2, CurrentEpochEffectiveBalance: cfg.MaxEffectiveBalance},
		{},
	}
	pBal := &precompute.Balance{ActiveCurrentEpoch: 2 * cfg.MaxEffectiveBalance}

	_, err := precompute.ProposersDelta(cfg, st, pBal, vp)
	assert.ErrorContains(t, "proposer index out of range", err)
}
