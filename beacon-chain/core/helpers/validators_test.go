package helpers

import (
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestIsActiveValidator_OK(t *testing.T) {
	tests := []struct {
		a types.Epoch
		b bool
	}{
		{a: 0, b: false},
		{a: 10, b: true},
		{a: 100, b: false},
		{a: 1000, b: false},
		{a: 64, b: true},
	}
	for _, test := range tests {
		validator := &ethpb.Validator{ActivationEpoch: 10, ExitEpoch: 100}
		assert.Equal(t, test.b, IsActiveValidator(validator, test.a), "IsActiveValidator(%d)", test.a)
	}
}

func TestIsSlashableValidator_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		name      string
		validator *ethpb.Validator
		epoch     types.Epoch
		slashable bool
	}{
		{
			name: "active not slashed",
			validator: &ethpb.Validator{
				ActivationEpoch:   0,
				WithdrawableEpoch: cfg.FarFutureEpoch,
			},
			epoch:     10,
			slashable: true,
		},
		{
			name: "already slashed",
			validator: &ethpb.Validator{
				ActivationEpoch:   0,
				Slashed:           true,
				WithdrawableEpoch: cfg.FarFutureEpoch,
			},
			epoch:     10,
			slashable: false,
		},
		{
			name: "not yet activated",
			validator: &ethpb.Validator{
				ActivationEpoch:   20,
				WithdrawableEpoch: cfg.FarFutureEpoch,
			},
			epoch:     10,
			slashable: false,
		},
		{
			name: "already withdrawable",
			validator: &ethpb.Validator{
				ActivationEpoch:   0,
				WithdrawableEpoch: 5,
			},
			epoch:     10,
			slashable: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.slashable, IsSlashableValidator(test.validator, test.epoch))
		})
	}
}

func TestActiveValidatorIndices_OK(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()

	validators := make([]*ethpb.Validator, 100)
	for i := 0; i < len(validators); i++ {
		activation := types.Epoch(0)
		if i >= 50 {
			// The tail half only becomes active later.
			activation = 10
		}
		validators[i] = &ethpb.Validator{
			ActivationEpoch:  activation,
			ExitEpoch:        cfg.FarFutureEpoch,
			EffectiveBalance: cfg.MaxEffectiveBalance,
		}
	}
	st := &state.BeaconState{
		Validators:  validators,
		RandaoMixes: randaoMixesForTest(cfg),
	}

	indices, err := ActiveValidatorIndices(cfg, st, 0)
	require.NoError(t, err)
	require.Equal(t, 50, len(indices))
	for i, idx := range indices {
		assert.Equal(t, types.ValidatorIndex(i), idx)
	}

	// The first call populated the committee cache, the cached read must agree.
	cached, err := ActiveValidatorIndices(cfg, st, 0)
	require.NoError(t, err)
	assert.DeepEqual(t, indices, cached)
}

func TestActiveValidatorCount_OK(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()

	validators := make([]*ethpb.Validator, 64)
	for i := 0; i < len(validators); i++ {
		exit := cfg.FarFutureEpoch
		if i%4 == 0 {
			exit = 1
		}
		validators[i] = &ethpb.Validator{
			ActivationEpoch:  0,
			ExitEpoch:        exit,
			EffectiveBalance: cfg.MaxEffectiveBalance,
		}
	}
	st := &state.BeaconState{
		Validators:  validators,
		RandaoMixes: randaoMixesForTest(cfg),
		Slot:        cfg.SlotsPerEpoch.Mul(2),
	}

	count, err := ActiveValidatorCount(cfg, st, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(48), count)

	cachedCount, err := ActiveValidatorCount(cfg, st, 2)
	require.NoError(t, err)
	assert.Equal(t, count, cachedCount)
}

func TestValidatorChurnLimit_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		validatorCount uint64
		wantedChurn    uint64
	}{
		{validatorCount: 0, wantedChurn: 4},
		{validatorCount: 1000, wantedChurn: 4},
		{validatorCount: 100000, wantedChurn: 4},
		{validatorCount: 1000000, wantedChurn: 15},
		{validatorCount: 2000000, wantedChurn: 30},
	}
	for _, test := range tests {
		assert.Equal(t, test.wantedChurn, ValidatorChurnLimit(cfg, test.validatorCount), "ValidatorChurnLimit(%d)", test.validatorCount)
	}
}

func TestActivationExitEpoch_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		epoch types.Epoch
		want  types.Epoch
	}{
		{epoch: 0, want: 5},
		{epoch: 10, want: 15},
		{epoch: 7282, want: 7287},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ActivationExitEpoch(cfg, test.epoch))
	}
}

func TestComputeProposerIndex_EmptyIndicesList(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{}
	_, err := ComputeProposerIndex(cfg, st, []types.ValidatorIndex{}, [32]byte{5})
	assert.ErrorContains(t, "empty active indices list", err)
}

func TestComputeProposerIndex_SingleCandidate(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	validators := make([]*ethpb.Validator, 6)
	for i := 0; i < len(validators); i++ {
		validators[i] = &ethpb.Validator{EffectiveBalance: cfg.MaxEffectiveBalance}
	}
	st := &state.BeaconState{Validators: validators}

	// With a single candidate at maximum effective balance the very first
	// sample is always accepted.
	idx, err := ComputeProposerIndex(cfg, st, []types.ValidatorIndex{5}, [32]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, types.ValidatorIndex(5), idx)
}

func TestComputeProposerIndex_MatchesShuffledFirstSample(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	seed := [32]byte{12, 42, 7}

	count := 10
	validators := make([]*ethpb.Validator, count)
	activeIndices := make([]types.ValidatorIndex, count)
	for i := 0; i < count; i++ {
		validators[i] = &ethpb.Validator{EffectiveBalance: cfg.MaxEffectiveBalance}
		activeIndices[i] = types.ValidatorIndex(i)
	}
	st := &state.BeaconState{Validators: validators}

	idx, err := ComputeProposerIndex(cfg, st, activeIndices, seed)
	require.NoError(t, err)

	// Maximum effective balance everywhere means the first sampled candidate
	// wins, which is the shuffled position of index zero.
	firstSample, err := ComputeShuffledIndex(cfg, 0, uint64(count), seed, true)
	require.NoError(t, err)
	assert.Equal(t, activeIndices[firstSample], idx)

	again, err := ComputeProposerIndex(cfg, st, activeIndices, seed)
	require.NoError(t, err)
	assert.Equal(t, idx, again)
}

func TestComputeProposerIndex_IndexOutOfRange(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{Validators: []*ethpb.Validator{
		{EffectiveBalance: cfg.MaxEffectiveBalance},
	}}
	_, err := ComputeProposerIndex(cfg, st, []types.ValidatorIndex{3}, [32]byte{5})
	assert.ErrorContains(t, "active index out of range", err)
}

func TestBeaconProposerIndex_CachedMatchesDirect(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()

	validators := make([]*ethpb.Validator, 64)
	for i := 0; i < len(validators); i++ {
		validators[i] = &ethpb.Validator{
			ExitEpoch:        cfg.FarFutureEpoch,
			EffectiveBalance: cfg.MaxEffectiveBalance,
		}
	}
	st := &state.BeaconState{
		Validators:  validators,
		RandaoMixes: randaoMixesForTest(cfg),
		Slot:        5,
	}

	direct, err := BeaconProposerIndex(cfg, st)
	require.NoError(t, err)
	assert.Equal(t, true, uint64(direct) < uint64(len(validators)))

	// The first call filled the proposer indices cache. The cached result has
	// to match the directly computed one.
	cached, err := BeaconProposerIndex(cfg, st)
	require.NoError(t, err)
	assert.Equal(t, direct, cached)

	ClearCache()
	recomputed, err := BeaconProposerIndex(cfg, st)
	require.NoError(t, err)
	assert.Equal(t, direct, recomputed)
}

func TestIsEligibleForActivationQueue_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		name      string
		validator *ethpb.Validator
		want      bool
	}{
		{
			name: "eligible",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: cfg.FarFutureEpoch,
				EffectiveBalance:           cfg.MaxEffectiveBalance,
			},
			want: true,
		},
		{
			name: "incorrect balance",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: cfg.FarFutureEpoch,
				EffectiveBalance:           cfg.MaxEffectiveBalance - 1,
			},
			want: false,
		},
		{
			name: "already eligible",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: 1,
				EffectiveBalance:           cfg.MaxEffectiveBalance,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligibleForActivationQueue(cfg, tt.validator))
		})
	}
}

func TestIsEligibleForActivation_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		name      string
		validator *ethpb.Validator
		state     *state.BeaconState
		want      bool
	}{
		{
			name: "eligible",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: 1,
				ActivationEpoch:            cfg.FarFutureEpoch,
			},
			state: &state.BeaconState{
				FinalizedCheckpoint: &ethpb.Checkpoint{Epoch: 2},
			},
			want: true,
		},
		{
			name: "not yet finalized",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: 3,
				ActivationEpoch:            cfg.FarFutureEpoch,
			},
			state: &state.BeaconState{
				FinalizedCheckpoint: &ethpb.Checkpoint{Epoch: 2},
			},
			want: false,
		},
		{
			name: "already activated",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: 1,
				ActivationEpoch:            1,
			},
			state: &state.BeaconState{
				FinalizedCheckpoint: &ethpb.Checkpoint{Epoch: 2},
			},
			want: false,
		},
		{
			name: "no finalized checkpoint",
			validator: &ethpb.Validator{
				ActivationEligibilityEpoch: 1,
				ActivationEpoch:            cfg.FarFutureEpoch,
			},
			state: &state.BeaconState{},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligibleForActivation(cfg, tt.state, tt.validator))
		})
	}
}
