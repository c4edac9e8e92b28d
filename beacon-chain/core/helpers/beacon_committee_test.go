package helpers

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

// committeeTestState builds a state with the requested number of active
// validators at epoch zero.
func committeeTestState(cfg *params.BeaconChainConfig, validatorCount int) *state.BeaconState {
	validators := make([]*ethpb.Validator, validatorCount)
	for i := 0; i < validatorCount; i++ {
		validators[i] = &ethpb.Validator{
			ExitEpoch:        cfg.FarFutureEpoch,
			EffectiveBalance: cfg.MaxEffectiveBalance,
		}
	}
	return &state.BeaconState{
		Validators:  validators,
		RandaoMixes: randaoMixesForTest(cfg),
	}
}

func TestSlotCommitteeCount_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		activeCount uint64
		want        uint64
	}{
		{activeCount: 0, want: 1},
		{activeCount: 1000, want: 1},
		{activeCount: 2 * 32 * 128, want: 2},
		{activeCount: 131072, want: 32},
		// 300000 / 32 / 128 exceeds the per slot maximum of 64.
		{activeCount: 300000, want: 64},
		{activeCount: 1 << 31, want: 64},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, SlotCommitteeCount(cfg, test.activeCount), "SlotCommitteeCount(%d)", test.activeCount)
	}
}

func TestSlotCommitteeCount_MinimalPreset(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	tests := []struct {
		activeCount uint64
		want        uint64
	}{
		{activeCount: 64, want: 2},
		{activeCount: 128, want: 4},
		{activeCount: 256, want: 4},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, SlotCommitteeCount(cfg, test.activeCount), "SlotCommitteeCount(%d)", test.activeCount)
	}
}

func TestComputeCommittee_Partitioning(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	validatorCount := 128
	indices := make([]types.ValidatorIndex, validatorCount)
	for i := 0; i < validatorCount; i++ {
		indices[i] = types.ValidatorIndex(i)
	}
	seed := [32]byte{42}

	committeesPerSlot := SlotCommitteeCount(cfg, uint64(validatorCount))
	count := committeesPerSlot * uint64(cfg.SlotsPerEpoch)
	committeeSize := uint64(validatorCount) / count

	seen := make(map[types.ValidatorIndex]bool)
	for index := uint64(0); index < count; index++ {
		committee, err := ComputeCommittee(cfg, indices, seed, index, count)
		require.NoError(t, err, "ComputeCommittee(%d)", index)
		require.Equal(t, committeeSize, uint64(len(committee)), "committee %d has the wrong size", index)
		for _, vIdx := range committee {
			require.Equal(t, false, seen[vIdx], "validator %d assigned to two committees", vIdx)
			seen[vIdx] = true
		}
	}
	// Every active validator is assigned to exactly one committee.
	assert.Equal(t, validatorCount, len(seen))
}

func TestComputeCommittee_DoesNotMutateInput(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	indices := make([]types.ValidatorIndex, 64)
	original := make([]types.ValidatorIndex, 64)
	for i := 0; i < len(indices); i++ {
		indices[i] = types.ValidatorIndex(i)
		original[i] = types.ValidatorIndex(i)
	}

	_, err := ComputeCommittee(cfg, indices, [32]byte{7}, 0, 16)
	require.NoError(t, err)
	assert.DeepEqual(t, original, indices, "input indices were shuffled in place")
}

func TestComputeCommittee_IndexOutOfRange(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	indices := make([]types.ValidatorIndex, 128)
	for i := 0; i < len(indices); i++ {
		indices[i] = types.ValidatorIndex(i)
	}

	_, err := ComputeCommittee(cfg, indices, [32]byte{1}, 33, 32)
	assert.ErrorContains(t, "index out of range", err)
}

func TestBeaconCommitteeFromState_EpochPartition(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()
	validatorCount := 128
	st := committeeTestState(cfg, validatorCount)

	committeesPerSlot := SlotCommitteeCount(cfg, uint64(validatorCount))
	seen := make(map[types.ValidatorIndex]bool)
	for slot := types.Slot(0); slot < cfg.SlotsPerEpoch; slot++ {
		for index := types.CommitteeIndex(0); index < types.CommitteeIndex(committeesPerSlot); index++ {
			committee, err := BeaconCommitteeFromState(cfg, st, slot, index)
			require.NoError(t, err, "BeaconCommitteeFromState(%d, %d)", slot, index)
			for _, vIdx := range committee {
				require.Equal(t, false, seen[vIdx], "validator %d assigned to two committees", vIdx)
				seen[vIdx] = true
			}
		}
	}
	assert.Equal(t, validatorCount, len(seen))
}

func TestBeaconCommitteeFromState_CachedMatchesDirect(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()
	st := committeeTestState(cfg, 128)

	// The first call computes the committee directly and fills the cache on
	// the way, the second is served from the cached shuffled list.
	direct, err := BeaconCommitteeFromState(cfg, st, 3, 1)
	require.NoError(t, err)
	cached, err := BeaconCommitteeFromState(cfg, st, 3, 1)
	require.NoError(t, err)
	assert.DeepEqual(t, direct, cached)
}

func TestVerifyBitfieldLength_OK(t *testing.T) {
	bf := bitfield.NewBitlist(4)
	assert.NoError(t, VerifyBitfieldLength(bf, 4))

	err := VerifyBitfieldLength(bf, 5)
	assert.ErrorContains(t, "wanted participants bitfield length 5, got: 4", err)
}

func TestVerifyAttestationBitfieldLengths_OK(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()
	st := committeeTestState(cfg, 128)

	committee, err := BeaconCommitteeFromState(cfg, st, 0, 0)
	require.NoError(t, err)

	att := &ethpb.Attestation{
		AggregationBits: bitfield.NewBitlist(uint64(len(committee))),
		Data:            &ethpb.AttestationData{Slot: 0, CommitteeIndex: 0},
	}
	assert.NoError(t, VerifyAttestationBitfieldLengths(cfg, st, att))

	att.AggregationBits = bitfield.NewBitlist(uint64(len(committee)) + 1)
	err = VerifyAttestationBitfieldLengths(cfg, st, att)
	assert.ErrorContains(t, "failed to verify aggregation bitfield", err)
}

func TestUpdateCommitteeCache_CachesCurrentAndNextEpoch(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()
	st := committeeTestState(cfg, 128)

	require.NoError(t, UpdateCommitteeCache(cfg, st, 0))

	for _, epoch := range []types.Epoch{0, 1} {
		seed, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
		require.NoError(t, err)
		require.Equal(t, true, committeeCache.HasEntry(cfg, seed), "no cache entry for epoch %d", epoch)

		indices, err := committeeCache.ActiveIndices(cfg, seed)
		require.NoError(t, err)
		assert.Equal(t, 128, len(indices), "wrong active indices count for epoch %d", epoch)
	}
}

func TestUpdateProposerIndicesInCache_OK(t *testing.T) {
	ClearCache()
	cfg := params.MinimalSpecConfig()
	st := committeeTestState(cfg, 128)

	require.NoError(t, UpdateProposerIndicesInCache(cfg, st))

	seed, err := Seed(cfg, st, 0, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	proposerIndices, err := proposerIndicesCache.ProposerIndices(cfg, seed)
	require.NoError(t, err)
	require.Equal(t, uint64(cfg.SlotsPerEpoch), uint64(len(proposerIndices)))
	for i, idx := range proposerIndices {
		assert.Equal(t, true, uint64(idx) < uint64(st.NumValidators()), "proposer index %d out of range at slot %d", idx, i)
	}
}
