package helpers

import (
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func randaoMixesForTest(cfg *params.BeaconChainConfig) [][]byte {
	mixes := make([][]byte, cfg.EpochsPerHistoricalVector)
	for i := 0; i < len(mixes); i++ {
		intInBytes := make([]byte, 32)
		copy(intInBytes, bytesutil.Bytes8(uint64(i)))
		mixes[i] = intInBytes
	}
	return mixes
}

func TestRandaoMix_OK(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{RandaoMixes: randaoMixesForTest(cfg)}

	tests := []struct {
		epoch     types.Epoch
		randaoMix []byte
	}{
		{
			epoch:     10,
			randaoMix: st.RandaoMixes[10],
		},
		{
			epoch:     2344,
			randaoMix: st.RandaoMixes[2344%uint64(cfg.EpochsPerHistoricalVector)],
		},
	}
	for _, test := range tests {
		st.Slot, _ = StartSlot(cfg, test.epoch+1)
		mix, err := RandaoMix(cfg, st, test.epoch)
		require.NoError(t, err)
		assert.DeepEqual(t, test.randaoMix, mix, "unexpected randao mix for epoch %d", test.epoch)
	}
}

func TestRandaoMix_CopyOK(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{RandaoMixes: randaoMixesForTest(cfg)}

	mix, err := RandaoMix(cfg, st, 10)
	require.NoError(t, err)

	uniqueNumber := uint64(cfg.EpochsPerHistoricalVector) + 1000
	copy(mix, bytesutil.Bytes8(uniqueNumber))

	for _, mx := range st.RandaoMixes {
		mxNum := bytesutil.FromBytes8(mx[:8])
		assert.NotEqual(t, uniqueNumber, mxNum, "two distinct slices shared memory")
	}
}

func TestRandaoMix_OutOfRange(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{RandaoMixes: make([][]byte, 10)}

	_, err := RandaoMix(cfg, st, 30)
	assert.ErrorContains(t, "randao mix index 30 out of range", err)
}

func TestGenerateSeed_PicksLookaheadMix(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{RandaoMixes: randaoMixesForTest(cfg)}

	epoch := types.Epoch(10)
	wantedIndex := uint64(epoch+cfg.EpochsPerHistoricalVector-cfg.MinSeedLookahead-1) % uint64(cfg.EpochsPerHistoricalVector)

	base, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
	require.NoError(t, err)

	// Mutating an unrelated mix leaves the seed unchanged.
	unrelated := (wantedIndex + 1) % uint64(cfg.EpochsPerHistoricalVector)
	st.RandaoMixes[unrelated][31] ^= 0xff
	same, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	assert.Equal(t, base, same)

	// Mutating the lookahead mix changes the seed.
	st.RandaoMixes[wantedIndex][31] ^= 0xff
	changed, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	assert.NotEqual(t, base, changed)
}

func TestGenerateSeed_DomainSeparation(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	st := &state.BeaconState{RandaoMixes: randaoMixesForTest(cfg)}

	attesterSeed, err := Seed(cfg, st, 5, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	proposerSeed, err := Seed(cfg, st, 5, cfg.DomainBeaconProposer)
	require.NoError(t, err)
	assert.NotEqual(t, attesterSeed, proposerSeed)

	otherEpochSeed, err := Seed(cfg, st, 6, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	assert.NotEqual(t, attesterSeed, otherEpochSeed)
}
