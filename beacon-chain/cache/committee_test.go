package cache

import (
	"sort"
	"strconv"
	"testing"

	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestCommitteeKeyFn_OK(t *testing.T) {
	item := &Committees{
		CommitteeCount:  1,
		Seed:            [32]byte{'A'},
		ConfigName:      "minimal",
		ShuffledIndices: []types.ValidatorIndex{1, 2, 3, 4, 5},
	}

	k, err := committeeKeyFn(item)
	require.NoError(t, err)
	assert.Equal(t, key(item.Seed, item.ConfigName), k)
}

func TestCommitteeKeyFn_InvalidObj(t *testing.T) {
	_, err := committeeKeyFn("bad")
	assert.Equal(t, ErrNotCommittee, err)
}

func TestCommitteeCache_CommitteesByEpoch(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	c := NewCommitteesCache()

	item := &Committees{
		ShuffledIndices: []types.ValidatorIndex{1, 2, 3, 4, 5, 6},
		Seed:            [32]byte{'A'},
		CommitteeCount:  3,
	}

	slot := cfg.SlotsPerEpoch
	committeeIndex := types.CommitteeIndex(1)
	indices, err := c.Committee(cfg, slot, item.Seed, committeeIndex)
	require.NoError(t, err)
	if indices != nil {
		t.Error("Expected committee not to exist in empty cache")
	}
	require.NoError(t, c.AddCommitteeShuffledList(cfg, item))

	wantedIndex := types.CommitteeIndex(0)
	indices, err = c.Committee(cfg, slot, item.Seed, wantedIndex)
	require.NoError(t, err)

	start, end := startEndIndices(item, uint64(wantedIndex))
	assert.DeepEqual(t, item.ShuffledIndices[start:end], indices)
}

func TestCommitteeCache_RequestedIndexOutOfBound(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	c := NewCommitteesCache()

	item := &Committees{
		ShuffledIndices: []types.ValidatorIndex{1, 2, 3, 4, 5, 6},
		Seed:            [32]byte{'B'},
		CommitteeCount:  3,
	}
	require.NoError(t, c.AddCommitteeShuffledList(cfg, item))

	_, err := c.Committee(cfg, 0, item.Seed, types.CommitteeIndex(item.CommitteeCount))
	require.ErrorContains(t, "requested index out of bound", err)
}

func TestCommitteeCache_ActiveIndices(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	c := NewCommitteesCache()

	item := &Committees{Seed: [32]byte{'A'}, SortedIndices: []types.ValidatorIndex{1, 2, 3, 4, 5, 6}}
	indices, err := c.ActiveIndices(cfg, item.Seed)
	require.NoError(t, err)
	if indices != nil {
		t.Error("Expected committee not to exist in empty cache")
	}

	require.NoError(t, c.AddCommitteeShuffledList(cfg, item))

	indices, err = c.ActiveIndices(cfg, item.Seed)
	require.NoError(t, err)
	assert.DeepEqual(t, item.SortedIndices, indices)
}

func TestCommitteeCache_ActiveCount(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	c := NewCommitteesCache()

	item := &Committees{Seed: [32]byte{'A'}, SortedIndices: []types.ValidatorIndex{1, 2, 3, 4, 5, 6}}
	count, err := c.ActiveIndicesCount(cfg, item.Seed)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "Expected active count not to exist in empty cache")

	require.NoError(t, c.AddCommitteeShuffledList(cfg, item))

	count, err = c.ActiveIndicesCount(cfg, item.Seed)
	require.NoError(t, err)
	assert.Equal(t, len(item.SortedIndices), count)
}

func TestCommitteeCache_EntriesAreScopedToConfig(t *testing.T) {
	minimal := params.MinimalSpecConfig()
	mainnet := params.MainnetConfig()
	c := NewCommitteesCache()

	// A fresh state produces the same seed bytes under every preset, so the
	// committees of one preset must stay invisible to the other.
	item := &Committees{Seed: [32]byte{'A'}, SortedIndices: []types.ValidatorIndex{1, 2, 3}}
	require.NoError(t, c.AddCommitteeShuffledList(minimal, item))

	assert.Equal(t, true, c.HasEntry(minimal, item.Seed))
	assert.Equal(t, false, c.HasEntry(mainnet, item.Seed))

	indices, err := c.ActiveIndices(mainnet, item.Seed)
	require.NoError(t, err)
	if indices != nil {
		t.Error("Expected minimal preset entry to be invisible under mainnet")
	}
}

func TestCommitteeCache_CanRotate(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	c := NewCommitteesCache()

	// Should rotate out all the entries inserted before the last
	// maxCommitteesCacheSize ones.
	start := 100
	end := 200
	for i := start; i < end; i++ {
		s := []byte(strconv.Itoa(i))
		item := &Committees{Seed: bytesutil.ToBytes32(s)}
		require.NoError(t, c.AddCommitteeShuffledList(cfg, item))
	}

	k := c.CommitteeCache.ListKeys()
	assert.Equal(t, maxCommitteesCacheSize, len(k))

	sort.Strings(k)
	wanted := end - maxCommitteesCacheSize
	s := bytesutil.ToBytes32([]byte(strconv.Itoa(wanted)))
	assert.Equal(t, key(s, cfg.ConfigName), k[0], "incorrect key received for entry 168")
}
