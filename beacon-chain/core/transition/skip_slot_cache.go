package transition

import (
	"errors"

	"github.com/prysmaticlabs/phase0/beacon-chain/cache"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// SkipSlotCache exists for the unlikely scenario that is a large gap between the head state and
// the current slot. If the beacon chain were ever to be stalled for several epochs, it may be
// difficult or impossible to compute the appropriate beacon state for assignments within a
// reasonable amount of time.
var SkipSlotCache = cache.NewSkipSlotCache()

// SkipSlotCacheKey is the key for skip slot cache is mixed between state root, config name
// and state slot. State root is in the mix to defend against different forks with same skip
// slots hitting the same cache, and the config name keeps coexisting presets apart — fresh
// states under any preset share an all-zero header state root. We don't want beacon states
// mixed up between different chains or configurations.
// [0:24] represents the hash of state root and config name
// [24:32] represents the state slot
func SkipSlotCacheKey(cfg *params.BeaconChainConfig, st *state.BeaconState) ([32]byte, error) {
	bh := st.LatestBlockHeader
	if bh == nil {
		return [32]byte{}, errors.New("block head in state can't be nil")
	}
	if len(bh.StateRoot) != 32 {
		return [32]byte{}, errors.New("invalid state root in latest block header")
	}

	// Build the hash input in a fresh buffer so the header's state root
	// backing array is never appended over.
	buf := make([]byte, 0, 32+len(cfg.ConfigName))
	buf = append(buf, bh.StateRoot...)
	buf = append(buf, cfg.ConfigName...)
	key := hash.Hash(buf)
	copy(key[24:], bytesutil.Uint64ToBytesBigEndian(uint64(st.Slot)))
	return key, nil
}
