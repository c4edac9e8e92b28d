package helpers

import (
	"github.com/prysmaticlabs/phase0/beacon-chain/cache"
)

var (
	committeeCache       = cache.NewCommitteesCache()
	proposerIndicesCache = cache.NewProposerIndicesCache()
)

// ClearCache clears the committee cache and proposer indices cache. Tests that
// share a process call this between cases so shuffles from one state cannot
// leak into another.
func ClearCache() {
	committeeCache = cache.NewCommitteesCache()
	proposerIndicesCache = cache.NewProposerIndicesCache()
}
