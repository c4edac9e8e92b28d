package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// maxProposerIndicesCacheSize defines the max number of proposer indices entries can cache.
const maxProposerIndicesCacheSize = 8

var (
	// ProposerIndicesCacheMiss tracks the number of proposer indices requests that aren't present in the cache.
	ProposerIndicesCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proposer_indices_cache_miss",
		Help: "The number of proposer indices requests that aren't present in the cache.",
	})
	// ProposerIndicesCacheHit tracks the number of proposer indices requests that are in the cache.
	ProposerIndicesCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proposer_indices_cache_hit",
		Help: "The number of proposer indices requests that are present in the cache.",
	})
)

// ProposerIndices defines the cached struct for proposer indices. Entries are
// keyed by the epoch seed plus config name, same scheme as the committee cache.
type ProposerIndices struct {
	Seed            [32]byte
	ConfigName      string
	ProposerIndices []types.ValidatorIndex
}

// ProposerIndicesCache is a struct with 1 LRU cache for looking up proposer indices by epoch seed.
type ProposerIndicesCache struct {
	proposerIndicesCache *lru.Cache
	lock                 sync.RWMutex
}

// NewProposerIndicesCache creates a new proposer indices cache for storing/accessing proposer indices on a per epoch basis.
func NewProposerIndicesCache() *ProposerIndicesCache {
	c, err := lru.New(maxProposerIndicesCacheSize)
	// An error is only returned for a non positive size.
	if err != nil {
		panic(err)
	}
	return &ProposerIndicesCache{
		proposerIndicesCache: c,
	}
}

// AddProposerIndices adds ProposerIndices object to the cache.
// This method also trims the least recently added ProposerIndices object if the cache size has reached the max cache size limit.
// The config name of the entry is stamped from the provided config before keying.
func (c *ProposerIndicesCache) AddProposerIndices(cfg *params.BeaconChainConfig, p *ProposerIndices) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	p.ConfigName = cfg.ConfigName
	c.proposerIndicesCache.Add(key(p.Seed, p.ConfigName), p.ProposerIndices)
	return nil
}

// ProposerIndices returns the proposer indices of a given epoch seed stored in cache.
// Returns nil without error when the seed is not present.
func (c *ProposerIndicesCache) ProposerIndices(cfg *params.BeaconChainConfig, seed [32]byte) ([]types.ValidatorIndex, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	obj, exists := c.proposerIndicesCache.Get(key(seed, cfg.ConfigName))
	if exists {
		ProposerIndicesCacheHit.Inc()
	} else {
		ProposerIndicesCacheMiss.Inc()
		return nil, nil
	}

	item, ok := obj.([]types.ValidatorIndex)
	if !ok {
		return nil, ErrNotProposerIndices
	}

	return item, nil
}

// HasProposerIndices returns true if the cache has an entry for a given epoch seed.
func (c *ProposerIndicesCache) HasProposerIndices(cfg *params.BeaconChainConfig, seed [32]byte) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.proposerIndicesCache.Contains(key(seed, cfg.ConfigName))
}

// Len returns the number of cached proposer indices entries.
func (c *ProposerIndicesCache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.proposerIndicesCache.Len()
}
