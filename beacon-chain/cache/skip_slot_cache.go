package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"go.opencensus.io/trace"
)

const (
	// maxSkipSlotCacheSize defines the max number of skip slot cached states.
	maxSkipSlotCacheSize = 8

	// Delay parameters for the exponential backoff while waiting on an in
	// progress entry, in nanoseconds.
	minDelay    = float64(10)
	maxDelay    = float64(100000000)
	delayFactor = 1.1
)

var (
	skipSlotCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip_slot_cache_hit",
		Help: "The total number of cache hits on the skip slot cache.",
	})
	skipSlotCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip_slot_cache_miss",
		Help: "The total number of cache misses on the skip slot cache.",
	})
)

// SkipSlotCache is used to store the cached results of processing skip slots in transition.ProcessSlots.
type SkipSlotCache struct {
	cache      *lru.Cache
	lock       sync.RWMutex
	disabled   bool // Allow for programmatic toggling of the cache, useful during initial sync.
	inProgress map[[32]byte]bool
}

// NewSkipSlotCache initializes the map and underlying cache.
func NewSkipSlotCache() *SkipSlotCache {
	c, err := lru.New(maxSkipSlotCacheSize)
	if err != nil {
		panic(err)
	}
	return &SkipSlotCache{
		cache:      c,
		inProgress: make(map[[32]byte]bool),
	}
}

// Enable the skip slot cache.
func (c *SkipSlotCache) Enable() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.disabled = false
}

// Disable the skip slot cache.
func (c *SkipSlotCache) Disable() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.disabled = true
}

// Get waits for any in progress calculation to complete before returning a
// cached response, if any. The caller always receives its own copy of the
// cached state.
func (c *SkipSlotCache) Get(ctx context.Context, r [32]byte) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "skipSlotCache.Get")
	defer span.End()
	c.lock.RLock()
	if c.disabled {
		// Return a miss result if cache is not enabled.
		skipSlotCacheMiss.Inc()
		c.lock.RUnlock()
		return nil, nil
	}
	c.lock.RUnlock()

	delay := minDelay

	// Another identical request may be in progress already. Let's wait until
	// any in progress request resolves or our timeout is exceeded.
	inProgress := false
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		c.lock.RLock()
		if !c.inProgress[r] {
			c.lock.RUnlock()
			break
		}
		inProgress = true
		c.lock.RUnlock()

		if delay < maxDelay {
			// Exponentially increase delay.
			delay *= delayFactor
		}

		// This increasing backoff is to decrease the CPU cycles while waiting
		// for the in progress boolean to flip.
		time.Sleep(time.Duration(delay) * time.Nanosecond)
	}
	span.AddAttributes(trace.BoolAttribute("inProgress", inProgress))

	c.lock.RLock()
	defer c.lock.RUnlock()
	item, exists := c.cache.Get(r)

	if exists && item != nil {
		skipSlotCacheHit.Inc()
		span.AddAttributes(trace.BoolAttribute("hit", true))
		return item.(*state.BeaconState).Copy(), nil
	}
	skipSlotCacheMiss.Inc()
	span.AddAttributes(trace.BoolAttribute("hit", false))
	return nil, nil
}

// MarkInProgress a request so that any other similar requests will block on
// Get until MarkNotInProgress is called.
func (c *SkipSlotCache) MarkInProgress(r [32]byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.disabled {
		return nil
	}
	if c.inProgress[r] {
		return ErrAlreadyInProgress
	}
	c.inProgress[r] = true
	return nil
}

// MarkNotInProgress will release the lock on a given request. This should be
// called after put.
func (c *SkipSlotCache) MarkNotInProgress(r [32]byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.inProgress, r)
}

// Put the response in the cache. The state is copied on the way in so callers
// may keep mutating their own instance.
func (c *SkipSlotCache) Put(ctx context.Context, r [32]byte, st *state.BeaconState) {
	_, span := trace.StartSpan(ctx, "skipSlotCache.Put")
	defer span.End()
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.disabled {
		return
	}
	c.cache.Add(r, st.Copy())
}
