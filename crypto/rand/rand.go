/*
Package rand defines methods of obtaining random generators.

There are two modes, one for deterministic and another non-deterministic randomness:
- If deterministic pseudo-random generator is enough, use:

	randGen := rand.NewDeterministicGenerator()
	randGen.Intn(32)

- For cryptographically secure non-deterministic mode (CSPRNG), use:

	randGen := rand.NewGenerator()
	randGen.Intn(32)

Both generator types have the same API as rand.Rand from the standard library.
*/
package rand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

type source struct{}

var lock sync.RWMutex

// Seed does nothing when crypto/rand is used as source.
func (_ *source) Seed(_ int64) {}

// Int63 returns uniformly-distributed random (as in CSPRNG) int64 value within [0, 1<<63) range.
// Panics if random generator reader cannot return data.
func (s *source) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

// Uint64 returns uniformly-distributed random (as in CSPRNG) uint64 value within [0, 1<<64) range.
// Panics if random generator reader cannot return data.
func (_ *source) Uint64() (val uint64) {
	lock.RLock()
	defer lock.RUnlock()
	if err := binary.Read(rand.Reader, binary.BigEndian, &val); err != nil {
		panic(err)
	}
	return
}

// NewGenerator returns a new generator that uses random values from crypto/rand as a source
// (cryptographically secure random number generator).
// Panics if crypto/rand input cannot be read.
// Use it for everything where crypto secure non-deterministic randomness is required.
// Performance takes a hit, so use sparingly.
func NewGenerator() *mrand.Rand {
	return mrand.New(&source{}) // #nosec G404 -- excluded
}

// NewDeterministicGenerator returns a random generator which is only seeded with constant value,
// thus making it deterministic. Never use it for production, testing only.
func NewDeterministicGenerator() *mrand.Rand {
	return mrand.New(mrand.NewSource(42)) // #nosec G404 -- excluded
}
