package async

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// WorkerResults are the results of a scatter worker.
type WorkerResults struct {
	Offset int
	Extent interface{}
}

// Scatter scatters a computation across multiple goroutines, returning a set
// of worker results. The input is split into near-equal chunks, one per
// worker, and sFunc is invoked with the offset and number of entries of each
// chunk. Workers receive a shared mutex for any cross-chunk bookkeeping they
// may need; reads of the scattered input itself require no locking. If any
// worker errors, the first error is returned and the results are discarded.
func Scatter(inputLen int, sFunc func(int, int, *sync.RWMutex) (interface{}, error)) ([]*WorkerResults, error) {
	if inputLen <= 0 {
		return nil, errors.New("input length must be greater than 0")
	}

	chunkSize := calculateChunkSize(inputLen)
	workers := inputLen / chunkSize
	if inputLen%chunkSize != 0 {
		workers++
	}

	results := make([]*WorkerResults, workers)
	mutex := new(sync.RWMutex)
	var g errgroup.Group
	for worker := 0; worker < workers; worker++ {
		worker := worker
		offset := worker * chunkSize
		entries := chunkSize
		if offset+entries > inputLen {
			entries = inputLen - offset
		}
		g.Go(func() error {
			extent, err := sFunc(offset, entries, mutex)
			if err != nil {
				return err
			}
			results[worker] = &WorkerResults{
				Offset: offset,
				Extent: extent,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// calculateChunkSize calculates a suitable chunk size for the purposes of
// parallelisation.
func calculateChunkSize(items int) int {
	// Start with a simple even split.
	chunkSize := items / runtime.GOMAXPROCS(0)

	// Add 1 if we have leftover (or if we have fewer items than processors).
	if chunkSize == 0 || items%chunkSize != 0 {
		chunkSize++
	}

	return chunkSize
}
