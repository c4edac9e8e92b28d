package cache

import (
	"k8s.io/client-go/tools/cache"
)

// trim the FIFO queue to the maxSize.
func trim(queue *cache.FIFO, maxSize int) {
	for s := queue.ListKeys(); len(s) > maxSize; s = queue.ListKeys() {
		if _, err := queue.Pop(popProcessNoopFunc); err != nil {
			// popProcessNoopFunc never returns an error, but we handle this anyway to make linter
			// happy.
			return
		}
	}
}

// popProcessNoopFunc is a no-op function that never returns an error.
func popProcessNoopFunc(_ interface{}) error {
	return nil
}
