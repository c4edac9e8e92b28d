package async_test

import (
	"sync"
	"testing"

	"github.com/prysmaticlabs/phase0/async"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestScatterDouble(t *testing.T) {
	tests := []struct {
		name   string
		values int
		err    string
	}{
		{
			name:   "0",
			values: 0,
			err:    "input length must be greater than 0",
		},
		{
			name:   "1",
			values: 1,
		},
		{
			name:   "1023",
			values: 1023,
		},
		{
			name:   "1024",
			values: 1024,
		},
		{
			name:   "1025",
			values: 1025,
		},
		{
			name:   "1000000",
			values: 1000000,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			inValues := make([]uint64, test.values)
			for i := 0; i < test.values; i++ {
				inValues[i] = uint64(i)
			}
			outValues := make([]uint64, test.values)
			workerResults, err := async.Scatter(len(inValues), func(offset int, entries int, _ *sync.RWMutex) (interface{}, error) {
				return double(inValues[offset : offset+entries]), nil
			})
			if test.err != "" {
				assert.ErrorContains(t, test.err, err)
				return
			}
			require.NoError(t, err)
			for _, result := range workerResults {
				copy(outValues[result.Offset:], result.Extent.([]uint64))
			}
			for i := 0; i < test.values; i++ {
				assert.Equal(t, inValues[i]*2, outValues[i], "Outvalue at %v incorrect", i)
			}
		})
	}
}

func TestScatterMutex(t *testing.T) {
	totals := make(map[int]uint64)
	_, err := async.Scatter(1048576, func(offset int, entries int, mu *sync.RWMutex) (interface{}, error) {
		for i := offset; i < offset+entries; i++ {
			mu.Lock()
			totals[i%16]++
			mu.Unlock()
		}
		return nil, nil
	})
	require.NoError(t, err)

	var total uint64
	for _, v := range totals {
		total += v
	}
	assert.Equal(t, uint64(1048576), total)
}

func double(input []uint64) []uint64 {
	output := make([]uint64, len(input))
	for i, value := range input {
		output[i] = value * 2
	}
	return output
}
