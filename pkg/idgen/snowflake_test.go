package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflake(t *testing.T) {
	tests := []struct {
		name      string
		workerID  int64
		expectErr bool
	}{
		{name: "Lowest worker id", workerID: 0},
		{name: "Highest worker id", workerID: maxWorkerID},
		{name: "Negative worker id", workerID: -1, expectErr: true},
		{name: "Worker id too large", workerID: maxWorkerID + 1, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewSnowflake(tt.workerID)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidWorkerID)
				assert.Nil(t, gen)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, gen)
			}
		})
	}
}

func TestSnowflake_NextIDIncreases(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	prev := gen.NextID()
	for i := 0; i < 10000; i++ {
		id := gen.NextID()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestSnowflake_SameMillisecond(t *testing.T) {
	gen, err := NewSnowflake(3)
	require.NoError(t, err)
	gen.now = func() int64 { return epoch + 1000 }

	first := gen.NextID()
	second := gen.NextID()

	assert.Equal(t, first+1, second)
	assert.Equal(t, int64(3), (first>>workerIDShift)&maxWorkerID)
}

func TestSnowflake_ClockBackwards(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	clock := epoch + 5000
	gen.now = func() int64 { return clock }
	first := gen.NextID()

	clock = epoch + 4000
	second := gen.NextID()

	assert.Greater(t, second, first)
}

func TestSnowflake_Concurrent(t *testing.T) {
	gen, err := NewSnowflake(2)
	require.NoError(t, err)

	const workers, perWorker = 8, 500
	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NextID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
