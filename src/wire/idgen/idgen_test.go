package idgen

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIDShape(t *testing.T) {
	id := NewRandom().NextID()
	require.Len(t, string(id), 16)
	_, err := hex.DecodeString(string(id))
	assert.NoError(t, err)
}

func TestRandomIDsAreUnique(t *testing.T) {
	gen := NewRandom()
	seen := make(map[CorrelationID]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := gen.NextID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s after %d generations", id, i)
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	gen := NewSequence("req-")
	assert.Equal(t, CorrelationID("req-1"), gen.NextID())
	assert.Equal(t, CorrelationID("req-2"), gen.NextID())

	plain := NewSequence("")
	assert.Equal(t, CorrelationID("1"), plain.NextID())
}

func TestSequenceConcurrent(t *testing.T) {
	gen := NewSequence("")
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[CorrelationID]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]CorrelationID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, gen.NextID())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}

func TestFunc(t *testing.T) {
	var g Generator = Func(func() CorrelationID { return "fixed" })
	assert.Equal(t, CorrelationID("fixed"), g.NextID())
}
