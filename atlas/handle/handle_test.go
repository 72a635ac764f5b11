package handle_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/atlaskit/atlas/handle"
)

func TestCounterStartsAboveZero(t *testing.T) {
	var counter handle.Counter

	first := counter.Create()
	require.NotEqual(t, handle.NoHandle, first)
	require.Equal(t, handle.Handle(1), first)
	require.Equal(t, handle.Handle(2), counter.Create())
	require.Equal(t, handle.Handle(3), counter.Create())
}

func TestCounterConcurrentCreate(t *testing.T) {
	var counter handle.Counter
	const workers = 8
	const perWorker = 1000

	results := make([][]handle.Handle, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results[worker] = append(results[worker], counter.Create())
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[handle.Handle]struct{}, workers*perWorker)
	for _, handles := range results {
		for _, h := range handles {
			_, duplicate := seen[h]
			require.False(t, duplicate, "handle %d minted twice", h)
			seen[h] = struct{}{}
		}
	}
	require.Len(t, seen, workers*perWorker)
	_, hasZero := seen[handle.NoHandle]
	require.False(t, hasZero)
}

func TestUUIDsAreDistinct(t *testing.T) {
	var source handle.Source[uuid.UUID] = handle.UUIDs{}

	a := source.Create()
	b := source.Create()
	require.NotEqual(t, uuid.Nil, a)
	require.NotEqual(t, a, b)
	require.Equal(t, uuid.Version(4), a.Version())
}
