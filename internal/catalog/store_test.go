package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchReturnsTransition(t *testing.T) {
	s := NewStore(NewState("rain", nil, 6))

	prev, next := s.Dispatch(SetQuery{Query: "snow"})

	assert.Equal(t, "rain", prev.Query)
	assert.Equal(t, "snow", next.Query)
	assert.Equal(t, next, s.State())
}

func TestStore_ConcurrentDispatchAppliesEveryAction(t *testing.T) {
	s := NewStore(NewState("rain", nil, 6))
	shows := numbered(50)

	var wg sync.WaitGroup
	for _, sh := range shows {
		wg.Add(1)
		go func(sh Show) {
			defer wg.Done()
			s.Dispatch(AddToWatchlist{Show: sh})
		}(sh)
	}
	wg.Wait()

	require.Len(t, s.State().Watchlist, len(shows))
	for _, sh := range shows {
		assert.True(t, s.State().InWatchlist(sh.ID))
	}
}
