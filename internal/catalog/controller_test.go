package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncRunner(f func()) { f() }

func TestController_StartupUsesPersistedState(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(QueryKey, "friends"))
	require.NoError(t, kv.Set(WatchlistKey, `[{"id":1,"name":"Friends","genres":[],"rating":{"average":8.5}}]`))
	source := newFakeSource()
	source.results["friends"] = numbered(3)

	c := NewController(Options{Source: source, KV: kv, PageSize: 6, Runner: syncRunner})

	initial := c.State()
	assert.Equal(t, "friends", initial.Query)
	assert.True(t, initial.Loading)
	require.Len(t, initial.Watchlist, 1)
	assert.Equal(t, "Friends", initial.Watchlist[0].Name)

	c.Start(context.Background())

	state := c.State()
	assert.False(t, state.Loading)
	assert.Len(t, state.Results, 3)
	assert.Equal(t, []string{"search:friends"}, source.Calls())
}

func TestController_StartupDefaultQuery(t *testing.T) {
	source := newFakeSource()
	c := NewController(Options{Source: source, KV: NewMemoryKV(), Runner: syncRunner})

	c.Start(context.Background())

	assert.Equal(t, DefaultQuery, c.State().Query)
	assert.Equal(t, DefaultPageSize, c.State().PageSize)
	assert.Equal(t, []string{"search:" + DefaultQuery}, source.Calls())
}

func TestController_QueryChangePersistsAndFetches(t *testing.T) {
	kv := NewMemoryKV()
	source := newFakeSource()
	source.results["lost"] = numbered(2)
	c := NewController(Options{Source: source, KV: kv, Runner: syncRunner})
	c.Start(context.Background())

	c.Dispatch(SetPage{Page: 3})
	c.Dispatch(SetQuery{Query: "lost"})

	stored, ok, _ := kv.Get(QueryKey)
	assert.True(t, ok)
	assert.Equal(t, "lost", stored)
	assert.Equal(t, 1, c.State().Page)
	assert.Len(t, c.State().Results, 2)
	assert.Equal(t, []string{"search:rain", "search:lost"}, source.Calls())
}

func TestController_WatchlistPersists(t *testing.T) {
	kv := NewMemoryKV()
	c := NewController(Options{Source: newFakeSource(), KV: kv, Runner: syncRunner})

	c.Dispatch(AddToWatchlist{Show: Show{ID: 1, Name: "A", Genres: []string{}}})
	c.Dispatch(AddToWatchlist{Show: Show{ID: 2, Name: "B", Genres: []string{}}})
	c.Dispatch(RemoveFromWatchlist{ID: 1})

	raw, ok, _ := kv.Get(WatchlistKey)
	require.True(t, ok)
	var stored []Show
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, c.State().Watchlist, stored)

	reloaded := NewController(Options{Source: newFakeSource(), KV: kv})
	assert.Equal(t, c.State().Watchlist, reloaded.State().Watchlist)

	c.Dispatch(ClearWatchlist{})
	raw, _, _ = kv.Get(WatchlistKey)
	assert.Equal(t, "[]", raw)
}

func TestController_DetailNavigation(t *testing.T) {
	source := newFakeSource()
	source.shows[5] = Show{ID: 5, Name: "Rain"}
	source.episodes[5] = []Episode{{ID: 50, Season: 1, Number: 1}}
	c := NewController(Options{Source: source, KV: NewMemoryKV(), Runner: syncRunner})

	c.Dispatch(ViewDetail{ID: 5})

	state := c.State()
	require.NotNil(t, state.Detail)
	assert.Equal(t, "Rain", state.Detail.Name)
	assert.Len(t, state.Episodes, 1)

	c.Dispatch(ViewHome{})
	assert.Nil(t, c.State().Detail)
	assert.Empty(t, c.State().Episodes)
}

func TestController_RetryDetail(t *testing.T) {
	source := newFakeSource()
	source.showErr = assert.AnError
	source.shows[5] = Show{ID: 5}
	c := NewController(Options{Source: source, KV: NewMemoryKV(), Runner: syncRunner})

	c.Dispatch(ViewDetail{ID: 5})
	assert.True(t, c.State().Error)

	source.mu.Lock()
	source.showErr = nil
	source.mu.Unlock()
	c.Retry()

	assert.False(t, c.State().Error)
	require.NotNil(t, c.State().Detail)
	assert.Equal(t, 5, c.State().Detail.ID)
}

func TestController_RetryResults(t *testing.T) {
	source := newFakeSource()
	source.searchErr = assert.AnError
	c := NewController(Options{Source: source, KV: NewMemoryKV(), Runner: syncRunner})
	c.Start(context.Background())
	assert.True(t, c.State().Error)

	source.mu.Lock()
	source.searchErr = nil
	source.results["rain"] = numbered(1)
	source.mu.Unlock()
	c.Retry()

	assert.False(t, c.State().Error)
	assert.Len(t, c.State().Results, 1)
	assert.Equal(t, []string{"search:rain", "search:rain"}, source.Calls())
}

func TestController_Subscribe(t *testing.T) {
	c := NewController(Options{Source: newFakeSource(), KV: NewMemoryKV(), Runner: syncRunner})
	var seen []int
	c.Subscribe(func(s State) { seen = append(seen, s.Page) })

	c.Dispatch(SetPage{Page: 2})
	c.Dispatch(SetPage{Page: 3})

	assert.Equal(t, []int{2, 3}, seen)
}

// Query "a" is issued at startup, then "b" before "a" resolves; "a" resolves last.
func raceQueries(t *testing.T, discardStale bool) State {
	t.Helper()

	kv := NewMemoryKV()
	require.NoError(t, kv.Set(QueryKey, "a"))
	source := newFakeSource()
	source.results["a"] = []Show{{ID: 1, Name: "from a"}}
	source.results["b"] = []Show{{ID: 2, Name: "from b"}}
	gateA := source.gate("a")
	gateB := source.gate("b")

	c := NewController(Options{Source: source, KV: kv, DiscardStale: discardStale})
	c.Start(context.Background())
	c.Dispatch(SetQuery{Query: "b"})

	close(gateB)
	require.Eventually(t, func() bool {
		results := c.State().Results
		return len(results) == 1 && results[0].ID == 2
	}, time.Second, 5*time.Millisecond)

	close(gateA)
	c.Wait()
	return c.State()
}

func TestController_StaleResultOverwritesNewerWithoutGuard(t *testing.T) {
	state := raceQueries(t, false)

	assert.Equal(t, "b", state.Query)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "from a", state.Results[0].Name)
}

func TestController_StaleResultDiscardedWithGuard(t *testing.T) {
	state := raceQueries(t, true)

	assert.Equal(t, "b", state.Query)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "from b", state.Results[0].Name)
	assert.False(t, state.Loading)
}

// slowKV delays writes the way a disk-backed store does
type slowKV struct {
	*MemoryKV
	writes atomic.Int64
}

func (k *slowKV) Set(key, value string) error {
	n := k.writes.Add(1)
	time.Sleep(time.Duration(n%3) * time.Millisecond)
	return k.MemoryKV.Set(key, value)
}

func TestController_ConcurrentAddsStayUnique(t *testing.T) {
	kv := &slowKV{MemoryKV: NewMemoryKV()}
	c := NewController(Options{Source: newFakeSource(), KV: kv})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				c.Dispatch(AddToWatchlist{Show: Show{ID: w*20 + i, Genres: []string{}}})
				c.Dispatch(AddToWatchlist{Show: Show{ID: i, Genres: []string{}}})
			}
		}(w)
	}
	wg.Wait()

	state := c.State()
	assert.Len(t, state.Watchlist, 160)

	raw, ok, err := kv.Get(WatchlistKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored []Show
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, state.Watchlist, stored)
}

func TestController_DispatchIfSkipsRejectedAction(t *testing.T) {
	kv := NewMemoryKV()
	c := NewController(Options{Source: newFakeSource(), KV: kv, Runner: syncRunner})

	c.DispatchIf(SetQuery{Query: "lost"}, func() bool { return false })

	assert.Equal(t, DefaultQuery, c.State().Query)
	_, ok, _ := kv.Get(QueryKey)
	assert.False(t, ok)

	c.DispatchIf(SetQuery{Query: "lost"}, func() bool { return true })
	assert.Equal(t, "lost", c.State().Query)
}
