package catalog

// Effect is a side effect implied by a state transition
type Effect interface {
	isEffect()
}

// PersistQuery writes the query to durable storage
type PersistQuery struct {
	Query string
}

// PersistWatchlist writes the full watchlist to durable storage
type PersistWatchlist struct {
	Watchlist []Show
}

// FetchResults searches the remote API for Query
type FetchResults struct {
	Query string
}

// FetchDetail loads a show and its episodes
type FetchDetail struct {
	ID int
}

func (PersistQuery) isEffect()     {}
func (PersistWatchlist) isEffect() {}
func (FetchResults) isEffect()     {}
func (FetchDetail) isEffect()      {}

// Effects lists the side effects of moving from prev to next, in the order they should run.
// Persistence comes before fetching.
func Effects(prev, next State) []Effect {
	var effects []Effect

	queryChanged := prev.Query != next.Query
	if queryChanged {
		effects = append(effects, PersistQuery{Query: next.Query})
	}
	if watchlistChanged(prev.Watchlist, next.Watchlist) {
		effects = append(effects, PersistWatchlist{Watchlist: next.Watchlist})
	}
	if queryChanged {
		effects = append(effects, FetchResults{Query: next.Query})
	}
	if next.SelectedID != nil && (prev.SelectedID == nil || *prev.SelectedID != *next.SelectedID) {
		effects = append(effects, FetchDetail{ID: *next.SelectedID})
	}

	return effects
}

// watchlistChanged compares entries by id; entries are immutable snapshots
func watchlistChanged(prev, next []Show) bool {
	if len(prev) != len(next) {
		return true
	}
	for i := range prev {
		if prev[i].ID != next[i].ID {
			return true
		}
	}
	return false
}
