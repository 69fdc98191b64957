package catalog

// DefaultQuery is searched when no query has been persisted
const DefaultQuery = "rain"

// DefaultPageSize is the number of results per page
const DefaultPageSize = 6

// State is the whole browser state. Treat values as immutable; Reduce returns new ones.
type State struct {
	Results  []Show
	Episodes []Episode
	Detail   *Show

	// Watchlist holds unique show snapshots in insertion order
	Watchlist []Show

	Loading bool
	Error   bool

	Query   string
	Filters Filters

	// Page is 1-based
	Page     int
	PageSize int

	// SelectedID is non-nil while the detail view is active
	SelectedID *int
}

// NewState returns the startup state for the given persisted query and watchlist
func NewState(query string, watchlist []Show, pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if watchlist == nil {
		watchlist = []Show{}
	}
	return State{
		Results:   []Show{},
		Episodes:  []Episode{},
		Watchlist: watchlist,
		Loading:   true,
		Query:     query,
		Page:      1,
		PageSize:  pageSize,
	}
}

// InDetail reports whether the detail view is active
func (s State) InDetail() bool {
	return s.SelectedID != nil
}

// InWatchlist reports whether a show with id is on the watchlist
func (s State) InWatchlist(id int) bool {
	return indexOf(s.Watchlist, id) >= 0
}

func indexOf(shows []Show, id int) int {
	for i, show := range shows {
		if show.ID == id {
			return i
		}
	}
	return -1
}
