package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is the panic value cause for actions Reduce does not handle
var ErrUnknownAction = errors.New("catalog: unknown action")

// Reduce returns the state that results from applying a to s.
// It never mutates s and performs no I/O. Unknown actions panic.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case BeginSearch:
		s.Loading = true
		s.Error = false

	case SearchSucceeded:
		s.Loading = false
		s.Results = orEmpty(a.Shows)

	case SearchFailed:
		s.Loading = false
		s.Error = true

	case BeginDetailFetch:
		s.Loading = true
		s.Error = false
		s.Detail = nil
		s.Episodes = []Episode{}

	case DetailFetchSucceeded:
		show := a.Show
		s.Loading = false
		s.Detail = &show
		s.Episodes = orEmpty(a.Episodes)

	case SetQuery:
		s.Query = a.Query
		s.Page = 1

	case SetFilters:
		s.Filters = a.Patch.Apply(s.Filters)
		s.Page = 1

	case AddToWatchlist:
		if s.InWatchlist(a.Show.ID) {
			return s
		}
		next := make([]Show, len(s.Watchlist), len(s.Watchlist)+1)
		copy(next, s.Watchlist)
		s.Watchlist = append(next, a.Show)

	case RemoveFromWatchlist:
		if !s.InWatchlist(a.ID) {
			return s
		}
		next := make([]Show, 0, len(s.Watchlist))
		for _, show := range s.Watchlist {
			if show.ID != a.ID {
				next = append(next, show)
			}
		}
		s.Watchlist = next

	case ClearWatchlist:
		s.Watchlist = []Show{}

	case SetPage:
		s.Page = a.Page

	case ViewDetail:
		id := a.ID
		s.SelectedID = &id

	case ViewHome:
		s.SelectedID = nil
		s.Detail = nil
		s.Episodes = []Episode{}

	default:
		panic(fmt.Errorf("%w: %T", ErrUnknownAction, a))
	}
	return s
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
