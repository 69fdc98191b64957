package catalog

// Action is a state transition request handled by Reduce
type Action interface {
	isAction()
}

// BeginSearch marks a results fetch as in flight
type BeginSearch struct{}

// SearchSucceeded carries the shows returned by a results fetch
type SearchSucceeded struct {
	Shows []Show
}

// SearchFailed records a failed results or detail fetch
type SearchFailed struct{}

// BeginDetailFetch marks a detail fetch as in flight and clears the previous detail
type BeginDetailFetch struct{}

// DetailFetchSucceeded carries a show and its episodes
type DetailFetchSucceeded struct {
	Show     Show
	Episodes []Episode
}

// SetQuery replaces the search text
type SetQuery struct {
	Query string
}

// SetFilters merges a partial filter update
type SetFilters struct {
	Patch FilterPatch
}

// AddToWatchlist appends a snapshot of Show unless its id is already present
type AddToWatchlist struct {
	Show Show
}

// RemoveFromWatchlist drops the entry with ID
type RemoveFromWatchlist struct {
	ID int
}

// ClearWatchlist empties the watchlist
type ClearWatchlist struct{}

// SetPage moves to Page without bounds checking
type SetPage struct {
	Page int
}

// ViewDetail opens the detail view for ID
type ViewDetail struct {
	ID int
}

// ViewHome closes the detail view
type ViewHome struct{}

func (BeginSearch) isAction()          {}
func (SearchSucceeded) isAction()      {}
func (SearchFailed) isAction()         {}
func (BeginDetailFetch) isAction()     {}
func (DetailFetchSucceeded) isAction() {}
func (SetQuery) isAction()             {}
func (SetFilters) isAction()           {}
func (AddToWatchlist) isAction()       {}
func (RemoveFromWatchlist) isAction()  {}
func (ClearWatchlist) isAction()       {}
func (SetPage) isAction()              {}
func (ViewDetail) isAction()           {}
func (ViewHome) isAction()             {}
