package catalog

import "sort"

// View is the projection of a State that the home screen renders
type View struct {
	Genres    []string
	Languages []string

	// Filtered is every loaded result that passes the active filters
	Filtered   []Show
	TotalPages int
	// PageItems is the slice of Filtered shown on the current page
	PageItems []Show
}

// Project derives the home view from s
func Project(s State) View {
	genres, languages := Facets(s.Results)
	filtered := FilterResults(s.Results, s.Filters)
	return View{
		Genres:     genres,
		Languages:  languages,
		Filtered:   filtered,
		TotalPages: TotalPages(len(filtered), s.PageSize),
		PageItems:  Paginate(filtered, s.Page, s.PageSize),
	}
}

// Facets returns the sorted distinct genres and languages of results
func Facets(results []Show) (genres, languages []string) {
	genreSet := make(map[string]struct{})
	languageSet := make(map[string]struct{})
	for _, show := range results {
		for _, g := range show.Genres {
			genreSet[g] = struct{}{}
		}
		if show.Language != "" {
			languageSet[show.Language] = struct{}{}
		}
	}
	return sortedKeys(genreSet), sortedKeys(languageSet)
}

// Matches reports whether show passes f
func (f Filters) Matches(show Show) bool {
	if f.Genre != "" && !show.HasGenre(f.Genre) {
		return false
	}
	if f.Language != "" && show.Language != f.Language {
		return false
	}
	return show.RatingOrZero() >= f.MinRating
}

// FilterResults keeps the shows matching f, preserving order
func FilterResults(results []Show, f Filters) []Show {
	filtered := make([]Show, 0, len(results))
	for _, show := range results {
		if f.Matches(show) {
			filtered = append(filtered, show)
		}
	}
	return filtered
}

// TotalPages returns ceil(n/pageSize), never less than 1
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns the items on 1-based page. Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 || len(items) == 0 {
		return []T{}
	}
	// compare before multiplying so huge pages cannot overflow
	if page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	return items[start:end]
}

// ClampPage limits page to [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
