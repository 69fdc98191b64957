package catalog

import "github.com/sahilm/fuzzy"

// MatchShows returns the shows whose names fuzzy-match pattern, best match first.
// An empty pattern matches everything in the original order.
func MatchShows(shows []Show, pattern string) []Show {
	if pattern == "" {
		return shows
	}

	names := make([]string, len(shows))
	for i, show := range shows {
		names[i] = show.Name
	}

	matches := fuzzy.Find(pattern, names)
	out := make([]Show, 0, len(matches))
	for _, m := range matches {
		out = append(out, shows[m.Index])
	}
	return out
}
