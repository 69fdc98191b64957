package catalog

// Show is a remote show record. Values are snapshots and are never updated in place.
type Show struct {
	ID           int      `json:"id"`
	URL          string   `json:"url,omitempty"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Language     string   `json:"language,omitempty"`
	Genres       []string `json:"genres"`
	Status       string   `json:"status,omitempty"`
	Runtime      *int     `json:"runtime,omitempty"`
	Premiered    string   `json:"premiered,omitempty"`
	OfficialSite string   `json:"officialSite,omitempty"`
	Rating       Rating   `json:"rating"`
	Image        *Image   `json:"image,omitempty"`
	Summary      string   `json:"summary,omitempty"`
}

// Rating holds the average user rating; Average is nil when the show is unrated
type Rating struct {
	Average *float64 `json:"average"`
}

// Image holds poster URLs
type Image struct {
	Medium   string `json:"medium,omitempty"`
	Original string `json:"original,omitempty"`
}

// Episode belongs to exactly one show
type Episode struct {
	ID      int    `json:"id"`
	Season  int    `json:"season"`
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Airdate string `json:"airdate,omitempty"`
	Runtime *int   `json:"runtime,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// RatingOrZero returns the average rating, treating unrated shows as 0
func (s Show) RatingOrZero() float64 {
	if s.Rating.Average == nil {
		return 0
	}
	return *s.Rating.Average
}

// HasGenre reports whether genre is one of the show's genres
func (s Show) HasGenre(genre string) bool {
	for _, g := range s.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Filters narrow the loaded results. Empty strings match everything.
type Filters struct {
	Genre     string  `json:"genre"`
	Language  string  `json:"language"`
	MinRating float64 `json:"minRating"`
}

// FilterPatch is a partial Filters update; nil fields keep their current value
type FilterPatch struct {
	Genre     *string
	Language  *string
	MinRating *float64
}

// Apply merges p into f
func (p FilterPatch) Apply(f Filters) Filters {
	if p.Genre != nil {
		f.Genre = *p.Genre
	}
	if p.Language != nil {
		f.Language = *p.Language
	}
	if p.MinRating != nil {
		f.MinRating = *p.MinRating
	}
	return f
}

const (
	// MinRatingFloor and MinRatingCeil bound Filters.MinRating
	MinRatingFloor = 0.0
	MinRatingCeil  = 10.0
	// MinRatingStep is the increment used by rating controls
	MinRatingStep = 0.5
)
