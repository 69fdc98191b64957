package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchShows(t *testing.T) {
	shows := []Show{
		{ID: 1, Name: "Breaking Bad"},
		{ID: 2, Name: "Better Call Saul"},
		{ID: 3, Name: "The Wire"},
	}

	got := MatchShows(shows, "bcs")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, MatchShows(shows, "zzz"))
	assert.Len(t, MatchShows(shows, "e"), 3)
	assert.Equal(t, shows, MatchShows(shows, ""))
	assert.Empty(t, MatchShows(nil, "a"))
}
