package watchlist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/showshelf/internal/catalog"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocused(entries ...catalog.Show) Model {
	m := New()
	m.SetFocused(true)
	m.SetEntries(entries)
	return m
}

func TestEmptyPanel(t *testing.T) {
	m := newFocused()

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Watchlist (0)")
	assert.Contains(t, m.View(), "Press a to save a show.")
}

func TestCursorFollowsShrinkingList(t *testing.T) {
	m := newFocused(catalog.Show{ID: 1, Name: "A"}, catalog.Show{ID: 2, Name: "B"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	show, _ := m.Selected()
	assert.Equal(t, 2, show.ID)

	m.SetEntries([]catalog.Show{{ID: 1, Name: "A"}})
	show, _ = m.Selected()
	assert.Equal(t, 1, show.ID)
}

func TestFuzzyFilter(t *testing.T) {
	m := newFocused(
		catalog.Show{ID: 1, Name: "Breaking Bad"},
		catalog.Show{ID: 2, Name: "Better Call Saul"},
		catalog.Show{ID: 3, Name: "The Wire"},
	)

	m.StartFilter()
	require.True(t, m.Filtering())
	for _, r := range "wire" {
		m, _ = m.Update(runes(string(r)))
	}

	show, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, show.ID)
	assert.Contains(t, m.View(), "Watchlist (3)")
	assert.NotContains(t, m.View(), "Breaking Bad")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Filtering())
	show, _ = m.Selected()
	assert.Equal(t, 3, show.ID, "locked filter stays applied")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Breaking Bad")
}

func TestFuzzyFilterNoMatch(t *testing.T) {
	m := newFocused(catalog.Show{ID: 1, Name: "Lost"})

	m.StartFilter()
	m, _ = m.Update(runes("z"))

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No saved show matches.")
}
