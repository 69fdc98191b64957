package results

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/showshelf/internal/catalog"
)

func TestRenderGenres(t *testing.T) {
	assert.Equal(t, "", RenderGenres(nil, false, 3))

	out := RenderGenres([]string{"Drama", "Comedy", "Horror", "Romance"}, false, 2)
	assert.Contains(t, out, "Drama")
	assert.Contains(t, out, "Comedy")
	assert.NotContains(t, out, "Horror")
	assert.Contains(t, out, "+2")
}

func TestCursor(t *testing.T) {
	m := New()
	m.SetItems([]catalog.Show{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	down := tea.KeyMsg{Type: tea.KeyDown}
	m, _ = m.Update(down)
	m, _ = m.Update(down)
	show, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, show.ID)

	m.SetItems([]catalog.Show{{ID: 3, Name: "C"}}, nil)
	show, _ = m.Selected()
	assert.Equal(t, 3, show.ID)

	m.SetItems(nil, nil)
	_, ok = m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No shows match")
}

func TestViewMarksSavedShows(t *testing.T) {
	rating := 7.5
	m := New()
	m.SetItems([]catalog.Show{
		{ID: 1, Name: "Saved", Premiered: "2019-04-01", Language: "English", Rating: catalog.Rating{Average: &rating}},
		{ID: 2, Name: "Other"},
	}, func(id int) bool { return id == 1 })

	view := m.View()

	assert.Contains(t, view, "♥ Saved")
	assert.Contains(t, view, "2019")
	assert.Contains(t, view, "★ 7.5")
	assert.NotContains(t, view, "♥ Other")
}
