package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
	"github.com/justchokingaround/showshelf/internal/tui/utils"
)

const maxGenres = 3

var (
	upKey   = key.NewBinding(key.WithKeys("up", "k"))
	downKey = key.NewBinding(key.WithKeys("down", "j"))
)

// Model lists one page of shows with a cursor
type Model struct {
	items   []catalog.Show
	cursor  int
	focused bool
	width   int

	// inWatchlist marks entries already saved
	inWatchlist func(id int) bool
}

func New() Model {
	return Model{
		focused:     true,
		width:       80,
		inWatchlist: func(int) bool { return false },
	}
}

// SetItems replaces the list. The cursor stays in range.
func (m *Model) SetItems(items []catalog.Show, inWatchlist func(id int) bool) {
	m.items = items
	if inWatchlist != nil {
		m.inWatchlist = inWatchlist
	}
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
}

// ResetCursor moves the cursor back to the first item
func (m *Model) ResetCursor() {
	m.cursor = 0
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

// Selected returns the show under the cursor
func (m Model) Selected() (catalog.Show, bool) {
	if len(m.items) == 0 {
		return catalog.Show{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) Len() int {
	return len(m.items)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, upKey):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, downKey):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return styles.MetadataStyle.Render("  No shows match the current filters.")
	}

	var b strings.Builder
	for i, show := range m.items {
		selected := m.focused && i == m.cursor
		b.WriteString(m.renderItem(show, selected))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderItem(show catalog.Show, selected bool) string {
	itemStyle := styles.ItemStyle
	if selected {
		itemStyle = styles.ItemSelectedStyle
	}

	title := utils.Truncate(show.Name, max(m.width-24, 10))
	if m.inWatchlist(show.ID) {
		title = styles.WatchlistMarkStyle.Render("♥ ") + styles.ItemTitleStyle.Render(title)
	} else {
		title = styles.ItemTitleStyle.Render(title)
	}

	meta := []string{styles.FormatRating(show.Rating.Average)}
	if show.Language != "" {
		meta = append(meta, styles.MetadataStyle.Render(show.Language))
	}
	if year := premiereYear(show.Premiered); year != "" {
		meta = append(meta, styles.MetadataStyle.Render(year))
	}
	if genres := RenderGenres(show.Genres, selected, maxGenres); genres != "" {
		meta = append(meta, genres)
	}

	return itemStyle.Render(fmt.Sprintf("%s\n%s", title, strings.Join(meta, "  ")))
}

func premiereYear(premiered string) string {
	if len(premiered) < 4 {
		return ""
	}
	return premiered[:4]
}
