package watchlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/tui/common"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
	"github.com/justchokingaround/showshelf/internal/tui/utils"
)

var (
	upKey     = key.NewBinding(key.WithKeys("up", "k"))
	downKey   = key.NewBinding(key.WithKeys("down", "j"))
	lockKey   = key.NewBinding(key.WithKeys("enter"))
	cancelKey = key.NewBinding(key.WithKeys("esc"))
)

// Model is the side panel listing saved shows
type Model struct {
	all     []catalog.Show
	entries []catalog.Show // all, narrowed by the filter
	filter  *common.FuzzySearch
	cursor  int
	focused bool
	width   int
}

func New() Model {
	return Model{
		filter: common.NewFuzzySearch(),
		width:  32,
	}
}

// SetEntries replaces the panel contents, keeping the cursor in range
func (m *Model) SetEntries(entries []catalog.Show) {
	m.all = entries
	m.applyFilter()
}

func (m *Model) applyFilter() {
	m.entries = catalog.MatchShows(m.all, m.filter.Query())
	if m.cursor >= len(m.entries) {
		m.cursor = max(len(m.entries)-1, 0)
	}
}

// StartFilter opens the fuzzy filter box
func (m *Model) StartFilter() tea.Cmd {
	m.cursor = 0
	cmd := m.filter.Activate()
	m.applyFilter()
	return cmd
}

// Filtering reports whether the filter box is taking keystrokes
func (m Model) Filtering() bool {
	return m.filter.IsEditing()
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) SetWidth(width int) {
	m.width = width
	m.filter.SetWidth(width)
}

func (m Model) Focused() bool {
	return m.focused
}

// Selected returns the entry under the cursor
func (m Model) Selected() (catalog.Show, bool) {
	if len(m.entries) == 0 {
		return catalog.Show{}, false
	}
	return m.entries[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	if m.filter.IsEditing() {
		switch {
		case key.Matches(keyMsg, lockKey):
			m.filter.Lock()
		case key.Matches(keyMsg, cancelKey):
			m.filter.Deactivate()
		default:
			cmd := m.filter.Update(msg)
			m.cursor = 0
			m.applyFilter()
			return m, cmd
		}
		m.applyFilter()
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, cancelKey) && m.filter.IsActive():
		m.filter.Deactivate()
		m.applyFilter()
	case key.Matches(keyMsg, upKey):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, downKey):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Watchlist (%d)", len(m.all))))
	b.WriteString("\n")
	if filter := m.filter.View(); filter != "" {
		b.WriteString(filter)
		b.WriteString("\n")
	}

	switch {
	case len(m.all) == 0:
		b.WriteString(styles.MetadataStyle.Render("Press a to save a show."))
	case len(m.entries) == 0:
		b.WriteString(styles.MetadataStyle.Render("No saved show matches."))
	}

	inner := max(m.width-4, 8)
	for i, show := range m.entries {
		line := utils.Truncate(show.Name, inner-2)
		if m.focused && i == m.cursor {
			b.WriteString(styles.WatchlistMarkStyle.Render("> ") + styles.ItemTitleStyle.Render(line))
		} else {
			b.WriteString("  " + styles.MetadataStyle.Render(line))
		}
		if i < len(m.entries)-1 {
			b.WriteString("\n")
		}
	}

	panel := styles.PanelStyle
	if m.focused {
		panel = styles.PanelFocusedStyle
	}
	return panel.Width(inner).Render(b.String())
}
