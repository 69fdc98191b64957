package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/showshelf/internal/tui/common"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
)

// Model is the query box on the home screen
type Model struct {
	textInput textinput.Model
	width     int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "search shows"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = 40

	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase05)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	return Model{textInput: ti}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 20 {
			m.textInput.Width = m.width - 20
		}
		return m, nil

	case tea.KeyMsg:
		if !m.textInput.Focused() {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			query := m.textInput.Value()
			return m, func() tea.Msg {
				return common.SubmitQueryMsg{Query: query}
			}
		case "esc":
			return m, func() tea.Msg {
				return common.CancelSearchMsg{}
			}
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.textInput.Focused() {
		return styles.ItemSelectedStyle.Render(m.textInput.View())
	}
	return styles.ItemStyle.Render(m.textInput.View())
}

// Focus puts the cursor in the box and starts it from value
func (m *Model) Focus(value string) tea.Cmd {
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	return m.textInput.Focus()
}

// Blur releases the cursor and shows value
func (m *Model) Blur(value string) {
	m.textInput.Blur()
	m.textInput.SetValue(value)
}

// Focused reports whether the box is taking keystrokes
func (m Model) Focused() bool {
	return m.textInput.Focused()
}

// GetValue returns the value of the search input
func (m Model) GetValue() string {
	return m.textInput.Value()
}
