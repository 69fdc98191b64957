package common

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showshelf/internal/tui/styles"
)

// FuzzySearch is a filter box for list panels. While editing it takes keystrokes;
// once locked the filter stays applied and list keys work again.
type FuzzySearch struct {
	input  textinput.Model
	active bool
	locked bool
}

// NewFuzzySearch creates an inactive filter
func NewFuzzySearch() *FuzzySearch {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 20
	ti.TextStyle = styles.ItemTitleStyle
	ti.PlaceholderStyle = styles.FilterLabelStyle

	return &FuzzySearch{input: ti}
}

// Activate starts editing an empty filter
func (f *FuzzySearch) Activate() tea.Cmd {
	f.active = true
	f.locked = false
	f.input.SetValue("")
	return f.input.Focus()
}

// Deactivate clears the filter
func (f *FuzzySearch) Deactivate() {
	f.active = false
	f.locked = false
	f.input.Blur()
	f.input.SetValue("")
}

// Lock stops editing but keeps the filter applied
func (f *FuzzySearch) Lock() {
	if f.active {
		f.locked = true
		f.input.Blur()
	}
}

func (f *FuzzySearch) IsActive() bool {
	return f.active
}

// IsEditing reports whether keystrokes go to the filter
func (f *FuzzySearch) IsEditing() bool {
	return f.active && !f.locked
}

// Query returns the applied filter text
func (f *FuzzySearch) Query() string {
	if !f.active {
		return ""
	}
	return f.input.Value()
}

// Update feeds msg to the input while editing
func (f *FuzzySearch) Update(msg tea.Msg) tea.Cmd {
	if !f.IsEditing() {
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *FuzzySearch) View() string {
	if !f.active {
		return ""
	}

	label := styles.FilterLabelStyle.Render("filter ")
	if f.locked {
		return label + styles.FilterActiveStyle.Render(f.input.Value())
	}
	return label + f.input.View()
}

// SetWidth fits the input to a panel of width cells
func (f *FuzzySearch) SetWidth(width int) {
	f.input.Width = max(width-10, 5)
}
