package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser keybindings
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	Focus     key.Binding
	NextGenre key.Binding
	PrevGenre key.Binding
	NextLang  key.Binding
	PrevLang  key.Binding
	RatingUp  key.Binding
	RatingDn  key.Binding
	FirstPage key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	LastPage  key.Binding
	Add       key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Filter    key.Binding
	Open      key.Binding
	Back      key.Binding
	Retry     key.Binding
	CopyURL   key.Binding
	Browser   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results/watchlist"),
		),
		NextGenre: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g/G", "genre"),
		),
		PrevGenre: key.NewBinding(
			key.WithKeys("G"),
		),
		NextLang: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l/L", "language"),
		),
		PrevLang: key.NewBinding(
			key.WithKeys("L"),
		),
		RatingUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "min rating"),
		),
		RatingDn: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last page"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to watchlist"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove from watchlist"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear watchlist"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter watchlist"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		Browser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Add, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Search, k.Open, k.Back},
		{k.NextGenre, k.NextLang, k.RatingUp, k.Retry},
		{k.FirstPage, k.PrevPage, k.NextPage, k.LastPage},
		{k.Add, k.Remove, k.Clear, k.Filter, k.CopyURL, k.Browser},
		{k.Help, k.Quit},
	}
}
