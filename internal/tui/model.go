package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/tui/common"
	"github.com/justchokingaround/showshelf/internal/tui/components/detail"
	"github.com/justchokingaround/showshelf/internal/tui/components/results"
	"github.com/justchokingaround/showshelf/internal/tui/components/search"
	"github.com/justchokingaround/showshelf/internal/tui/components/watchlist"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
)

type sessionState int

const (
	homeView sessionState = iota
	detailView
)

type focusArea int

const (
	focusResults focusArea = iota
	focusWatchlist
	focusSearch
)

const watchlistWidth = 34

// clearStatusMsg clears the footer status if it is still the one identified by id
type clearStatusMsg struct {
	id int
}

// Controller is the catalog runtime driven by the app
type Controller interface {
	State() catalog.State
	Dispatch(catalog.Action)
	Retry()
}

type App struct {
	ctrl   Controller
	logger *slog.Logger
	keys   KeyMap

	state   catalog.State
	view    catalog.View
	session sessionState
	focus   focusArea

	search    search.Model
	results   results.Model
	watchlist watchlist.Model
	detail    detail.Model
	help      help.Model
	spinner   spinner.Model
	paginator paginator.Model

	width  int
	height int

	statusMsg string
	statusID  int

	// For sending messages to UI from fetch goroutines
	msgChan chan tea.Msg

	copyText func(string) error
	openURL  func(string) error
}

// NewApp creates the browser model over ctrl
func NewApp(ctrl Controller, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.PaginatorActiveDot
	p.InactiveDot = styles.PaginatorInactiveDot

	a := &App{
		ctrl:      ctrl,
		logger:    logger,
		keys:      DefaultKeyMap(),
		search:    search.New(),
		results:   results.New(),
		watchlist: watchlist.New(),
		detail:    detail.New(),
		help:      help.New(),
		spinner:   s,
		paginator: p,
		width:     100,
		height:    30,
		msgChan:   make(chan tea.Msg, 1),
		copyText:  writeClipboard,
		openURL:   openBrowser,
	}
	a.sync()
	return a
}

// Notify schedules a re-render after a state change. It never blocks;
// pending notifications coalesce since the app always reads the latest state.
func (a *App) Notify(catalog.State) {
	select {
	case a.msgChan <- common.StateChangedMsg{}:
	default:
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.listenForMessages())
}

// listenForMessages listens for messages from background goroutines
func (a *App) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		return <-a.msgChan
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search, _ = a.search.Update(msg)
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case common.StateChangedMsg:
		a.sync()
		return a, a.listenForMessages()

	case common.SubmitQueryMsg:
		a.setFocus(focusResults)
		query := strings.TrimSpace(msg.Query)
		if query != "" && query != a.state.Query {
			a.results.ResetCursor()
			a.dispatch(catalog.SetQuery{Query: query})
		}
		a.search.Blur(a.state.Query)
		return a, nil

	case common.CancelSearchMsg:
		a.setFocus(focusResults)
		a.search.Blur(a.state.Query)
		return a, nil

	case clearStatusMsg:
		if msg.id == a.statusID {
			a.statusMsg = ""
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.focus == focusSearch {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

// dispatch applies action and re-renders immediately
func (a *App) dispatch(action catalog.Action) {
	a.ctrl.Dispatch(action)
	a.sync()
}

// sync copies the controller state into the components
func (a *App) sync() {
	a.state = a.ctrl.State()
	a.view = catalog.Project(a.state)

	if a.state.InDetail() {
		a.session = detailView
		if a.focus == focusSearch {
			a.setFocus(focusResults)
		}
	} else {
		a.session = homeView
	}

	a.results.SetItems(a.view.PageItems, a.state.InWatchlist)
	a.watchlist.SetEntries(a.state.Watchlist)

	a.paginator.TotalPages = a.view.TotalPages
	a.paginator.Page = catalog.ClampPage(a.state.Page, a.view.TotalPages) - 1
	if a.view.TotalPages > 10 {
		a.paginator.Type = paginator.Arabic
	} else {
		a.paginator.Type = paginator.Dots
	}

	if a.state.Detail != nil {
		a.detail.SetContent(a.state.Detail, a.state.Episodes, a.state.InWatchlist(a.state.Detail.ID))
	} else {
		a.detail.SetContent(nil, nil, false)
	}

	if !a.search.Focused() {
		a.search.Blur(a.state.Query)
	}
	a.layout()
}

func (a *App) layout() {
	listWidth := a.width - watchlistWidth - 2
	if listWidth < 40 {
		listWidth = a.width
	}
	a.results.SetWidth(listWidth)
	a.watchlist.SetWidth(watchlistWidth)
	// title, info line, help footer and status
	a.detail.SetSize(a.width-4, a.height-6)
}

func (a *App) setFocus(f focusArea) {
	a.focus = f
	a.results.SetFocused(f == focusResults)
	a.watchlist.SetFocused(f == focusWatchlist)
}

// setStatus shows msg in the footer for a few seconds
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusID++
	a.statusMsg = msg
	id := a.statusID
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (a *App) View() string {
	var body string
	switch a.session {
	case detailView:
		body = a.renderDetail()
	default:
		body = a.renderHome()
	}

	footer := styles.HelpStyle.Render(a.help.View(a.keys))
	if a.statusMsg != "" {
		footer = styles.FooterStyle.Render(a.statusMsg) + "\n" + footer
	}
	return body + "\n" + footer
}

func (a *App) renderHome() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("SHOWSHELF"))
	b.WriteString("  ")
	b.WriteString(styles.SubtitleStyle.Render("TVMaze catalog"))
	b.WriteString("\n\n")
	b.WriteString(a.search.View())
	b.WriteString("\n")
	b.WriteString(a.renderFilters())
	b.WriteString("\n\n")

	var list string
	switch {
	case a.state.Error:
		list = styles.ErrorStyle.Render("  Something went wrong while loading shows.") + "\n" +
			styles.MetadataStyle.Render("  Press r to retry.")
	case a.state.Loading:
		list = fmt.Sprintf("  %s Searching for %q...", a.spinner.View(), a.state.Query)
	default:
		list = a.results.View() + "\n\n" + a.renderPager()
	}

	if a.width-watchlistWidth-2 < 40 {
		b.WriteString(list)
		b.WriteString("\n\n")
		b.WriteString(a.watchlist.View())
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(a.width-watchlistWidth-2).Render(list),
			a.watchlist.View(),
		))
	}
	return b.String()
}

func (a *App) renderFilters() string {
	chip := func(label, value string, active bool) string {
		style := styles.FilterValueStyle
		if active {
			style = styles.FilterActiveStyle
		}
		return styles.FilterLabelStyle.Render(label+" ") + style.Render(value)
	}

	f := a.state.Filters
	return strings.Join([]string{
		" " + chip("genre", orAll(f.Genre), f.Genre != ""),
		chip("language", orAll(f.Language), f.Language != ""),
		chip("min rating", fmt.Sprintf("%.1f", f.MinRating), f.MinRating > catalog.MinRatingFloor),
		styles.FilterLabelStyle.Render(fmt.Sprintf("%d shows", len(a.view.Filtered))),
	}, "  ")
}

func (a *App) renderPager() string {
	page := catalog.ClampPage(a.state.Page, a.view.TotalPages)
	return fmt.Sprintf("  %s  %s", a.paginator.View(),
		styles.MetadataStyle.Render(fmt.Sprintf("page %d of %d", page, a.view.TotalPages)))
}

func (a *App) renderDetail() string {
	switch {
	case a.state.Error:
		return styles.ErrorStyle.Render("  Could not load this show.") + "\n" +
			styles.MetadataStyle.Render("  Press r to retry or esc to go back.")
	case a.state.Loading || a.state.Detail == nil:
		return fmt.Sprintf("  %s Loading show...", a.spinner.View())
	}
	return a.detail.View()
}

func orAll(value string) string {
	if value == "" {
		return "all"
	}
	return value
}
