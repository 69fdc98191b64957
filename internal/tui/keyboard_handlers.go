package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showshelf/internal/catalog"
)

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.focus == focusSearch {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	if a.session == homeView && a.focus == focusWatchlist && a.watchlist.Filtering() {
		var cmd tea.Cmd
		a.watchlist, cmd = a.watchlist.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	if a.session == detailView {
		return a.handleDetailKey(msg)
	}
	return a.handleHomeKey(msg)
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Search):
		a.setFocus(focusSearch)
		return a, a.search.Focus(a.state.Query)

	case key.Matches(msg, a.keys.Retry):
		if a.state.Error {
			a.ctrl.Retry()
			a.sync()
		}

	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusWatchlist {
			a.setFocus(focusResults)
		} else {
			a.setFocus(focusWatchlist)
		}

	case key.Matches(msg, a.keys.Filter):
		if a.focus == focusWatchlist {
			return a, a.watchlist.StartFilter()
		}

	case key.Matches(msg, a.keys.Back):
		if a.focus == focusWatchlist {
			a.watchlist, _ = a.watchlist.Update(msg)
		}

	case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.Down):
		if a.focus == focusWatchlist {
			a.watchlist, _ = a.watchlist.Update(msg)
		} else {
			a.results, _ = a.results.Update(msg)
		}

	case key.Matches(msg, a.keys.NextGenre):
		genre := cycle(a.view.Genres, a.state.Filters.Genre, 1)
		a.dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{Genre: &genre}})
	case key.Matches(msg, a.keys.PrevGenre):
		genre := cycle(a.view.Genres, a.state.Filters.Genre, -1)
		a.dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{Genre: &genre}})
	case key.Matches(msg, a.keys.NextLang):
		lang := cycle(a.view.Languages, a.state.Filters.Language, 1)
		a.dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{Language: &lang}})
	case key.Matches(msg, a.keys.PrevLang):
		lang := cycle(a.view.Languages, a.state.Filters.Language, -1)
		a.dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{Language: &lang}})

	case key.Matches(msg, a.keys.RatingUp):
		a.stepRating(catalog.MinRatingStep)
	case key.Matches(msg, a.keys.RatingDn):
		a.stepRating(-catalog.MinRatingStep)

	case key.Matches(msg, a.keys.FirstPage):
		a.goToPage(1)
	case key.Matches(msg, a.keys.PrevPage):
		a.goToPage(a.currentPage() - 1)
	case key.Matches(msg, a.keys.NextPage):
		a.goToPage(a.currentPage() + 1)
	case key.Matches(msg, a.keys.LastPage):
		a.goToPage(a.view.TotalPages)

	case key.Matches(msg, a.keys.Add):
		if show, ok := a.results.Selected(); ok && a.focus == focusResults {
			if a.state.InWatchlist(show.ID) {
				return a, a.setStatus(show.Name + " is already in the watchlist")
			}
			a.dispatch(catalog.AddToWatchlist{Show: show})
			return a, a.setStatus("Added " + show.Name)
		}

	case key.Matches(msg, a.keys.Remove):
		if show, ok := a.watchlist.Selected(); ok && a.focus == focusWatchlist {
			a.dispatch(catalog.RemoveFromWatchlist{ID: show.ID})
			return a, a.setStatus("Removed " + show.Name)
		}

	case key.Matches(msg, a.keys.Clear):
		if len(a.state.Watchlist) > 0 {
			a.dispatch(catalog.ClearWatchlist{})
			return a, a.setStatus("Watchlist cleared")
		}

	case key.Matches(msg, a.keys.Open):
		if show, ok := a.selected(); ok {
			a.dispatch(catalog.ViewDetail{ID: show.ID})
		}

	case key.Matches(msg, a.keys.CopyURL):
		if show, ok := a.selected(); ok {
			return a, a.copyURL(show)
		}

	case key.Matches(msg, a.keys.Browser):
		if show, ok := a.selected(); ok {
			return a, a.openInBrowser(show)
		}
	}

	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.dispatch(catalog.ViewHome{})
		return a, nil

	case key.Matches(msg, a.keys.Retry):
		if a.state.Error {
			a.ctrl.Retry()
			a.sync()
		}
		return a, nil
	}

	show := a.state.Detail
	if show == nil {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Add):
		if !a.state.InWatchlist(show.ID) {
			a.dispatch(catalog.AddToWatchlist{Show: *show})
			return a, a.setStatus("Added " + show.Name)
		}
		return a, nil
	case key.Matches(msg, a.keys.Remove):
		if a.state.InWatchlist(show.ID) {
			a.dispatch(catalog.RemoveFromWatchlist{ID: show.ID})
			return a, a.setStatus("Removed " + show.Name)
		}
		return a, nil
	case key.Matches(msg, a.keys.CopyURL):
		return a, a.copyURL(*show)
	case key.Matches(msg, a.keys.Browser):
		return a, a.openInBrowser(*show)
	}

	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

// selected returns the show under the cursor of the focused list
func (a *App) selected() (catalog.Show, bool) {
	if a.focus == focusWatchlist {
		return a.watchlist.Selected()
	}
	return a.results.Selected()
}

func (a *App) currentPage() int {
	return catalog.ClampPage(a.state.Page, a.view.TotalPages)
}

// goToPage clamps page and dispatches only when it moves
func (a *App) goToPage(page int) {
	page = catalog.ClampPage(page, a.view.TotalPages)
	if page == a.state.Page {
		return
	}
	a.results.ResetCursor()
	a.dispatch(catalog.SetPage{Page: page})
}

func (a *App) stepRating(delta float64) {
	rating := a.state.Filters.MinRating + delta
	rating = min(max(rating, catalog.MinRatingFloor), catalog.MinRatingCeil)
	if rating == a.state.Filters.MinRating {
		return
	}
	a.results.ResetCursor()
	a.dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{MinRating: &rating}})
}

// cycle steps through "" followed by options, starting from current
func cycle(options []string, current string, step int) string {
	choices := append([]string{""}, options...)
	idx := 0
	for i, choice := range choices {
		if choice == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(choices)) % len(choices)
	return choices[idx]
}
