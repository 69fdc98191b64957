package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
)

// printPage writes the current page of view as a table
func printPage(w io.Writer, state catalog.State, view catalog.View) {
	page := catalog.ClampPage(state.Page, view.TotalPages)
	fmt.Fprintf(w, "%q: %d of %d shows match, page %d of %d\n\n",
		state.Query, len(view.Filtered), len(state.Results), page, view.TotalPages)

	if len(view.PageItems) == 0 {
		fmt.Fprintln(w, "No shows match the current filters.")
		return
	}
	printShows(w, view.PageItems, state.InWatchlist)
}

// printWatchlist writes the watchlist entries as a table
func printWatchlist(w io.Writer, entries []catalog.Show) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Watchlist is empty")
		return
	}
	printShows(w, entries, nil)
}

func printShows(w io.Writer, shows []catalog.Show, saved func(int) bool) {
	rows := make([][]string, 0, len(shows))
	for _, show := range shows {
		name := show.Name
		if saved != nil && saved(show.ID) {
			name += " ♥"
		}
		rows = append(rows, []string{
			strconv.Itoa(show.ID),
			name,
			formatRating(show.Rating.Average),
			orDash(show.Language),
			orDash(strings.Join(show.Genres, ", ")),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return styles.TableCellStyle
		}).
		Headers("ID", "NAME", "RATING", "LANGUAGE", "GENRES").
		Rows(rows...)

	fmt.Fprintln(w, t.String())
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *rating)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
