package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/remote/tvmaze"
	"github.com/justchokingaround/showshelf/internal/tui/components/detail"
)

// searchCmd runs one search and prints a page of the filtered results
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shows and print one page of results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		genre, _ := cmd.Flags().GetString("genre")
		language, _ := cmd.Flags().GetString("language")
		minRating, _ := cmd.Flags().GetFloat64("min-rating")
		page, _ := cmd.Flags().GetInt("page")

		if minRating < catalog.MinRatingFloor || minRating > catalog.MinRatingCeil {
			return fmt.Errorf("--min-rating must be between %.0f and %.0f", catalog.MinRatingFloor, catalog.MinRatingCeil)
		}

		ctrl := newController(cmd.Context(), runInline)
		if ctrl.State().Query == args[0] {
			ctrl.Start(cmd.Context())
		} else {
			ctrl.Dispatch(catalog.SetQuery{Query: args[0]})
		}
		if ctrl.State().Error {
			return fmt.Errorf("search for %q failed (see log for details)", args[0])
		}

		ctrl.Dispatch(catalog.SetFilters{Patch: catalog.FilterPatch{
			Genre:     &genre,
			Language:  &language,
			MinRating: &minRating,
		}})

		state := ctrl.State()
		view := catalog.Project(state)
		clamped := catalog.ClampPage(page, view.TotalPages)
		if clamped != page {
			logger.Debug("page out of range, clamped", "requested", page, "page", clamped)
		}
		ctrl.Dispatch(catalog.SetPage{Page: clamped})

		state = ctrl.State()
		printPage(os.Stdout, state, catalog.Project(state))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringP("genre", "g", "", "only shows with this genre")
	searchCmd.Flags().StringP("language", "l", "", "only shows in this language")
	searchCmd.Flags().Float64P("min-rating", "r", 0, "minimum average rating (0-10)")
	searchCmd.Flags().IntP("page", "p", 1, "page to print")
}

// showCmd prints one show with its episodes
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a show's details and episodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseShowID(args[0])
		if err != nil {
			return err
		}

		ctrl := newController(cmd.Context(), runInline)
		ctrl.Dispatch(catalog.ViewDetail{ID: id})

		state := ctrl.State()
		if state.Error || state.Detail == nil {
			return fmt.Errorf("failed to load show %d (see log for details)", id)
		}

		fmt.Println(detail.Render(*state.Detail, state.Episodes, state.InWatchlist(id), 100, time.Now()))
		return nil
	},
}

// watchlistCmd manages the persisted watchlist
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage the watchlist",
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved shows",
	RunE: func(cmd *cobra.Command, args []string) error {
		match, _ := cmd.Flags().GetString("match")

		entries := newController(cmd.Context(), runInline).State().Watchlist
		printWatchlist(os.Stdout, catalog.MatchShows(entries, match))
		return nil
	},
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Save a show to the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseShowID(args[0])
		if err != nil {
			return err
		}

		ctrl := newController(cmd.Context(), runInline)
		if ctrl.State().InWatchlist(id) {
			fmt.Printf("Show %d is already in the watchlist\n", id)
			return nil
		}

		show, err := source.GetShow(cmd.Context(), id)
		if errors.Is(err, tvmaze.ErrNotFound) {
			return fmt.Errorf("no show with id %d", id)
		}
		if err != nil {
			return err
		}

		ctrl.Dispatch(catalog.AddToWatchlist{Show: *show})
		fmt.Printf("Added %s (%d)\n", show.Name, show.ID)
		return nil
	},
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a show from the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseShowID(args[0])
		if err != nil {
			return err
		}

		ctrl := newController(cmd.Context(), runInline)
		if !ctrl.State().InWatchlist(id) {
			return fmt.Errorf("show %d is not in the watchlist", id)
		}

		ctrl.Dispatch(catalog.RemoveFromWatchlist{ID: id})
		fmt.Printf("Removed show %d\n", id)
		return nil
	},
}

var watchlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every show from the watchlist",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl := newController(cmd.Context(), runInline)
		n := len(ctrl.State().Watchlist)
		ctrl.Dispatch(catalog.ClearWatchlist{})
		fmt.Printf("Removed %d shows\n", n)
	},
}

func init() {
	watchlistListCmd.Flags().StringP("match", "m", "", "fuzzy-match show names")

	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
	watchlistCmd.AddCommand(watchlistClearCmd)
}

func parseShowID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid show id %q", arg)
	}
	return id, nil
}
