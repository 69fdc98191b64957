package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/justchokingaround/showshelf/internal/catalog"
)

// Start runs the interactive browser until the user quits. It issues the
// startup search and cancels outstanding fetches on exit.
func Start(ctx context.Context, ctrl *catalog.Controller, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	// the browser package writes launcher output to stdout, which belongs to the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewApp(ctrl, logger)
	ctrl.Subscribe(m.Notify)
	ctrl.Start(ctx)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Debug("browser closed", "query", ctrl.State().Query, "watchlist", len(ctrl.State().Watchlist))
	return nil
}
