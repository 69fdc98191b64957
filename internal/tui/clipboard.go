package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/justchokingaround/showshelf/internal/catalog"
)

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func openBrowser(url string) error {
	return browser.OpenURL(url)
}

// copyURL copies the show page URL to the system clipboard and reports the outcome
func (a *App) copyURL(show catalog.Show) tea.Cmd {
	if show.URL == "" {
		return a.setStatus(show.Name + " has no page URL")
	}
	if err := a.copyText(show.URL); err != nil {
		a.logger.Warn("failed to copy to clipboard", "error", err, "show_id", show.ID)
		return a.setStatus(fmt.Sprintf("Could not copy URL: %v", err))
	}
	return a.setStatus("📋 " + show.Name + " URL copied to clipboard")
}

// openInBrowser opens the show page with the system browser
func (a *App) openInBrowser(show catalog.Show) tea.Cmd {
	if show.URL == "" {
		return a.setStatus(show.Name + " has no page URL")
	}
	if err := a.openURL(show.URL); err != nil {
		a.logger.Warn("failed to open browser", "error", err, "show_id", show.ID)
		return a.setStatus(fmt.Sprintf("Could not open browser: %v", err))
	}
	return a.setStatus("Opened " + show.Name + " in browser")
}
