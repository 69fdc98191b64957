package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Oxocarbon color scheme - IBM Carbon inspired
var (
	OxocarbonBase00 = lipgloss.Color("#262626") // UI elements
	OxocarbonBase01 = lipgloss.Color("#393939") // Borders, badges
	OxocarbonBase02 = lipgloss.Color("#525252") // Inactive borders
	OxocarbonBase03 = lipgloss.Color("#767676") // Muted text
	OxocarbonBase04 = lipgloss.Color("#dde1e6") // Secondary foreground
	OxocarbonBase05 = lipgloss.Color("#f2f4f8") // Primary foreground
	OxocarbonWhite  = lipgloss.Color("#ffffff")

	OxocarbonCyan    = lipgloss.Color("#33b1ff")
	OxocarbonPink    = lipgloss.Color("#ee5396")
	OxocarbonRed     = lipgloss.Color("#ff5252")
	OxocarbonGreen   = lipgloss.Color("#42be65")
	OxocarbonPurple  = lipgloss.Color("#be95ff") // main accent
	OxocarbonMauve   = lipgloss.Color("#d1aaff")
	OxocarbonYellow  = lipgloss.Color("#f1c21b")
	OxocarbonMagenta = lipgloss.Color("#ff7eb6")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonWhite).
			Background(OxocarbonPurple).
			Padding(0, 1).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonMauve).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase03).
			MarginTop(1)

	// List item with a thin left border
	ItemStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(OxocarbonBase02).
			BorderLeft(true).
			PaddingLeft(2).
			PaddingRight(2).
			MarginLeft(1)

	// Selected item with highlighted border
	ItemSelectedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(OxocarbonPurple).
				BorderLeft(true).
				PaddingLeft(2).
				PaddingRight(2).
				MarginLeft(1)

	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Bold(true)

	MetadataStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase04)

	URLStyle = lipgloss.NewStyle().
			Foreground(OxocarbonCyan).
			Italic(true)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(OxocarbonPink).
			Bold(true)

	WatchlistMarkStyle = lipgloss.NewStyle().
				Foreground(OxocarbonYellow).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(OxocarbonRed).
			Bold(true)

	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(OxocarbonPurple).
				Bold(true).
				Underline(true).
				MarginTop(1).
				MarginBottom(1)

	// Filter chip in the filter bar
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(OxocarbonBase03)

	FilterValueStyle = lipgloss.NewStyle().
				Foreground(OxocarbonBase05).
				Background(OxocarbonBase01).
				Padding(0, 1)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(OxocarbonPurple).
				Background(OxocarbonBase01).
				Padding(0, 1).
				Bold(true)

	// Genre badge - pill-shaped tags
	GenreBadgeStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Background(OxocarbonBase01).
			Padding(0, 1)

	GenreBadgeSelectedStyle = lipgloss.NewStyle().
				Foreground(OxocarbonPurple).
				Background(OxocarbonBase01).
				Padding(0, 1)

	SynopsisStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase04).
			Italic(true)

	// Panel border for the watchlist, dimmed unless focused
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(OxocarbonBase02).
			Padding(0, 1)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(OxocarbonPurple).
				Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Background(OxocarbonBase01).
			Padding(0, 1)

	// CLI tables
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(OxocarbonPurple).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase04).
			Padding(0, 1)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(OxocarbonBase02)

	PaginatorActiveDot   = lipgloss.NewStyle().Foreground(OxocarbonPurple).Render("●")
	PaginatorInactiveDot = lipgloss.NewStyle().Foreground(OxocarbonBase02).Render("○")
)

// RatingColor grades a 0-10 rating
func RatingColor(rating float64) lipgloss.Color {
	switch {
	case rating >= 8:
		return OxocarbonGreen
	case rating >= 6:
		return OxocarbonYellow
	case rating > 0:
		return OxocarbonMagenta
	default:
		return OxocarbonBase03
	}
}

// FormatRating renders a rating with its grade color, or a dash when unrated
func FormatRating(rating *float64) string {
	if rating == nil {
		return lipgloss.NewStyle().Foreground(OxocarbonBase03).Render("★ -")
	}
	return ScoreStyle.Foreground(RatingColor(*rating)).Render(fmt.Sprintf("★ %.1f", *rating))
}
