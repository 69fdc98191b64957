package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/tui/components/results"
	"github.com/justchokingaround/showshelf/internal/tui/styles"
	"github.com/justchokingaround/showshelf/internal/tui/utils"
)

// Model renders one show and its episodes in a scrollable viewport
type Model struct {
	viewport viewport.Model
	show     *catalog.Show
	episodes []catalog.Episode
	saved    bool
	width    int
	now      func() time.Time
}

func New() Model {
	return Model{
		viewport: viewport.New(80, 20),
		width:    80,
		now:      time.Now,
	}
}

// SetSize fits the viewport to the space left by the header and footer
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height, 3)
	m.render()
}

// SetContent shows show and its episodes. A different show scrolls back to the top.
func (m *Model) SetContent(show *catalog.Show, episodes []catalog.Episode, saved bool) {
	changed := show == nil || m.show == nil || show.ID != m.show.ID
	m.show = show
	m.episodes = episodes
	m.saved = saved
	m.render()
	if changed {
		m.viewport.GotoTop()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) render() {
	if m.show == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(Render(*m.show, m.episodes, m.saved, m.width, m.now()))
}

// Render formats show and episodes as plain wrapped text for a view of width cells
func Render(show catalog.Show, episodes []catalog.Episode, saved bool, width int, now time.Time) string {
	width = max(width, 20)

	var b strings.Builder
	title := styles.TitleStyle.Render(show.Name)
	if saved {
		title += " " + styles.WatchlistMarkStyle.Render("♥ in watchlist")
	}
	b.WriteString(title + "\n\n")

	var meta []string
	meta = append(meta, styles.FormatRating(show.Rating.Average))
	for _, part := range []string{show.Type, show.Language, show.Status} {
		if part != "" {
			meta = append(meta, styles.MetadataStyle.Render(part))
		}
	}
	if show.Runtime != nil {
		meta = append(meta, styles.MetadataStyle.Render(fmt.Sprintf("%d min", *show.Runtime)))
	}
	b.WriteString(strings.Join(meta, "  ") + "\n")

	if premiered := FormatPremiered(show.Premiered, now); premiered != "" {
		b.WriteString(styles.MetadataStyle.Render("Premiered "+premiered) + "\n")
	}
	if genres := results.RenderGenres(show.Genres, false, len(show.Genres)); genres != "" {
		b.WriteString(genres + "\n")
	}
	if show.URL != "" {
		b.WriteString(styles.URLStyle.Render(show.URL) + "\n")
	}

	summary := utils.StripHTML(show.Summary)
	if summary == "" {
		summary = "No summary available."
	}
	b.WriteString("\n")
	b.WriteString(styles.SynopsisStyle.Render(strings.Join(utils.WrapText(summary, width-2), "\n")))
	b.WriteString("\n")

	b.WriteString(styles.SectionHeaderStyle.Render(fmt.Sprintf("Episodes (%d)", len(episodes))))
	b.WriteString("\n")
	if len(episodes) == 0 {
		b.WriteString(styles.MetadataStyle.Render("No episodes listed."))
	}
	for i, ep := range episodes {
		b.WriteString(formatEpisode(ep, width))
		if i < len(episodes)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatPremiered renders a YYYY-MM-DD date with its age relative to now
func FormatPremiered(premiered string, now time.Time) string {
	if premiered == "" {
		return ""
	}
	date, err := time.Parse(time.DateOnly, premiered)
	if err != nil {
		return premiered
	}
	return fmt.Sprintf("%s (%s)", premiered, humanize.RelTime(date, now, "ago", "from now"))
}

func formatEpisode(ep catalog.Episode, width int) string {
	code := fmt.Sprintf("S%02dE%02d", ep.Season, ep.Number)
	line := fmt.Sprintf("%s  %s", code, ep.Name)
	if ep.Airdate != "" {
		line = utils.Truncate(line, max(width-14, 10))
		return utils.PadRight(line, max(width-14, 10)) + "  " + styles.MetadataStyle.Render(ep.Airdate)
	}
	return utils.Truncate(line, width)
}
