package results

import (
	"fmt"
	"strings"

	"github.com/justchokingaround/showshelf/internal/tui/styles"
)

// RenderGenres renders genre tags as styled badges.
// Displays up to maxGenres, with an overflow indicator if there are more.
func RenderGenres(genres []string, selected bool, maxGenres int) string {
	if len(genres) == 0 {
		return ""
	}

	badgeStyle := styles.GenreBadgeStyle
	if selected {
		badgeStyle = styles.GenreBadgeSelectedStyle
	}

	shown := genres
	if len(genres) > maxGenres {
		shown = genres[:maxGenres]
	}

	parts := make([]string, 0, len(shown)+1)
	for _, genre := range shown {
		parts = append(parts, badgeStyle.Render(genre))
	}
	if extra := len(genres) - len(shown); extra > 0 {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("+%d", extra)))
	}

	return strings.Join(parts, " ")
}
