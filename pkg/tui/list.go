package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/irfansharif/urll/pkg/page"
)

// visibleWindow returns the [start, end) range of a list of n items that
// fits in height rows while keeping cursor on screen.
func visibleWindow(n, cursor, height int) (start, end int) {
	if height < 1 {
		height = 1
	}
	if cursor >= height {
		start = cursor - height + 1
	}
	end = min(start+height, n)
	return start, end
}

// renderLinks renders the slice of links that fits in height rows, with the
// cursor marked.
func renderLinks(links []string, cursor, width, height int, styles Styles) string {
	if len(links) == 0 {
		return styles.Muted.Render("no urls")
	}

	start, end := visibleWindow(len(links), cursor, height)
	lineWidth := max(width-2, 1)

	var sb strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteString("\n")
		}
		link := ansi.Truncate(links[i], lineWidth, "…")
		if i == cursor {
			sb.WriteString(styles.SelectionMarker.String())
			sb.WriteString(styles.SelectedItem.Render(link))
		} else {
			sb.WriteString("  ")
			sb.WriteString(styles.ListItem.Render(link))
		}
	}
	return sb.String()
}

// renderDetails describes a page's title and description.
func renderDetails(d page.Details) string {
	switch {
	case d.Title == "" && d.Description == "":
		return "No details found"
	case d.Title == "":
		return d.Description
	case d.Description == "":
		return "Title: " + d.Title
	default:
		return "Title: " + d.Title + "\n\n" + d.Description
	}
}
