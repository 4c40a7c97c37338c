package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Boxes
	Box        lipgloss.Style
	ErrorBox   lipgloss.Style
	BoxTitle   lipgloss.Style
	ErrorTitle lipgloss.Style
	HelpTitle  lipgloss.Style

	// List styles
	ListItem        lipgloss.Style
	SelectedItem    lipgloss.Style
	SelectionMarker lipgloss.Style
	Muted           lipgloss.Style

	// Status bar
	AppTitle lipgloss.Style
	URL      lipgloss.Style
	Spinner  lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style

	TooSmall lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	var (
		sectionFG = lipgloss.Color("#282828")
		primary   = lipgloss.Color("#fe8019")
		border    = lipgloss.Color("#665c54")
		url       = lipgloss.Color("#fabd2f")
		secondary = lipgloss.Color("#b8bb26")
		help      = lipgloss.Color("#fabd2f")
		info      = lipgloss.Color("#83a598")
		errColor  = lipgloss.Color("#fb4934")
	)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(sectionFG)

	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),

		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(errColor).
			Padding(0, 1),

		BoxTitle:   title.Background(secondary),
		ErrorTitle: title.Background(errColor),
		HelpTitle:  title.Background(help),

		ListItem: lipgloss.NewStyle(),

		SelectedItem: lipgloss.NewStyle().
			Foreground(primary),

		SelectionMarker: lipgloss.NewStyle().
			Foreground(primary).
			SetString("> "),

		Muted: lipgloss.NewStyle().
			Foreground(border),

		AppTitle: title.Background(primary),

		URL: lipgloss.NewStyle().
			Foreground(url),

		Spinner: lipgloss.NewStyle().
			Foreground(secondary),

		Info: lipgloss.NewStyle().
			Foreground(info),

		Error: lipgloss.NewStyle().
			Foreground(errColor),

		TooSmall: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Foreground(primary).
			Align(lipgloss.Center),
	}
}
