package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/irfansharif/urll/pkg/nav"
)

const appTitle = " urll "

// View renders the TUI.
func (m *Model) View() string {
	s := m.state
	if s.Done() {
		return ""
	}
	s.RenderCount++

	if s.TooSmall {
		return m.renderTooSmall()
	}

	// One row is reserved for the status bar.
	bodyHeight := s.Height - 1

	var body string
	switch s.ActivePane {
	case nav.PaneResults:
		body = m.renderResults(s.Width, bodyHeight)
	case nav.PaneHelp:
		body = m.renderHelp(s.Width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(s.Width))
}

func (m *Model) renderTooSmall() string {
	s := m.state
	msg := fmt.Sprintf(`Terminal size too small:
  Width = %d Height = %d

Minimum dimensions needed:
  Width = %d Height = %d

Press (q/<ctrl+c>/<esc> to exit)`,
		s.Width, s.Height, nav.MinTerminalWidth, nav.MinTerminalHeight)

	return m.styles.TooSmall.Width(max(s.Width-2, 0)).Render(msg)
}

// box draws a bordered section of the given outer dimensions with a title
// line above content.
func box(style, titleStyle lipgloss.Style, title, content string, width, height int) string {
	// Borders take one cell on each side; padding is part of Width/Height.
	inner := style.
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(max(height, 0))
	return inner.Render(titleStyle.Render(title) + "\n\n" + content)
}

func (m *Model) renderResults(width, height int) string {
	s := m.state
	if !s.Results.OK() {
		return box(m.styles.ErrorBox, m.styles.ErrorTitle, " error ",
			s.Results.Err.Error(), width, height)
	}

	listHeight := height * 4 / 5
	detailsHeight := height - listHeight

	// Border and title take 4 rows, border and padding 4 columns.
	rows := max(listHeight-4, 1)
	cols := max(width-4, 1)
	list := box(m.styles.Box, m.styles.BoxTitle, " results ",
		renderLinks(s.Results.Links, s.Results.Cursor, cols, rows, m.styles), width, listHeight)
	details := box(m.styles.Box, m.styles.BoxTitle, " page details ",
		renderDetails(s.Details), width, detailsHeight)

	return lipgloss.JoinVertical(lipgloss.Left, list, details)
}

func (m *Model) renderHelp(width, height int) string {
	return box(m.styles.Box, m.styles.HelpTitle, " help ",
		m.help.FullHelpView(m.keys.FullHelp()), width, height)
}

func (m *Model) renderStatusBar(width int) string {
	s := m.state

	var sb strings.Builder
	sb.WriteString(m.styles.AppTitle.Render(appTitle))
	sb.WriteString(m.styles.URL.Render(fmt.Sprintf(" [%s]", s.Details.URL)))

	if url, ok := s.Pending(); ok {
		sb.WriteString(" ")
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" fetching " + url))
	}

	if s.Debug {
		if s.HasLastPane {
			fmt.Fprintf(&sb, " [%s]", s.LastPane)
		} else {
			sb.WriteString(" -")
		}
		fmt.Fprintf(&sb, " -> [%s]", s.ActivePane)
		fmt.Fprintf(&sb, " [render counter: %d]", s.RenderCount)
		fmt.Fprintf(&sb, " [event counter: %d]", s.EventCount)
		fmt.Fprintf(&sb, " [dimensions: %dx%d]", s.Width, s.Height)
		if s.StaleResults > 0 {
			fmt.Fprintf(&sb, " [late results: %d]", s.StaleResults)
		}
	}

	if msg := s.Message; msg != nil {
		style := m.styles.Info
		if msg.Kind == nav.MessageError {
			style = m.styles.Error
		}
		sb.WriteString(style.Render(" " + msg.Text))
	}

	return ansi.Truncate(sb.String(), width, "")
}
