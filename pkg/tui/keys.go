package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/irfansharif/urll/pkg/nav"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Enter  key.Binding
	Back   key.Binding

	// Actions
	Yank    key.Binding
	YankAll key.Binding
	Browse  key.Binding

	// General
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous url"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next url"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first url"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last url"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "browse urls on selected page"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "go back"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank url"),
		),
		YankAll: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank all urls"),
		),
		Browse: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "go back / quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit immediately"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Top, k.Bottom},
		{k.Enter, k.Back, k.Yank, k.YankAll, k.Browse},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// MapEvent translates a terminal event into an intent. Events that mean
// nothing in the current state yield ok == false.
func MapEvent(s *nav.State, keys KeyMap, msg tea.Msg) (in nav.Intent, ok bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return nav.TerminalResized{Width: msg.Width, Height: msg.Height}, true
	case tea.KeyMsg:
		return mapKey(s, keys, msg)
	default:
		return nil, false
	}
}

func mapKey(s *nav.State, keys KeyMap, msg tea.KeyMsg) (nav.Intent, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return nav.QuitImmediately{}, true
	}

	if s.TooSmall {
		if key.Matches(msg, keys.Quit) {
			return nav.GoBackOrQuit{}, true
		}
		return nil, false
	}

	switch s.ActivePane {
	case nav.PaneResults:
		return mapResultsKey(s, keys, msg)
	case nav.PaneHelp:
		if key.Matches(msg, keys.Quit, keys.Help) {
			return nav.GoBackOrQuit{}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func mapResultsKey(s *nav.State, keys KeyMap, msg tea.KeyMsg) (nav.Intent, bool) {
	switch {
	case key.Matches(msg, keys.Enter):
		if !s.Results.OK() {
			return nil, false
		}
		return nav.NavigateToSelected{}, true
	case key.Matches(msg, keys.Back):
		return nav.GoBack{}, true
	case key.Matches(msg, keys.Down):
		return nav.SelectNext{}, true
	case key.Matches(msg, keys.Up):
		return nav.SelectPrevious{}, true
	case key.Matches(msg, keys.Top):
		return nav.SelectFirst{}, true
	case key.Matches(msg, keys.Bottom):
		return nav.SelectLast{}, true
	case key.Matches(msg, keys.Yank):
		return nav.YankSelectedURL{}, true
	case key.Matches(msg, keys.YankAll):
		return nav.YankAllURLs{}, true
	case key.Matches(msg, keys.Browse):
		return nav.OpenSelectedURL{}, true
	case key.Matches(msg, keys.Help):
		return nav.SwitchPane{Target: nav.PaneHelp}, true
	case key.Matches(msg, keys.Quit):
		return nav.GoBackOrQuit{}, true
	}
	return nil, false
}
