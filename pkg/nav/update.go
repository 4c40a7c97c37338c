package nav

import (
	"fmt"
	"strings"
)

// Update applies one intent to s and returns the commands to run. It is the
// only place State changes after construction.
func Update(s *State, in Intent) []Command {
	if s.done {
		return nil
	}

	var cmds []Command

	switch in := in.(type) {
	case NavigateToSelected:
		cmds = navigateToSelected(s, cmds)

	case FetchCompleted:
		fetchCompleted(s, in)

	case GoBack:
		goBack(s)

	case SelectNext:
		s.moveCursor(func(c, _ int) int { return c + 1 })
	case SelectPrevious:
		s.moveCursor(func(c, _ int) int { return c - 1 })
	case SelectFirst:
		s.moveCursor(func(int, int) int { return 0 })
	case SelectLast:
		s.moveCursor(func(_, last int) int { return last })

	case SwitchPane:
		s.LastPane, s.HasLastPane = s.ActivePane, true
		s.ActivePane = in.Target

	case GoBackOrQuit:
		prev := s.ActivePane
		switch s.ActivePane {
		case PaneResults:
			s.done = true
		case PaneHelp:
			s.ActivePane = PaneResults
			if s.HasLastPane {
				s.ActivePane = s.LastPane
			}
		}
		s.LastPane, s.HasLastPane = prev, true

	case QuitImmediately:
		s.done = true

	case YankSelectedURL:
		if url, _, ok := s.Selection(); ok {
			cmds = append(cmds, CopyToClipboard{Text: url})
		}

	case YankAllURLs:
		if s.Results.OK() {
			cmds = append(cmds, CopyToClipboard{Text: strings.Join(s.Results.Links, "\n")})
		}

	case OpenSelectedURL:
		if url, _, ok := s.Selection(); ok {
			cmds = append(cmds, OpenInBrowser{URL: url})
		}

	case ClipboardCopyCompleted:
		if in.Err != nil {
			s.Message = errorMessage(fmt.Sprintf("couldn't yank url to clipboard: %v", in.Err)).withFrames(shortMessageFrames)
		} else {
			s.Message = infoMessage("copied").withFrames(shortMessageFrames)
		}

	case BrowserOpenCompleted:
		if in.Err != nil {
			s.Message = errorMessage(fmt.Sprintf("couldn't open url: %v", in.Err)).withFrames(shortMessageFrames)
		}

	case TerminalResized:
		s.ApplyResize(in.Width, in.Height)
	}

	s.tickMessage()
	return cmds
}

func navigateToSelected(s *State, cmds []Command) []Command {
	url, _, ok := s.Selection()
	if !ok {
		return cmds
	}

	if url == s.Details.URL {
		s.Message = errorMessage("selected URL is the same as the current one")
		return cmds
	}

	if p, ok := s.Cache.Get(url); ok {
		s.History.push(s.Details.URL)
		s.show(p)
		return cmds
	}

	s.generation++
	s.pending = url
	return append(cmds, FetchPage{
		Current:    s.Details.URL,
		Chosen:     url,
		Generation: s.generation,
	})
}

func fetchCompleted(s *State, in FetchCompleted) {
	// Outcomes are applied in arrival order, even when the user has moved
	// on since the fetch was issued. Those are only counted.
	if in.Generation != s.generation || in.Previous != s.Details.URL {
		s.StaleResults++
	}
	if in.Generation == s.generation {
		s.pending = ""
	}

	if in.Err != nil {
		s.Results = errorResults(in.Err)
		s.History.push(in.Previous)
		return
	}

	if len(in.Page.Links) == 0 {
		s.Message = infoMessage("no urls on the selected page")
		return
	}

	s.Cache.put(in.Page)
	s.History.push(in.Previous)
	s.show(in.Page)
	s.Message = nil
}

func goBack(s *State) {
	url, ok := s.History.pop()
	if !ok {
		s.Message = errorMessage("at the start of navigation history")
		return
	}

	p, ok := s.Cache.Get(url)
	if !ok {
		s.Message = errorMessage("something went wrong: page missing from cache")
		return
	}

	s.show(p)
	s.Message = nil
}
