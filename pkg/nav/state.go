// Package nav holds urll's navigation engine: the application state, the
// intents that drive it, the transition function, and the executor that runs
// the side effects the transition function asks for.
package nav

import (
	"github.com/irfansharif/urll/pkg/page"
)

// Minimum terminal dimensions the UI can be drawn in.
const (
	MinTerminalWidth  = 64
	MinTerminalHeight = 30
)

// Message lifetimes, counted in processed intents.
const (
	defaultMessageFrames = 4
	shortMessageFrames   = 2
)

// Pane is a mutually exclusive UI mode.
type Pane int

const (
	PaneResults Pane = iota
	PaneHelp
)

func (p Pane) String() string {
	switch p {
	case PaneResults:
		return "rl"
	case PaneHelp:
		return "h"
	default:
		return "?"
	}
}

// MessageKind distinguishes informational messages from errors.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// UserMessage is a transient status line message. It is dropped once
// FramesLeft runs out.
type UserMessage struct {
	Text       string
	Kind       MessageKind
	FramesLeft int
}

func infoMessage(text string) *UserMessage {
	return &UserMessage{Text: text, Kind: MessageInfo, FramesLeft: defaultMessageFrames}
}

func errorMessage(text string) *UserMessage {
	return &UserMessage{Text: text, Kind: MessageError, FramesLeft: defaultMessageFrames}
}

func (m *UserMessage) withFrames(n int) *UserMessage {
	m.FramesLeft = n
	return m
}

// Results is the outcome of the most recent navigation: either a list of
// links with a cursor, or an error. Links is shared with the cached page and
// must not be modified.
type Results struct {
	Links  []string
	Cursor int
	Err    error
}

func linkResults(links []string) Results {
	return Results{Links: links}
}

func errorResults(err error) Results {
	return Results{Err: err}
}

// OK reports whether the results hold a link list.
func (r Results) OK() bool { return r.Err == nil }

// PageCache holds every page fetched this session, keyed by the URL it was
// fetched with. Entries are never evicted.
type PageCache struct {
	pages map[string]page.Page
}

func newPageCache() PageCache {
	return PageCache{pages: make(map[string]page.Page)}
}

// Get returns the cached page for url.
func (c PageCache) Get(url string) (page.Page, bool) {
	p, ok := c.pages[url]
	return p, ok
}

func (c PageCache) put(p page.Page) {
	c.pages[p.Details.URL] = p
}

// Len returns the number of cached pages.
func (c PageCache) Len() int { return len(c.pages) }

// History is the stack of previously visited URLs, most recent last.
type History struct {
	urls []string
}

func (h *History) push(url string) { h.urls = append(h.urls, url) }

func (h *History) pop() (string, bool) {
	if len(h.urls) == 0 {
		return "", false
	}
	url := h.urls[len(h.urls)-1]
	h.urls = h.urls[:len(h.urls)-1]
	return url, true
}

// Len returns the number of entries.
func (h History) Len() int { return len(h.urls) }

// URLs returns a copy of the stack, oldest first.
func (h History) URLs() []string {
	return append([]string(nil), h.urls...)
}

// State is the single source of truth for the UI. It is owned by the event
// loop and only mutated through Update.
type State struct {
	ActivePane Pane
	// LastPane is the pane to return to when leaving Help. Only meaningful
	// when HasLastPane is set.
	LastPane    Pane
	HasLastPane bool

	Details page.Details
	Results Results
	Cache   PageCache
	History History
	Message *UserMessage

	Width    int
	Height   int
	TooSmall bool

	Debug       bool
	EventCount  uint64
	RenderCount uint64
	// StaleResults counts fetch outcomes applied after the user had moved
	// on: a newer fetch was issued, or the page shown changed.
	StaleResults uint64

	done bool

	// generation numbers issued fetches. pending is the URL of the most
	// recently issued one until its outcome arrives.
	generation uint64
	pending    string
}

// New returns the state for a session starting at start.
func New(start page.Page, width, height int, debug bool) *State {
	s := &State{
		ActivePane: PaneResults,
		Details:    start.Details,
		Results:    linkResults(start.Links),
		Cache:      newPageCache(),
		Debug:      debug,
	}
	s.Cache.put(start)
	s.ApplyResize(width, height)
	return s
}

// Selection returns the highlighted URL and its index. ok is false when the
// results are an error or empty.
func (s *State) Selection() (url string, index int, ok bool) {
	r := s.Results
	if !r.OK() || r.Cursor < 0 || r.Cursor >= len(r.Links) {
		return "", 0, false
	}
	return r.Links[r.Cursor], r.Cursor, true
}

// ApplyResize records new terminal dimensions. Pane and selection are left
// alone.
func (s *State) ApplyResize(width, height int) {
	s.Width = width
	s.Height = height
	s.TooSmall = width < MinTerminalWidth || height < MinTerminalHeight
}

// Done reports whether the application has finished.
func (s *State) Done() bool { return s.done }

// Pending returns the URL of the fetch the UI is waiting on, if any.
func (s *State) Pending() (string, bool) {
	return s.pending, s.pending != ""
}

// Generation returns the number of the most recently issued fetch.
func (s *State) Generation() uint64 { return s.generation }

func (s *State) show(p page.Page) {
	s.Details = p.Details
	s.Results = linkResults(p.Links)
}

func (s *State) moveCursor(to func(cursor, last int) int) {
	if s.ActivePane != PaneResults || !s.Results.OK() || len(s.Results.Links) == 0 {
		return
	}
	last := len(s.Results.Links) - 1
	s.Results.Cursor = min(max(to(s.Results.Cursor, last), 0), last)
}

func (s *State) tickMessage() {
	if s.Message == nil {
		return
	}
	if s.Message.FramesLeft == 0 {
		s.Message = nil
		return
	}
	s.Message.FramesLeft--
}
