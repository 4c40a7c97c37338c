package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/irfansharif/urll/pkg/nav"
	"github.com/irfansharif/urll/pkg/page"
)

const (
	// Capacity of the channel command outcomes are delivered on.
	intentBufferSize = 10
	// Roughly one frame every 16ms.
	renderFPS = 60
	// How long Run waits for in-flight commands after the UI exits.
	shutdownGrace = time.Second
)

// CommandRunner starts commands without blocking.
type CommandRunner interface {
	Execute(cmd nav.Command)
}

// Model is the bubbletea model for urll. The bubbletea program is the event
// loop: it reads the terminal on its own goroutine and hands messages to
// Update one at a time, so State is only ever touched from one goroutine.
type Model struct {
	state   *nav.State
	runner  CommandRunner
	intents <-chan nav.Intent
	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model
	logger  *slog.Logger
}

// intentMsg carries a command outcome from the intents channel.
type intentMsg struct{ intent nav.Intent }

// New creates the TUI model. Outcomes of commands handed to runner are
// expected on intents.
func New(state *nav.State, runner CommandRunner, intents <-chan nav.Intent, logger *slog.Logger) *Model {
	styles := DefaultStyles()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Model{
		state:   state,
		runner:  runner,
		intents: intents,
		keys:    DefaultKeyMap(),
		styles:  styles,
		help:    help.New(),
		spinner: s,
		logger:  logger,
	}
}

// Init starts listening for command outcomes.
func (m *Model) Init() tea.Cmd {
	return waitForIntent(m.intents)
}

// waitForIntent blocks on the next command outcome. It is re-armed after
// every delivery.
func waitForIntent(intents <-chan nav.Intent) tea.Cmd {
	return func() tea.Msg {
		in, ok := <-intents
		if !ok {
			return nil
		}
		return intentMsg{intent: in}
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg, tea.WindowSizeMsg:
		m.state.EventCount++
		in, ok := MapEvent(m.state, m.keys, msg)
		if !ok {
			return m, nil
		}
		return m, m.apply(in)

	case intentMsg:
		return m, tea.Batch(m.apply(msg.intent), waitForIntent(m.intents))

	case spinner.TickMsg:
		if _, ok := m.state.Pending(); !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// apply runs the transition function and dispatches whatever it asks for.
func (m *Model) apply(in nav.Intent) tea.Cmd {
	_, wasPending := m.state.Pending()
	stale := m.state.StaleResults

	cmds := nav.Update(m.state, in)
	if m.state.StaleResults != stale {
		if fc, ok := in.(nav.FetchCompleted); ok {
			m.logger.Debug("applied late fetch result",
				"chosen", fc.Chosen, "previous", fc.Previous,
				"generation", fc.Generation, "latest", m.state.Generation())
		}
	}
	if m.state.Done() {
		m.logger.Debug("quitting", "events", m.state.EventCount, "renders", m.state.RenderCount)
		return tea.Quit
	}

	for _, cmd := range cmds {
		m.runner.Execute(cmd)
	}

	if _, pending := m.state.Pending(); pending && !wasPending {
		return m.spinner.Tick
	}
	return nil
}

// Options configures Run.
type Options struct {
	// Initial terminal dimensions.
	Width, Height int
	Debug         bool

	Fetcher   nav.Fetcher
	Clipboard nav.Clipboard
	Browser   nav.Browser
	Logger    *slog.Logger
}

// Run shows start in the terminal and blocks until the user quits. The
// terminal is restored on every exit path.
func Run(ctx context.Context, start page.Page, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	intents := make(chan nav.Intent, intentBufferSize)
	exec := nav.NewExecutor(ctx, intents, nav.ExecutorOptions{
		Fetcher:   opts.Fetcher,
		Clipboard: opts.Clipboard,
		Browser:   opts.Browser,
		Logger:    logger,
	})

	state := nav.New(start, opts.Width, opts.Height, opts.Debug)
	p := tea.NewProgram(
		New(state, exec, intents, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(renderFPS),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}

	cancel()
	waitWithTimeout(exec, shutdownGrace, logger)
	return err
}

func waitWithTimeout(exec *nav.Executor, d time.Duration, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		exec.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		logger.Debug("gave up waiting for in-flight commands")
	}
}
