package nav

import "github.com/irfansharif/urll/pkg/page"

// Intent is an application-level event: something the user asked for, or the
// outcome of a Command.
type Intent interface {
	intent()
}

type (
	// NavigateToSelected descends into the highlighted link.
	NavigateToSelected struct{}

	// FetchCompleted reports the outcome of a FetchPage command.
	FetchCompleted struct {
		Previous   string
		Chosen     string
		Generation uint64
		Page       page.Page
		Err        error
	}

	// GoBack returns to the most recently visited page.
	GoBack struct{}

	SelectNext     struct{}
	SelectPrevious struct{}
	SelectFirst    struct{}
	SelectLast     struct{}

	// SwitchPane activates Target, remembering the current pane.
	SwitchPane struct{ Target Pane }

	// GoBackOrQuit leaves Help, or quits from the results list.
	GoBackOrQuit struct{}

	QuitImmediately struct{}

	YankSelectedURL struct{}
	YankAllURLs     struct{}
	OpenSelectedURL struct{}

	// ClipboardCopyCompleted reports the outcome of a CopyToClipboard command.
	ClipboardCopyCompleted struct{ Err error }

	// BrowserOpenCompleted reports the outcome of an OpenInBrowser command.
	BrowserOpenCompleted struct{ Err error }

	TerminalResized struct{ Width, Height int }
)

func (NavigateToSelected) intent()     {}
func (FetchCompleted) intent()         {}
func (GoBack) intent()                 {}
func (SelectNext) intent()             {}
func (SelectPrevious) intent()         {}
func (SelectFirst) intent()            {}
func (SelectLast) intent()             {}
func (SwitchPane) intent()             {}
func (GoBackOrQuit) intent()           {}
func (QuitImmediately) intent()        {}
func (YankSelectedURL) intent()        {}
func (YankAllURLs) intent()            {}
func (OpenSelectedURL) intent()        {}
func (ClipboardCopyCompleted) intent() {}
func (BrowserOpenCompleted) intent()   {}
func (TerminalResized) intent()        {}

// Command is a side effect requested by Update and run by an Executor. Its
// outcome comes back as an Intent.
type Command interface {
	command()
	String() string
}

type (
	// FetchPage fetches Chosen, which was selected while Current was shown.
	FetchPage struct {
		Current    string
		Chosen     string
		Generation uint64
	}

	// CopyToClipboard writes Text to the system clipboard.
	CopyToClipboard struct{ Text string }

	// OpenInBrowser opens URL in the default browser.
	OpenInBrowser struct{ URL string }
)

func (FetchPage) command()       {}
func (CopyToClipboard) command() {}
func (OpenInBrowser) command()   {}

func (FetchPage) String() string       { return "fetch page" }
func (CopyToClipboard) String() string { return "copy to clipboard" }
func (OpenInBrowser) String() string   { return "open in browser" }
