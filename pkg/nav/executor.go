package nav

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/irfansharif/urll/pkg/page"
)

// Fetcher retrieves a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (page.Page, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Browser opens a URL in a web browser.
type Browser interface {
	Open(url string) error
}

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	Fetcher   Fetcher
	Clipboard Clipboard
	Browser   Browser
	Logger    *slog.Logger
}

// Executor runs Commands on their own goroutines and reports each outcome as
// an Intent on a channel. Outcomes that can't be delivered immediately, because
// the channel is full or the executor has been shut down, are dropped.
type Executor struct {
	ctx  context.Context
	opts ExecutorOptions
	out  chan<- Intent
	log  *slog.Logger
	wg   sync.WaitGroup
}

// NewExecutor returns an Executor delivering outcomes to out. Cancelling ctx
// stops delivery; commands already running are not interrupted except for
// fetches, which observe ctx.
func NewExecutor(ctx context.Context, out chan<- Intent, opts ExecutorOptions) *Executor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{ctx: ctx, opts: opts, out: out, log: logger}
}

// Execute starts cmd and returns immediately.
func (e *Executor) Execute(cmd Command) {
	e.log.Debug("executing command", "command", cmd.String())

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.emit(e.run(cmd))
	}()
}

// Wait blocks until every started command has finished.
func (e *Executor) Wait() {
	e.wg.Wait()
}

func (e *Executor) run(cmd Command) Intent {
	switch cmd := cmd.(type) {
	case FetchPage:
		p, err := e.fetch(cmd.Chosen)
		return FetchCompleted{
			Previous:   cmd.Current,
			Chosen:     cmd.Chosen,
			Generation: cmd.Generation,
			Page:       p,
			Err:        err,
		}
	case CopyToClipboard:
		return ClipboardCopyCompleted{Err: guard(func() error {
			return e.opts.Clipboard.WriteText(cmd.Text)
		})}
	case OpenInBrowser:
		return BrowserOpenCompleted{Err: guard(func() error {
			return e.opts.Browser.Open(cmd.URL)
		})}
	default:
		panic(fmt.Sprintf("unknown command %T", cmd))
	}
}

func (e *Executor) fetch(url string) (p page.Page, err error) {
	err = guard(func() error {
		var ferr error
		p, ferr = e.opts.Fetcher.Fetch(e.ctx, url)
		return ferr
	})
	if err != nil {
		return page.Page{}, err
	}
	return p, nil
}

func (e *Executor) emit(in Intent) {
	if e.ctx.Err() != nil {
		e.log.Debug("dropping outcome after shutdown", "intent", fmt.Sprintf("%T", in))
		return
	}
	select {
	case e.out <- in:
	default:
		e.log.Debug("dropping outcome, channel full", "intent", fmt.Sprintf("%T", in))
	}
}

// guard runs fn, turning a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
