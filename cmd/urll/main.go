package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/irfansharif/urll/pkg/config"
	"github.com/irfansharif/urll/pkg/desktop"
	"github.com/irfansharif/urll/pkg/page"
	"github.com/irfansharif/urll/pkg/tui"
)

var (
	cfgFile string
	useTUI  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urll [--tui] <URL>",
		Short: "List the urls on a web page, or browse them in the terminal",
		Long: `urll fetches a web page and prints every http(s) link on it, one per line.

With --tui it opens an interactive navigator: follow links from page to page,
go back through history, yank urls to the clipboard or open them in a browser.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&useTUI, "tui", "t", false, "browse urls in an interactive terminal UI")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", fmt.Sprintf("config file path (default %s)", config.Path()))

	return cmd
}

func run(ctx context.Context, rawURL string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := page.NewFetcher(page.Options{
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.FetchTimeout.Duration,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})

	start, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	if len(start.Links) == 0 {
		logger.Info("no urls found", "url", rawURL)
		return nil
	}

	if !useTUI {
		fmt.Println(strings.Join(start.Links, "\n"))
		return nil
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}

	return tui.Run(ctx, start, tui.Options{
		Width:     width,
		Height:    height,
		Debug:     cfg.Debug,
		Fetcher:   fetcher,
		Clipboard: newClipboard(),
		Browser:   desktop.NewBrowser(),
		Logger:    logger,
	})
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

// newLogger writes debug logs to path, or nowhere if path is empty. The
// terminal belongs to the UI, so logs never go to stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := tea.LogToFile(path, "urll")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func newClipboard() desktop.Clipboard {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return desktop.Clipboard{
			Terminal: os.Stderr,
			Tmux:     os.Getenv("TMUX") != "",
		}
	}
	return desktop.Clipboard{}
}
