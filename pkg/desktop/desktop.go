// Package desktop talks to the user's desktop environment: the system
// clipboard and the default web browser.
package desktop

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	// Terminal, if set, is sent an OSC 52 sequence when there is no system
	// clipboard to write to, e.g. over SSH. This is best effort: the write
	// happens on the caller's goroutine and isn't synchronized with a UI
	// drawing to the same tty, so a frame drawn at that moment may be
	// garbled until the next redraw.
	Terminal io.Writer
	// Tmux wraps the sequence in tmux passthrough.
	Tmux bool
}

// WriteText replaces the clipboard contents with text.
func (c Clipboard) WriteText(text string) error {
	err := clipboard.WriteAll(text)
	if err == nil {
		return nil
	}
	if c.Terminal != nil {
		if werr := writeOSC52(c.Terminal, text, c.Tmux); werr == nil {
			return nil
		}
	}
	return fmt.Errorf("writing clipboard: %w", err)
}

func writeOSC52(w io.Writer, text string, tmux bool) error {
	seq := osc52.New(text)
	if tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(w)
	return err
}

// Browser opens URLs in the user's default browser.
type Browser struct {
	goos string
}

// NewBrowser returns a Browser for the running platform.
func NewBrowser() Browser {
	return Browser{goos: runtime.GOOS}
}

// Open launches url. It returns once the launcher has started, without
// waiting for the browser.
func (b Browser) Open(url string) error {
	cmd := openCommand(b.goos, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", cmd.Args[0], err)
	}
	// Reap the launcher so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		// Not cmd /c start: cmd.exe would interpret & and | in the URL.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
