package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrUnsupportedScheme is returned for URLs that aren't http or https.
var ErrUnsupportedScheme = errors.New("unsupported url scheme")

// StatusError is returned when the server responds with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.Code, e.URL)
}

// Options configures a Fetcher.
type Options struct {
	UserAgent string
	// Timeout bounds each Fetch, body included.
	Timeout      time.Duration
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		UserAgent:    "Mozilla/5.0 (compatible; urll/1.0)",
		Timeout:      30 * time.Second,
		MaxBodyBytes: 10 << 20,
	}
}

// Fetcher retrieves pages over HTTP.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewFetcher creates a Fetcher. Zero-valued options fall back to
// DefaultOptions.
func NewFetcher(opts Options) *Fetcher {
	def := DefaultOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = def.MaxBodyBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{
		client:       &http.Client{},
		timeout:      opts.Timeout,
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       logger,
	}
}

// Fetch downloads rawURL and extracts its details and links. The returned
// page's Details.URL is rawURL exactly as given.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("invalid URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return Page{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, rawURL)
	}
	if base.Host == "" {
		return Page{}, fmt.Errorf("invalid URL %q: missing host", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("fetched page", "url", rawURL, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	p, err := Parse(base, io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return Page{}, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	p.Details.URL = rawURL
	return p, nil
}
