package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>  Plain Title  </title>
  <meta property="og:description" content=" A page about things. ">
</head>
<body>
  <a href="/about">About</a>
  <a href="https://b.test">B</a>
  <a href="https://b.test">B again</a>
  <a href="mailto:someone@a.test">Mail</a>
  <a href="javascript:void(0)">JS</a>
  <a href="docs/intro">Intro</a>
  <a href="http://c.test/x?y=1">C</a>
  <a>no href</a>
</body>
</html>`

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	return u
}

func TestParse(t *testing.T) {
	p, err := Parse(mustParseURL(t, "https://a.test/base/"), strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Details.Title != "Plain Title" {
		t.Errorf("title = %q, want %q", p.Details.Title, "Plain Title")
	}
	if p.Details.Description != "A page about things." {
		t.Errorf("description = %q", p.Details.Description)
	}

	want := []string{
		"http://c.test/x?y=1",
		"https://a.test/about",
		"https://a.test/base/docs/intro",
		"https://b.test",
	}
	if !reflect.DeepEqual(p.Links, want) {
		t.Errorf("links = %q, want %q", p.Links, want)
	}
}

func TestParseOpenGraphTitleWins(t *testing.T) {
	const doc = `<html><head>
<title>Fallback</title>
<meta property="og:title" content="Graph Title">
</head><body></body></html>`

	p, err := Parse(mustParseURL(t, "https://a.test"), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Details.Title != "Graph Title" {
		t.Errorf("title = %q, want og:title", p.Details.Title)
	}
	if p.Details.Description != "" {
		t.Errorf("description = %q, want empty", p.Details.Description)
	}
	if len(p.Links) != 0 {
		t.Errorf("links = %q, want none", p.Links)
	}
}

func TestFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, `<title>Home</title><a href="/b">b</a><a href="/a">a</a><a href="/a">a</a>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(Options{UserAgent: "urll-test"})

	p, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotUA != "urll-test" {
		t.Errorf("user agent = %q", gotUA)
	}
	if p.Details.URL != srv.URL {
		t.Errorf("details url = %q, want %q", p.Details.URL, srv.URL)
	}
	if p.Details.Title != "Home" {
		t.Errorf("title = %q", p.Details.Title)
	}
	want := []string{srv.URL + "/a", srv.URL + "/b"}
	if !reflect.DeepEqual(p.Links, want) {
		t.Errorf("links = %q, want %q", p.Links, want)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Errorf("Fetch(missing) err = %v, want 404 StatusError", err)
	}
}

func TestFetchRejectsBadURLs(t *testing.T) {
	f := NewFetcher(Options{})

	for _, raw := range []string{"ftp://a.test/file", "a.test/no-scheme", "mailto:x@a.test"} {
		if _, err := f.Fetch(context.Background(), raw); !errors.Is(err, ErrUnsupportedScheme) {
			t.Errorf("Fetch(%q) err = %v, want ErrUnsupportedScheme", raw, err)
		}
	}

	if _, err := f.Fetch(context.Background(), "http://%zz"); err == nil {
		t.Error("expected malformed URL to fail")
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	f := NewFetcher(Options{Timeout: 20 * time.Millisecond})
	if _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}
