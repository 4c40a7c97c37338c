// Package page fetches web pages and extracts their metadata and outgoing
// links.
package page

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Details describes a fetched page. Empty Title or Description means the page
// didn't declare one.
type Details struct {
	URL         string
	Title       string
	Description string
}

// Page is a fetched page along with the links found on it. Links are
// absolute http(s) URLs, sorted and deduplicated. Pages are never modified
// after construction.
type Page struct {
	Details Details
	Links   []string
}

// Parse extracts details and links from an HTML document. Relative links are
// resolved against base; links that don't resolve to http or https are
// dropped.
func Parse(base *url.URL, r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, fmt.Errorf("parsing html: %w", err)
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		link := base.ResolveReference(ref)
		if !isHTTP(link) {
			return
		}
		links = append(links, link.String())
	})

	return Page{
		Details: Details{
			URL:         base.String(),
			Title:       title,
			Description: metaProperty(doc, "og:description"),
		},
		Links: sortedUnique(links),
	}, nil
}

// metaProperty returns the trimmed content of the first
// <meta property="..."> tag with the given property.
func metaProperty(doc *goquery.Document, property string) string {
	sel := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First()
	content, ok := sel.Attr("content")
	if !ok {
		return ""
	}
	return strings.TrimSpace(content)
}

func isHTTP(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func sortedUnique(links []string) []string {
	if len(links) == 0 {
		return nil
	}
	sort.Strings(links)
	out := links[:1]
	for _, l := range links[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}
