package nav

import (
	"reflect"
	"testing"

	"github.com/irfansharif/urll/pkg/page"
)

func TestLateFetchIsApplied(t *testing.T) {
	s := New(page.Page{
		Details: page.Details{URL: "https://a.test"},
		Links:   []string{"https://b.test", "https://c.test"},
	}, 80, 40, false)

	first := Update(s, NavigateToSelected{})[0].(FetchPage)
	Update(s, SelectNext{})
	second := Update(s, NavigateToSelected{})[0].(FetchPage)

	if first.Generation >= second.Generation {
		t.Fatalf("generations not increasing: %d, %d", first.Generation, second.Generation)
	}

	Update(s, FetchCompleted{
		Previous:   first.Current,
		Chosen:     first.Chosen,
		Generation: first.Generation,
		Page: page.Page{
			Details: page.Details{URL: "https://b.test"},
			Links:   []string{"https://b.test/1"},
		},
	})

	if s.Details.URL != "https://b.test" {
		t.Errorf("url = %s, want https://b.test", s.Details.URL)
	}
	if got := s.History.URLs(); !reflect.DeepEqual(got, []string{"https://a.test"}) {
		t.Errorf("history = %q", got)
	}
	if s.StaleResults != 1 {
		t.Errorf("stale results = %d, want 1", s.StaleResults)
	}
	if url, ok := s.Pending(); !ok || url != "https://c.test" {
		t.Errorf("pending = %q, %t; want the second fetch", url, ok)
	}

	Update(s, FetchCompleted{
		Previous:   second.Current,
		Chosen:     second.Chosen,
		Generation: second.Generation,
		Page: page.Page{
			Details: page.Details{URL: "https://c.test"},
			Links:   []string{"https://c.test/1"},
		},
	})

	if s.Details.URL != "https://c.test" {
		t.Errorf("url = %s, want https://c.test", s.Details.URL)
	}
	if got := s.History.URLs(); !reflect.DeepEqual(got, []string{"https://a.test", "https://a.test"}) {
		t.Errorf("history = %q", got)
	}
	if _, ok := s.Pending(); ok {
		t.Error("nothing should be pending once the latest fetch lands")
	}
}
