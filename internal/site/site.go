package site

import (
	"strings"
	"time"
)

// DefaultBaseURL is the canonical origin of the production site
const DefaultBaseURL = "https://ilovewordsearch.com"

// Loader produces the template data of a page for a request made at now
type Loader func(now time.Time) interface{}

// Page is a route of the site
type Page struct {
	// Path is the canonical request path
	Path string
	// Template is the name of the page's content template
	Template string
	// Head holds the page's document head entries, in document order
	Head []HeadEntry
	// Load returns the template data, nil when the page needs none
	Load Loader
}

// Data returns the template data of p at now
func (p Page) Data(now time.Time) interface{} {
	if p.Load == nil {
		return nil
	}

	return p.Load(now)
}

// Site is the set of pages served and the head entries shared by all of them
type Site struct {
	BaseURL string
	// Links are added to the head of every page, after the page's own entries
	Links []HeadEntry
	Pages []Page
}

// Page returns the page registered for path
func (s *Site) Page(path string) (Page, bool) {
	for _, p := range s.Pages {
		if p.Path == path {
			return p, true
		}
	}

	return Page{}, false
}

// URL returns the absolute canonical URL of path
func (s *Site) URL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + path
}

// Default returns the production site served from baseURL
func Default(baseURL string) *Site {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	s := &Site{BaseURL: strings.TrimRight(baseURL, "/")}
	s.Links = []HeadEntry{
		Link("preconnect", "https://fonts.googleapis.com"),
		{Rel: "preconnect", Href: "https://fonts.gstatic.com", CrossOrigin: "anonymous"},
		Link("stylesheet", "https://fonts.googleapis.com/css2?family=Inter:ital,opsz,wght@0,14..32,100..900;1,14..32,100..900&display=swap"),
		Link("stylesheet", "/app.css"),
		Link("icon", "/favicon.svg"),
		Link("canonical", s.BaseURL),
	}
	s.Pages = []Page{
		homePage(s.URL("/")),
	}

	return s
}
