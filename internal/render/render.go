// Package render turns site pages into HTML documents.
package render

//go:generate mockgen -source=render.go -destination=mock/mock_renderer.go -package=mock

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"gitlab.com/ilovewordsearch/site/internal/site"
	"gitlab.com/ilovewordsearch/site/metrics"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var files embed.FS

// Renderer writes the complete document of a page
type Renderer interface {
	Render(w io.Writer, page site.Page, now time.Time) error
}

// Templates renders the pages of a site with html/template
type Templates struct {
	site  *site.Site
	pages map[string]*template.Template

	cacheExpiry time.Duration
	cache       *cache.Cache
}

// Option configures Templates
type Option func(*Templates)

// WithCache keeps rendered documents for expiry. Documents are keyed by page
// path and calendar day, so a cached document never outlives the day its
// data was loaded for. A zero expiry disables the cache.
func WithCache(expiry time.Duration) Option {
	return func(t *Templates) {
		t.cacheExpiry = expiry
	}
}

// document is the data the layout is executed with
type document struct {
	Head  []site.HeadEntry
	Links []site.HeadEntry
	Data  interface{}
}

// New parses the layout and the content template of every page of s
func New(s *site.Site, opts ...Option) (*Templates, error) {
	t := &Templates{
		site:  s,
		pages: make(map[string]*template.Template, len(s.Pages)),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.cacheExpiry > 0 {
		t.cache = cache.New(t.cacheExpiry, 2*t.cacheExpiry)
	}

	layout, err := template.New("layout").Funcs(sprig.FuncMap()).ParseFS(files, layoutFile)
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}

	for _, page := range s.Pages {
		if _, ok := t.pages[page.Template]; ok {
			continue
		}

		clone, err := layout.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "clone layout for %s", page.Template)
		}

		tmpl, err := clone.ParseFS(files, "templates/"+page.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", page.Template)
		}

		t.pages[page.Template] = tmpl
	}

	return t, nil
}

// Render writes the document of page as of now. Nothing is written to w when
// rendering fails.
func (t *Templates) Render(w io.Writer, page site.Page, now time.Time) error {
	key := cacheKey(page, now)

	if body, ok := t.cached(key); ok {
		_, err := w.Write(body)
		return err
	}

	body, err := t.execute(page, now)
	if err != nil {
		metrics.PageRenderFailures.WithLabelValues(page.Path).Inc()
		return err
	}

	metrics.PagesRendered.WithLabelValues(page.Path).Inc()

	if t.cache != nil {
		t.cache.SetDefault(key, body)
	}

	_, err = w.Write(body)
	return err
}

func (t *Templates) execute(page site.Page, now time.Time) ([]byte, error) {
	tmpl, ok := t.pages[page.Template]
	if !ok {
		return nil, errors.Errorf("no template %q for page %s", page.Template, page.Path)
	}

	doc := document{
		Head:  page.Head,
		Links: t.site.Links,
		Data:  page.Data(now),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", doc); err != nil {
		return nil, errors.Wrapf(err, "render page %s", page.Path)
	}

	return buf.Bytes(), nil
}

func (t *Templates) cached(key string) ([]byte, bool) {
	if t.cache == nil {
		return nil, false
	}

	if v, ok := t.cache.Get(key); ok {
		metrics.RenderCacheRequests.WithLabelValues("render", "hit").Inc()
		return v.([]byte), true
	}

	metrics.RenderCacheRequests.WithLabelValues("render", "miss").Inc()
	return nil, false
}

func cacheKey(page site.Page, now time.Time) string {
	return page.Path + "@" + now.UTC().Format("2006-01-02")
}
