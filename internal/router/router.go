// Package router maps request paths to site pages and assets.
package router

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/render"
	"gitlab.com/ilovewordsearch/site/internal/site"
	"gitlab.com/ilovewordsearch/site/internal/static"
)

var methods = []string{http.MethodGet, http.MethodHead}

// New returns the router serving every page of s rendered by renderer and
// every embedded asset. Paths are matched as received, mux does not clean
// them.
func New(s *site.Site, renderer render.Renderer, assets *static.Assets, pages *httperrors.Pages) (*mux.Router, error) {
	r := mux.NewRouter()
	r.SkipClean(true)
	r.NotFoundHandler = pages.NotFound()
	r.MethodNotAllowedHandler = pages.MethodNotAllowed()

	for _, page := range s.Pages {
		r.Handle(page.Path, render.Handler(renderer, page, pages)).Methods(methods...)
	}

	paths, err := assets.Paths()
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	for _, path := range paths {
		if _, ok := s.Page(path); ok {
			return nil, fmt.Errorf("asset %s conflicts with a page", path)
		}

		r.Handle(path, assets).Methods(methods...)
	}

	return r, nil
}
