package render

import (
	"bytes"
	"net/http"
	"time"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/site"
)

// Handler serves page rendered by r. A failed render is answered with the
// 500 page and no part of the document.
func Handler(r Renderer, page site.Page, pages *httperrors.Pages) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var buf bytes.Buffer
		if err := r.Render(&buf, page, time.Now()); err != nil {
			pages.Serve500WithRequest(w, req, "failed to render page", err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}
