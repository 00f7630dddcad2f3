package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/render/mock"
	"gitlab.com/ilovewordsearch/site/internal/site"
	"gitlab.com/ilovewordsearch/site/internal/static"
)

func newRouter(t *testing.T, s *site.Site) http.Handler {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	renderer := mock.NewMockRenderer(mockCtrl)
	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(w io.Writer, page site.Page, _ time.Time) error {
			_, err := io.WriteString(w, "page "+page.Path)
			return err
		}).
		AnyTimes()

	assets, err := static.New()
	require.NoError(t, err)

	r, err := New(s, renderer, assets, httperrors.New(false))
	require.NoError(t, err)

	return r
}

func TestRoutes(t *testing.T) {
	router := newRouter(t, site.Default(""))

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "home", method: http.MethodGet, path: "/", wantCode: http.StatusOK, wantBody: "page /"},
		{name: "home with query", method: http.MethodGet, path: "/?ref=nav", wantCode: http.StatusOK, wantBody: "page /"},
		{name: "home head", method: http.MethodHead, path: "/", wantCode: http.StatusOK},
		{name: "stylesheet", method: http.MethodGet, path: "/app.css", wantCode: http.StatusOK, wantBody: ".max-w-7xl"},
		{name: "robots", method: http.MethodGet, path: "/robots.txt", wantCode: http.StatusOK, wantBody: "User-agent: *"},
		{name: "unknown page", method: http.MethodGet, path: "/puzzles", wantCode: http.StatusNotFound, wantBody: "The requested page could not be found."},
		{name: "unknown file", method: http.MethodGet, path: "/og-image.jpg", wantCode: http.StatusNotFound, wantBody: "<h1>404</h1>"},
		{name: "path is not cleaned", method: http.MethodGet, path: "/a/../app.css", wantCode: http.StatusNotFound},
		{name: "post", method: http.MethodPost, path: "/", wantCode: http.StatusMethodNotAllowed, wantBody: "Method Not Allowed"},
		{name: "delete asset", method: http.MethodDelete, path: "/app.css", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantCode, w.Code)
			require.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAssetConflictingWithPage(t *testing.T) {
	s := &site.Site{Pages: []site.Page{{Path: "/robots.txt", Template: "home.html"}}}

	assets, err := static.New()
	require.NoError(t, err)

	_, err = New(s, mock.NewMockRenderer(gomock.NewController(t)), assets, httperrors.New(false))
	require.EqualError(t, err, "asset /robots.txt conflicts with a page")
}
