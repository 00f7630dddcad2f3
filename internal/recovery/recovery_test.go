package recovery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/testhelpers"
)

func TestMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	})

	tests := []struct {
		name      string
		devMode   bool
		wantBody  string
		wantStack bool
	}{
		{name: "production", wantBody: "<p>An unexpected error occurred.</p>"},
		{name: "development", devMode: true, wantBody: "<p>panic: template exploded</p>", wantStack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := testlog.NewGlobal()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			NewMiddleware(panicking, httperrors.New(tt.devMode)).ServeHTTP(w, r)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Contains(t, w.Body.String(), tt.wantBody)
			testhelpers.AssertLogContains(t, "recovered from panic", hook.AllEntries())

			if tt.wantStack {
				require.Contains(t, w.Body.String(), "recovery.go")
			} else {
				require.NotContains(t, w.Body.String(), "goroutine")
			}
		})
	}
}

func TestMiddlewarePassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	NewMiddleware(next, httperrors.New(true)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestMiddlewareReraisesAbort(t *testing.T) {
	aborting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	require.PanicsWithValue(t, http.ErrAbortHandler, func() {
		NewMiddleware(aborting, httperrors.New(false)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
