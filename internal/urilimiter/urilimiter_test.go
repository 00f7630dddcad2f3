package urilimiter

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/ilovewordsearch/site/internal/testhelpers"
)

func TestNewMiddleware(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello")
	})

	tests := map[string]struct {
		limit          int
		url            string
		expectedStatus int
	}{
		"with_disabled_middleware": {
			limit:          0,
			url:            "/word-search-puzzles/animals?page=2",
			expectedStatus: http.StatusOK,
		},
		"with_negative_limit": {
			limit:          -1,
			url:            "/",
			expectedStatus: http.StatusOK,
		},
		"with_limit_set_to_request_length": {
			limit:          16,
			url:            "/animals/?page=2",
			expectedStatus: http.StatusOK,
		},
		"with_path_exceeding_the_limit": {
			limit:          16,
			url:            "/animalss/?page=2",
			expectedStatus: http.StatusRequestURITooLong,
		},
		"with_query_exceeding_the_limit": {
			limit:          16,
			url:            "/animals/?page=22",
			expectedStatus: http.StatusRequestURITooLong,
		},
	}
	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			middleware := NewMiddleware(handler, tt.limit)

			ww := httptest.NewRecorder()
			rr := httptest.NewRequest(http.MethodGet, tt.url, nil)

			middleware.ServeHTTP(ww, rr)

			res := ww.Result()
			testhelpers.Close(t, res.Body)

			require.Equal(t, tt.expectedStatus, res.StatusCode)

			b, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, "hello", string(b))
			} else {
				require.Contains(t, string(b), "Request URI Too Long")
			}
		})
	}
}
