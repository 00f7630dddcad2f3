package httperrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// creates a new implementation of http.ResponseWriter that allows the
// casting of values in order to aid testing efforts.
type testResponseWriter struct {
	status  int
	content string
	http.ResponseWriter
}

func newTestResponseWriter(w http.ResponseWriter) *testResponseWriter {
	return &testResponseWriter{0, "", w}
}

func (w *testResponseWriter) Status() int {
	return w.status
}

func (w *testResponseWriter) Content() string {
	return w.content
}

func (w *testResponseWriter) Header() http.Header {
	return w.ResponseWriter.Header()
}

func (w *testResponseWriter) Write(data []byte) (int, error) {
	w.content = string(data)
	return w.ResponseWriter.Write(data)
}

func (w *testResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

var (
	testingContent = content{
		status:  http.StatusNotFound,
		title:   "Title",
		message: "533",
		details: "Details <b>text</b>",
	}
)

func TestGenerateErrorHTML(t *testing.T) {
	actual := generateErrorHTML(testingContent)
	require.Contains(t, actual, testingContent.title)
	require.Contains(t, actual, testingContent.message)
	require.Contains(t, actual, "Details &lt;b&gt;text&lt;/b&gt;")
	require.NotContains(t, actual, "<pre>")
}

func TestServeErrorPage(t *testing.T) {
	w := newTestResponseWriter(httptest.NewRecorder())
	serveErrorPage(w, testingContent)
	require.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
	require.Equal(t, w.Header().Get("X-Content-Type-Options"), "nosniff")
	require.Equal(t, w.Status(), testingContent.status)
}

func TestServeStaticPages(t *testing.T) {
	tests := []struct {
		name    string
		serve   func(http.ResponseWriter)
		status  int
		message string
		details string
	}{
		{
			name:    "404",
			serve:   Serve404,
			status:  http.StatusNotFound,
			message: "404",
			details: "The requested page could not be found.",
		},
		{
			name:    "405",
			serve:   Serve405,
			status:  http.StatusMethodNotAllowed,
			message: "Error",
			details: "Method Not Allowed",
		},
		{
			name:    "414",
			serve:   Serve414,
			status:  http.StatusRequestURITooLong,
			message: "Error",
			details: "Request URI Too Long",
		},
		{
			name:    "429",
			serve:   Serve429,
			status:  http.StatusTooManyRequests,
			message: "Error",
			details: "Too Many Requests",
		},
		{
			name:    "500",
			serve:   Serve500,
			status:  http.StatusInternalServerError,
			message: "Oops!",
			details: "An unexpected error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestResponseWriter(httptest.NewRecorder())
			tt.serve(w)

			require.Equal(t, tt.status, w.Status())
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Contains(t, w.Content(), "<h1>"+tt.message+"</h1>")
			require.Contains(t, w.Content(), "<p>"+tt.details+"</p>")
		})
	}
}

func TestServe500WithRequest(t *testing.T) {
	renderErr := pkgerrors.New("template home.html: missing key")
	wrapped := fmt.Errorf("rendering page: %w", renderErr)

	tests := []struct {
		name        string
		devMode     bool
		err         error
		wantDetails string
		wantStack   bool
	}{
		{
			name:        "production hides the error",
			devMode:     false,
			err:         wrapped,
			wantDetails: "An unexpected error occurred.",
		},
		{
			name:        "development shows message and stack",
			devMode:     true,
			err:         wrapped,
			wantDetails: "rendering page: template home.html: missing key",
			wantStack:   true,
		},
		{
			name:        "development without a recorded stack",
			devMode:     true,
			err:         errors.New("plain failure"),
			wantDetails: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestResponseWriter(httptest.NewRecorder())
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			New(tt.devMode).Serve500WithRequest(w, r, "failed to render page", tt.err)

			require.Equal(t, http.StatusInternalServerError, w.Status())
			require.Contains(t, w.Content(), "<h1>Oops!</h1>")
			require.Contains(t, w.Content(), "<p>"+tt.wantDetails+"</p>")

			if tt.wantStack {
				require.Contains(t, w.Content(), "<pre><code>")
				require.Contains(t, w.Content(), "httperrors_test.go")
			} else {
				require.NotContains(t, w.Content(), "<pre>")
			}
		})
	}
}

func TestServePanic(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\nmain.main()")

	t.Run("production", func(t *testing.T) {
		w := newTestResponseWriter(httptest.NewRecorder())
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		New(false).ServePanic(w, r, "boom", stack)

		require.Equal(t, http.StatusInternalServerError, w.Status())
		require.Contains(t, w.Content(), "<p>An unexpected error occurred.</p>")
		require.NotContains(t, w.Content(), "goroutine 1")
	})

	t.Run("development", func(t *testing.T) {
		w := newTestResponseWriter(httptest.NewRecorder())
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		New(true).ServePanic(w, r, "boom", stack)

		require.Equal(t, http.StatusInternalServerError, w.Status())
		require.Contains(t, w.Content(), "<p>panic: boom</p>")
		require.Contains(t, w.Content(), "goroutine 1 [running]:")
	})
}

func TestPagesHandlers(t *testing.T) {
	p := New(false)

	require.HTTPStatusCode(t, p.NotFound().ServeHTTP, http.MethodGet, "/missing", nil, http.StatusNotFound)
	require.HTTPBodyContains(t, p.NotFound().ServeHTTP, http.MethodGet, "/missing", nil, "The requested page could not be found.")
	require.HTTPStatusCode(t, p.MethodNotAllowed().ServeHTTP, http.MethodPost, "/", nil, http.StatusMethodNotAllowed)
}
