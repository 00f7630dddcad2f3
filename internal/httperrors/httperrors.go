package httperrors

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	pkgerrors "github.com/pkg/errors"

	"gitlab.com/ilovewordsearch/site/internal/errortracking"
	"gitlab.com/ilovewordsearch/site/internal/logging"
)

const (
	defaultDetails  = "An unexpected error occurred."
	notFoundDetails = "The requested page could not be found."
)

type content struct {
	status  int
	title   string
	message string
	details string
	stack   string
}

var (
	content404 = content{
		status:  http.StatusNotFound,
		title:   "Page not found (404)",
		message: "404",
		details: notFoundDetails,
	}
	content405 = routeError(http.StatusMethodNotAllowed)
	content414 = routeError(http.StatusRequestURITooLong)
	content429 = routeError(http.StatusTooManyRequests)
	content500 = content{
		status:  http.StatusInternalServerError,
		title:   "Something went wrong (500)",
		message: "Oops!",
		details: defaultDetails,
	}
)

// routeError is the page for a status raised while routing a request,
// other than not-found.
func routeError(status int) content {
	details := http.StatusText(status)
	if details == "" {
		details = defaultDetails
	}

	return content{
		status:  status,
		title:   fmt.Sprintf("%s (%d)", details, status),
		message: "Error",
		details: details,
	}
}

const predefinedErrorPage = `
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta content="width=device-width, initial-scale=1" name="viewport">
  <meta name="robots" content="noindex">
  <title>%v | I Love Word Search</title>
  <style>
    body {
      color: #713f12;
      background: #fefce8;
      font-family: Inter, "Helvetica Neue", Helvetica, Arial, sans-serif;
      margin: 0;
    }

    main {
      max-width: 80rem;
      margin: 0 auto;
      padding: 4rem 1rem 1rem;
    }

    h1 {
      font-size: 2.25rem;
      font-weight: 800;
    }

    pre {
      width: 100%%;
      padding: 1rem;
      overflow-x: auto;
      box-sizing: border-box;
      background: #fff;
      border: 1px solid #fef08a;
      border-radius: 1rem;
    }

    a {
      color: #a16207;
    }
  </style>
</head>

<body>
  <main>
    <h1>%v</h1>
    <p>%v</p>
    %v
    <p><a href="/">Back to I Love Word Search</a></p>
  </main>
</body>
</html>
`

func generateErrorHTML(c content) string {
	stack := ""
	if c.stack != "" {
		stack = "<pre><code>" + html.EscapeString(c.stack) + "</code></pre>"
	}

	return fmt.Sprintf(predefinedErrorPage,
		html.EscapeString(c.title),
		html.EscapeString(c.message),
		html.EscapeString(c.details),
		stack,
	)
}

func serveErrorPage(w http.ResponseWriter, c content) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	fmt.Fprintln(w, generateErrorHTML(c))
}

// Serve404 returns a 404 error response / HTML page to the http.ResponseWriter
func Serve404(w http.ResponseWriter) {
	serveErrorPage(w, content404)
}

// Serve405 returns a 405 error response / HTML page to the http.ResponseWriter
func Serve405(w http.ResponseWriter) {
	serveErrorPage(w, content405)
}

// Serve414 returns a 414 error response / HTML page to the http.ResponseWriter
func Serve414(w http.ResponseWriter) {
	serveErrorPage(w, content414)
}

// Serve429 returns a 429 error response / HTML page to the http.ResponseWriter
func Serve429(w http.ResponseWriter) {
	serveErrorPage(w, content429)
}

// Serve500 returns a 500 error response / HTML page to the http.ResponseWriter
func Serve500(w http.ResponseWriter) {
	serveErrorPage(w, content500)
}

// Pages serves the error pages whose contents depend on the process mode.
// In development mode unexpected errors disclose their message and stack
// trace; in production mode they never do.
type Pages struct {
	devMode bool
}

// New returns error pages for the given mode
func New(devMode bool) *Pages {
	return &Pages{devMode: devMode}
}

// NotFound is a handler serving the 404 page
func (p *Pages) NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Serve404(w)
	})
}

// MethodNotAllowed is a handler serving the 405 page
func (p *Pages) MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Serve405(w)
	})
}

// Serve500WithRequest logs and reports err, then returns a 500 error
// response / HTML page to the http.ResponseWriter
func (p *Pages) Serve500WithRequest(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.LogRequest(r).WithError(err).Error(reason)
	errortracking.CaptureErrWithReqAndStackTrace(err, r)

	c := content500
	if p.devMode && err != nil {
		c.details = err.Error()
		c.stack = stackOf(err)
	}

	serveErrorPage(w, c)
}

// ServePanic logs and reports a recovered panic, then returns a 500 error
// response / HTML page to the http.ResponseWriter. stack is the goroutine
// stack captured where the panic was recovered.
func (p *Pages) ServePanic(w http.ResponseWriter, r *http.Request, recovered interface{}, stack []byte) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}

	logging.LogRequest(r).WithError(err).WithField("stack", string(stack)).Error("recovered from panic")
	errortracking.CaptureErrWithReqAndStackTrace(err, r)

	c := content500
	if p.devMode {
		c.details = err.Error()
		c.stack = string(stack)
	}

	serveErrorPage(w, c)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf returns the innermost stack trace recorded in err's chain
func stackOf(err error) string {
	var stack string

	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			stack = fmt.Sprintf("%+v", st.StackTrace())
		}
	}

	return stack
}
