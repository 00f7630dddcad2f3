// Package canonical redirects non-canonical request URLs to their canonical
// form.
//
// A URL is non-canonical when its path ends in one or more slashes and is
// neither the root path nor a file-like path. The canonical form strips the
// whole trailing run of slashes and keeps the query string verbatim.
package canonical

import (
	"net/url"
	"regexp"
	"strings"
)

// fileLike matches a last path segment that looks like a file reference,
// e.g. "og-image.jpg" or "sitemap.xml". The extension is not validated
// against a list of known types.
var fileLike = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)

// NeedsStrip reports whether path has trailing slashes that must be removed
func NeedsStrip(path string) bool {
	if path == "/" || !strings.HasSuffix(path, "/") {
		return false
	}

	return !fileLike.MatchString(lastSegment(path))
}

// Strip removes the whole trailing run of slashes from path. A path made of
// slashes only becomes "/".
func Strip(path string) string {
	stripped := strings.TrimRight(path, "/")
	if stripped == "" {
		return "/"
	}

	return stripped
}

// Target returns the canonical location for u and whether a request for u
// must be redirected to it. The location is the stripped escaped path
// followed by the raw query, when there is one.
func Target(u *url.URL) (string, bool) {
	path := u.EscapedPath()
	if !NeedsStrip(path) {
		return "", false
	}

	target := Strip(path)
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}

	return target, true
}

// lastSegment returns the last non-empty segment of path, or "" when every
// segment is empty.
func lastSegment(path string) string {
	trimmed := strings.TrimRight(path, "/")

	return trimmed[strings.LastIndex(trimmed, "/")+1:]
}
