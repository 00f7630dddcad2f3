// Package static serves the public assets embedded in the binary.
package static

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"gitlab.com/gitlab-org/go-mimedb"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/logging"
)

//go:embed public
var public embed.FS

var cacheControl = map[string]string{
	".css": "public, max-age=86400",
}

const defaultCacheControl = "public, max-age=3600"

// Assets serves the embedded public files by their request path
type Assets struct {
	files   fs.FS
	modTime time.Time
}

// New registers the MIME types used to serve assets and returns the
// embedded assets. Last-Modified is the time New is called.
func New() (*Assets, error) {
	if err := mimedb.LoadTypes(); err != nil {
		return nil, fmt.Errorf("loading mime types: %w", err)
	}

	files, err := fs.Sub(public, "public")
	if err != nil {
		return nil, fmt.Errorf("opening public assets: %w", err)
	}

	return &Assets{files: files, modTime: time.Now()}, nil
}

// Paths returns the request path of every asset, sorted
func (a *Assets) Paths() ([]string, error) {
	var paths []string

	err := fs.WalkDir(a.files, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			paths = append(paths, "/"+name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// ServeHTTP serves the asset named by the request path, or the 404 page
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if !fs.ValidPath(name) {
		httperrors.Serve404(w)
		return
	}

	file, err := a.files.Open(name)
	if err != nil {
		httperrors.Serve404(w)
		return
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil || fi.IsDir() {
		httperrors.Serve404(w)
		return
	}

	content, ok := file.(io.ReadSeeker)
	if !ok {
		logging.LogRequest(r).WithField("asset", name).Error("embedded asset is not seekable")
		httperrors.Serve500(w)
		return
	}

	w.Header().Set("Cache-Control", cacheControlFor(name))

	// ServeContent sets Content-Type from the extension
	http.ServeContent(w, r, name, a.modTime, content)
}

func cacheControlFor(name string) string {
	if cc, ok := cacheControl[path.Ext(name)]; ok {
		return cc
	}

	return defaultCacheControl
}
