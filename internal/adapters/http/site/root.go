// Package site serves the dashboard's static assets.
package site

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/okian/practicedash/internal/view"
)

// Prefix is the URL path the assets are mounted under. The HTML renderer
// links the stylesheet at Prefix + view.StylesheetName.
const Prefix = "/static/"

// Register attaches the embedded asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle(Prefix, Handler(view.Assets()))
}

// Handler serves files from assets under Prefix. Directory listings are
// not exposed.
func Handler(assets fs.FS) http.Handler {
	files := http.FileServer(http.FS(assets))
	return http.StripPrefix(Prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	}))
}
