// Package web holds the dashboard page compiled into the binary.
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed static/index.html
var staticFS embed.FS

// Static returns the directory index.html is served from: dir on disk when
// set, the embedded copy otherwise.
func Static(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}
