package handler

import (
	"io/fs"
	"net/http"
)

const indexFile = "index.html"

type StaticHandler struct {
	fsys fs.FS
}

// NewStaticHandler serves index.html from the root of fsys.
func NewStaticHandler(fsys fs.FS) *StaticHandler {
	return &StaticHandler{fsys: fsys}
}

func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, err := fs.Stat(h.fsys, indexFile); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, h.fsys, indexFile)
}
