package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// StaticHandler serves HTML pages and images from a fixed root directory
type StaticHandler struct {
	root string
}

// NewStaticHandler creates a static handler rooted at dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: dir}
}

// HandlePage handles GET /{page}.html
func (h *StaticHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	h.serveFile(w, r, page+".html")
}

// HandleImage handles GET /images/{name}
func (h *StaticHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.serveFile(w, r, filepath.Join("images", name))
}

// HandleIndex handles GET /. index.html is served when present, falling back
// to dashboard.html.
func (h *StaticHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(filepath.Join(h.root, "index.html")); err == nil {
		h.serveFile(w, r, "index.html")
		return
	}
	h.serveFile(w, r, "dashboard.html")
}

// serveFile serves name relative to the root. Traversal attempts (".." or a
// leading slash) and missing files are rejected with 404; the serving root is
// never escaped.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	if strings.Contains(name, "..") || strings.HasPrefix(name, "/") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.root, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}
