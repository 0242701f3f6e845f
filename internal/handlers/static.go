package handlers

import (
	"net/http"
	"path/filepath"
)

// Index serves the public landing page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.cfg.StaticDir, "index.html"))
}

// Admin serves the admin page.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.cfg.StaticDir, "admin.html"))
}
