package api

import (
	"net/http"
	"strings"
)

// @Title: List Documentation
// @Route: GET /docs
// @Description: List the available documentation pages
// @Response: 200 with an array of document names
func (s *Service) HandleDocsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := s.docs.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list documentation")
		return
	}
	s.writeJSON(w, http.StatusOK, names)
}

// @Title: Render Document
// @Route: GET /docs/{name}
// @Description: Render a documentation page from asciidoc to HTML
// @Response: 200 with the rendered HTML, 404 for an unknown document
func (s *Service) HandleDoc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/docs/")
	if name == "" {
		s.HandleDocsList(w, r)
		return
	}

	html, err := s.docs.Render(name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "Document not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
