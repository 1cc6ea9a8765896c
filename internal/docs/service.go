// Package docs renders the node's asciidoc documentation (protocol notes
// and the generated API reference) to HTML for serving over the dashboard
// routes. Rendered output is cached per file.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytesparadise/libasciidoc"
	"github.com/bytesparadise/libasciidoc/pkg/configuration"
)

// Service reads .adoc files from a directory and converts them on demand.
type Service struct {
	docsDir string
	mu      sync.RWMutex
	cache   map[string]string // filename -> rendered html
}

// NewService creates a docs service rooted at docsDir.
func NewService(docsDir string) *Service {
	return &Service{
		docsDir: docsDir,
		cache:   make(map[string]string),
	}
}

// Render returns the HTML for the named document, converting and caching it
// on first use. The filename must be a bare name within the docs directory.
func (s *Service) Render(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid document name: %s", filename)
	}

	s.mu.RLock()
	html, ok := s.cache[filename]
	s.mu.RUnlock()
	if ok {
		return html, nil
	}

	data, err := os.ReadFile(filepath.Join(s.docsDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to read doc file: %w", err)
	}

	output := bytes.NewBuffer(nil)
	cfg := configuration.NewConfiguration(
		configuration.WithHeaderFooter(false),
		configuration.WithAttribute("toc", "left"),
	)
	if _, err := libasciidoc.Convert(bytes.NewReader(data), output, cfg); err != nil {
		return "", fmt.Errorf("failed to convert asciidoc: %w", err)
	}

	html = output.String()

	s.mu.Lock()
	s.cache[filename] = html
	s.mu.Unlock()

	return html, nil
}

// List returns the .adoc filenames available for rendering.
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.docsDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".adoc") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
