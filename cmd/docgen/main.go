// Command docgen regenerates docs/api.adoc from the @Title/@Route/
// @Description/@Response annotations on the handlers in internal/api.
// The node renders the result to HTML at GET /docs/api.adoc.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Endpoint struct {
	Title       string
	Route       string
	Description string
	Response    string
}

var (
	reTitle = regexp.MustCompile(`// @Title: (.*)`)
	reRoute = regexp.MustCompile(`// @Route: (.*)`)
	reDesc  = regexp.MustCompile(`// @Description: (.*)`)
	reResp  = regexp.MustCompile(`// @Response: (.*)`)
)

func main() {
	endpoints, err := collect("internal/api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}

	if err := writeAsciidoc("docs/api.adoc", endpoints); err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated docs/api.adoc with %d endpoints\n", len(endpoints))
}

func collect(apiDir string) ([]Endpoint, error) {
	files, err := os.ReadDir(apiDir)
	if err != nil {
		return nil, err
	}

	var endpoints []Endpoint
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := os.Open(filepath.Join(apiDir, name))
		if err != nil {
			continue
		}

		scanner := bufio.NewScanner(f)
		var current Endpoint
		for scanner.Scan() {
			line := scanner.Text()

			if m := reTitle.FindStringSubmatch(line); len(m) > 1 {
				current.Title = strings.TrimSpace(m[1])
			}
			if m := reRoute.FindStringSubmatch(line); len(m) > 1 {
				current.Route = strings.TrimSpace(m[1])
			}
			if m := reDesc.FindStringSubmatch(line); len(m) > 1 {
				current.Description = strings.TrimSpace(m[1])
			}
			if m := reResp.FindStringSubmatch(line); len(m) > 1 {
				current.Response = strings.TrimSpace(m[1])
				// @Response closes a block
				if current.Title != "" && current.Route != "" {
					endpoints = append(endpoints, current)
					current = Endpoint{}
				}
			}
		}
		f.Close()
	}
	return endpoints, nil
}

func writeAsciidoc(path string, endpoints []Endpoint) error {
	var b strings.Builder
	b.WriteString("= API Reference\n")
	b.WriteString(":toc:\n\n")
	b.WriteString("Auto-generated from handler annotations. Do not edit by hand;\n")
	b.WriteString("run `go run ./cmd/docgen` after changing internal/api.\n\n")

	for _, ep := range endpoints {
		b.WriteString(fmt.Sprintf("== %s\n\n", ep.Title))
		b.WriteString(fmt.Sprintf("`%s`\n\n", ep.Route))
		b.WriteString(ep.Description + "\n\n")
		b.WriteString(fmt.Sprintf("Response:: %s\n\n", ep.Response))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
