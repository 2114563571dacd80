package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"alignr/internal/catalog"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// splitSkills splits a comma-separated flag value, dropping blanks.
func splitSkills(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// loadCatalog prefers the flag, then CATALOG_PATH, then the embedded catalog.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		path = os.Getenv("CATALOG_PATH")
	}
	return catalog.LoadOrDefault(path)
}
