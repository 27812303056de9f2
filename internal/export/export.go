// Package export renders the store's tier sections into document formats.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"triage/internal/store"
)

// Renderer produces a document from the ordered tier sections. Section order
// and label order are the caller's; renderers must preserve both.
type Renderer interface {
	Render(title string, sections []store.Section) ([]byte, error)
}

// ForPath selects a renderer by the destination's file extension.
// Unknown extensions fall back to markdown.
func ForPath(path string) Renderer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF{}
	case ".json":
		return JSON{}
	case ".csv":
		return CSV{}
	default:
		return Markdown{}
	}
}

// WriteFile renders the sections in the format matching path's extension and
// persists the document at path.
func WriteFile(path, title string, sections []store.Section) error {
	data, err := ForPath(path).Render(title, sections)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
