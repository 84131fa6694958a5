// Package content reads configuration files referenced by the metamodel.
package content

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileReader implements domain.ContentReader over the local filesystem.
// Relative paths resolve against Root.
type FileReader struct {
	Root string
}

func New(root string) *FileReader {
	return &FileReader{Root: root}
}

func (r *FileReader) ReadContent(path string) (string, error) {
	full := path
	if !filepath.IsAbs(path) && r.Root != "" {
		full = filepath.Join(r.Root, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
