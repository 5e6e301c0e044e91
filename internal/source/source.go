// Package source reads raw work entries from CSV or YAML entry logs.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bryan-cox/repohours/internal/model"
)

// ErrUnreadable is returned when an entry log cannot be opened or parsed.
// It is fatal for the whole run.
var ErrUnreadable = errors.New("source unreadable")

// Load reads all entries from the file at path. Files ending in .yml or
// .yaml are read as YAML, anything else as CSV. The file is fully drained
// and closed before Load returns.
func Load(path string) ([]model.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open '%s': %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	entries, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", path, err)
	}
	return entries, nil
}

func decode(r io.Reader, ext string) ([]model.RawEntry, error) {
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		return ReadYAML(r)
	default:
		return ReadCSV(r)
	}
}
