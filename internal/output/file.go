// Package output persists generated reports.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bryan-cox/repohours/internal/model"
	"github.com/bryan-cox/repohours/internal/report"
)

// ErrUnwritable is returned when a report cannot be persisted.
var ErrUnwritable = errors.New("output unwritable")

// Sink persists an ordered set of report rows under a name and returns a
// descriptor of the stored artifact.
type Sink interface {
	WriteReport(name string, rows []model.ReportRow) (string, error)
}

// FileSink writes reports as CSV files into Dir.
type FileSink struct {
	Dir string
}

// NewFileSink returns a sink writing into dir, or the working directory if
// dir is empty.
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

// WriteReport writes rows to Dir/name and returns the file path. The file is
// written to a temporary name first and renamed into place, so a failed run
// never leaves a partial report behind.
func (s *FileSink) WriteReport(name string, rows []model.ReportRow) (string, error) {
	var buf bytes.Buffer
	if err := report.EncodeCSV(&buf, rows); err != nil {
		return "", fmt.Errorf("%w: encoding report: %v", ErrUnwritable, err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating directory '%s': %v", ErrUnwritable, s.Dir, err)
	}

	path := filepath.Join(s.Dir, name)
	tmp, err := os.CreateTemp(s.Dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: could not create '%s': %v", ErrUnwritable, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: could not write '%s': %v", ErrUnwritable, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: could not write '%s': %v", ErrUnwritable, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: could not write '%s': %v", ErrUnwritable, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: could not move report into '%s': %v", ErrUnwritable, path, err)
	}
	return path, nil
}
