package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bryan-cox/repohours/internal/model"
)

// Columns lists the header names a CSV entry log must contain.
var Columns = []string{"repo", "date", "time", "task"}

// ReadCSV reads an entry log whose first row names the columns. Columns may
// appear in any order and extra columns are ignored. Blank lines are skipped.
// Records with missing values are returned as-is; rejecting them is left to
// normalization.
func ReadCSV(r io.Reader) ([]model.RawEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrUnreadable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: header is missing column(s) %s", ErrUnreadable, strings.Join(missing, ", "))
	}

	field := func(record []string, col string) string {
		if i := index[col]; i < len(record) {
			return record[i]
		}
		return ""
	}

	var entries []model.RawEntry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		line, _ := cr.FieldPos(0)
		entries = append(entries, model.RawEntry{
			Repo: field(record, "repo"),
			Date: field(record, "date"),
			Time: field(record, "time"),
			Task: field(record, "task"),
			Line: line,
		})
	}
	return entries, nil
}
