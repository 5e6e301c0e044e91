// Package ledger turns raw entry records into grouped, billable work.
package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bryan-cox/repohours/internal/model"
)

// ErrMalformedEntry marks a record that is missing a field or cannot be parsed.
var ErrMalformedEntry = errors.New("malformed entry")

// NormalizeResult holds the events that survived normalization and the
// number of records that were discarded.
type NormalizeResult struct {
	Events  []model.WorkEvent
	Skipped int
}

// Normalize converts a single raw record into a WorkEvent. Date and time are
// read as wall-clock values and combined in UTC; no zone conversion happens.
func Normalize(raw model.RawEntry) (model.WorkEvent, error) {
	for _, f := range []struct{ name, value string }{
		{"repo", raw.Repo},
		{"date", raw.Date},
		{"time", raw.Time},
		{"task", raw.Task},
	} {
		if strings.TrimSpace(f.value) == "" {
			return model.WorkEvent{}, fmt.Errorf("%w: missing %s", ErrMalformedEntry, f.name)
		}
	}

	date, err := time.Parse(model.DateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return model.WorkEvent{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", ErrMalformedEntry, raw.Date)
	}

	clock, err := parseClock(strings.TrimSpace(raw.Time))
	if err != nil {
		return model.WorkEvent{}, fmt.Errorf("%w: invalid time %q, use HH:mm or HH:mm:ss", ErrMalformedEntry, raw.Time)
	}

	at := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)

	return model.WorkEvent{
		Repo: raw.Repo,
		Date: date,
		At:   at,
		Task: raw.Task,
	}, nil
}

func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse(model.TimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(model.TimeLayoutSeconds, s)
}

// NormalizeAll normalizes every record, skipping and logging malformed ones.
// A malformed record never stops the remaining records from being processed.
func NormalizeAll(entries []model.RawEntry) NormalizeResult {
	result := NormalizeResult{Events: make([]model.WorkEvent, 0, len(entries))}
	for _, raw := range entries {
		event, err := Normalize(raw)
		if err != nil {
			slog.Warn("skipping malformed entry", "line", raw.Line, "repo", raw.Repo, "error", err)
			result.Skipped++
			continue
		}
		result.Events = append(result.Events, event)
	}
	return result
}
