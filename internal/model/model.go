// Package model defines the core data structures for RepoHours.
package model

import (
	"sort"
	"time"
)

// Layouts for the wall-clock values found in entry logs.
const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	TimeLayoutSeconds = "15:04:05"
)

// RawEntry is one record as yielded by an input source, before any parsing.
type RawEntry struct {
	Repo string `yaml:"repo"`
	Date string `yaml:"date"`
	Time string `yaml:"time"`
	Task string `yaml:"task"`

	// Line is the position of the record in its source, used for diagnostics.
	Line int `yaml:"-"`
}

// WorkEvent is a normalized observation of work on a repository.
type WorkEvent struct {
	Repo string
	// Date is midnight UTC of the calendar day.
	Date time.Time
	// At is the absolute instant, Date combined with the time of day.
	At   time.Time
	Task string
}

// GroupKey identifies a DayRepoGroup.
type GroupKey struct {
	Date string // YYYY-MM-DD
	Repo string
}

// DayRepoGroup collects the events of one repository on one calendar day.
type DayRepoGroup struct {
	Date time.Time
	Repo string
	// Tasks holds every task label in arrival order, duplicates included.
	Tasks []string

	instants map[int64]time.Time
}

// NewDayRepoGroup returns an empty group for the given day and repository.
func NewDayRepoGroup(date time.Time, repo string) *DayRepoGroup {
	return &DayRepoGroup{
		Date:     date,
		Repo:     repo,
		instants: make(map[int64]time.Time),
	}
}

// AddInstant records t unless an identical instant is already present.
// It reports whether t was new.
func (g *DayRepoGroup) AddInstant(t time.Time) bool {
	if g.instants == nil {
		g.instants = make(map[int64]time.Time)
	}
	key := t.UnixNano()
	if _, exists := g.instants[key]; exists {
		return false
	}
	g.instants[key] = t
	return true
}

// Timestamps returns the unique instants of the group in ascending order.
func (g *DayRepoGroup) Timestamps() []time.Time {
	out := make([]time.Time, 0, len(g.instants))
	for _, t := range g.instants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// ReportRow is one finalized line of the time-tracking report.
type ReportRow struct {
	Date  string
	Repo  string
	Tasks string
	Hours float64

	// Day is the calendar date the row was built from; it is not serialized.
	Day time.Time
}
