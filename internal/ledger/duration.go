package ledger

import (
	"time"

	"github.com/bryan-cox/repohours/internal/model"
)

// Policy controls how observed timestamps are turned into billable time.
type Policy struct {
	// Granularity is the step every multi-timestamp span is rounded up to.
	Granularity time.Duration
	// SingleEntry is what a group with one timestamp is billed.
	SingleEntry time.Duration
}

// DefaultPolicy bills a lone observation as one hour and rounds spans up to
// the next quarter hour.
func DefaultPolicy() Policy {
	return Policy{
		Granularity: 15 * time.Minute,
		SingleEntry: 60 * time.Minute,
	}
}

// Estimate returns the billable duration of a group.
func (p Policy) Estimate(g *model.DayRepoGroup) time.Duration {
	return p.EstimateSpan(g.Timestamps())
}

// EstimateSpan returns the billable duration for a set of unique timestamps.
// The input does not need to be sorted.
func (p Policy) EstimateSpan(timestamps []time.Time) time.Duration {
	switch len(timestamps) {
	case 0:
		return 0
	case 1:
		return p.SingleEntry
	}

	first, last := timestamps[0], timestamps[0]
	for _, t := range timestamps[1:] {
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	return ceilTo(last.Sub(first), p.Granularity)
}

// EstimateMinutes is Estimate expressed in whole minutes.
func (p Policy) EstimateMinutes(g *model.DayRepoGroup) int {
	return int(p.Estimate(g) / time.Minute)
}

func ceilTo(d, step time.Duration) time.Duration {
	if step <= 0 || d%step == 0 {
		return d
	}
	return (d/step + 1) * step
}
