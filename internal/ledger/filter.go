package ledger

import (
	"fmt"
	"time"

	"github.com/bryan-cox/repohours/internal/model"
)

// FilterRange keeps the events dated within [startStr, endStr], inclusive.
// If only one bound is given the range is that single day; if neither is
// given every event is kept.
func FilterRange(events []model.WorkEvent, startStr, endStr string) ([]model.WorkEvent, error) {
	if startStr != "" && endStr == "" {
		endStr = startStr
	}
	if endStr != "" && startStr == "" {
		startStr = endStr
	}
	if startStr == "" && endStr == "" {
		return events, nil
	}

	startDate, err := time.Parse(model.DateLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start date format, use YYYY-MM-DD: %w", err)
	}
	endDate, err := time.Parse(model.DateLayout, endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid end date format, use YYYY-MM-DD: %w", err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	var inRange []model.WorkEvent
	for _, ev := range events {
		if ev.Date.Before(startDate) || ev.Date.After(endDate) {
			continue
		}
		inRange = append(inRange, ev)
	}
	return inRange, nil
}
