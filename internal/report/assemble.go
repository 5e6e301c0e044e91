package report

import (
	"math"
	"sort"
	"time"

	"github.com/bryan-cox/repohours/internal/ledger"
	"github.com/bryan-cox/repohours/internal/model"
)

// DisplayDateLayout renders dates as e.g. "Feb 14".
const DisplayDateLayout = "Jan 02"

// Assemble builds one row per group and orders them most recent date first.
// Rows on the same date are ordered by repository name.
func Assemble(groups map[model.GroupKey]*model.DayRepoGroup, policy ledger.Policy) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, model.ReportRow{
			Date:  g.Date.Format(DisplayDateLayout),
			Repo:  g.Repo,
			Tasks: FormatTasks(g.Tasks),
			Hours: RoundHours(policy.Estimate(g)),
			Day:   g.Date,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Day.Equal(rows[j].Day) {
			return rows[i].Day.After(rows[j].Day)
		}
		return rows[i].Repo < rows[j].Repo
	})
	return rows
}

// RoundHours converts d to hours rounded half away from zero at the
// hundredths digit.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Minutes()/60*100) / 100
}

// TotalHours sums the hours of all rows, rounded the same way as each row.
func TotalHours(rows []model.ReportRow) float64 {
	var total float64
	for _, row := range rows {
		total += row.Hours
	}
	return math.Round(total*100) / 100
}
