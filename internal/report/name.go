package report

import (
	"fmt"
	"strings"
	"time"
)

// ArtifactName returns the file name of a report generated at now, for
// example "flavio-hours-2025-jan-feb_calc.csv". The first month is the one
// before now's month.
func ArtifactName(author string, now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := strings.ToLower(firstOfMonth.AddDate(0, -1, 0).Format("Jan"))
	currentMonth := strings.ToLower(now.Format("Jan"))

	name := fmt.Sprintf("hours-%d-%s-%s_calc.csv", now.Year(), lastMonth, currentMonth)
	if author = strings.TrimSpace(author); author != "" {
		name = author + "-" + name
	}
	return name
}
