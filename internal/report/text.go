package report

import (
	"fmt"
	"io"

	"github.com/bryan-cox/repohours/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Section header for text output.
const TextHeader = "=======Autogenerated by RepoHours======="

var dateStyle = lipgloss.NewStyle().Bold(true)

// PrintSummary prints rows as a human-readable report, one section per date.
// Rows are expected in the order produced by Assemble.
func PrintSummary(out io.Writer, title string, rows []model.ReportRow) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, TextHeader)

	if len(rows) == 0 {
		fmt.Fprintln(out, "\nNo work entries found.")
		return
	}

	var current string
	for _, row := range rows {
		if row.Date != current {
			current = row.Date
			fmt.Fprintln(out)
			fmt.Fprintln(out, dateStyle.Render(row.Date))
		}
		fmt.Fprintf(out, "    • %s (%.2fh)\n", row.Repo, row.Hours)
		for _, task := range SplitTasks(row.Tasks) {
			fmt.Fprintf(out, "        ◦ %s\n", task)
		}
	}

	fmt.Fprintf(out, "\nTotal: %.2fh\n", TotalHours(rows))
}
