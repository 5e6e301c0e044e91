package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bryan-cox/repohours/internal/model"
)

// CSVHeader is the first line of every generated report.
const CSVHeader = "Date,Repo,Tasks,Hours"

// EncodeCSV writes rows as CSV. Every string field is quoted, even when
// encoding/csv would leave it bare, and Hours is always left unquoted.
func EncodeCSV(w io.Writer, rows []model.ReportRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader + "\n"); err != nil {
		return err
	}
	for _, row := range rows {
		line := strings.Join([]string{
			quote(row.Date),
			quote(row.Repo),
			quote(row.Tasks),
			FormatHours(row.Hours),
		}, ",")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatHours renders hours with the fewest digits needed, e.g. "1", "0.5", "1.25".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
