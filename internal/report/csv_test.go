package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/bryan-cox/repohours/internal/ledger"
	"github.com/bryan-cox/repohours/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	rows := []model.ReportRow{
		{Date: "Feb 14", Repo: "core", Tasks: "• Fix bug.\n• Say \"hi\".", Hours: 1},
		{Date: "Feb 13", Repo: "web", Tasks: "• Deploy.", Hours: 0.25},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, rows))

	want := "Date,Repo,Tasks,Hours\n" +
		"\"Feb 14\",\"core\",\"• Fix bug.\n• Say \"\"hi\"\".\",1\n" +
		"\"Feb 13\",\"web\",\"• Deploy.\",0.25\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, nil))
	assert.Equal(t, CSVHeader+"\n", buf.String())
}

func TestEncodeCSV_RoundTrip(t *testing.T) {
	result := ledger.NormalizeAll([]model.RawEntry{
		{Repo: "core", Date: "2025-02-14", Time: "09:00", Task: "fix_bug"},
		{Repo: "core", Date: "2025-02-14", Time: "10:10", Task: "write \"tests\""},
		{Repo: "core", Date: "2025-02-14", Time: "10:20", Task: "fix_bug"},
	})
	rows := Assemble(ledger.Group(result.Events), ledger.DefaultPolicy())
	require.Len(t, rows, 1)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Date", "Repo", "Tasks", "Hours"}, records[0])

	got := records[1]
	assert.Equal(t, "Feb 14", got[0])
	assert.Equal(t, "core", got[1])
	assert.Equal(t, SplitTasks(rows[0].Tasks), SplitTasks(got[2]))

	hours, err := strconv.ParseFloat(got[3], 64)
	require.NoError(t, err)
	assert.Equal(t, rows[0].Hours, hours)
	assert.Equal(t, 1.5, hours)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1", FormatHours(1))
	assert.Equal(t, "0.5", FormatHours(0.5))
	assert.Equal(t, "8.25", FormatHours(8.25))
	assert.Equal(t, "0.33", FormatHours(0.33))
}
