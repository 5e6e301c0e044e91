package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bryan-cox/repohours/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "repo,date,time,task\n" +
		"core,2025-02-14,09:00,fix_bug\n" +
		"\n" +
		"web,2025-02-14,10:30,\"deploy, then verify\"\n" +
		"api,2025-02-15\n"

	entries, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, model.RawEntry{Repo: "core", Date: "2025-02-14", Time: "09:00", Task: "fix_bug", Line: 2}, entries[0])
	assert.Equal(t, "deploy, then verify", entries[1].Task)
	assert.Equal(t, 4, entries[1].Line)
	assert.Equal(t, "", entries[2].Time, "short records are kept for normalization to reject")
}

func TestReadCSV_ColumnOrderAndExtras(t *testing.T) {
	input := "\ufeffTask,Time,Author,Date,Repo\nship_it,08:15,flavio,2025-02-14,core\n"

	entries, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "core", entries[0].Repo)
	assert.Equal(t, "2025-02-14", entries[0].Date)
	assert.Equal(t, "08:15", entries[0].Time)
	assert.Equal(t, "ship_it", entries[0].Task)
}

func TestReadCSV_Unreadable(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"missing column", "repo,date,task\ncore,2025-02-14,x\n"},
		{"bad quoting", "repo,date,time,task\ncore,2025-02-14,09:00,\"unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrUnreadable)
		})
	}
}

func TestReadYAML(t *testing.T) {
	input := `
- repo: core
  date: 2025-02-14
  time: "09:00"
  task: fix_bug
- repo: web
  date: "2025-02-15"
  time: "10:00:30"
  task: deploy
- just a string
`
	entries, err := ReadYAML(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "core", entries[0].Repo)
	assert.Equal(t, "2025-02-14", entries[0].Date)
	assert.Equal(t, "09:00", entries[0].Time)
	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, "10:00:30", entries[1].Time)
	assert.Equal(t, model.RawEntry{Line: 10}, entries[2])
}

func TestReadYAML_EmptyAndInvalid(t *testing.T) {
	entries, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = ReadYAML(strings.NewReader("repo: core\n"))
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = ReadYAML(strings.NewReader("- [unclosed\n"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "entries.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("repo,date,time,task\ncore,2025-02-14,09:00,a\n"), 0o644))
	entries, err := Load(csvPath)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	yamlPath := filepath.Join(dir, "entries.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- {repo: core, date: \"2025-02-14\", time: \"09:00\", task: a}\n"), 0o644))
	entries, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, ErrUnreadable)
}
