package ledger

import (
	"testing"
	"time"

	"github.com/bryan-cox/repohours/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(t *testing.T, repo, date, clock, task string) model.WorkEvent {
	t.Helper()
	ev, err := Normalize(model.RawEntry{Repo: repo, Date: date, Time: clock, Task: task})
	require.NoError(t, err)
	return ev
}

func TestGroup_DuplicateInstantsCollapseButTasksDoNot(t *testing.T) {
	events := []model.WorkEvent{
		event(t, "core", "2025-02-14", "08:00", "a"),
		event(t, "core", "2025-02-14", "08:00", "b"),
		event(t, "core", "2025-02-14", "08:30", "a"),
	}

	groups := Group(events)

	require.Len(t, groups, 1)
	g := groups[model.GroupKey{Date: "2025-02-14", Repo: "core"}]
	require.NotNil(t, g)
	assert.Equal(t, []string{"a", "b", "a"}, g.Tasks)

	ts := g.Timestamps()
	require.Len(t, ts, 2)
	assert.Equal(t, 8, ts[0].Hour())
	assert.Equal(t, 30, ts[1].Minute())
}

func TestGroup_PartitionsByDateAndRepo(t *testing.T) {
	events := []model.WorkEvent{
		event(t, "web", "2025-02-15", "10:00", "w1"),
		event(t, "core", "2025-02-14", "09:00", "c1"),
		event(t, "core", "2025-02-15", "09:00", "c2"),
		event(t, "web", "2025-02-15", "11:00", "w2"),
	}

	groups := Group(events)

	assert.Len(t, groups, 3)
	web := groups[model.GroupKey{Date: "2025-02-15", Repo: "web"}]
	require.NotNil(t, web)
	assert.Equal(t, []string{"w1", "w2"}, web.Tasks)
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), web.Date)
}

func TestGroup_EmptyInput(t *testing.T) {
	assert.Empty(t, Group(nil))
}

func TestGroup_NeverDropsEvents(t *testing.T) {
	events := []model.WorkEvent{
		event(t, "core", "2025-02-14", "08:00", "a"),
		event(t, "core", "2025-02-14", "08:00", "a"),
		event(t, "web", "2025-02-14", "08:00", "a"),
	}

	total := 0
	for _, g := range Group(events) {
		total += len(g.Tasks)
	}
	assert.Equal(t, len(events), total)
}
