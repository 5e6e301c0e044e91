package ledger

import (
	"github.com/bryan-cox/repohours/internal/model"
)

// Group partitions events by calendar date and repository. Every event adds
// its task label to its group; its instant is added only if the group has not
// already seen exactly that instant.
func Group(events []model.WorkEvent) map[model.GroupKey]*model.DayRepoGroup {
	groups := make(map[model.GroupKey]*model.DayRepoGroup)
	for _, ev := range events {
		key := model.GroupKey{Date: ev.Date.Format(model.DateLayout), Repo: ev.Repo}
		g, exists := groups[key]
		if !exists {
			g = model.NewDayRepoGroup(ev.Date, ev.Repo)
			groups[key] = g
		}
		g.AddInstant(ev.At)
		g.Tasks = append(g.Tasks, ev.Task)
	}
	return groups
}
