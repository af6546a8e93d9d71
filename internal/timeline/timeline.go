// Package timeline derives Gantt chart rows from the task table.
package timeline

import (
	"sort"
	"time"

	"github.com/simonbystrom/planner/internal/task"
)

// Tooltip holds the fields shown when hovering a bar.
type Tooltip struct {
	Status       task.Status
	DueDate      time.Time
	AssigneeRole string
}

// Row is one bar of the chart.
type Row struct {
	TaskID       int
	Label        string
	Start        time.Time
	End          time.Time
	Category     task.Priority
	Tooltip      Tooltip
	PrimaryActor string
}

// Span is the bar length. Same-day bars have zero span.
func (r Row) Span() time.Duration {
	return r.End.Sub(r.Start)
}

// Project returns one row per task, in the order given. Main tasks and
// subtasks are both included and date ranges are not cross-checked.
func Project(tasks []task.Task) []Row {
	rows := make([]Row, len(tasks))
	for i, t := range tasks {
		rows[i] = Row{
			TaskID:   t.ID,
			Label:    t.Name,
			Start:    t.StartDate,
			End:      t.EndDate,
			Category: t.Priority,
			Tooltip: Tooltip{
				Status:       t.Status,
				DueDate:      t.DueDate,
				AssigneeRole: t.AssigneeRole,
			},
			PrimaryActor: t.AssignedTo,
		}
	}
	return rows
}

// SortForDisplay groups rows sharing a label and orders the groups by their
// total span, shortest first. Ties keep first-appearance order. rows is not
// modified.
func SortForDisplay(rows []Row) []Row {
	type group struct {
		first int
		total time.Duration
		rows  []Row
	}
	index := make(map[string]*group)
	var groups []*group
	for i, r := range rows {
		g, ok := index[r.Label]
		if !ok {
			g = &group{first: i}
			index[r.Label] = g
			groups = append(groups, g)
		}
		g.total += r.Span()
		g.rows = append(g.rows, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].total < groups[j].total
	})

	out := make([]Row, 0, len(rows))
	for _, g := range groups {
		out = append(out, g.rows...)
	}
	return out
}

// Bounds returns the earliest start and latest end across rows.
func Bounds(rows []Row) (start, end time.Time) {
	for i, r := range rows {
		if i == 0 || r.Start.Before(start) {
			start = r.Start
		}
		if i == 0 || r.End.After(end) {
			end = r.End
		}
	}
	return start, end
}
