package timeline

import (
	"testing"

	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/team"
)

func seededStore(t *testing.T) *task.Store {
	t.Helper()
	dir, err := team.NewDirectory(team.DefaultMembers())
	if err != nil {
		t.Fatal(err)
	}
	s := task.NewStore(dir)
	main, err := s.CreateMainTask(task.Input{
		Name:      "Website Redesign",
		StartDate: task.Date(2024, 1, 1),
		EndDate:   task.Date(2024, 3, 1),
		Assignee:  "Hamza",
		Priority:  task.PriorityHigh,
		Status:    task.StatusNotStarted,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateSubtask(main.ID, task.Input{
		Name:      "Wireframes",
		StartDate: task.Date(2024, 1, 2),
		EndDate:   task.Date(2024, 1, 10),
		Assignee:  "Huzaifa",
		Priority:  task.PriorityLow,
		Status:    task.StatusInProgress,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateMainTask(task.Input{
		Name:      "QA",
		StartDate: task.Date(2024, 2, 1),
		EndDate:   task.Date(2024, 2, 15),
		Assignee:  "Umer",
		Priority:  task.PriorityMedium,
		Status:    task.StatusBlocked,
	}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProject_RoundTrip(t *testing.T) {
	s := seededStore(t)

	var input []task.Task
	for _, m := range s.ListMainTasks() {
		input = append(input, m)
		input = append(input, s.ListSubtasks(m.ID)...)
	}

	rows := Project(input)
	if len(rows) != len(input) {
		t.Fatalf("rows = %d, want %d", len(rows), len(input))
	}
	for i, r := range rows {
		tk := input[i]
		if r.TaskID != tk.ID || r.Label != tk.Name {
			t.Errorf("row %d = %s/%d, want %s/%d", i, r.Label, r.TaskID, tk.Name, tk.ID)
		}
		if !r.Start.Equal(tk.StartDate) || !r.End.Equal(tk.EndDate) {
			t.Errorf("row %d dates = %v..%v, want %v..%v", i, r.Start, r.End, tk.StartDate, tk.EndDate)
		}
		if r.Category != tk.Priority {
			t.Errorf("row %d category = %q, want %q", i, r.Category, tk.Priority)
		}
		if r.Tooltip.Status != tk.Status {
			t.Errorf("row %d status = %q, want %q", i, r.Tooltip.Status, tk.Status)
		}
		if !r.Tooltip.DueDate.Equal(tk.DueDate) || r.Tooltip.AssigneeRole != tk.AssigneeRole {
			t.Errorf("row %d tooltip = %+v", i, r.Tooltip)
		}
		if r.PrimaryActor != tk.AssignedTo {
			t.Errorf("row %d actor = %q, want %q", i, r.PrimaryActor, tk.AssignedTo)
		}
	}
}

func TestProject_Empty(t *testing.T) {
	if rows := Project(nil); len(rows) != 0 {
		t.Errorf("Project(nil) = %v, want empty", rows)
	}
}

func TestSortForDisplay(t *testing.T) {
	rows := Project(seededStore(t).All())
	sorted := SortForDisplay(rows)

	want := []string{"Wireframes", "QA", "Website Redesign"}
	if len(sorted) != len(want) {
		t.Fatalf("sorted = %d rows, want %d", len(sorted), len(want))
	}
	for i, label := range want {
		if sorted[i].Label != label {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Label, label)
		}
	}
	if rows[0].Label != "Website Redesign" {
		t.Error("SortForDisplay modified its input")
	}
}

func TestSortForDisplay_GroupsByLabel(t *testing.T) {
	rows := []Row{
		{Label: "A", Start: task.Date(2024, 1, 1), End: task.Date(2024, 1, 4)},
		{Label: "B", Start: task.Date(2024, 1, 1), End: task.Date(2024, 1, 5)},
		{Label: "A", Start: task.Date(2024, 1, 1), End: task.Date(2024, 1, 4)},
		{Label: "C", Start: task.Date(2024, 1, 1), End: task.Date(2024, 1, 5)},
	}
	sorted := SortForDisplay(rows)

	// B and C total 4 days each, A totals 6 days.
	want := []string{"B", "C", "A", "A"}
	for i, label := range want {
		if sorted[i].Label != label {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Label, label)
		}
	}
}

func TestBounds(t *testing.T) {
	rows := Project(seededStore(t).All())
	start, end := Bounds(rows)
	if !start.Equal(task.Date(2024, 1, 1)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(task.Date(2024, 3, 1)) {
		t.Errorf("end = %v", end)
	}

	start, end = Bounds(nil)
	if !start.IsZero() || !end.IsZero() {
		t.Errorf("Bounds(nil) = %v, %v, want zero", start, end)
	}
}
