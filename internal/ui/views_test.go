package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/planner/internal/config"
	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/timeline"
)

func testStyles() Styles {
	return NewStyles(config.Default().Colors)
}

func TestRenderLogo(t *testing.T) {
	tests := []struct {
		width int
		lines int
	}{
		{200, 6},
		{61, 6},
		{50, 5},
		{20, 1},
	}
	for _, tt := range tests {
		got := renderLogo(tt.width)
		if n := strings.Count(got, "\n") + 1; n != tt.lines {
			t.Errorf("renderLogo(%d) has %d lines, want %d", tt.width, n, tt.lines)
		}
	}
	if got := renderLogo(10); got != " PLANNER" {
		t.Errorf("fallback = %q", got)
	}
}

func TestFontWidth(t *testing.T) {
	if got := fontLarge.width(logoWord); got != 60 {
		t.Errorf("large width = %d, want 60", got)
	}
	if got := fontMedium.width(logoWord); got != 41 {
		t.Errorf("medium width = %d, want 41", got)
	}
}

func TestForm_ChoiceCycles(t *testing.T) {
	f := newForm(testStyles(), "Pick", []field{
		choiceField("priority", "Priority", priorityChoices(), "Low"),
	}, nil)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := f.values()["priority"]; got != "Medium" {
		t.Errorf("after right = %q, want Medium", got)
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := f.values()["priority"]; got != "High" {
		t.Errorf("after wrap = %q, want High", got)
	}
}

func TestForm_TabMovesFocus(t *testing.T) {
	f := newForm(testStyles(), "Two", []field{
		textField("a", "A", "", ""),
		textField("b", "B", "", ""),
	}, nil)
	f.focusFirst()

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.cursor != 1 {
		t.Errorf("cursor = %d, want 1", f.cursor)
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.cursor != 0 {
		t.Errorf("cursor wraps to %d, want 0", f.cursor)
	}
}

func TestForm_SubmitErrorStaysOpen(t *testing.T) {
	f := newForm(testStyles(), "Fail", []field{textField("a", "A", "x", "")},
		func(map[string]string) (string, error) { return "", errors.New("nope") })

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no command on failed submit")
	}
	if f.err != "nope" || !strings.Contains(f.ViewContent(), "Error: nope") {
		t.Errorf("err = %q", f.err)
	}
}

func TestMainTaskForm_RejectsBadDate(t *testing.T) {
	sess := newTestSession(t)
	f := mainTaskForm(testStyles(), sess, fixedNow, 80)
	f.fields[2].input.SetValue("2024-13-01")

	f, _ = f.doSubmit()
	if f.err == "" {
		t.Fatal("expected date error")
	}
	if sess.Tasks().Len() != 0 {
		t.Error("task created despite bad date")
	}
}

func TestMainTaskForm_RejectsEndBeforeStart(t *testing.T) {
	sess := newTestSession(t)
	f := mainTaskForm(testStyles(), sess, fixedNow, 80)
	f.fields[3].input.SetValue("2023-12-31")

	f, _ = f.doSubmit()
	if f.err == "" {
		t.Fatal("expected ordering error")
	}
}

func TestReassignForm_RefreshesRole(t *testing.T) {
	sess := newTestSession(t)
	tk := seedMain(t, sess, "Website")

	f := reassignForm(testStyles(), sess, tk)
	f.fields[0].choice = 2 // Huzaifa
	f, cmd := f.doSubmit()
	if cmd == nil {
		t.Fatalf("submit failed: %s", f.err)
	}
	done := cmd().(formDoneMsg)
	if done.notice != "Assigned Resource: Huzaifa (Role: Designer)" {
		t.Errorf("notice = %q", done.notice)
	}
	got, _ := sess.Tasks().Get(tk.ID)
	if got.AssigneeRole != "Designer" {
		t.Errorf("role = %q", got.AssigneeRole)
	}
}

func TestEffortForm_RejectsText(t *testing.T) {
	sess := newTestSession(t)
	tk := seedMain(t, sess, "Website")

	f := effortForm(testStyles(), sess, tk)
	f.fields[0].input.SetValue("lots")
	f, _ = f.doSubmit()
	if !strings.Contains(f.err, "not a number") {
		t.Errorf("err = %q", f.err)
	}
}

func TestBarExtent(t *testing.T) {
	start := task.Date(2024, 1, 1)
	end := task.Date(2024, 1, 10)
	tests := []struct {
		name         string
		from, to     int
		offset, size int
	}{
		{"full", 1, 10, 0, 10},
		{"first day", 1, 1, 0, 1},
		{"middle", 4, 6, 3, 3},
		{"last day", 10, 10, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := timeline.Row{Start: task.Date(2024, 1, tt.from), End: task.Date(2024, 1, tt.to)}
			off, n := barExtent(r, start, end, 10)
			if off != tt.offset || n != tt.size {
				t.Errorf("extent = (%d, %d), want (%d, %d)", off, n, tt.offset, tt.size)
			}
		})
	}
}

func TestGantt_DisplayOrder(t *testing.T) {
	rows := []timeline.Row{
		{Label: "Website Redesign", Start: task.Date(2024, 1, 1), End: task.Date(2024, 3, 1), Category: task.PriorityHigh},
		{Label: "Wireframes", Start: task.Date(2024, 1, 1), End: task.Date(2024, 1, 9), Category: task.PriorityMedium},
	}
	g := newGantt(testStyles(), rows, 120, 60)
	view := g.ViewContent()

	wire := strings.Index(view, "Wireframes")
	site := strings.Index(view, "Website Redesign")
	if wire < 0 || site < 0 || wire > site {
		t.Errorf("expected Wireframes before Website Redesign:\n%s", view)
	}

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyDown})
	if g.cursor != 1 {
		t.Errorf("cursor = %d, want 1", g.cursor)
	}
	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyDown})
	if g.cursor != 1 {
		t.Errorf("cursor moved past last row: %d", g.cursor)
	}
}

func TestGantt_Empty(t *testing.T) {
	g := newGantt(testStyles(), nil, 120, 60)
	if !strings.Contains(g.ViewContent(), "No tasks to chart yet.") {
		t.Error("expected empty chart message")
	}
}
