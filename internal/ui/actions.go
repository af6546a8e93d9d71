package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/session"
	"github.com/simonbystrom/planner/internal/task"
)

const (
	noMainTasksNotice   = "No Main Tasks available. Please create a main task first."
	noParentTasksNotice = "No Parent Tasks available. Please create a parent task first."
	noBudgetTasksNotice = "No main tasks available for budgeting. Please create a main task first."
	noTrackTasksNotice  = "No tasks to track yet."
)

func priorityChoices() []string {
	out := make([]string, len(task.Priorities))
	for i, p := range task.Priorities {
		out[i] = string(p)
	}
	return out
}

func statusChoices() []string {
	out := make([]string, len(task.Statuses))
	for i, s := range task.Statuses {
		out[i] = string(s)
	}
	return out
}

func scopeForm(s Styles, sess *session.Session, width int) formModel {
	cur := sess.Scope()
	fields := []field{
		areaField("scope", "Project Scope", cur.ScopeText, width),
		areaField("deliverables", "Project Deliverables (one per line)", strings.Join(cur.Deliverables, "\n"), width),
	}
	return newForm(s, "Scope Management", fields, func(v map[string]string) (string, error) {
		sess.SetScope(v["scope"], v["deliverables"])
		return "Project Scope and Deliverables have been set.", nil
	})
}

func managerForm(s Styles, sess *session.Session) formModel {
	fields := []field{
		textField("manager", "Project Manager Name", sess.ProjectManager(), "Faisal"),
	}
	return newForm(s, "Project Manager", fields, func(v map[string]string) (string, error) {
		name := strings.TrimSpace(v["manager"])
		if name == "" {
			return "", fmt.Errorf("%w: project manager name is required", task.ErrInvalidArgument)
		}
		sess.SetProjectManager(name)
		return fmt.Sprintf("Project Manager set to %s.", name), nil
	})
}

func taskFields(sess *session.Session, today time.Time, width int) []field {
	date := task.FormatDate(task.DateOnly(today))
	members := sess.Directory().ListMembers()
	first := ""
	if len(members) > 0 {
		first = members[0]
	}
	return []field{
		textField("name", "Name", "", "task name"),
		areaField("description", "Description", "", width),
		textField("start", "Start Date", date, task.DateLayout),
		textField("end", "End Date", date, task.DateLayout),
		choiceField("assignee", "Assign To", members, first),
		choiceField("priority", "Priority", priorityChoices(), string(task.PriorityLow)),
		choiceField("status", "Status", statusChoices(), string(task.StatusNotStarted)),
	}
}

func parseTaskInput(v map[string]string) (task.Input, error) {
	start, err := task.ParseDate(v["start"])
	if err != nil {
		return task.Input{}, fmt.Errorf("start date: %w", err)
	}
	end, err := task.ParseDate(v["end"])
	if err != nil {
		return task.Input{}, fmt.Errorf("end date: %w", err)
	}
	return task.Input{
		Name:        strings.TrimSpace(v["name"]),
		Description: v["description"],
		StartDate:   start,
		EndDate:     end,
		Assignee:    v["assignee"],
		Priority:    task.Priority(v["priority"]),
		Status:      task.Status(v["status"]),
	}, nil
}

func mainTaskForm(s Styles, sess *session.Session, today time.Time, width int) formModel {
	return newForm(s, "Create Main Task", taskFields(sess, today, width), func(v map[string]string) (string, error) {
		in, err := parseTaskInput(v)
		if err != nil {
			return "", err
		}
		t, err := sess.CreateMainTask(in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Main Task '%s' created successfully!", t.Name), nil
	})
}

func subtaskForm(s Styles, sess *session.Session, parent task.Task, today time.Time, width int) formModel {
	f := newForm(s, "Create Subtask", taskFields(sess, today, width), func(v map[string]string) (string, error) {
		in, err := parseTaskInput(v)
		if err != nil {
			return "", err
		}
		t, err := sess.CreateSubtask(parent.ID, in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Subtask '%s' created successfully under '%s'!", t.Name, parent.Name), nil
	})
	f.context = fmt.Sprintf("Parent task: #%d %s", parent.ID, parent.Name)
	return f
}

func reassignForm(s Styles, sess *session.Session, t task.Task) formModel {
	fields := []field{
		choiceField("assignee", "Assign Resource To", sess.Directory().ListMembers(), t.AssignedTo),
	}
	f := newForm(s, "Resource Planning", fields, func(v map[string]string) (string, error) {
		name := v["assignee"]
		if err := sess.ReassignResource(t.ID, name); err != nil {
			return "", err
		}
		role, _ := sess.Directory().RoleOf(name)
		return fmt.Sprintf("Assigned Resource: %s (Role: %s)", name, role), nil
	})
	f.context = fmt.Sprintf("Task #%d %s, currently %s (%s)", t.ID, t.Name, t.AssignedTo, t.AssigneeRole)
	return f
}

func parseAmount(what, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", task.ErrInvalidArgument, what, raw)
	}
	return v, nil
}

func budgetForm(s Styles, sess *session.Session, t task.Task) formModel {
	fields := []field{
		textField("amount", "Estimated Budget", report.FormatAmount(t.Budget), "0.0"),
	}
	f := newForm(s, "Budgeting", fields, func(v map[string]string) (string, error) {
		amount, err := parseAmount("budget", v["amount"])
		if err != nil {
			return "", err
		}
		if err := sess.SetBudget(t.ID, amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("Budget of %s saved for project '%s'.", report.FormatAmount(amount), t.Name), nil
	})
	f.context = fmt.Sprintf("Project: #%d %s", t.ID, t.Name)
	return f
}

func effortForm(s Styles, sess *session.Session, t task.Task) formModel {
	fields := []field{
		textField("hours", "Effort Hours", report.FormatAmount(t.EffortHours), "0.0"),
	}
	f := newForm(s, "Time Tracking", fields, func(v map[string]string) (string, error) {
		hours, err := parseAmount("effort hours", v["hours"])
		if err != nil {
			return "", err
		}
		if err := sess.SetEffortHours(t.ID, hours); err != nil {
			return "", err
		}
		return fmt.Sprintf("Effort hours for task '%s' updated to %s hours!", t.Name, report.FormatAmount(hours)), nil
	})
	f.context = fmt.Sprintf("Task #%d %s (Assigned to %s)", t.ID, t.Name, t.AssignedTo)
	return f
}
