package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/session"
	"github.com/simonbystrom/planner/internal/task"
)

type menuItem int

const (
	menuScope menuItem = iota
	menuMainTask
	menuSubtask
	menuResources
	menuBudget
	menuEffort
	menuGantt
	menuReport
	// menuManager has no numbered entry; it is opened with "m".
	menuManager
)

var menuLabels = []string{
	"Scope Management",
	"Create Main Task",
	"Create Subtask",
	"Resource Planning",
	"Budgeting",
	"Time Tracking",
	"Gantt Chart",
	"Generate Project Report",
}

const maxNotifications = 10

type notification struct {
	text  string
	time  time.Time
	style lipgloss.Style
}

// openMsg asks the app to open the view behind a menu entry.
type openMsg struct{ item menuItem }

type dashboardModel struct {
	sess          *session.Session
	cursor        int
	notifications []notification
	width         int
	height        int
	styles        Styles
}

func newDashboard(s Styles, sess *session.Session) dashboardModel {
	return dashboardModel{
		sess:   sess,
		styles: s,
	}
}

func (m *dashboardModel) notify(text string, style lipgloss.Style) {
	m.notifications = append(m.notifications, notification{
		text:  text,
		time:  time.Now(),
		style: style,
	})
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}
	case "enter":
		item := menuItem(m.cursor)
		return m, func() tea.Msg { return openMsg{item: item} }
	case "m":
		return m, func() tea.Msg { return openMsg{item: menuManager} }
	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.cursor = int(key[0] - '1')
		item := menuItem(m.cursor)
		return m, func() tea.Msg { return openMsg{item: item} }
	}
	return m, nil
}

func (m dashboardModel) title() string {
	manager := m.sess.ProjectManager()
	if manager == "" {
		manager = "-"
	}
	return fmt.Sprintf("%s │ Project Manager: %s", report.Title, manager)
}

func (m dashboardModel) menuView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("  ── Menu ──"))
	b.WriteString("\n")
	for i, label := range menuLabels {
		line := fmt.Sprintf("  %d. %s", i+1, label)
		if i == m.cursor {
			line = m.styles.Selected.Render(fmt.Sprintf("> %d. %s", i+1, label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) taskTable() string {
	var b strings.Builder
	tasks := m.sess.Tasks().Tree()
	if len(tasks) == 0 {
		b.WriteString(m.styles.WizardDim.Render("  No tasks yet. Choose Create Main Task to add one."))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("  %-4s %-22s %-10s %-8s %-12s %-10s %-10s %-6s %-8s",
		"ID", "Name", "Assigned", "Priority", "Status", "Start", "End", "Effort", "Budget")
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")

	for _, t := range tasks {
		name := t.Name
		if name == "" {
			name = "-"
		}
		if !t.IsMain() {
			name = "└ " + name
		}
		budget := "-"
		if t.IsMain() {
			budget = report.FormatAmount(t.Budget)
		}
		// fmt pads by bytes, which breaks on ANSI escapes
		priority := pad(m.styles.priority(t.Priority).Render(string(t.Priority)), 8)
		status := pad(m.styles.status(t.Status).Render(string(t.Status)), 12)

		row := fmt.Sprintf("  %-4d %-22s %-10s %s %s %-10s %-10s %-6s %-8s",
			t.ID,
			truncate(name, 22),
			truncate(t.AssignedTo, 10),
			priority,
			status,
			task.FormatDate(t.StartDate),
			task.FormatDate(t.EndDate),
			report.FormatAmount(t.EffortHours),
			budget,
		)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// compactTasks lists tasks in one short line each for the side panel.
func (m dashboardModel) compactTasks() string {
	var b strings.Builder
	for _, t := range m.sess.Tasks().Tree() {
		prefix := "  "
		if !t.IsMain() {
			prefix = "    └ "
		}
		fmt.Fprintf(&b, "%s#%d %s (%s)\n", prefix, t.ID, t.Name, t.AssignedTo)
	}
	return b.String()
}

func (m dashboardModel) notificationsView() string {
	if len(m.notifications) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render("  ── Notifications ──"))
	b.WriteString("\n")
	for i := len(m.notifications) - 1; i >= 0; i-- {
		n := m.notifications[i]
		b.WriteString(n.style.Render(fmt.Sprintf("  %s %s", n.time.Format("15:04"), n.text)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.Logo.Render(renderLogo(m.contentWidth())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Title.Render(m.title()))
	b.WriteString("\n\n")

	b.WriteString(m.menuView())
	b.WriteString("\n")
	b.WriteString(m.taskTable())
	b.WriteString(m.notificationsView())

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  ↑/↓: move │ enter or 1-8: open │ m: project manager │ q: quit"))
	return b.String()
}

// SideContent is the narrow rendering shown next to an open view.
func (m dashboardModel) SideContent() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(logoWord))
	b.WriteString("\n\n")
	b.WriteString(m.menuView())
	if tasks := m.compactTasks(); tasks != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("  ── Tasks ──"))
		b.WriteString("\n")
		b.WriteString(tasks)
	}
	b.WriteString(m.notificationsView())
	return b.String()
}

func (m dashboardModel) contentWidth() int {
	w := m.width - 10
	if w < 40 {
		w = 80
	}
	return w
}

func (m dashboardModel) View() string {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}
	return m.styles.Border.Width(maxWidth).Render(m.ViewContent())
}

func pad(styled string, width int) string {
	if w := lipgloss.Width(styled); w < width {
		return styled + strings.Repeat(" ", width-w)
	}
	return styled
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
