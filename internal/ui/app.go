package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/planner/internal/config"
	"github.com/simonbystrom/planner/internal/session"
)

type view int

const (
	viewDashboard view = iota
	viewForm
	viewPicker
	viewGantt
	viewReport
)

type AppModel struct {
	ctx        context.Context
	sess       *session.Session
	styles     Styles
	layout     config.Layout
	now        func() time.Time
	activeView view
	// exporting is set while an ExportReport command is in flight. It
	// outlives the report view, which is rebuilt on every open.
	exporting bool

	dashboard dashboardModel
	form      formModel
	picker    pickerModel
	gantt     ganttModel
	report    reportModel

	width  int
	height int
}

func NewApp(ctx context.Context, cfg config.Config, sess *session.Session) AppModel {
	s := NewStyles(cfg.Colors)
	return AppModel{
		ctx:        ctx,
		sess:       sess,
		styles:     s,
		layout:     cfg.Layout,
		now:        time.Now,
		activeView: viewDashboard,
		dashboard:  newDashboard(s, sess),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.width = msg.Width
		m.dashboard.height = msg.Height
		m.gantt.width = msg.Width
		return m, nil

	case openMsg:
		return m.open(msg.item)

	case pickedMsg:
		return m.openPicked(msg)

	case formDoneMsg:
		m.activeView = viewDashboard
		if msg.notice != "" {
			m.dashboard.notify(msg.notice, m.styles.Success)
		}
		return m, nil

	case exportRequestMsg:
		if m.exporting {
			m.report.err = errExportRunning
			return m, nil
		}
		m.exporting = true
		m.report.exporting = true
		m.report.err = ""
		m.report.result = nil
		return m, exportCmd(m.ctx, m.sess)

	case exportDoneMsg:
		m.exporting = false
		if msg.err == nil && !msg.result.Skipped {
			m.dashboard.notify(msg.result.Notice, m.styles.Success)
		}
		if m.activeView == viewReport {
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd
		}
		return m, nil

	case formCancelMsg, pickCancelMsg, ganttCloseMsg, reportCloseMsg:
		m.activeView = viewDashboard
		return m, nil
	}

	switch m.activeView {
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case viewPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case viewGantt:
		var cmd tea.Cmd
		m.gantt, cmd = m.gantt.Update(msg)
		return m, cmd
	case viewReport:
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Update(msg)
	return m, cmd
}

func (m AppModel) panelWidth() int {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}
	return maxWidth - maxWidth*m.menuPct()/100 - 1
}

func (m AppModel) menuPct() int {
	if p := m.layout.MenuWidth; p > 0 && p < 100 {
		return p
	}
	return 40
}

func (m AppModel) openForm(f formModel) (tea.Model, tea.Cmd) {
	m.form = f
	m.activeView = viewForm
	cmd := m.form.focusFirst()
	return m, cmd
}

// info shows an informational notice and stays on the dashboard.
func (m AppModel) info(text string) (tea.Model, tea.Cmd) {
	m.dashboard.notify(text, m.styles.Notification)
	m.activeView = viewDashboard
	return m, nil
}

func (m AppModel) open(item menuItem) (tea.Model, tea.Cmd) {
	tasks := m.sess.Tasks()
	width := m.panelWidth()

	switch item {
	case menuScope:
		return m.openForm(scopeForm(m.styles, m.sess, width))

	case menuManager:
		return m.openForm(managerForm(m.styles, m.sess))

	case menuMainTask:
		return m.openForm(mainTaskForm(m.styles, m.sess, m.now(), width))

	case menuSubtask:
		mains := tasks.ListMainTasks()
		if len(mains) == 0 {
			return m.info(noMainTasksNotice)
		}
		m.picker = newPicker(m.styles, pickParent, "Create Subtask", "Select Parent Task", mains, width)

	case menuResources:
		if len(tasks.ListMainTasks()) == 0 {
			return m.info(noParentTasksNotice)
		}
		m.picker = newPicker(m.styles, pickReassign, "Resource Planning", "Select task to assign", tasks.Tree(), width)

	case menuBudget:
		mains := tasks.ListMainTasks()
		if len(mains) == 0 {
			return m.info(noBudgetTasksNotice)
		}
		m.picker = newPicker(m.styles, pickBudget, "Budgeting", "Select Project for Budgeting", mains, width)

	case menuEffort:
		if tasks.Len() == 0 {
			return m.info(noTrackTasksNotice)
		}
		m.picker = newPicker(m.styles, pickEffort, "Time Tracking", "Select task to track", tasks.Tree(), width)

	case menuGantt:
		m.gantt = newGantt(m.styles, m.sess.Timeline(), m.width, m.layout.TimelineWidth)
		m.activeView = viewGantt
		return m, nil

	case menuReport:
		m.report = newReport(m.styles, m.sess, m.width, m.height)
		m.report.exporting = m.exporting
		m.activeView = viewReport
		return m, nil

	default:
		return m, nil
	}

	m.activeView = viewPicker
	return m, nil
}

func (m AppModel) openPicked(msg pickedMsg) (tea.Model, tea.Cmd) {
	width := m.panelWidth()
	switch msg.purpose {
	case pickParent:
		return m.openForm(subtaskForm(m.styles, m.sess, msg.task, m.now(), width))
	case pickReassign:
		return m.openForm(reassignForm(m.styles, m.sess, msg.task))
	case pickBudget:
		return m.openForm(budgetForm(m.styles, m.sess, msg.task))
	case pickEffort:
		return m.openForm(effortForm(m.styles, m.sess, msg.task))
	}
	return m, nil
}

func (m AppModel) View() string {
	switch m.activeView {
	case viewForm:
		return m.viewSideBySide(m.form.ViewContent())
	case viewPicker:
		return m.viewSideBySide(m.picker.ViewContent())
	case viewGantt:
		return m.viewFull(m.gantt.ViewContent())
	case viewReport:
		return m.viewFull(m.report.ViewContent())
	default:
		return m.dashboard.View()
	}
}

func (m AppModel) viewFull(content string) string {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}
	return m.styles.Border.Width(maxWidth).Render(content)
}

func (m AppModel) viewSideBySide(rightPanel string) string {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}

	menuWidth := maxWidth * m.menuPct() / 100
	panelWidth := maxWidth - menuWidth - 1

	left := lipgloss.NewStyle().Width(menuWidth).Render(m.dashboard.SideContent())
	right := lipgloss.NewStyle().Width(panelWidth).Render(rightPanel)

	sepHeight := max(lipgloss.Height(left), lipgloss.Height(right))
	sepLines := make([]string, sepHeight)
	for i := range sepLines {
		sepLines[i] = "│"
	}
	sep := m.styles.Separator.Render(strings.Join(sepLines, "\n"))

	joined := lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
	return m.styles.Border.Width(maxWidth).Render(joined)
}
