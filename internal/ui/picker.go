package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/planner/internal/task"
)

type pickPurpose int

const (
	pickParent pickPurpose = iota
	pickReassign
	pickBudget
	pickEffort
)

// taskItem implements list.DefaultItem for the task picker.
type taskItem struct {
	t task.Task
}

func (i taskItem) Title() string {
	name := i.t.Name
	if name == "" {
		name = "(unnamed)"
	}
	if i.t.IsMain() {
		return fmt.Sprintf("#%d %s", i.t.ID, name)
	}
	return fmt.Sprintf("  └ #%d %s", i.t.ID, name)
}

func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.t.Name }

type pickedMsg struct {
	purpose pickPurpose
	task    task.Task
}

type pickCancelMsg struct{}

type pickerModel struct {
	purpose pickPurpose
	title   string
	prompt  string
	list    list.Model
	styles  Styles
}

func newPicker(s Styles, purpose pickPurpose, title, prompt string, tasks []task.Task, width int) pickerModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(s.WizardActive.GetForeground()).
		Foreground(s.WizardActive.GetForeground()).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = lipgloss.NewStyle().Padding(0, 0, 0, 2)
	delegate.Styles.DimmedTitle = lipgloss.NewStyle().
		Foreground(s.WizardDim.GetForeground()).
		Padding(0, 0, 0, 2)

	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{t: t}
	}

	l := list.New(items, delegate, max(width-8, 20), 12)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	l.FilterInput.Prompt = "Filter: "
	l.FilterInput.PromptStyle = s.WizardActive

	return pickerModel{
		purpose: purpose,
		title:   title,
		prompt:  prompt,
		list:    l,
		styles:  s,
	}
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	filtering := m.list.SettingFilter() || m.list.IsFiltered()
	if keyMsg.String() == "esc" && !filtering {
		return m, func() tea.Msg { return pickCancelMsg{} }
	}

	wasSetting := m.list.SettingFilter()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	// enter while typing a filter only applies the filter
	if keyMsg.String() == "enter" && !wasSetting && !m.list.SettingFilter() {
		item, ok := m.list.SelectedItem().(taskItem)
		if !ok {
			return m, cmd
		}
		picked := pickedMsg{purpose: m.purpose, task: item.t}
		return m, func() tea.Msg { return picked }
	}
	return m, cmd
}

func (m pickerModel) ViewContent() string {
	var b strings.Builder
	b.WriteString(m.styles.WizardTitle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.WizardActive.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  /: filter │ enter: select │ esc: back"))
	return b.String()
}
