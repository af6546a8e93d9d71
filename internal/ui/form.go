package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldArea
	fieldChoice
)

// field is one labelled input of a form.
type field struct {
	key   string
	label string
	kind  fieldKind

	input   textinput.Model
	area    textarea.Model
	choices []string
	choice  int
}

func textField(key, label, value, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	return field{key: key, label: label, kind: fieldText, input: ti}
}

func areaField(key, label, value string, width int) field {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(max(width-8, 20))
	ta.SetHeight(4)
	ta.SetValue(value)
	return field{key: key, label: label, kind: fieldArea, area: ta}
}

func choiceField(key, label string, choices []string, selected string) field {
	f := field{key: key, label: label, kind: fieldChoice, choices: choices}
	for i, c := range choices {
		if c == selected {
			f.choice = i
		}
	}
	return f
}

func (f field) value() string {
	switch f.kind {
	case fieldArea:
		return f.area.Value()
	case fieldChoice:
		if f.choice < len(f.choices) {
			return f.choices[f.choice]
		}
		return ""
	default:
		return f.input.Value()
	}
}

func (f *field) focus() tea.Cmd {
	switch f.kind {
	case fieldText:
		return f.input.Focus()
	case fieldArea:
		return f.area.Focus()
	}
	return nil
}

func (f *field) blur() {
	switch f.kind {
	case fieldText:
		f.input.Blur()
	case fieldArea:
		f.area.Blur()
	}
}

// submitFunc applies the form values and returns the notice to show
// on success.
type submitFunc func(values map[string]string) (string, error)

type formDoneMsg struct{ notice string }
type formCancelMsg struct{}

type formModel struct {
	title   string
	context string
	fields  []field
	cursor  int
	submit  submitFunc
	err     string
	styles  Styles
}

func newForm(s Styles, title string, fields []field, submit submitFunc) formModel {
	return formModel{
		title:  title,
		fields: fields,
		submit: submit,
		styles: s,
	}
}

func (m *formModel) focusFirst() tea.Cmd {
	m.cursor = 0
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].focus()
}

func (m formModel) values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.key] = f.value()
	}
	return out
}

func (m *formModel) move(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.fields[m.cursor].blur()
	m.cursor = (m.cursor + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.cursor].focus()
}

func (m formModel) doSubmit() (formModel, tea.Cmd) {
	notice, err := m.submit(m.values())
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	return m, func() tea.Msg { return formDoneMsg{notice: notice} }
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateField(msg)
	}
	m.err = ""

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return formCancelMsg{} }
	case "ctrl+s":
		return m.doSubmit()
	case "tab":
		cmd := m.move(1)
		return m, cmd
	case "shift+tab":
		cmd := m.move(-1)
		return m, cmd
	}

	if len(m.fields) == 0 {
		if keyMsg.String() == "enter" {
			return m.doSubmit()
		}
		return m, nil
	}

	f := &m.fields[m.cursor]
	switch f.kind {
	case fieldChoice:
		switch keyMsg.String() {
		case "left", "h":
			if n := len(f.choices); n > 0 {
				f.choice = (f.choice - 1 + n) % n
			}
			return m, nil
		case "right", "l", " ":
			if n := len(f.choices); n > 0 {
				f.choice = (f.choice + 1) % n
			}
			return m, nil
		case "up":
			cmd := m.move(-1)
			return m, cmd
		case "down":
			cmd := m.move(1)
			return m, cmd
		}
	case fieldText:
		switch keyMsg.String() {
		case "up":
			cmd := m.move(-1)
			return m, cmd
		case "down":
			cmd := m.move(1)
			return m, cmd
		}
	}

	if keyMsg.String() == "enter" && f.kind != fieldArea {
		if m.cursor == len(m.fields)-1 {
			return m.doSubmit()
		}
		cmd := m.move(1)
		return m, cmd
	}
	return m.updateField(msg)
}

func (m formModel) updateField(msg tea.Msg) (formModel, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	f := &m.fields[m.cursor]
	switch f.kind {
	case fieldText:
		f.input, cmd = f.input.Update(msg)
	case fieldArea:
		f.area, cmd = f.area.Update(msg)
	}
	return m, cmd
}

func (m formModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.WizardTitle.Render(m.title))
	b.WriteString("\n\n")
	if m.context != "" {
		b.WriteString(m.styles.WizardDim.Render(m.context))
		b.WriteString("\n\n")
	}

	for i, f := range m.fields {
		label := "  " + f.label
		if i == m.cursor {
			label = m.styles.WizardActive.Render("> " + f.label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		switch f.kind {
		case fieldChoice:
			var opts []string
			for j, c := range f.choices {
				if j == f.choice {
					opts = append(opts, m.styles.WizardActive.Render("["+c+"]"))
				} else {
					opts = append(opts, m.styles.WizardDim.Render(" "+c+" "))
				}
			}
			b.WriteString("    " + strings.Join(opts, " "))
		case fieldArea:
			b.WriteString(indent(f.area.View(), "    "))
		default:
			b.WriteString("    " + f.input.View())
		}
		b.WriteString("\n\n")
	}

	help := "  tab: next field │ ←/→: change choice │ enter: next/submit │ ctrl+s: submit │ esc: back"
	if len(m.fields) == 0 {
		help = "  enter: confirm │ esc: back"
	}
	b.WriteString(m.styles.Help.Render(help))

	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("  Error: %s", m.err)))
	}
	return b.String()
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
