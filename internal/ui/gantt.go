package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/timeline"
)

const (
	ganttLabelWidth = 22
	day             = 24 * time.Hour
)

type ganttCloseMsg struct{}

type ganttModel struct {
	rows   []timeline.Row
	cursor int
	width  int
	styles Styles
	// percentage of the content width given to bars
	barPct int
}

func newGantt(s Styles, rows []timeline.Row, width, barPct int) ganttModel {
	if barPct <= 0 || barPct > 100 {
		barPct = 60
	}
	return ganttModel{
		rows:   timeline.SortForDisplay(rows),
		width:  width,
		styles: s,
		barPct: barPct,
	}
}

func (m ganttModel) Update(msg tea.Msg) (ganttModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return ganttCloseMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m ganttModel) barWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 80
	}
	return max(w*m.barPct/100, 10)
}

// barExtent maps a row onto columns of a bar area width cells wide that
// covers the inclusive day range [start, end].
func barExtent(r timeline.Row, start, end time.Time, width int) (offset, length int) {
	total := int(end.Sub(start)/day) + 1
	from := int(r.Start.Sub(start) / day)
	to := int(r.End.Sub(start)/day) + 1
	offset = from * width / total
	length = to*width/total - offset
	if length < 1 {
		length = 1
	}
	if offset+length > width {
		offset = width - length
	}
	return offset, length
}

func (m ganttModel) ViewContent() string {
	var b strings.Builder
	b.WriteString(m.styles.WizardTitle.Render("Gantt Chart"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.WizardDim.Render("  No tasks to chart yet."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("  esc: back"))
		return b.String()
	}

	start, end := timeline.Bounds(m.rows)
	width := m.barWidth()

	axis := task.FormatDate(start)
	endLabel := task.FormatDate(end)
	if gap := width - len(axis) - len(endLabel); gap > 0 {
		axis += strings.Repeat(" ", gap) + endLabel
	}
	b.WriteString(strings.Repeat(" ", ganttLabelWidth+3))
	b.WriteString(m.styles.WizardDim.Render(axis))
	b.WriteString("\n")

	for i, r := range m.rows {
		offset, length := barExtent(r, start, end, width)
		bar := strings.Repeat(" ", offset) + m.styles.priority(r.Category).Render(strings.Repeat("█", length))
		label := fmt.Sprintf("%-*s", ganttLabelWidth, truncate(r.Label, ganttLabelWidth))
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			label = m.styles.WizardActive.Render(label)
		}
		b.WriteString(cursor + label + " │" + bar)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var legend []string
	for _, p := range task.Priorities {
		legend = append(legend, m.styles.priority(p).Render("█ "+string(p)))
	}
	b.WriteString("  " + strings.Join(legend, "  "))
	b.WriteString("\n\n")

	sel := m.rows[m.cursor]
	b.WriteString(m.styles.Header.Render("  " + sel.Label))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s → %s\n", task.FormatDate(sel.Start), task.FormatDate(sel.End))
	fmt.Fprintf(&b, "  Status: %s │ Due: %s │ Assigned to: %s (%s)\n",
		m.styles.status(sel.Tooltip.Status).Render(string(sel.Tooltip.Status)),
		task.FormatDate(sel.Tooltip.DueDate),
		sel.PrimaryActor,
		sel.Tooltip.AssigneeRole,
	)
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  ↑/↓: select bar │ esc: back"))
	return b.String()
}
