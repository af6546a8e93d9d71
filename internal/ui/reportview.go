package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/session"
)

type reportCloseMsg struct{}

type exportDoneMsg struct {
	result session.ExportResult
	err    error
}

var (
	mdRendererMu sync.Mutex
	// keyed by wrap width; WithAutoStyle queries the terminal, so a fixed
	// style is used instead
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 20)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	r := mdRenderers[width]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[width] = r
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

type reportModel struct {
	preview   viewport.Model
	exporting bool
	result    *session.ExportResult
	err       string
	styles    Styles
}

func newReport(s Styles, sess *session.Session, width, height int) reportModel {
	w := max(width-8, 40)
	h := max(height-12, 10)
	vp := viewport.New(w, h)
	doc := sess.BuildReport(nil)
	vp.SetContent(renderMarkdown(report.Markdown(doc, sess.ChartPath()), w))
	return reportModel{
		preview: vp,
		styles:  s,
	}
}

// exportRequestMsg asks the app to start an export. The app refuses it
// while another export is still running.
type exportRequestMsg struct{}

// errExportRunning is shown when an export is requested while one is in flight.
const errExportRunning = "a report export is already running"

func exportCmd(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		res, err := sess.ExportReport(ctx)
		return exportDoneMsg{result: res, err: err}
	}
}

func (m reportModel) Update(msg tea.Msg) (reportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		res := msg.result
		m.result = &res
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return reportCloseMsg{} }
		case "g", "enter":
			if m.exporting {
				m.err = errExportRunning
				return m, nil
			}
			return m, func() tea.Msg { return exportRequestMsg{} }
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m reportModel) ViewContent() string {
	var b strings.Builder
	b.WriteString(m.styles.WizardTitle.Render("Generate Project Report"))
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n\n")

	switch {
	case m.exporting:
		b.WriteString(m.styles.WizardDim.Render("  Generating report..."))
		b.WriteString("\n\n")
	case m.result != nil && m.result.Skipped:
		b.WriteString(m.styles.Notification.Render("  " + m.result.Notice))
		b.WriteString("\n\n")
	case m.result != nil:
		b.WriteString(m.styles.Success.Render("  " + m.result.Notice))
		b.WriteString("\n")
		b.WriteString(m.styles.WizardDim.Render("  Report: " + m.result.ReportPath))
		b.WriteString("\n")
		b.WriteString(m.styles.WizardDim.Render("  Chart:  " + m.result.ChartPath))
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(m.styles.Error.Render("  Error: " + m.err))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Help.Render("  g/enter: generate PDF │ ↑/↓: scroll │ esc: back"))
	return b.String()
}
