// Package report assembles the exported project report from session state.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simonbystrom/planner/internal/scope"
	"github.com/simonbystrom/planner/internal/task"
)

const Title = "Project Management Report"

type SectionKind string

const (
	SectionTitle    SectionKind = "title"
	SectionScope    SectionKind = "scope"
	SectionTasks    SectionKind = "tasks"
	SectionTimeline SectionKind = "timeline"
)

// Block is a heading with either bullet items or plain lines beneath it.
type Block struct {
	Heading string
	Text    string
	Bullets []string
}

// Section is one part of a Document. Which fields are set depends on Kind.
type Section struct {
	Kind    SectionKind
	Heading string
	Lines   []string
	Blocks  []Block
	Image   []byte
}

// Document is the structured report handed to renderers.
type Document struct {
	Title          string
	ProjectManager string
	Sections       []Section
}

// Option adjusts a Document while it is assembled.
type Option func(*Document)

// WithProjectManager records the manager shown under the title.
func WithProjectManager(name string) Option {
	return func(d *Document) { d.ProjectManager = strings.TrimSpace(name) }
}

const notSet = "(not set)"

// Assemble builds the report: title, scope and deliverables, one line per
// task, then the timeline image. It has no side effects.
func Assemble(rec scope.ScopeRecord, tasks []task.Task, timelineImage []byte, opts ...Option) Document {
	doc := Document{Title: Title}
	for _, opt := range opts {
		opt(&doc)
	}

	titleLines := []string{}
	if doc.ProjectManager != "" {
		titleLines = append(titleLines, "Project Manager: "+doc.ProjectManager)
	}
	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionTitle,
		Heading: doc.Title,
		Lines:   titleLines,
	})

	scopeText := strings.TrimSpace(rec.ScopeText)
	if scopeText == "" {
		scopeText = notSet
	}
	deliverables := make([]string, len(rec.Deliverables))
	copy(deliverables, rec.Deliverables)
	if len(deliverables) == 0 {
		deliverables = []string{notSet}
	}
	doc.Sections = append(doc.Sections, Section{
		Kind: SectionScope,
		Blocks: []Block{
			{Heading: "Project Scope", Text: scopeText},
			{Heading: "Project Deliverables", Bullets: deliverables},
		},
	})

	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = TaskLine(t)
	}
	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionTasks,
		Heading: "Task Details",
		Lines:   lines,
	})

	doc.Sections = append(doc.Sections, Section{
		Kind:    SectionTimeline,
		Heading: "Gantt Chart",
		Image:   timelineImage,
	})

	return doc
}

// TaskLine formats the per-task summary line of the report.
func TaskLine(t task.Task) string {
	return fmt.Sprintf("Task ID: %d, Name: %s, Assigned to: %s, Status: %s, Start: %s, End: %s, Budget: %s, Effort Hours: %s",
		t.ID,
		t.Name,
		t.AssignedTo,
		t.Status,
		task.FormatDate(t.StartDate),
		task.FormatDate(t.EndDate),
		FormatAmount(t.Budget),
		FormatAmount(t.EffortHours),
	)
}

// FormatAmount prints v in shortest form, always with a fractional part
// (0 -> "0.0", 1500.5 -> "1500.5").
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Section returns the first section of the given kind.
func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
