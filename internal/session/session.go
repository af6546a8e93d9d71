// Package session holds the state of one planning session and exposes
// each user action as a request/response call.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/simonbystrom/planner/internal/export"
	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/scope"
	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/team"
	"github.com/simonbystrom/planner/internal/timeline"
)

// NoTasksNotice is reported when a report is requested before any task exists.
const NoTasksNotice = "No tasks available to generate the report."

// ExportResult describes what ExportReport produced.
type ExportResult struct {
	Skipped    bool
	Notice     string
	ReportPath string
	ChartPath  string
	Document   report.Document
}

type Session struct {
	ID string

	dir   *team.Directory
	tasks *task.Store
	scope scope.Record

	mu             sync.RWMutex
	fs             afero.Fs
	exportDir      string
	reportFile     string
	chartFile      string
	projectManager string
	charts         export.ChartRenderer
	docs           export.DocumentRenderer
	log            *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithFS overrides the filesystem exports are written to.
func WithFS(fs afero.Fs) Option {
	return func(s *Session) { s.fs = fs }
}

// WithExportDir sets the directory report files are written to.
func WithExportDir(dir string) Option {
	return func(s *Session) { s.exportDir = dir }
}

// WithReportFile sets the report file name.
func WithReportFile(name string) Option {
	return func(s *Session) { s.reportFile = name }
}

// WithChartFile sets the chart image file name.
func WithChartFile(name string) Option {
	return func(s *Session) { s.chartFile = name }
}

// WithChartRenderer overrides the default PNG chart renderer.
func WithChartRenderer(r export.ChartRenderer) Option {
	return func(s *Session) { s.charts = r }
}

// WithDocumentRenderer overrides the default PDF renderer.
func WithDocumentRenderer(r export.DocumentRenderer) Option {
	return func(s *Session) { s.docs = r }
}

// WithProjectManager sets the manager shown in the report header.
func WithProjectManager(name string) Option {
	return func(s *Session) { s.projectManager = name }
}

func New(dir *team.Directory, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		dir:        dir,
		tasks:      task.NewStore(dir),
		fs:         afero.NewOsFs(),
		exportDir:  ".",
		reportFile: "project_report.pdf",
		chartFile:  "gantt_chart.png",
		charts:     export.NewPNGChart(),
		docs:       export.NewPDFDocument(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = slog.Default().With("session", s.ID)
	return s
}

func (s *Session) Directory() *team.Directory { return s.dir }

func (s *Session) Tasks() *task.Store { return s.tasks }

func (s *Session) Scope() scope.ScopeRecord { return s.scope.Get() }

func (s *Session) ScopeIsSet() bool { return s.scope.IsSet() }

func (s *Session) ProjectManager() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectManager
}

// SetProjectManager changes the manager shown in the report header. It
// reports whether the name changed.
func (s *Session) SetProjectManager(name string) bool {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	changed := s.projectManager != name
	s.projectManager = name
	s.mu.Unlock()
	if changed {
		s.log.Info("project manager set", "name", name)
	}
	return changed
}

func (s *Session) SetScope(scopeText, deliverablesRaw string) scope.ScopeRecord {
	rec := s.scope.Set(scopeText, deliverablesRaw)
	s.log.Info("scope set", "deliverables", len(rec.Deliverables))
	return rec
}

func (s *Session) CreateMainTask(in task.Input) (task.Task, error) {
	t, err := s.tasks.CreateMainTask(in)
	if err != nil {
		s.log.Warn("create main task rejected", "name", in.Name, "error", err)
		return task.Task{}, err
	}
	s.log.Info("main task created", "id", t.ID, "name", t.Name, "assignee", t.AssignedTo)
	return t, nil
}

func (s *Session) CreateSubtask(parentID int, in task.Input) (task.Task, error) {
	t, err := s.tasks.CreateSubtask(parentID, in)
	if err != nil {
		s.log.Warn("create subtask rejected", "parent", parentID, "name", in.Name, "error", err)
		return task.Task{}, err
	}
	s.log.Info("subtask created", "id", t.ID, "parent", parentID, "name", t.Name)
	return t, nil
}

func (s *Session) ReassignResource(taskID int, assignee string) error {
	changed, err := s.tasks.ReassignResource(taskID, assignee)
	if err != nil {
		s.log.Warn("reassign rejected", "id", taskID, "assignee", assignee, "error", err)
		return err
	}
	if changed {
		s.log.Info("task reassigned", "id", taskID, "assignee", assignee)
	}
	return nil
}

func (s *Session) SetBudget(mainTaskID int, amount float64) error {
	changed, err := s.tasks.SetBudget(mainTaskID, amount)
	if err != nil {
		s.log.Warn("budget rejected", "id", mainTaskID, "amount", amount, "error", err)
		return err
	}
	if changed {
		s.log.Info("budget saved", "id", mainTaskID, "amount", amount)
	}
	return nil
}

func (s *Session) SetEffortHours(taskID int, hours float64) error {
	changed, err := s.tasks.SetEffortHours(taskID, hours)
	if err != nil {
		s.log.Warn("effort hours rejected", "id", taskID, "hours", hours, "error", err)
		return err
	}
	if changed {
		s.log.Info("effort hours updated", "id", taskID, "hours", hours)
	}
	return nil
}

// Timeline projects every task in store order.
func (s *Session) Timeline() []timeline.Row {
	return timeline.Project(s.tasks.All())
}

// BuildReport assembles the report around an already rendered chart.
func (s *Session) BuildReport(chart []byte) report.Document {
	return report.Assemble(s.scope.Get(), s.tasks.All(), chart, report.WithProjectManager(s.ProjectManager()))
}

// ReportPath and ChartPath return where ExportReport writes its files.
func (s *Session) ReportPath() string { return filepath.Join(s.exportDir, s.reportFile) }

func (s *Session) ChartPath() string { return filepath.Join(s.exportDir, s.chartFile) }

// ExportReport renders the timeline chart and the report and writes both.
// With no tasks it does nothing and returns a Skipped result.
func (s *Session) ExportReport(ctx context.Context) (ExportResult, error) {
	if s.tasks.Len() == 0 {
		s.log.Info("report skipped: no tasks")
		return ExportResult{Skipped: true, Notice: NoTasksNotice}, nil
	}

	chart, err := s.charts.RenderChart(s.Timeline())
	if err != nil {
		return ExportResult{}, fmt.Errorf("render chart: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return ExportResult{}, err
	}

	doc := s.BuildReport(chart)
	pdf, err := s.docs.RenderDocument(doc)
	if err != nil {
		return ExportResult{}, fmt.Errorf("render report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return ExportResult{}, err
	}

	chartPath := s.ChartPath()
	if err := export.WriteFile(s.fs, chartPath, chart); err != nil {
		return ExportResult{}, fmt.Errorf("save chart: %w", err)
	}
	reportPath := s.ReportPath()
	if err := export.WriteFile(s.fs, reportPath, pdf); err != nil {
		return ExportResult{}, fmt.Errorf("save report: %w", err)
	}

	s.log.Info("report exported", "report", reportPath, "chart", chartPath, "tasks", s.tasks.Len())
	return ExportResult{
		Notice:     "Project report has been generated successfully!",
		ReportPath: reportPath,
		ChartPath:  chartPath,
		Document:   doc,
	}, nil
}
