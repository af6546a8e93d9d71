package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/team"
	"github.com/simonbystrom/planner/internal/timeline"
)

// --- Mock renderers ---

type mockRenderer struct {
	mu    sync.Mutex
	calls []string

	chart    []byte
	chartErr error
	doc      []byte
	docErr   error

	lastRows []timeline.Row
	lastDoc  report.Document
}

func (m *mockRenderer) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockRenderer) RenderChart(rows []timeline.Row) ([]byte, error) {
	m.record("RenderChart")
	m.lastRows = rows
	return m.chart, m.chartErr
}

func (m *mockRenderer) RenderDocument(doc report.Document) ([]byte, error) {
	m.record("RenderDocument")
	m.lastDoc = doc
	return m.doc, m.docErr
}

func newTestSession(t *testing.T, r *mockRenderer, fs afero.Fs) *Session {
	t.Helper()
	dir, err := team.NewDirectory(team.DefaultMembers())
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	return New(dir,
		WithFS(fs),
		WithExportDir("/out"),
		WithChartRenderer(r),
		WithDocumentRenderer(r),
		WithProjectManager("Faisal"),
	)
}

func mainInput(name, assignee string) task.Input {
	return task.Input{
		Name:      name,
		StartDate: task.Date(2024, 1, 1),
		EndDate:   task.Date(2024, 3, 1),
		Assignee:  assignee,
		Priority:  task.PriorityHigh,
		Status:    task.StatusNotStarted,
	}
}

func TestNewAssignsID(t *testing.T) {
	a := newTestSession(t, &mockRenderer{}, afero.NewMemMapFs())
	b := newTestSession(t, &mockRenderer{}, afero.NewMemMapFs())
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session ids = %q, %q; want distinct non-empty", a.ID, b.ID)
	}
}

func TestExportReportNoTasks(t *testing.T) {
	r := &mockRenderer{}
	fs := afero.NewMemMapFs()
	s := newTestSession(t, r, fs)

	res, err := s.ExportReport(context.Background())
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}
	if !res.Skipped || res.Notice != NoTasksNotice {
		t.Errorf("result = %+v, want skipped with notice", res)
	}
	if len(r.calls) != 0 {
		t.Errorf("renderers called: %v", r.calls)
	}
	if ok, _ := afero.Exists(fs, s.ReportPath()); ok {
		t.Error("report file written for empty session")
	}
}

func TestExportReportWritesFiles(t *testing.T) {
	r := &mockRenderer{chart: []byte("png"), doc: []byte("%PDF-")}
	fs := afero.NewMemMapFs()
	s := newTestSession(t, r, fs)

	s.SetScope("Build site", "Homepage\nAbout")
	if _, err := s.CreateMainTask(mainInput("Website", "Hamza")); err != nil {
		t.Fatalf("CreateMainTask: %v", err)
	}

	res, err := s.ExportReport(context.Background())
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}
	if res.Skipped {
		t.Fatal("export skipped")
	}
	if res.ReportPath != "/out/project_report.pdf" || res.ChartPath != "/out/gantt_chart.png" {
		t.Errorf("paths = %q, %q", res.ReportPath, res.ChartPath)
	}

	pdf, err := afero.ReadFile(fs, res.ReportPath)
	if err != nil || string(pdf) != "%PDF-" {
		t.Errorf("report file = %q, %v", pdf, err)
	}
	png, err := afero.ReadFile(fs, res.ChartPath)
	if err != nil || string(png) != "png" {
		t.Errorf("chart file = %q, %v", png, err)
	}

	if got := strings.Join(r.calls, ","); got != "RenderChart,RenderDocument" {
		t.Errorf("calls = %s", got)
	}
	if len(r.lastRows) != 1 || r.lastRows[0].Label != "Website" {
		t.Errorf("chart rows = %+v", r.lastRows)
	}
	if r.lastDoc.ProjectManager != "Faisal" {
		t.Errorf("document manager = %q", r.lastDoc.ProjectManager)
	}
	sec, ok := r.lastDoc.Section(report.SectionTimeline)
	if !ok || string(sec.Image) != "png" {
		t.Errorf("timeline section image = %q", sec.Image)
	}
}

func TestExportReportRendererErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name string
		r    *mockRenderer
	}{
		{"chart", &mockRenderer{chartErr: boom}},
		{"document", &mockRenderer{chart: []byte("png"), docErr: boom}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s := newTestSession(t, tt.r, fs)
			if _, err := s.CreateMainTask(mainInput("A", "Hamza")); err != nil {
				t.Fatalf("CreateMainTask: %v", err)
			}
			if _, err := s.ExportReport(context.Background()); !errors.Is(err, boom) {
				t.Fatalf("err = %v, want boom", err)
			}
			if ok, _ := afero.Exists(fs, s.ReportPath()); ok {
				t.Error("report written despite error")
			}
			// the session stays usable
			if _, err := s.CreateMainTask(mainInput("B", "Umer")); err != nil {
				t.Errorf("CreateMainTask after failure: %v", err)
			}
		})
	}
}

func TestExportReportCancelled(t *testing.T) {
	r := &mockRenderer{chart: []byte("png"), doc: []byte("pdf")}
	fs := afero.NewMemMapFs()
	s := newTestSession(t, r, fs)
	if _, err := s.CreateMainTask(mainInput("A", "Hamza")); err != nil {
		t.Fatalf("CreateMainTask: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.ExportReport(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ok, _ := afero.Exists(fs, s.ChartPath()); ok {
		t.Error("chart written after cancellation")
	}
}

func TestExportReportReadOnlyFS(t *testing.T) {
	r := &mockRenderer{chart: []byte("png"), doc: []byte("pdf")}
	s := newTestSession(t, r, afero.NewReadOnlyFs(afero.NewMemMapFs()))
	if _, err := s.CreateMainTask(mainInput("A", "Hamza")); err != nil {
		t.Fatalf("CreateMainTask: %v", err)
	}
	if _, err := s.ExportReport(context.Background()); err == nil {
		t.Fatal("expected write error")
	}
}

func TestHandlersPropagateErrors(t *testing.T) {
	s := newTestSession(t, &mockRenderer{}, afero.NewMemMapFs())
	main, err := s.CreateMainTask(mainInput("Main", "Hamza"))
	if err != nil {
		t.Fatalf("CreateMainTask: %v", err)
	}
	sub, err := s.CreateSubtask(main.ID, mainInput("Sub", "Umer"))
	if err != nil {
		t.Fatalf("CreateSubtask: %v", err)
	}

	if _, err := s.CreateSubtask(sub.ID, mainInput("Nested", "Umer")); !errors.Is(err, task.ErrInvalidParent) {
		t.Errorf("nested subtask err = %v", err)
	}
	if err := s.ReassignResource(99, "Hamza"); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("reassign unknown task err = %v", err)
	}
	if err := s.ReassignResource(main.ID, "Nobody"); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("reassign unknown member err = %v", err)
	}
	if err := s.SetBudget(sub.ID, 10); !errors.Is(err, task.ErrInvalidArgument) {
		t.Errorf("budget on subtask err = %v", err)
	}
	if err := s.SetEffortHours(main.ID, -1); !errors.Is(err, task.ErrInvalidArgument) {
		t.Errorf("negative effort err = %v", err)
	}

	if err := s.ReassignResource(main.ID, "Huzaifa"); err != nil {
		t.Fatalf("ReassignResource: %v", err)
	}
	if err := s.SetBudget(main.ID, 1500.5); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	got, _ := s.Tasks().Get(main.ID)
	if got.AssignedTo != "Huzaifa" || got.AssigneeRole != "Designer" || got.Budget != 1500.5 {
		t.Errorf("task = %+v", got)
	}
}

func TestBuildReportUsesScope(t *testing.T) {
	s := newTestSession(t, &mockRenderer{}, afero.NewMemMapFs())
	if s.ScopeIsSet() {
		t.Fatal("scope set before commit")
	}
	s.SetScope("Build site", "Homepage\n\n  About  ")
	if !s.ScopeIsSet() {
		t.Fatal("scope not set after commit")
	}

	doc := s.BuildReport(nil)
	sec, ok := doc.Section(report.SectionScope)
	if !ok || len(sec.Blocks) != 2 {
		t.Fatalf("scope section = %+v", sec)
	}
	if got := sec.Blocks[1].Bullets; len(got) != 2 || got[0] != "Homepage" || got[1] != "About" {
		t.Errorf("deliverables = %q", got)
	}
}

func TestSetProjectManager(t *testing.T) {
	s := newTestSession(t, &mockRenderer{}, afero.NewMemMapFs())

	if s.SetProjectManager("  Faisal ") {
		t.Error("same name reported as a change")
	}
	if !s.SetProjectManager(" Ayesha ") {
		t.Error("new name not reported as a change")
	}
	if got := s.ProjectManager(); got != "Ayesha" {
		t.Errorf("ProjectManager = %q, want Ayesha", got)
	}

	sec, ok := s.BuildReport(nil).Section(report.SectionTitle)
	if !ok || len(sec.Lines) != 1 || sec.Lines[0] != "Project Manager: Ayesha" {
		t.Errorf("title section = %+v", sec)
	}
}

func TestSetProjectManagerDuringExport(t *testing.T) {
	r := &mockRenderer{chart: []byte("png"), doc: []byte("%PDF-")}
	s := newTestSession(t, r, afero.NewMemMapFs())
	if _, err := s.CreateMainTask(mainInput("Website", "Hamza")); err != nil {
		t.Fatalf("CreateMainTask: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := s.ExportReport(context.Background()); err != nil {
			t.Errorf("ExportReport: %v", err)
		}
	}()
	for _, name := range []string{"Ayesha", "Sana", "Hamza"} {
		s.SetProjectManager(name)
	}
	wg.Wait()

	switch got := r.lastDoc.ProjectManager; got {
	case "Faisal", "Ayesha", "Sana", "Hamza":
	default:
		t.Errorf("document manager = %q", got)
	}
}
