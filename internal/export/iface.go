package export

import (
	"github.com/simonbystrom/planner/internal/report"
	"github.com/simonbystrom/planner/internal/timeline"
)

// ChartRenderer turns timeline rows into a static image.
type ChartRenderer interface {
	RenderChart(rows []timeline.Row) ([]byte, error)
}

// DocumentRenderer turns a report Document into a downloadable file.
type DocumentRenderer interface {
	RenderDocument(doc report.Document) ([]byte, error)
}

// ChartFunc adapts a function to ChartRenderer.
type ChartFunc func(rows []timeline.Row) ([]byte, error)

func (f ChartFunc) RenderChart(rows []timeline.Row) ([]byte, error) { return f(rows) }

// DocumentFunc adapts a function to DocumentRenderer.
type DocumentFunc func(doc report.Document) ([]byte, error)

func (f DocumentFunc) RenderDocument(doc report.Document) ([]byte, error) { return f(doc) }
