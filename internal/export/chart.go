package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/simonbystrom/planner/internal/task"
	"github.com/simonbystrom/planner/internal/timeline"
)

// PriorityColors maps a bar category to its fill colour.
var PriorityColors = map[task.Priority]color.RGBA{
	task.PriorityLow:    {R: 0x63, G: 0x6e, B: 0xfa, A: 0xff},
	task.PriorityMedium: {R: 0xef, G: 0x55, B: 0x3b, A: 0xff},
	task.PriorityHigh:   {R: 0x00, G: 0xcc, B: 0x96, A: 0xff},
}

var (
	chartBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	chartPlotArea   = color.RGBA{R: 0xe5, G: 0xec, B: 0xf6, A: 0xff}
	chartGrid       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	chartText       = color.RGBA{R: 0x2a, G: 0x3f, B: 0x5f, A: 0xff}
	chartFallback   = color.RGBA{R: 0xab, G: 0x63, B: 0xfa, A: 0xff}
)

const (
	glyphWidth  = 7
	glyphHeight = 13
)

// PNGChart draws a Gantt chart as a PNG image. Rows are laid out in display
// order (see timeline.SortForDisplay); end dates are inclusive.
type PNGChart struct {
	Title     string
	Width     int
	RowHeight int
	LabelArea int
}

// NewPNGChart returns a chart renderer with the default geometry.
func NewPNGChart() PNGChart {
	return PNGChart{
		Title:     "Project Timeline",
		Width:     1000,
		RowHeight: 28,
		LabelArea: 220,
	}
}

func (c PNGChart) RenderChart(rows []timeline.Row) ([]byte, error) {
	if c.Width <= c.LabelArea+100 {
		return nil, fmt.Errorf("chart width %d too small for label area %d", c.Width, c.LabelArea)
	}
	rows = timeline.SortForDisplay(rows)

	const top, bottom, right = 48, 36, 24
	nRows := max(len(rows), 1)
	height := top + nRows*c.RowHeight + bottom
	img := image.NewRGBA(image.Rect(0, 0, c.Width, height))
	fill(img, img.Bounds(), chartBackground)

	plot := image.Rect(c.LabelArea, top, c.Width-right, top+nRows*c.RowHeight)
	fill(img, plot, chartPlotArea)
	drawText(img, c.Title, 12, 20)
	c.drawLegend(img, rows, right)

	if len(rows) == 0 {
		drawText(img, "No tasks", plot.Min.X+8, plot.Min.Y+c.RowHeight/2+4)
		return encodePNG(img)
	}

	start, end := timeline.Bounds(rows)
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	pxPerDay := float64(plot.Dx()) / float64(days)

	// Vertical grid lines with date ticks at start, middle, end.
	for _, d := range []int{0, days / 2, days} {
		x := plot.Min.X + int(float64(d)*pxPerDay)
		if x >= plot.Max.X {
			x = plot.Max.X - 1
		}
		fill(img, image.Rect(x, plot.Min.Y, x+1, plot.Max.Y), chartGrid)
		label := task.FormatDate(start.AddDate(0, 0, d))
		lx := x - len(label)*glyphWidth/2
		lx = min(max(lx, plot.Min.X), c.Width-len(label)*glyphWidth-2)
		drawText(img, label, lx, plot.Max.Y+glyphHeight+6)
	}

	maxLabel := (c.LabelArea - 16) / glyphWidth
	for i, r := range rows {
		y0 := plot.Min.Y + i*c.RowHeight
		drawText(img, clip(r.Label, maxLabel), 8, y0+c.RowHeight/2+4)

		offset := int(r.Start.Sub(start) / (24 * time.Hour))
		span := int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
		if span < 1 {
			span = 1
		}
		x0 := plot.Min.X + int(float64(offset)*pxPerDay)
		x1 := plot.Min.X + int(float64(offset+span)*pxPerDay)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		bar := image.Rect(x0, y0+4, x1, y0+c.RowHeight-4).Intersect(plot)
		fill(img, bar, categoryColor(r.Category))
	}

	return encodePNG(img)
}

func (c PNGChart) drawLegend(img *image.RGBA, rows []timeline.Row, right int) {
	seen := make(map[task.Priority]bool)
	for _, r := range rows {
		seen[r.Category] = true
	}
	x := c.Width - right
	for i := len(task.Priorities) - 1; i >= 0; i-- {
		p := task.Priorities[i]
		if !seen[p] {
			continue
		}
		label := string(p)
		x -= len(label)*glyphWidth + 24
		fill(img, image.Rect(x, 12, x+12, 24), categoryColor(p))
		drawText(img, label, x+16, 22)
	}
}

func categoryColor(p task.Priority) color.RGBA {
	if c, ok := PriorityColors[p]; ok {
		return c
	}
	return chartFallback
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img draw.Image, s string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(chartText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
