// Package chart renders time-ordered benchmark means as line charts,
// either as standalone SVG (for README/dashboard embedding) or PNG.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

// ErrInsufficientData reports fewer than two valid points for a chart.
var ErrInsufficientData = errors.New("not enough data points")

// Point is one (timestamp, mean) measurement with its run version.
type Point struct {
	Time    time.Time
	Mean    float64
	Version string
}

// Options parameterizes chart geometry and labeling.
type Options struct {
	Width, Height, Margin int
	Gridlines             int    // horizontal gridlines incl. top and bottom
	DateLabels            int    // max evenly subsampled x-axis date labels
	PointLabels           int    // trailing points that get version labels
	CSS                   string // style block; empty means DefaultCSS
	YAxisTitle            string
}

// DefaultCSS styles the chart classes emitted by RenderSVG.
const DefaultCSS = `
        .chart-line { fill: none; stroke: #2563eb; stroke-width: 2; }
        .chart-point { fill: #2563eb; }
        .chart-grid { stroke: #e5e7eb; stroke-width: 1; }
        .chart-text { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; font-size: 12px; fill: #374151; }
        .chart-title { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; font-size: 16px; font-weight: bold; fill: #111827; }
        .chart-axis { stroke: #9ca3af; stroke-width: 1; }
`

// DefaultOptions returns the geometry used for the README charts.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      400,
		Margin:      60,
		Gridlines:   5,
		DateLabels:  6,
		PointLabels: 5,
		CSS:         DefaultCSS,
		YAxisTitle:  "Mean Time (ns)",
	}
}

func (o *Options) fillDefaults() {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.Gridlines < 2 {
		o.Gridlines = d.Gridlines
	}
	if o.DateLabels <= 0 {
		o.DateLabels = d.DateLabels
	}
	if o.PointLabels <= 0 {
		o.PointLabels = d.PointLabels
	}
	if o.CSS == "" {
		o.CSS = d.CSS
	}
	if o.YAxisTitle == "" {
		o.YAxisTitle = d.YAxisTitle
	}
}

// Extract collects the chart series for one method at the given
// parameter combination: per dataset, the first matching record with a
// positive mean. datasets must be ordered oldest-first.
func Extract(datasets []perfdata.Dataset, method string, dataSize int, modelType string) []Point {
	var points []Point
	for i := range datasets {
		ds := &datasets[i]
		r := ds.Find(method, dataSize, modelType)
		if r == nil || r.Statistics.Mean <= 0 {
			continue
		}
		t, err := ds.Metadata.Time()
		if err != nil {
			perfdata.Warnf("chart %s: skipping %s: %v", method, ds.SourceFile(), err)
			continue
		}
		points = append(points, Point{Time: t, Mean: r.Statistics.Mean, Version: ds.Metadata.Version})
	}
	return points
}

// Placeholder is the marker emitted instead of a chart when a method
// has fewer than two valid points.
func Placeholder(method string) string {
	return fmt.Sprintf("<!-- Not enough data points for %s chart -->", method)
}

// RenderSVG draws points as a line chart. It fails with
// ErrInsufficientData below two points; callers substitute Placeholder.
func RenderSVG(points []Point, title string, opts Options) (string, error) {
	if len(points) < 2 {
		return "", ErrInsufficientData
	}
	opts.fillDefaults()

	w, h, m := opts.Width, opts.Height, opts.Margin
	chartW := float64(w - 2*m)
	chartH := float64(h - 2*m)

	minTime, maxTime := points[0].Time, points[0].Time
	minMean, maxMean := points[0].Mean, points[0].Mean
	for _, p := range points[1:] {
		if p.Time.Before(minTime) {
			minTime = p.Time
		}
		if p.Time.After(maxTime) {
			maxTime = p.Time
		}
		minMean = math.Min(minMean, p.Mean)
		maxMean = math.Max(maxMean, p.Mean)
	}
	timeRange := maxTime.Sub(minTime).Seconds()
	meanRange := maxMean - minMean
	if meanRange == 0 {
		// A flat series still needs a drawable range.
		meanRange = maxMean * 0.1
	}

	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		var tp float64
		if timeRange > 0 {
			tp = p.Time.Sub(minTime).Seconds() / timeRange
		} else {
			// All points share one timestamp: space them evenly.
			tp = float64(i) / float64(len(points)-1)
		}
		xs[i] = m + int(math.Round(chartW*tp))
		ys[i] = m + int(math.Round(chartH*(maxMean-p.Mean)/meanRange))
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(w, h)
	canvas.Style("text/css", opts.CSS)
	canvas.Text(w/2, 25, title, `text-anchor="middle" class="chart-title"`)

	// Horizontal gridlines with value labels, max at the top.
	for i := 0; i < opts.Gridlines; i++ {
		frac := float64(i) / float64(opts.Gridlines-1)
		y := m + int(math.Round(chartH*frac))
		canvas.Line(m, y, w-m, y, `class="chart-grid"`)
		canvas.Text(m-10, y+4, axisLabel(maxMean-meanRange*frac), `text-anchor="end" class="chart-text"`)
	}

	canvas.Line(m, m, m, h-m, `class="chart-axis"`)
	canvas.Line(m, h-m, w-m, h-m, `class="chart-axis"`)

	canvas.Polyline(xs, ys, `class="chart-line"`)
	for i := range points {
		canvas.Circle(xs[i], ys[i], 3, `class="chart-point"`)
	}

	// Version labels on the most recent points only, to avoid crowding.
	for i := len(points) - opts.PointLabels; i < len(points); i++ {
		if i < 0 {
			continue
		}
		canvas.Text(xs[i], ys[i]-10, truncate(points[i].Version, 8), `text-anchor="middle" class="chart-text"`)
	}

	// Evenly subsampled date labels along the x-axis.
	n := len(points)
	labels := opts.DateLabels
	if labels > n {
		labels = n
	}
	if labels < 2 {
		labels = 2
	}
	for i := 0; i < labels; i++ {
		idx := i * (n - 1) / (labels - 1)
		canvas.Text(xs[idx], h-m+20, points[idx].Time.Format("2006-01-02"), `text-anchor="middle" class="chart-text"`)
	}

	canvas.Text(15, h/2, opts.YAxisTitle,
		fmt.Sprintf(`text-anchor="middle" transform="rotate(-90, 15, %d)" class="chart-text"`, h/2))
	canvas.End()
	return buf.String(), nil
}

func axisLabel(ns float64) string {
	return strings.ReplaceAll(perfdata.FormatNanos(ns), " ", "")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
