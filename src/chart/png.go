package chart

import (
	"bytes"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

func lineStyle() gochart.Style {
	return gochart.Style{
		StrokeColor: gochart.ColorBlue,
		StrokeWidth: 2,
		DotWidth:    3,
		DotColor:    gochart.ColorBlue,
	}
}

// RenderPNG draws the same series as RenderSVG using go-chart, for
// consumers that cannot embed SVG.
func RenderPNG(points []Point, title string, opts Options) ([]byte, error) {
	if len(points) < 2 {
		return nil, ErrInsufficientData
	}
	opts.fillDefaults()

	times := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	minMean, maxMean := points[0].Mean, points[0].Mean
	for i, p := range points {
		times[i] = p.Time
		ys[i] = p.Mean
		if p.Mean < minMean {
			minMean = p.Mean
		}
		if p.Mean > maxMean {
			maxMean = p.Mean
		}
	}

	var series gochart.Series
	xFormatter := gochart.TimeValueFormatterWithFormat("2006-01-02")
	if times[0].Equal(times[len(times)-1]) {
		// Zero time range: fall back to index positions so go-chart
		// does not collapse the x-axis.
		xs := make([]float64, len(points))
		for i := range xs {
			xs[i] = float64(i)
		}
		series = gochart.ContinuousSeries{Name: title, XValues: xs, YValues: ys, Style: lineStyle()}
		xFormatter = gochart.FloatValueFormatter
	} else {
		series = gochart.TimeSeries{Name: title, XValues: times, YValues: ys, Style: lineStyle()}
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      gochart.XAxis{ValueFormatter: xFormatter},
		YAxis:      gochart.YAxis{Name: opts.YAxisTitle},
		Series:     []gochart.Series{series},
	}
	if minMean == maxMean {
		// Flat series: pad the range so the line stays visible.
		ch.YAxis.Range = &gochart.ContinuousRange{Min: minMean * 0.9, Max: maxMean * 1.1}
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
