package plot

import (
	"fmt"
	"io"
	"time"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	PNG = "png"
	SVG = "svg"
)

var contentTypes = map[string]string{
	PNG: "image/png",
	SVG: "image/svg+xml",
}

// ContentType returns the media type of a rendering format.
func ContentType(format string) string {
	return contentTypes[format]
}

func lineStyle(color drawing.Color, dashed bool) chart.Style {
	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
	if dashed {
		style.StrokeDashArray = []float64{6, 4}
	}
	return style
}

// Render draws the score of a trend with its SLO and SLO minimum as
// percentages over time.
func Render(w io.Writer, title string, points []aggregates.Point, format string) error {
	if len(points) == 0 {
		return fmt.Errorf("no point to render for %s", title)
	}
	times := make([]time.Time, 0, len(points)+1)
	scores := make([]float64, 0, len(points)+1)
	slos := make([]float64, 0, len(points)+1)
	sloMins := make([]float64, 0, len(points)+1)
	for _, point := range points {
		date, err := time.Parse(time.DateOnly, point.Key)
		if err != nil {
			return fmt.Errorf("invalid point date %s: %w", point.Key, err)
		}
		times = append(times, date)
		scores = append(scores, point.Score*100)
		slos = append(slos, point.SLO*100)
		sloMins = append(sloMins, point.SLOMin*100)
	}
	// a single point has no range on the x axis
	if len(points) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		scores = append(scores, scores[0])
		slos = append(slos, slos[0])
		sloMins = append(sloMins, sloMins[0])
	}
	graph := chart.Chart{
		Title:      title,
		Width:      960,
		Height:     400,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis: chart.YAxis{
			Name:  "%",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Score", XValues: times, YValues: scores, Style: lineStyle(chart.ColorBlue, false)},
			chart.TimeSeries{Name: "SLO", XValues: times, YValues: slos, Style: lineStyle(chart.ColorGreen, true)},
			chart.TimeSeries{Name: "SLO minimum", XValues: times, YValues: sloMins, Style: lineStyle(chart.ColorRed, true)},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	switch format {
	case PNG:
		return graph.Render(chart.PNG, w)
	case SVG:
		return graph.Render(chart.SVG, w)
	}
	return fmt.Errorf("unsupported chart format %s", format)
}
