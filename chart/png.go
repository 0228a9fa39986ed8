package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/okane/renderer"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pngRenderer draws the static balance chart with go-chart: the daily
// balance line, markers for big transactions and a vertical line on
// today.
type pngRenderer struct{}

func (pngRenderer) Ext() string { return ".png" }

func (pngRenderer) Render(w io.Writer, s *Series) error {
	if s == nil || len(s.Dates) == 0 {
		return fmt.Errorf("no transactions to plot")
	}

	xs := make([]time.Time, len(s.Dates))
	ys := make([]float64, len(s.Dates))
	for i := range s.Dates {
		xs[i] = s.Dates[i].Time()
		ys[i] = float64(s.Balances[i])
	}

	series := []gochart.Series{
		gochart.TimeSeries{
			Name:    "balance",
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: drawing.ColorBlue,
				StrokeWidth: 2,
			},
		},
	}

	var annotations []gochart.Value2
	for _, big := range s.Big {
		label := fmt.Sprintf("%s %s", big.Description, renderer.Yen(big.Amount))
		annotations = append(annotations, gochart.Value2{
			XValue: gochart.TimeToFloat64(big.Date.Time()),
			YValue: float64(big.Balance),
			Label:  label,
		})
	}
	if len(annotations) > 0 {
		series = append(series, gochart.AnnotationSeries{
			Annotations: annotations,
			Style: gochart.Style{
				StrokeColor: drawing.ColorRed,
			},
		})
	}

	graph := gochart.Chart{
		Title:  "Balance forecast",
		Width:  1200,
		Height: 600,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01"),
			GridLines: []gochart.GridLine{
				{Value: gochart.TimeToFloat64(s.Today.Time())},
			},
			GridMajorStyle: gochart.Style{
				StrokeColor:     drawing.ColorGreen,
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return renderer.Yen(int64(f))
			},
		},
		Series: series,
	}

	return graph.Render(gochart.PNG, w)
}

