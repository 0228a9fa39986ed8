package chart

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// htmlRenderer writes a self-contained interactive page: the series is
// embedded as inline JSON and plotted client-side with Plotly.
type htmlRenderer struct{}

func (htmlRenderer) Ext() string { return ".html" }

func (htmlRenderer) Render(w io.Writer, s *Series) error {
	if s == nil || len(s.Dates) == 0 {
		return fmt.Errorf("no transactions to plot")
	}

	dates := make([]string, len(s.Dates))
	for i, d := range s.Dates {
		dates[i] = d.String()
	}

	data := struct {
		Dates    template.JS
		Balances template.JS
		Big      template.JS
		Today    string
	}{
		Dates:    mustJSON(dates),
		Balances: mustJSON(s.Balances),
		Big:      mustJSON(s.Big),
		Today:    s.Today.String(),
	}
	return pageTemplate.Execute(w, data)
}

// mustJSON marshals v for inline embedding. The series types marshal
// cleanly, so a failure here is a programming error.
func mustJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return template.JS(b)
}

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Balance forecast</title>
    <script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            margin: 0;
            padding: 20px;
            background: #f5f5f5;
        }
        h1 { text-align: center; color: #333; }
        #chart {
            width: 100%;
            height: 600px;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .info { text-align: center; color: #666; margin-top: 10px; }
    </style>
</head>
<body>
    <h1>Balance forecast</h1>
    <div id="chart"></div>
    <p class="info">Hover for details / drag to zoom / double-click to reset</p>

    <script>
        const dates = {{.Dates}};
        const balances = {{.Balances}};
        const bigTransactions = {{.Big}};
        const today = "{{.Today}}";

        const balanceLine = {
            x: dates,
            y: balances,
            type: 'scatter',
            mode: 'lines',
            name: 'balance',
            line: { color: '#2196F3', width: 2 },
            hovertemplate: '%{x}<br>balance: ¥%{y:,.0f}<extra></extra>'
        };

        const incomeMarkers = {
            x: bigTransactions.filter(t => t.type === 'income').map(t => t.date),
            y: bigTransactions.filter(t => t.type === 'income').map(t => t.balance),
            type: 'scatter',
            mode: 'markers',
            name: 'income ≥ ¥200,000',
            marker: { color: '#4CAF50', size: 12, symbol: 'triangle-up' },
            text: bigTransactions.filter(t => t.type === 'income').map(t => t.description + '<br>+¥' + t.amount.toLocaleString()),
            hovertemplate: '%{x}<br>%{text}<br>balance: ¥%{y:,.0f}<extra></extra>'
        };

        const expenseMarkers = {
            x: bigTransactions.filter(t => t.type === 'expense').map(t => t.date),
            y: bigTransactions.filter(t => t.type === 'expense').map(t => t.balance),
            type: 'scatter',
            mode: 'markers',
            name: 'expense ≥ ¥200,000',
            marker: { color: '#f44336', size: 12, symbol: 'triangle-down' },
            text: bigTransactions.filter(t => t.type === 'expense').map(t => t.description + '<br>-¥' + t.amount.toLocaleString()),
            hovertemplate: '%{x}<br>%{text}<br>balance: ¥%{y:,.0f}<extra></extra>'
        };

        const layout = {
            xaxis: { title: 'date', showgrid: true, gridcolor: '#eee' },
            yaxis: {
                title: 'balance (yen)',
                showgrid: true,
                gridcolor: '#eee',
                tickformat: ',.0f',
                tickprefix: '¥'
            },
            shapes: [{
                type: 'line',
                x0: today,
                x1: today,
                y0: 0,
                y1: 1,
                yref: 'paper',
                line: { color: '#4CAF50', width: 2, dash: 'dash' }
            }],
            annotations: [{
                x: today,
                y: 1,
                yref: 'paper',
                text: 'today',
                showarrow: false,
                yanchor: 'bottom',
                font: { color: '#4CAF50' }
            }],
            hovermode: 'x unified',
            legend: { orientation: 'h', y: -0.15 },
            margin: { t: 30, b: 80 }
        };

        const config = {
            responsive: true,
            displayModeBar: true,
            modeBarButtonsToRemove: ['lasso2d', 'select2d'],
            displaylogo: false
        };

        Plotly.newPlot('chart', [balanceLine, incomeMarkers, expenseMarkers], layout, config);
    </script>
</body>
</html>
`))
