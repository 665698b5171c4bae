package chart

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/streamta/pkg/types"
)

// Canvas collects indicator samples into time series and renders them as a PNG.
type Canvas struct {
	chart.Chart

	order  []string
	series map[string]*chart.TimeSeries
}

func NewCanvas(title string, interval types.Interval) *Canvas {
	var valueFormatter chart.ValueFormatter
	switch d := interval.Duration(); {
	case d >= 24*time.Hour:
		valueFormatter = chart.TimeDateValueFormatter
	case d >= time.Hour:
		valueFormatter = chart.TimeHourValueFormatter
	default:
		valueFormatter = chart.TimeMinuteValueFormatter
	}

	canvas := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: valueFormatter,
			},
		},
		series: make(map[string]*chart.TimeSeries),
	}
	canvas.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&canvas.Chart),
	}
	return canvas
}

// Plot appends one sample to the named series.
func (c *Canvas) Plot(tag string, s types.Sample) {
	ts, ok := c.series[tag]
	if !ok {
		ts = &chart.TimeSeries{Name: tag}
		c.series[tag] = ts
		c.order = append(c.order, tag)
	}

	ts.XValues = append(ts.XValues, s.Time)
	ts.YValues = append(ts.YValues, s.Value)
}

// Len returns the number of points of the named series.
func (c *Canvas) Len(tag string) int {
	if ts, ok := c.series[tag]; ok {
		return len(ts.XValues)
	}
	return 0
}

// Render writes the PNG. Series with fewer than two points are skipped.
func (c *Canvas) Render(w io.Writer) error {
	c.Chart.Series = nil
	for _, tag := range c.order {
		if ts := c.series[tag]; len(ts.XValues) > 1 {
			c.Chart.Series = append(c.Chart.Series, *ts)
		}
	}

	if len(c.Chart.Series) == 0 {
		return errors.New("nothing to plot")
	}

	return c.Chart.Render(chart.PNG, w)
}

// Save renders the canvas into the file.
func (c *Canvas) Save(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "create %s", fileName)
	}
	//nolint:errcheck
	defer f.Close()

	return c.Render(f)
}
