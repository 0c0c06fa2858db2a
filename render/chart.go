package render

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/mknyszek/preload-model/aggregate"
)

// chartSink draws every series as a line on a single PNG chart.
type chartSink struct {
	w             io.Writer
	width, height int
}

func (s *chartSink) Render(series *aggregate.Series) error {
	if series.Len() == 0 {
		return errors.New("no series to plot")
	}
	if err := checkShape(series); err != nil {
		return err
	}
	x := series.X()
	if len(x) == 0 {
		return errors.New("no x values to plot")
	}
	xs := make([]float64, len(x))
	for i, v := range x {
		xs[i] = float64(v)
	}

	var maxY float64
	lines := make([]chart.Series, 0, series.Len())
	for _, label := range series.Labels() {
		vs := series.Values(label)
		ys := make([]float64, len(vs))
		for i, v := range vs {
			ys[i] = float64(v)
			if ys[i] > maxY {
				maxY = ys[i]
			}
		}
		lines = append(lines, chart.ContinuousSeries{
			Name:    label,
			XValues: xs,
			YValues: ys,
		})
	}

	// go-chart refuses to render a zero-width range, which a flat series
	// would produce.
	if maxY == 0 {
		maxY = 1
	}

	ch := chart.Chart{
		Title:      "Preloads over input channels",
		Width:      s.width,
		Height:     s.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Input channels", Range: xRange(xs)},
		YAxis:      chart.YAxis{Name: "Cost", Range: &chart.ContinuousRange{Min: 0, Max: maxY}},
		Series:     lines,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, s.w)
}

// xRange spans every value in xs, which need not be sorted. A single
// distinct value gets a unit-wide range.
func xRange(xs []float64) *chart.ContinuousRange {
	r := &chart.ContinuousRange{Min: xs[0], Max: xs[0]}
	for _, v := range xs[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	if r.Max <= r.Min {
		r.Max = r.Min + 1
	}
	return r
}
