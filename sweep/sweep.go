// Package sweep enumerates the Cartesian product of Conv2D hyperparameter
// axes and evaluates a cost metric at every point.
package sweep

import (
	"fmt"
	"sort"

	"github.com/mknyszek/preload-model/aggregate"
)

// Enumerate calls visit once for every point in axes. Channels is the
// innermost axis, so all points sharing a label are visited consecutively.
func Enumerate(axes *Axes, visit func(Point)) {
	for _, s := range axes.Spatial {
		for _, f := range axes.Filters {
			for _, kx := range axes.KernelX {
				for _, ky := range axes.KernelY {
					for _, st := range axes.Stride {
						for _, c := range axes.Channels {
							visit(Point{
								Spatial:  s,
								Channels: c,
								Filters:  f,
								KernelX:  kx,
								KernelY:  ky,
								Stride:   st,
							})
						}
					}
				}
			}
		}
	}
}

// Series groups metric values by point label, ordered along the channel axis.
// When repeated axis values produce the same label twice, the later run
// replaces the earlier one.
func Series(axes *Axes, metric Metric) *aggregate.Series {
	s := aggregate.NewSeries(axes.Channels)
	n := 0
	Enumerate(axes, func(p Point) {
		label := p.Label()
		if n%len(axes.Channels) == 0 {
			s.Begin(label)
		}
		n++
		s.Append(label, metric(p))
	})
	return s
}

// Histogram counts how many points produce each metric value.
func Histogram(axes *Axes, metric Metric) *aggregate.Histogram {
	h := aggregate.NewHistogram()
	Enumerate(axes, func(p Point) {
		h.Add(metric(p))
	})
	return h
}

// Mode selects how a sweep aggregates its results.
type Mode int

const (
	SeriesMode Mode = iota
	HistogramMode
)

var modeNames = map[string]Mode{
	"series":    SeriesMode,
	"histogram": HistogramMode,
}

func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(name string) (Mode, error) {
	m, ok := modeNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown sweep mode %q", name)
	}
	return m, nil
}

func Modes() []string {
	var s []string
	for name := range modeNames {
		s = append(s, name)
	}
	sort.Strings(s)
	return s
}

// Result holds the aggregate of a sweep. Only the field matching Mode is set.
type Result struct {
	Mode      Mode
	Series    *aggregate.Series
	Histogram *aggregate.Histogram
}

// Run sweeps axes with metric and aggregates according to mode.
func Run(mode Mode, axes *Axes, metric Metric) (Result, error) {
	switch mode {
	case SeriesMode:
		return Result{Mode: mode, Series: Series(axes, metric)}, nil
	case HistogramMode:
		return Result{Mode: mode, Histogram: Histogram(axes, metric)}, nil
	}
	return Result{}, fmt.Errorf("unsupported sweep mode %v", mode)
}
