package sweep

import (
	"fmt"
	"sort"

	"github.com/mknyszek/preload-model/layer"
	"github.com/mknyszek/preload-model/memory"
)

// Metric computes the cost of a single sweep point.
type Metric func(Point) uint64

type metricFactory func(memory.Model) Metric

var metrics = map[string]metricFactory{
	"weight-preloads": func(m memory.Model) Metric {
		return func(p Point) uint64 {
			return m.WeightPreloads(p.Filters, p.KernelX*p.KernelY*p.Channels)
		}
	},
	"activation-preloads": func(m memory.Model) Metric {
		return func(p Point) uint64 {
			return m.ActivationPreloads(p.Spatial, p.Spatial*p.Channels)
		}
	},
	"preloads": func(m memory.Model) Metric {
		return func(p Point) uint64 {
			return m.ActivationPreloads(p.Spatial, p.Spatial*p.Channels) +
				m.WeightPreloads(p.Filters, p.KernelX*p.KernelY*p.Channels)
		}
	},
	"memory": func(memory.Model) Metric {
		return func(p Point) uint64 {
			l := p.Layer()
			return layer.ActivationMemory(l, layer.Literal) + layer.WeightMemory(l)
		}
	},
	"memory-corrected": func(memory.Model) Metric {
		return func(p Point) uint64 {
			l := p.Layer()
			return layer.ActivationMemory(l, layer.Corrected) + layer.WeightMemory(l)
		}
	},
	"activation-memory": func(memory.Model) Metric {
		return func(p Point) uint64 {
			return layer.ActivationMemory(p.Layer(), layer.Literal)
		}
	},
	"weight-memory": func(memory.Model) Metric {
		return func(p Point) uint64 {
			return layer.WeightMemory(p.Layer())
		}
	},
}

const (
	DefaultSeriesMetric    = "weight-preloads"
	DefaultHistogramMetric = "memory"
)

func Metrics() []string {
	var s []string
	for name := range metrics {
		s = append(s, name)
	}
	sort.Strings(s)
	return s
}

func NewMetric(name string, m memory.Model) (Metric, error) {
	f, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", name)
	}
	return f(m), nil
}
