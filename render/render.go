// Package render writes sweep results to presentation sinks.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/mknyszek/preload-model/aggregate"
)

// Sink presents a set of cost series.
type Sink interface {
	Render(*aggregate.Series) error
}

type sinkFactory func(io.Writer) Sink

var sinks = map[string]sinkFactory{
	"csv":      func(w io.Writer) Sink { return &csvSink{w: w} },
	"json":     func(w io.Writer) Sink { return &jsonSink{w: w} },
	"chart":    func(w io.Writer) Sink { return &chartSink{w: w, width: 1024, height: 640} },
	"terminal": func(w io.Writer) Sink { return &terminalSink{w: w} },
}

func Sinks() []string {
	var s []string
	for name := range sinks {
		s = append(s, name)
	}
	sort.Strings(s)
	return s
}

// NewSink returns the named sink writing to w.
func NewSink(name string, w io.Writer) (Sink, error) {
	f, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("unknown sink %q", name)
	}
	return f(w), nil
}

// checkShape reports an error if any series does not have one value per x.
func checkShape(series *aggregate.Series) error {
	n := len(series.X())
	for _, label := range series.Labels() {
		if got := len(series.Values(label)); got != n {
			return fmt.Errorf("series %q has %d values for %d x values", label, got, n)
		}
	}
	return nil
}

type csvSink struct {
	w io.Writer
}

func (s *csvSink) Render(series *aggregate.Series) error {
	if err := checkShape(series); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.w, "Configuration,Channels,Cost"); err != nil {
		return err
	}
	x := series.X()
	for _, label := range series.Labels() {
		for i, v := range series.Values(label) {
			if _, err := fmt.Fprintf(s.w, "%q,%d,%d\n", label, x[i], v); err != nil {
				return err
			}
		}
	}
	return nil
}
