// Package aggregate folds per-configuration costs into the two result shapes
// a sweep can produce: named cost series and cost frequency histograms.
package aggregate

// Series maps configuration labels to the ordered costs measured along the
// inner sweep axis.
type Series struct {
	x      []uint64
	labels []string
	values map[string][]uint64
}

// NewSeries returns an empty Series whose values are plotted against x.
func NewSeries(x []uint64) *Series {
	return &Series{
		x:      append([]uint64(nil), x...),
		values: make(map[string][]uint64),
	}
}

// Begin starts a new run for label, discarding any values it already holds.
// The label keeps its original position in Labels.
func (s *Series) Begin(label string) {
	if _, ok := s.values[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.values[label] = make([]uint64, 0, len(s.x))
}

// Append adds v to the end of label's series, creating it if necessary.
func (s *Series) Append(label string, v uint64) {
	vs, ok := s.values[label]
	if !ok {
		s.labels = append(s.labels, label)
	}
	s.values[label] = append(vs, v)
}

// Labels returns the labels in the order they were first appended.
func (s *Series) Labels() []string {
	return append([]string(nil), s.labels...)
}

func (s *Series) Values(label string) []uint64 {
	return s.values[label]
}

// X returns the inner axis values shared by every series.
func (s *Series) X() []uint64 {
	return s.x
}

// Len returns the number of labels.
func (s *Series) Len() int {
	return len(s.labels)
}
