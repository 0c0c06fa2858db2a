package render

import (
	"encoding/json"
	"io"

	"github.com/mknyszek/preload-model/aggregate"
)

type jsonSeries struct {
	Label  string   `json:"label"`
	X      []uint64 `json:"x"`
	Values []uint64 `json:"values"`
}

type jsonSink struct {
	w io.Writer
}

func (s *jsonSink) Render(series *aggregate.Series) error {
	if err := checkShape(series); err != nil {
		return err
	}
	out := make([]jsonSeries, 0, series.Len())
	for _, label := range series.Labels() {
		out = append(out, jsonSeries{
			Label:  label,
			X:      series.X(),
			Values: series.Values(label),
		})
	}
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "    ")
	return enc.Encode(out)
}
