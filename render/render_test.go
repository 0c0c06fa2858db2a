package render

import (
	"bytes"
	"encoding/json"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mknyszek/preload-model/aggregate"
	"github.com/mknyszek/preload-model/memory"
	"github.com/mknyszek/preload-model/sweep"
)

func testSeries() *aggregate.Series {
	s := aggregate.NewSeries([]uint64{1, 2, 3})
	for i, v := range []uint64{0, 50, 100} {
		s.Append("In(17, 17), k(1, 1), fi 1, st 1", v)
		s.Append("In(17, 17), k(1, 1), fi 129, st 1", v*2+uint64(i))
	}
	return s
}

func render(t *testing.T, name string, s *aggregate.Series) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	sink, err := NewSink(name, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := sink.Render(s); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return &buf
}

func TestCSVSink(t *testing.T) {
	out := render(t, "csv", testSeries()).String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header and 6 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Configuration,Channels,Cost" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if want := `"In(17, 17), k(1, 1), fi 129, st 1",3,202`; lines[6] != want {
		t.Errorf("expected last row %q, got %q", want, lines[6])
	}
}

func TestJSONSink(t *testing.T) {
	var got []jsonSeries
	if err := json.Unmarshal(render(t, "json", testSeries()).Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 series, got %d", len(got))
	}
	if got[0].Label != "In(17, 17), k(1, 1), fi 1, st 1" {
		t.Errorf("unexpected first label %q", got[0].Label)
	}
	if !reflect.DeepEqual(got[1].Values, []uint64{0, 101, 202}) {
		t.Errorf("unexpected values %v", got[1].Values)
	}
}

func TestChartSink(t *testing.T) {
	buf := render(t, "chart", testSeries())
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatalf("expected a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1024 || b.Dy() != 640 {
		t.Errorf("expected 1024x640, got %v", b)
	}
}

func TestChartSinkDegenerate(t *testing.T) {
	s := aggregate.NewSeries([]uint64{17})
	s.Append("flat", 0)
	if _, err := png.Decode(render(t, "chart", s)); err != nil {
		t.Fatalf("expected a PNG: %v", err)
	}

	sink, _ := NewSink("chart", &bytes.Buffer{})
	if err := sink.Render(aggregate.NewSeries(nil)); err == nil {
		t.Errorf("expected error for empty series")
	}
}

func TestTerminalSink(t *testing.T) {
	out := render(t, "terminal", testSeries()).String()
	for _, want := range []string{"Configuration", "In(17, 17), k(1, 1), fi 129, st 1", "2 series"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestUnknownSink(t *testing.T) {
	if _, err := NewSink("gif", &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for unknown sink")
	}
	if len(Sinks()) != 4 {
		t.Errorf("expected 4 sinks, got %v", Sinks())
	}
}

func testSummary() aggregate.Summary {
	h := aggregate.NewHistogram()
	for _, v := range []uint64{35, 35, 70, 70, 70, 140} {
		h.Add(v)
	}
	return h.Summary()
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, "text", testSummary()); err != nil {
		t.Fatal(err)
	}
	want := "Max memory: 140\n" +
		"Distinct memory values: 3\n" +
		"Values occurring 1 times: 1\n" +
		"Values occurring 2 times: 1\n" +
		"Values occurring 3 times: 1\n" +
		"Combinations: 6\n"
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestWriteSummaryStructured(t *testing.T) {
	sum := testSummary()

	var buf bytes.Buffer
	if err := WriteSummary(&buf, "json", sum); err != nil {
		t.Fatal(err)
	}
	var fromJSON aggregate.Summary
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromJSON, sum) {
		t.Errorf("json: expected %+v, got %+v", sum, fromJSON)
	}

	buf.Reset()
	if err := WriteSummary(&buf, "yaml", sum); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "max_cost: 140") {
		t.Errorf("yaml: expected max_cost field:\n%s", buf.String())
	}
	var fromYAML aggregate.Summary
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if fromYAML.DistinctCostCount != 3 || fromYAML.CountOfCount[3] != 1 {
		t.Errorf("yaml: unexpected summary %+v", fromYAML)
	}

	if err := WriteSummary(&buf, "xml", sum); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestSinksRepeatedAxisValues(t *testing.T) {
	m, err := memory.NewModel(memory.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	metric, err := sweep.NewMetric("weight-memory", m)
	if err != nil {
		t.Fatal(err)
	}
	axes := sweep.Axes{
		Spatial:  sweep.Values(17, 17),
		Channels: sweep.Values(1, 2),
		Filters:  sweep.Values(1),
		KernelX:  sweep.Values(1),
		KernelY:  sweep.Values(1),
		Stride:   sweep.Values(1),
	}
	s := sweep.Series(&axes, metric)
	for _, name := range Sinks() {
		out := render(t, name, s)
		if out.Len() == 0 {
			t.Errorf("%s: expected output", name)
		}
	}
	lines := strings.Split(strings.TrimSpace(render(t, "csv", s).String()), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header and 2 rows, got %d lines", len(lines))
	}
}

func TestSinksRejectMismatchedSeries(t *testing.T) {
	s := aggregate.NewSeries([]uint64{1, 2})
	s.Append("short", 1)
	for _, name := range Sinks() {
		sink, err := NewSink(name, &bytes.Buffer{})
		if err != nil {
			t.Fatal(err)
		}
		if err := sink.Render(s); err == nil {
			t.Errorf("%s: expected error for series with fewer values than x", name)
		}
	}
}

func TestChartSinkUnorderedChannels(t *testing.T) {
	s := aggregate.NewSeries([]uint64{512, 64, 3})
	for _, v := range []uint64{300, 40, 1} {
		s.Append("In(17, 17), k(1, 1), fi 1, st 1", v)
	}
	if _, err := png.Decode(render(t, "chart", s)); err != nil {
		t.Fatalf("expected a PNG: %v", err)
	}
}

func TestXRange(t *testing.T) {
	for _, tc := range []struct {
		xs       []float64
		min, max float64
	}{
		{[]float64{1, 2, 3}, 1, 3},
		{[]float64{512, 64, 3}, 3, 512},
		{[]float64{64, 512, 3, 128}, 3, 512},
		{[]float64{17}, 17, 18},
		{[]float64{5, 5}, 5, 6},
	} {
		r := xRange(tc.xs)
		if r.Min != tc.min || r.Max != tc.max {
			t.Errorf("xRange(%v): expected [%v, %v], got [%v, %v]", tc.xs, tc.min, tc.max, r.Min, r.Max)
		}
	}
}
