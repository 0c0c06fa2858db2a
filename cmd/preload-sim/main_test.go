package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mknyszek/preload-model/aggregate"
	"github.com/mknyszek/preload-model/config"
)

const singlePoint = `{"hardware": {"MyriadX": {"Conv2D": {"timing": {"parameters": {
	"filter": [1], "in_c": [1], "in_s": [17], "kx": [1], "ky": [1], "stride": [1]
}}}}}}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHistogramText(t *testing.T) {
	out, err := execute(t, "histogram", writeConfig(t, singlePoint))
	if err != nil {
		t.Fatal(err)
	}
	want := "Max memory: 35\n" +
		"Distinct memory values: 1\n" +
		"Values occurring 1 times: 1\n" +
		"Values occurring 2 times: 0\n" +
		"Values occurring 3 times: 0\n" +
		"Combinations: 1\n"
	if out != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestHistogramJSONPreset(t *testing.T) {
	doc, err := config.Generate("myriadx-small")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(&doc)
	if err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "histogram", "--format", "json", "--metric", "preloads", writeConfig(t, string(data)))
	if err != nil {
		t.Fatal(err)
	}
	var sum aggregate.Summary
	if err := json.Unmarshal([]byte(out), &sum); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	// 3 spatial x 8 channels x 3 filters x 2 x 2 kernels x 2 strides
	if sum.Combinations != 576 {
		t.Errorf("expected 576 combinations, got %d", sum.Combinations)
	}
}

func TestHistogramErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "histogram", filepath.Join(dir, "missing.json")); !errors.Is(err, config.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := execute(t, "histogram", writeConfig(t, "{")); !errors.Is(err, config.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
	if _, err := execute(t, "histogram", "--hardware", "KeemBay", writeConfig(t, singlePoint)); !errors.Is(err, config.ErrKeyMissing) {
		t.Errorf("expected ErrKeyMissing, got %v", err)
	}
	if _, err := execute(t, "histogram", "--metric", "flops", writeConfig(t, singlePoint)); err == nil {
		t.Errorf("expected error for unknown metric")
	}
	if _, err := execute(t, "histogram"); err == nil {
		t.Errorf("expected error for missing argument")
	}
}

func TestSeriesPresetCSV(t *testing.T) {
	out, err := execute(t, "series", "--preset", "myriadx-small", "--sink", "csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 577 {
		t.Errorf("expected header and 576 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"In(7, 7), k(1, 1), fi 16, st 1",1,`) {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestSeriesChartFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.png")
	if _, err := execute(t, "series", "--sink", "chart", "-o", path, writeConfig(t, singlePoint)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("expected a PNG file")
	}
}

func TestSeriesUnknownSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if _, err := execute(t, "series", "--sink", "gif", "-o", path); err == nil {
		t.Errorf("expected error for unknown sink")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file to be created")
	}
}

func TestSettingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settings, []byte("memory:\n  activation_fraction: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--settings", settings, "histogram", writeConfig(t, singlePoint)); err == nil {
		t.Errorf("expected error for invalid activation fraction")
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"modes:", "histogram", "metrics:", "weight-preloads", "sinks:", "chart", "presets:", "myriadx-gui"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected list output to contain %q:\n%s", want, out)
		}
	}
}
