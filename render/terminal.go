package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mknyszek/preload-model/aggregate"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// terminalSink prints one summary row per series.
type terminalSink struct {
	w io.Writer
}

func (s *terminalSink) Render(series *aggregate.Series) error {
	if err := checkShape(series); err != nil {
		return err
	}
	labels := series.Labels()
	width := len("Configuration")
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s %10s %10s %10s", width, "Configuration", "Points", "Min", "Max", "Last")))
	b.WriteByte('\n')
	for _, l := range labels {
		vs := series.Values(l)
		lo, hi, last := bounds(vs)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, l)))
		fmt.Fprintf(&b, " %8d %10d %10d %10d\n", len(vs), lo, hi, last)
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d series", len(labels))))
	b.WriteByte('\n')
	_, err := io.WriteString(s.w, b.String())
	return err
}

func bounds(vs []uint64) (lo, hi, last uint64) {
	if len(vs) == 0 {
		return 0, 0, 0
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, vs[len(vs)-1]
}
