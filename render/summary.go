package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mknyszek/preload-model/aggregate"
)

// SummaryFormats lists the formats WriteSummary accepts.
func SummaryFormats() []string {
	return []string{"json", "text", "yaml"}
}

// WriteSummary writes sum to w in the given format.
func WriteSummary(w io.Writer, format string, sum aggregate.Summary) error {
	switch format {
	case "text":
		fmt.Fprintf(w, "Max memory: %d\n", sum.MaxCost)
		fmt.Fprintf(w, "Distinct memory values: %d\n", sum.DistinctCostCount)
		for c := uint64(1); c <= 3; c++ {
			fmt.Fprintf(w, "Values occurring %d times: %d\n", c, sum.CountOfCount[c])
		}
		_, err := fmt.Fprintf(w, "Combinations: %d\n", sum.Combinations)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(&sum)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&sum); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown summary format %q", format)
}
