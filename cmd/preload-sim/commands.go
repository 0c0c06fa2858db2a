package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mknyszek/preload-model/config"
	"github.com/mknyszek/preload-model/render"
	"github.com/mknyszek/preload-model/sweep"
)

const defaultPreset = "myriadx-gui"

func (e *env) run(mode sweep.Mode, axes *sweep.Axes, metricName string) (sweep.Result, error) {
	metric, err := sweep.NewMetric(metricName, e.model)
	if err != nil {
		return sweep.Result{}, err
	}
	start := time.Now()
	r, err := sweep.Run(mode, axes, metric)
	if err != nil {
		return sweep.Result{}, err
	}
	e.log.WithFields(logrus.Fields{
		"mode":         mode,
		"metric":       metricName,
		"combinations": axes.Combinations(),
		"duration":     time.Since(start),
	}).Info("sweep complete")
	return r, nil
}

func newHistogramCmd(opts *rootOptions) *cobra.Command {
	var metric, format string
	cmd := &cobra.Command{
		Use:   "histogram <config.json>",
		Short: "Tally how many configurations share each cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			axes, err := e.loadAxes(args[0])
			if err != nil {
				return err
			}
			r, err := e.run(sweep.HistogramMode, &axes, metric)
			if err != nil {
				return err
			}
			return render.WriteSummary(cmd.OutOrStdout(), format, r.Histogram.Summary())
		},
	}
	cmd.Flags().StringVar(&metric, "metric", sweep.DefaultHistogramMetric, "cost metric: "+strings.Join(sweep.Metrics(), ", "))
	cmd.Flags().StringVar(&format, "format", "text", "output format: "+strings.Join(render.SummaryFormats(), ", "))
	return cmd
}

func newSeriesCmd(opts *rootOptions) *cobra.Command {
	var metric, sinkName, output, preset string
	cmd := &cobra.Command{
		Use:   "series [config.json]",
		Short: "Compute a cost series over input channels for each configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			var axes sweep.Axes
			if len(args) == 1 {
				axes, err = e.loadAxes(args[0])
			} else {
				axes, err = e.presetAxes(preset)
			}
			if err != nil {
				return err
			}

			if _, err := render.NewSink(sinkName, io.Discard); err != nil {
				return err
			}
			r, err := e.run(sweep.SeriesMode, &axes, metric)
			if err != nil {
				return err
			}
			if output == "" {
				return renderSeries(cmd.OutOrStdout(), sinkName, r)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := renderSeries(f, sinkName, r); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			e.log.WithField("path", output).Info("wrote series")
			return nil
		},
	}
	cmd.Flags().StringVar(&metric, "metric", sweep.DefaultSeriesMetric, "cost metric: "+strings.Join(sweep.Metrics(), ", "))
	cmd.Flags().StringVar(&sinkName, "sink", "terminal", "output sink: "+strings.Join(render.Sinks(), ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write to instead of stdout")
	cmd.Flags().StringVar(&preset, "preset", defaultPreset, "built-in sweep to use when no config file is given: "+strings.Join(config.Presets(), ", "))
	return cmd
}

func renderSeries(w io.Writer, sinkName string, r sweep.Result) error {
	sink, err := render.NewSink(sinkName, w)
	if err != nil {
		return err
	}
	if err := sink.Render(r.Series); err != nil {
		return fmt.Errorf("rendering %s: %w", sinkName, err)
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available modes, metrics, sinks and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, sec := range []struct {
				name  string
				items []string
			}{
				{"modes", sweep.Modes()},
				{"metrics", sweep.Metrics()},
				{"sinks", render.Sinks()},
				{"formats", render.SummaryFormats()},
				{"presets", config.Presets()},
			} {
				if err := writeSection(w, sec.name, sec.items); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeSection(w io.Writer, name string, items []string) error {
	_, err := fmt.Fprintf(w, "%s:\n  %s\n", name, strings.Join(items, "\n  "))
	return err
}
