// Command preload-sim sweeps Conv2D configurations and estimates how many
// preloads each one needs on a fixed accelerator memory budget.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mknyszek/preload-model/config"
	"github.com/mknyszek/preload-model/memory"
	"github.com/mknyszek/preload-model/sweep"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	settings config.Settings
	model    memory.Model
	log      *logrus.Logger
}

type rootOptions struct {
	v            *viper.Viper
	settingsPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}
	root := &cobra.Command{
		Use:           "preload-sim",
		Short:         "Estimate memory preload costs for Conv2D parameter sweeps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.settingsPath, "settings", "", "YAML or JSON file with memory model settings (optional)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("hardware", config.DefaultHardware, "hardware entry to read from the config document")
	pf.String("operation", config.DefaultOperation, "operation entry to read from the config document")
	pf.String("profile", config.DefaultProfile, "mode entry to read from the config document")
	for key, flag := range map[string]string{
		"log_level": "log-level",
		"hardware":  "hardware",
		"operation": "operation",
		"profile":   "profile",
	} {
		if err := opts.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newHistogramCmd(opts),
		newSeriesCmd(opts),
		newListCmd(),
	)
	return root
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	s, err := config.LoadSettings(o.v, o.settingsPath)
	if err != nil {
		return nil, err
	}
	log := newLogger(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	m, err := memory.NewModel(s.Memory)
	if err != nil {
		return nil, fmt.Errorf("building memory model: %w", err)
	}
	log.WithFields(logrus.Fields{
		"activation_bytes": m.Activations.Capacity,
		"weight_bytes":     m.Weights.Capacity,
		"word_size":        m.Activations.WordSize,
		"scale":            m.Scale,
	}).Debug("memory model")
	return &env{settings: s, model: m, log: log}, nil
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return log
}

// loadAxes resolves the configured profile from the document at path.
func (e *env) loadAxes(path string) (sweep.Axes, error) {
	doc, err := config.Load(path)
	if err != nil {
		return sweep.Axes{}, err
	}
	p, err := doc.Lookup(e.settings.Hardware, e.settings.Operation, e.settings.Profile)
	if err != nil {
		return sweep.Axes{}, err
	}
	axes := p.Parameters.Axes()
	e.log.WithFields(logrus.Fields{
		"path":         path,
		"profile":      strings.Join([]string{e.settings.Hardware, e.settings.Operation, e.settings.Profile}, "/"),
		"combinations": axes.Combinations(),
	}).Info("loaded configuration")
	return axes, nil
}

// presetAxes resolves the built-in preset with the given name.
func (e *env) presetAxes(name string) (sweep.Axes, error) {
	doc, err := config.Generate(name)
	if err != nil {
		return sweep.Axes{}, err
	}
	p, err := doc.Lookup(config.DefaultHardware, config.DefaultOperation, config.DefaultProfile)
	if err != nil {
		return sweep.Axes{}, err
	}
	axes := p.Parameters.Axes()
	e.log.WithFields(logrus.Fields{
		"preset":       name,
		"combinations": axes.Combinations(),
	}).Info("using preset")
	return axes, nil
}
