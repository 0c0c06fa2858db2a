// Command config-gen writes the built-in sweep presets as characterisation
// documents that preload-sim can read.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mknyszek/preload-model/config"
)

var (
	outputFlag = flag.String("o", ".", "where to output config documents")
	filterFlag = flag.String("filter", "", "filter presets by name")
	listFlag   = flag.Bool("l", false, "list available presets")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	names := config.Presets()
	if *listFlag {
		fmt.Println(strings.Join(names, "\n"))
		return nil
	}
	names, err := filterNames(names, *filterFlag)
	if err != nil {
		return err
	}
	for _, name := range names {
		doc, err := config.Generate(name)
		if err != nil {
			// Internal error.
			panic(err)
		}
		path := filepath.Join(*outputFlag, fmt.Sprintf("%s.json", name))
		if err := writeDocument(&doc, path); err != nil {
			return fmt.Errorf("writing preset to %q: %w", path, err)
		}
		logrus.WithField("path", path).Info("wrote preset")
	}
	return nil
}

func filterNames(names []string, filter string) ([]string, error) {
	if filter == "" {
		return names, nil
	}
	r, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("compiling filter regexp: %w", err)
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if r.MatchString(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

func writeDocument(doc *config.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
