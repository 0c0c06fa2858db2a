// Package config loads the characterisation document that describes which
// Conv2D configurations to sweep on each piece of hardware, along with the
// settings of the memory model itself.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mknyszek/preload-model/sweep"
)

const (
	DefaultHardware  = "MyriadX"
	DefaultOperation = "Conv2D"
	DefaultProfile   = "timing"
)

type Document struct {
	Hardware map[string]Hardware `json:"hardware"`
}

// Hardware maps operation names to their profiles.
type Hardware map[string]Operation

// Operation maps mode names, such as "timing", to profiles.
type Operation map[string]Profile

type Profile struct {
	Characterisation Characterisation `json:"characterisation_parameters"`
	Parameters       Conv2DParameters `json:"parameters"`
	Modes            []string         `json:"modes"`
}

type Characterisation struct {
	MinIterations int     `json:"min_iterations"`
	MaxIterations int     `json:"max_iterations"`
	ErrorMargin   float64 `json:"error_margin"`
	Confidence    float64 `json:"confidence"`
}

// Conv2DParameters lists the explicit values of each sweep axis.
type Conv2DParameters struct {
	Filter            []uint64 `json:"filter"`
	InC               []uint64 `json:"in_c"`
	InS               []uint64 `json:"in_s"`
	Kx                []uint64 `json:"kx"`
	Ky                []uint64 `json:"ky"`
	Stride            []uint64 `json:"stride"`
	MaximumComplexity uint64   `json:"maximum_complexity"`
}

// Validate reports an error if any value would produce an undefined layer
// shape.
func (p *Conv2DParameters) Validate() error {
	for _, s := range p.InS {
		if s == 0 {
			return fmt.Errorf("in_s values must be positive")
		}
	}
	for _, s := range p.Stride {
		if s == 0 {
			return fmt.Errorf("stride values must be positive")
		}
	}
	return nil
}

func (p *Conv2DParameters) Axes() sweep.Axes {
	return sweep.Axes{
		Spatial:  sweep.Values(p.InS...),
		Channels: sweep.Values(p.InC...),
		Filters:  sweep.Values(p.Filter...),
		KernelX:  sweep.Values(p.Kx...),
		KernelY:  sweep.Values(p.Ky...),
		Stride:   sweep.Values(p.Stride...),
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Kind: ErrNotFound, Path: path}
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes a document from data.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Kind: ErrMalformed, Path: "<input>", Err: err}
	}
	if doc.Hardware == nil {
		return nil, &Error{Kind: ErrMalformed, Path: "<input>", Err: errors.New(`missing "hardware" object`)}
	}
	return &doc, nil
}

// Lookup returns the profile at hardware.<hw>.<op>.<mode>, validated.
func (d *Document) Lookup(hw, op, mode string) (*Profile, error) {
	path := []string{"hardware", hw}
	h, ok := d.Hardware[hw]
	if !ok {
		return nil, &Error{Kind: ErrKeyMissing, Path: strings.Join(path, ".")}
	}
	path = append(path, op)
	o, ok := h[op]
	if !ok {
		return nil, &Error{Kind: ErrKeyMissing, Path: strings.Join(path, ".")}
	}
	path = append(path, mode)
	p, ok := o[mode]
	if !ok {
		return nil, &Error{Kind: ErrKeyMissing, Path: strings.Join(path, ".")}
	}
	if err := p.Parameters.Validate(); err != nil {
		return nil, &Error{Kind: ErrMalformed, Path: strings.Join(append(path, "parameters"), "."), Err: err}
	}
	return &p, nil
}
