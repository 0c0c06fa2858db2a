package config

import (
	"fmt"
	"sort"

	"github.com/mknyszek/preload-model/sweep"
)

// Generate builds the named preset document.
func Generate(name string) (Document, error) {
	g, ok := presets[name]
	if !ok {
		return Document{}, fmt.Errorf("preset %q not found", name)
	}
	return generate(g()), nil
}

func Presets() []string {
	var s []string
	for name := range presets {
		s = append(s, name)
	}
	sort.Strings(s)
	return s
}

func generate(p preset) Document {
	return Document{
		Hardware: map[string]Hardware{
			p.hardware: {
				DefaultOperation: {
					DefaultProfile: Profile{
						Characterisation: p.characterisation,
						Parameters: Conv2DParameters{
							Filter:            p.axes.Filters,
							InC:               p.axes.Channels,
							InS:               p.axes.Spatial,
							Kx:                p.axes.KernelX,
							Ky:                p.axes.KernelY,
							Stride:            p.axes.Stride,
							MaximumComplexity: p.maxComplexity,
						},
						Modes: []string{DefaultProfile},
					},
				},
			},
		},
	}
}

type preset struct {
	hardware         string
	characterisation Characterisation
	axes             sweep.Axes
	maxComplexity    uint64
}

var defaultCharacterisation = Characterisation{
	MinIterations: 10,
	MaxIterations: 1000,
	ErrorMargin:   0.05,
	Confidence:    0.95,
}

var presets = map[string]func() preset{
	// The ranges the channel-series plot was first drawn with.
	"myriadx-gui": func() preset {
		return preset{
			hardware:         DefaultHardware,
			characterisation: defaultCharacterisation,
			axes: sweep.Axes{
				Spatial:  sweep.Values(17),
				Channels: sweep.Span(1, 1534),
				Filters:  sweep.Span(1, 1025).Every(128),
				KernelX:  sweep.Values(1),
				KernelY:  sweep.Values(1),
				Stride:   sweep.Values(1),
			},
			maxComplexity: 1 << 32,
		}
	},
	"myriadx-small": func() preset {
		return preset{
			hardware:         DefaultHardware,
			characterisation: defaultCharacterisation,
			axes: sweep.Axes{
				Spatial:  sweep.Values(7, 14, 28),
				Channels: sweep.Span(1, 65).Every(8),
				Filters:  sweep.Values(16, 32, 64),
				KernelX:  sweep.Values(1, 3),
				KernelY:  sweep.Values(1, 3),
				Stride:   sweep.Values(1, 2),
			},
			maxComplexity: 1 << 24,
		}
	},
	"myriadx-kernels": func() preset {
		return preset{
			hardware:         DefaultHardware,
			characterisation: defaultCharacterisation,
			axes: sweep.Axes{
				Spatial:  sweep.Values(17, 33),
				Channels: sweep.Span(1, 513).Every(32),
				Filters:  sweep.Span(1, 513).Every(64),
				KernelX:  sweep.Span(1, 8).Every(2),
				KernelY:  sweep.Span(1, 8).Every(2),
				Stride:   sweep.Values(1, 2, 4),
			},
			maxComplexity: 1 << 32,
		}
	},
	"myriadx-imagenet": func() preset {
		return preset{
			hardware: DefaultHardware,
			characterisation: Characterisation{
				MinIterations: 5,
				MaxIterations: 200,
				ErrorMargin:   0.1,
				Confidence:    0.9,
			},
			axes: sweep.Axes{
				Spatial:  sweep.Values(7, 14, 28, 56, 112, 224),
				Channels: sweep.Values(3, 64, 128, 256, 512),
				Filters:  sweep.Values(64, 128, 256, 512),
				KernelX:  sweep.Values(1, 3, 7),
				KernelY:  sweep.Values(1, 3, 7),
				Stride:   sweep.Values(1, 2),
			},
			maxComplexity: 1 << 36,
		}
	},
}
