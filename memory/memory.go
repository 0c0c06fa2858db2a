// Package memory models the on-chip memory budget of the accelerator as two
// virtual pools, one for activations and one for weights, and estimates how
// many preloads it takes to move data into them.
package memory

import "fmt"

// Pool is a virtual memory with a fixed capacity, addressed in words.
type Pool struct {
	Capacity uint64 `json:"capacity"`
	WordSize uint64 `json:"word_size"`
}

// PreloadCount returns the heuristic number of preloads needed to move
// numRows rows of rowSize words into p.
//
// It panics if p.Capacity is zero.
func PreloadCount(p Pool, numRows, rowSize, scale uint64) uint64 {
	return (rowSize * numRows * p.WordSize / p.Capacity) * scale
}

type Config struct {
	TotalBytes         uint64  `json:"total_bytes" mapstructure:"total_bytes"`
	ActivationFraction float64 `json:"activation_fraction" mapstructure:"activation_fraction"`
	WordSize           uint64  `json:"word_size" mapstructure:"word_size"`
	PreloadScale       uint64  `json:"preload_scale" mapstructure:"preload_scale"`
}

// DefaultConfig is a 2.5 MiB budget split 25/75 between activations and
// weights, with 4-byte words.
func DefaultConfig() Config {
	return Config{
		TotalBytes:         5 << 19,
		ActivationFraction: 0.25,
		WordSize:           4,
		PreloadScale:       50,
	}
}

// Model is a memory budget partitioned into activation and weight pools.
type Model struct {
	Activations Pool
	Weights     Pool
	Scale       uint64
}

func NewModel(cfg Config) (Model, error) {
	if cfg.ActivationFraction <= 0 || cfg.ActivationFraction >= 1 {
		return Model{}, fmt.Errorf("activation fraction must be in (0, 1), got %v", cfg.ActivationFraction)
	}
	if cfg.WordSize == 0 {
		return Model{}, fmt.Errorf("word size must be positive")
	}
	act := uint64(float64(cfg.TotalBytes) * cfg.ActivationFraction)
	if act == 0 || act >= cfg.TotalBytes {
		return Model{}, fmt.Errorf("total of %d bytes is too small to split at %v", cfg.TotalBytes, cfg.ActivationFraction)
	}
	return Model{
		Activations: Pool{Capacity: act, WordSize: cfg.WordSize},
		Weights:     Pool{Capacity: cfg.TotalBytes - act, WordSize: cfg.WordSize},
		Scale:       cfg.PreloadScale,
	}, nil
}

// Total returns the combined capacity of both pools.
func (m Model) Total() uint64 {
	return m.Activations.Capacity + m.Weights.Capacity
}

func (m Model) ActivationPreloads(numRows, rowSize uint64) uint64 {
	return PreloadCount(m.Activations, numRows, rowSize, m.Scale)
}

func (m Model) WeightPreloads(numRows, rowSize uint64) uint64 {
	return PreloadCount(m.Weights, numRows, rowSize, m.Scale)
}
