package aggregate

import "sort"

// Histogram counts how many configurations produce each cost.
type Histogram struct {
	counts map[uint64]uint64
	total  uint64
	max    uint64
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[uint64]uint64)}
}

func (h *Histogram) Add(v uint64) {
	h.addN(v, 1)
}

func (h *Histogram) addN(v, n uint64) {
	if h.total == 0 || v > h.max {
		h.max = v
	}
	h.counts[v] += n
	h.total += n
}

// Merge folds o into h. Merging is commutative and associative.
func (h *Histogram) Merge(o *Histogram) {
	for v, n := range o.counts {
		h.addN(v, n)
	}
}

// Count returns the number of configurations that produced v.
func (h *Histogram) Count(v uint64) uint64 {
	return h.counts[v]
}

// Distinct returns the number of distinct costs seen.
func (h *Histogram) Distinct() int {
	return len(h.counts)
}

// Total returns the number of configurations added.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Max returns the largest cost seen, and false if the histogram is empty.
func (h *Histogram) Max() (uint64, bool) {
	return h.max, h.total != 0
}

// Costs returns the distinct costs in ascending order.
func (h *Histogram) Costs() []uint64 {
	vs := make([]uint64, 0, len(h.counts))
	for v := range h.counts {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// CountOfCounts maps an occurrence count to the number of distinct costs that
// occurred exactly that many times.
func (h *Histogram) CountOfCounts() map[uint64]int {
	coc := make(map[uint64]int)
	for _, n := range h.counts {
		coc[n]++
	}
	return coc
}

// Summary is the reportable result of a histogram sweep.
type Summary struct {
	MaxCost           uint64         `json:"max_cost" yaml:"max_cost"`
	DistinctCostCount int            `json:"distinct_cost_count" yaml:"distinct_cost_count"`
	CountOfCount      map[uint64]int `json:"count_of_count" yaml:"count_of_count"`
	Combinations      uint64         `json:"combinations" yaml:"combinations"`
}

func (h *Histogram) Summary() Summary {
	maxCost, _ := h.Max()
	return Summary{
		MaxCost:           maxCost,
		DistinctCostCount: h.Distinct(),
		CountOfCount:      h.CountOfCounts(),
		Combinations:      h.total,
	}
}
