package sweep

// Axis is an ordered list of values for one sweep dimension.
type Axis []uint64

// Values returns an axis containing exactly vs.
func Values(vs ...uint64) Axis {
	return append(Axis(nil), vs...)
}

// Span returns the half-open range [lo, hi).
func Span(lo, hi uint64) Axis {
	if hi <= lo {
		return Axis{}
	}
	a := make(Axis, 0, hi-lo)
	for v := lo; v < hi; v++ {
		a = append(a, v)
	}
	return a
}

// Every keeps every n-th value of a, starting with the first.
func (a Axis) Every(n int) Axis {
	if n <= 1 {
		return append(Axis(nil), a...)
	}
	r := make(Axis, 0, (len(a)+n-1)/n)
	for i := 0; i < len(a); i += n {
		r = append(r, a[i])
	}
	return r
}

// Axes is the full configuration space of a Conv2D sweep.
type Axes struct {
	// Spatial is used for both input width and height.
	Spatial  Axis
	Channels Axis
	Filters  Axis
	KernelX  Axis
	KernelY  Axis
	// Stride is used for both directions.
	Stride Axis
}

// Combinations returns the number of points in the Cartesian product.
func (a *Axes) Combinations() int {
	return len(a.Spatial) * len(a.Channels) * len(a.Filters) * len(a.KernelX) * len(a.KernelY) * len(a.Stride)
}
