package layer

import "fmt"

// Dims3 is a width x height x channels extent.
type Dims3 struct {
	X, Y, C uint64
}

func (d Dims3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", d.X, d.Y, d.C)
}

// Dims2 is a two-dimensional extent, used for kernels and strides.
type Dims2 struct {
	X, Y uint64
}

func (d Dims2) String() string {
	return fmt.Sprintf("(%d, %d)", d.X, d.Y)
}

// Conv2D describes the shape of a single 2-D convolution layer.
type Conv2D struct {
	Input  Dims3
	Output Dims3
	Kernel Dims2
	Stride Dims2
}

// NewConv2D returns the layer shape for input convolved with filters kernels
// of the given size and stride. Stride components must be non-zero.
func NewConv2D(input Dims3, kernel Dims2, filters uint64, stride Dims2) Conv2D {
	return Conv2D{
		Input: input,
		Output: Dims3{
			X: outputExtent(input.X, stride.X),
			Y: outputExtent(input.Y, stride.Y),
			C: filters,
		},
		Kernel: kernel,
		Stride: stride,
	}
}

func outputExtent(in, stride uint64) uint64 {
	if in == 0 {
		return 0
	}
	return (in - 1) / stride
}

// Formula selects how ActivationMemory accounts for the output feature map.
type Formula int

const (
	// Literal charges kernel-height rows of output.
	Literal Formula = iota
	// Corrected charges the full output height instead.
	Corrected
)

func (f Formula) String() string {
	switch f {
	case Literal:
		return "literal"
	case Corrected:
		return "corrected"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ActivationMemory returns the number of words of feature-map storage l needs.
func ActivationMemory(l Conv2D, f Formula) uint64 {
	outRows := l.Kernel.Y
	if f == Corrected {
		outRows = l.Output.Y
	}
	return l.Input.X*l.Kernel.Y*l.Input.C + l.Output.X*outRows*l.Output.C
}

// WeightMemory returns the number of words of parameter storage l needs,
// including one bias per filter.
func WeightMemory(l Conv2D) uint64 {
	return l.Input.C*l.Output.C*l.Kernel.X*l.Kernel.Y + l.Output.C
}
