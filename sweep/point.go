package sweep

import (
	"fmt"

	"github.com/mknyszek/preload-model/layer"
)

// Point is one combination of sweep axis values.
type Point struct {
	Spatial  uint64
	Channels uint64
	Filters  uint64
	KernelX  uint64
	KernelY  uint64
	Stride   uint64
}

func (p Point) Layer() layer.Conv2D {
	return layer.NewConv2D(
		layer.Dims3{X: p.Spatial, Y: p.Spatial, C: p.Channels},
		layer.Dims2{X: p.KernelX, Y: p.KernelY},
		p.Filters,
		layer.Dims2{X: p.Stride, Y: p.Stride},
	)
}

// Label identifies the point's position along every axis except channels.
func (p Point) Label() string {
	return fmt.Sprintf("In(%d, %d), k(%d, %d), fi %d, st %d",
		p.Spatial, p.Spatial, p.KernelX, p.KernelY, p.Filters, p.Stride)
}
