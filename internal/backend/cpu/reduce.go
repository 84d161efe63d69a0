package cpu

import (
	"fmt"

	"github.com/born-ml/srgan/internal/tensor"
)

// SumDim sums tensor elements along dim (negative values count from the end).
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x.Raw(), -1, true)  // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false) // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("sumdim", x, dim, keepDim, false)
}

// MeanDim averages tensor elements along dim.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("meandim", x, dim, keepDim, true)
}

func (cpu *CPUBackend) reduce(op string, x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		outShape = append(outShape, shape[:dim]...)
		outShape = append(outShape, shape[dim+1:]...)
	}

	result := cpu.alloc(op, outShape, x.DType())
	switch x.DType() {
	case tensor.Float32:
		reduceDim(result.AsFloat32(), x.AsFloat32(), shape, dim, mean)
	case tensor.Float64:
		reduceDim(result.AsFloat64(), x.AsFloat64(), shape, dim, mean)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

// reduceDim views src as [outer, size, inner] and sums the middle axis,
// accumulating in float64.
func reduceDim[T float](dst, src []T, shape tensor.Shape, dim int, mean bool) {
	outer := shape[:dim].NumElements()
	size := shape[dim]
	inner := shape[dim+1:].NumElements()

	acc := make([]float64, inner)
	for o := 0; o < outer; o++ {
		clear(acc)
		base := o * size * inner
		for s := 0; s < size; s++ {
			row := src[base+s*inner : base+(s+1)*inner]
			for i, v := range row {
				acc[i] += float64(v)
			}
		}
		for i, v := range acc {
			if mean {
				v /= float64(size)
			}
			dst[o*inner+i] = T(v)
		}
	}
}
