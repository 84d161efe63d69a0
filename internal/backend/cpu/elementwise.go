package cpu

import "github.com/born-ml/srgan/internal/tensor"

type float interface {
	~float32 | ~float64
}

// broadcastStrides returns strides of inShape aligned to outShape, with 0 for
// broadcast dimensions.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(inShape)
	orig := inShape.ComputeStrides()

	for i := range outShape {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			continue
		}
		strides[i] = orig[inIdx]
	}
	return strides
}

// broadcastBinary computes dst = f(a, b) over outShape. Operand offsets are
// advanced with an odometer over the output coordinates instead of being
// recomputed per element.
func broadcastBinary[T float](dst, a, b []T, aShape, bShape, outShape tensor.Shape, f func(x, y T) T) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = f(a[i], b[i])
		}
		return
	}

	ndim := len(outShape)
	if ndim == 0 {
		dst[0] = f(a[0], b[0])
		return
	}
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	coords := make([]int, ndim)
	aIdx, bIdx := 0, 0

	for i := range dst {
		dst[i] = f(a[aIdx], b[bIdx])

		for d := ndim - 1; d >= 0; d-- {
			coords[d]++
			aIdx += aStrides[d]
			bIdx += bStrides[d]
			if coords[d] < outShape[d] {
				break
			}
			aIdx -= aStrides[d] * outShape[d]
			bIdx -= bStrides[d] * outShape[d]
			coords[d] = 0
		}
	}
}

// unary applies f element-wise.
func unary[T float](dst, src []T, f func(T) T) {
	for i, v := range src {
		dst[i] = f(v)
	}
}

// permute writes src (with shape) into dst with dimensions reordered by axes.
func permute[T float](dst, src []T, shape tensor.Shape, axes []int) {
	ndim := len(shape)
	if ndim == 0 {
		dst[0] = src[0]
		return
	}

	srcStrides := shape.ComputeStrides()
	dstShape := make(tensor.Shape, ndim)
	// Stride in src for a unit step along each dst dimension.
	step := make([]int, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
		step[i] = srcStrides[ax]
	}

	coords := make([]int, ndim)
	srcIdx := 0
	for i := range dst {
		dst[i] = src[srcIdx]

		for d := ndim - 1; d >= 0; d-- {
			coords[d]++
			srcIdx += step[d]
			if coords[d] < dstShape[d] {
				break
			}
			srcIdx -= step[d] * dstShape[d]
			coords[d] = 0
		}
	}
}
