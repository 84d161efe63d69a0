package cpu

import (
	"fmt"

	"github.com/born-ml/srgan/internal/parallel"
	"github.com/born-ml/srgan/internal/tensor"
)

// DepthToSpace rearranges an NCHW tensor [N, C, H, W] into
// [N, C/r², H*r, W*r] (pixel shuffle).
//
// Channel ordering follows TensorFlow's depth_to_space (DCR): the output
// pixel at offset (i, j) inside an r×r block, channel c, reads input channel
// (i*r + j)*(C/r²) + c. The element count is unchanged.
func (cpu *CPUBackend) DepthToSpace(x *tensor.RawTensor, blockSize int) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 4 {
		panic(fmt.Sprintf("depth_to_space: input must be 4D [N,C,H,W], got %dD", len(shape)))
	}
	if blockSize < 1 {
		panic(fmt.Sprintf("depth_to_space: invalid block size %d", blockSize))
	}
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	r2 := blockSize * blockSize
	if c%r2 != 0 {
		panic(fmt.Sprintf("depth_to_space: channels %d not divisible by block size² %d", c, r2))
	}

	cOut := c / r2
	result := cpu.alloc("depth_to_space", tensor.Shape{n, cOut, h * blockSize, w * blockSize}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		depthToSpace(result.AsFloat32(), x.AsFloat32(), n, c, h, w, blockSize, cpu.parallel)
	case tensor.Float64:
		depthToSpace(result.AsFloat64(), x.AsFloat64(), n, c, h, w, blockSize, cpu.parallel)
	default:
		panic(fmt.Sprintf("depth_to_space: unsupported dtype %s", x.DType()))
	}
	return result
}

// depthToSpace fills one output plane per (sample, channel); planes are
// disjoint so they run in parallel.
func depthToSpace[T float](dst, src []T, n, c, h, w, r int, cfg parallel.Config) {
	cOut := c / (r * r)
	hOut, wOut := h*r, w*r

	parallel.ForBatch(n, cOut, func(b, oc int) {
		plane := dst[(b*cOut+oc)*hOut*wOut : (b*cOut+oc+1)*hOut*wOut]
		for i := 0; i < r; i++ {
			for j := 0; j < r; j++ {
				ic := (i*r+j)*cOut + oc
				in := src[(b*c+ic)*h*w : (b*c+ic+1)*h*w]
				for y := 0; y < h; y++ {
					row := plane[(y*r+i)*wOut:]
					for x := 0; x < w; x++ {
						row[x*r+j] = in[y*w+x]
					}
				}
			}
		}
	}, cfg)
}
