package cpu

import (
	"fmt"

	"github.com/born-ml/srgan/internal/parallel"
	"github.com/born-ml/srgan/internal/tensor"
)

// colBudget caps the im2col scratch buffer (in elements) of one work item.
// Large feature maps are split into bands of output rows that each fit.
var colBudget = 1 << 21

// convGeom describes one Conv2D call.
type convGeom struct {
	n, cIn, h, w    int
	cOut, kh, kw    int
	hOut, wOut      int
	stride, padding int
	rowsPerBand     int
	bandsPerSample  int
}

func (g convGeom) patchSize() int { return g.cIn * g.kh * g.kw }
func (g convGeom) outPlane() int  { return g.hOut * g.wOut }

// Conv2D performs a 2D cross-correlation using im2col + GEMM.
//
// Input shape:  [N, C_in, H, W]
// Kernel shape: [C_out, C_in, K_h, K_w]
// Output shape: [N, C_out, H_out, W_out]
//
//	H_out = (H + 2*padding - K_h) / stride + 1
//	W_out = (W + 2*padding - K_w) / stride + 1
//
// For every (sample, band of output rows) the input patches are unrolled
// into a [C_in*K_h*K_w, rows*W_out] matrix and multiplied by the kernel
// viewed as [C_out, C_in*K_h*K_w]. The product lands directly in the NCHW
// output, so no final rearrangement is needed. Work items run in parallel.
func (cpu *CPUBackend) Conv2D(input, kernel *tensor.RawTensor, stride, padding int) *tensor.RawTensor {
	inputShape := input.Shape()
	kernelShape := kernel.Shape()

	if len(inputShape) != 4 {
		panic(fmt.Sprintf("conv2d: input must be 4D [N,C,H,W], got %dD", len(inputShape)))
	}
	if len(kernelShape) != 4 {
		panic(fmt.Sprintf("conv2d: kernel must be 4D [C_out,C_in,K_h,K_w], got %dD", len(kernelShape)))
	}
	if stride <= 0 || padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid stride=%d padding=%d", stride, padding))
	}
	if input.DType() != kernel.DType() {
		panic(fmt.Sprintf("conv2d: dtype mismatch %s vs %s", input.DType(), kernel.DType()))
	}

	g := convGeom{
		n: inputShape[0], cIn: inputShape[1], h: inputShape[2], w: inputShape[3],
		cOut: kernelShape[0], kh: kernelShape[2], kw: kernelShape[3],
		stride: stride, padding: padding,
	}
	if kernelShape[1] != g.cIn {
		panic(fmt.Sprintf("conv2d: input channels %d != kernel channels %d", g.cIn, kernelShape[1]))
	}

	g.hOut = (g.h+2*padding-g.kh)/stride + 1
	g.wOut = (g.w+2*padding-g.kw)/stride + 1
	if g.hOut <= 0 || g.wOut <= 0 {
		panic(fmt.Sprintf("conv2d: invalid output dimensions: out_h=%d, out_w=%d (check stride/padding)", g.hOut, g.wOut))
	}
	g.rowsPerBand = max(1, min(g.hOut, colBudget/(g.patchSize()*g.wOut)))
	g.bandsPerSample = (g.hOut + g.rowsPerBand - 1) / g.rowsPerBand

	output := cpu.alloc("conv2d", tensor.Shape{g.n, g.cOut, g.hOut, g.wOut}, input.DType())

	switch input.DType() {
	case tensor.Float32:
		conv2d(output.AsFloat32(), input.AsFloat32(), kernel.AsFloat32(), g, gemm32, cpu.parallel)
	case tensor.Float64:
		conv2d(output.AsFloat64(), input.AsFloat64(), kernel.AsFloat64(), g, gemm64, cpu.parallel)
	default:
		panic(fmt.Sprintf("conv2d: unsupported dtype %s", input.DType()))
	}

	return output
}

type gemmFunc[T float] func(c, a, b []T, m, k, n, ldb, ldc int)

func conv2d[T float](out, in, kernel []T, g convGeom, gemm gemmFunc[T], cfg parallel.Config) {
	k := g.patchSize()
	plane := g.outPlane()

	parallel.For(g.n*g.bandsPerSample, func(item int) {
		n := item / g.bandsPerSample
		r0 := (item % g.bandsPerSample) * g.rowsPerBand
		r1 := min(r0+g.rowsPerBand, g.hOut)
		cols := (r1 - r0) * g.wOut

		col := make([]T, k*cols)
		im2col(col, in[n*g.cIn*g.h*g.w:(n+1)*g.cIn*g.h*g.w], g, r0, r1)

		// Output tile: rows of the [C_out, H_out*W_out] sample matrix,
		// starting at column r0*W_out, row stride H_out*W_out.
		dst := out[n*g.cOut*plane+r0*g.wOut:]
		gemm(dst, kernel, col, g.cOut, k, cols, cols, plane)
	}, cfg)
}

// im2col unrolls the patches feeding output rows [r0, r1) of one sample into
// col, laid out as [C_in*K_h*K_w, (r1-r0)*W_out]. Out-of-bounds taps read
// zero (padding).
func im2col[T float](col, sample []T, g convGeom, r0, r1 int) {
	cols := (r1 - r0) * g.wOut
	row := 0
	for c := 0; c < g.cIn; c++ {
		channel := sample[c*g.h*g.w : (c+1)*g.h*g.w]
		for kh := 0; kh < g.kh; kh++ {
			for kw := 0; kw < g.kw; kw++ {
				dst := col[row*cols : (row+1)*cols]
				idx := 0
				for oh := r0; oh < r1; oh++ {
					ih := oh*g.stride - g.padding + kh
					if ih < 0 || ih >= g.h {
						for ow := 0; ow < g.wOut; ow++ {
							dst[idx] = 0
							idx++
						}
						continue
					}
					src := channel[ih*g.w : (ih+1)*g.w]
					for ow := 0; ow < g.wOut; ow++ {
						iw := ow*g.stride - g.padding + kw
						if iw >= 0 && iw < g.w {
							dst[idx] = src[iw]
						} else {
							dst[idx] = 0
						}
						idx++
					}
				}
				row++
			}
		}
	}
}
