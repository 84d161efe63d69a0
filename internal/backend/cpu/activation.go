package cpu

import (
	"math"

	"github.com/born-ml/srgan/internal/tensor"
)

// Tanh applies the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("tanh", x, math.Tanh)
}

// Sigmoid applies 1 / (1 + e^-x) element-wise. Large negative inputs are
// evaluated as e^x / (1 + e^x) so the result never overflows.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("sigmoid", x, func(v float64) float64 {
		if v >= 0 {
			return 1 / (1 + math.Exp(-v))
		}
		e := math.Exp(v)
		return e / (1 + e)
	})
}

// ReLU applies max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("relu", x, func(v float64) float64 { return math.Max(0, v) })
}

// LeakyReLU applies x for x >= 0 and slope*x otherwise.
func (cpu *CPUBackend) LeakyReLU(x *tensor.RawTensor, slope float64) *tensor.RawTensor {
	return cpu.mapUnary("leaky_relu", x, func(v float64) float64 {
		if v < 0 {
			return slope * v
		}
		return v
	})
}
