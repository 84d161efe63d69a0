package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/srgan/internal/tensor"
)

// MulScalar multiplies each element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarValue("mulScalar", scalar)
	return cpu.mapUnary("mulScalar", x, func(v float64) float64 { return v * s })
}

// AddScalar adds scalar to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarValue("addScalar", scalar)
	return cpu.mapUnary("addScalar", x, func(v float64) float64 { return v + s })
}

// Exp computes e^x element-wise.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("exp", x, math.Exp)
}

// Sqrt computes the square root element-wise.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("sqrt", x, math.Sqrt)
}

// Rsqrt computes 1/sqrt(x) element-wise.
func (cpu *CPUBackend) Rsqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapUnary("rsqrt", x, func(v float64) float64 { return 1 / math.Sqrt(v) })
}

// mapUnary evaluates f in float64 precision for both element types.
func (cpu *CPUBackend) mapUnary(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := cpu.alloc(op, x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float32:
		unary(result.AsFloat32(), x.AsFloat32(), func(v float32) float32 { return float32(f(float64(v))) })
	case tensor.Float64:
		unary(result.AsFloat64(), x.AsFloat64(), f)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

func scalarValue(op string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", op, scalar))
	}
}
