package tensor

import "fmt"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 64, 24, 24}, backend)
//	b := tensor.Ones[float32](Shape{1, 64, 1, 1}, backend)
//	y := x.Add(b) // [2, 64, 24, 24]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Reshape returns a tensor with the same data and a new shape.
// A single -1 dimension is inferred from the remaining ones.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{8, 512, 6, 6}, backend)
//	flat := x.Reshape(8, -1) // [8, 18432]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	shape := inferShape(t.NumElements(), newShape)
	return New[T, B](t.backend.Reshape(t.raw, shape), t.backend)
}

// Transpose permutes the tensor's dimensions. With no axes it reverses them.
//
// Example:
//
//	nhwc := tensor.Zeros[float32](Shape{1, 24, 24, 3}, backend)
//	nchw := nhwc.Transpose(0, 3, 1, 2) // [1, 3, 24, 24]
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// MulScalar multiplies every element by scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// Exp computes e^x element-wise.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Sqrt computes the square root element-wise.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	return New[T, B](t.backend.Sqrt(t.raw), t.backend)
}

// Rsqrt computes 1/sqrt(x) element-wise.
func (t *Tensor[T, B]) Rsqrt() *Tensor[T, B] {
	return New[T, B](t.backend.Rsqrt(t.raw), t.backend)
}

// SumDim sums along dim.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

// MeanDim averages along dim.
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.MeanDim(t.raw, dim, keepDim), t.backend)
}

// Conv2D convolves an NCHW tensor with an OIHW kernel.
func (t *Tensor[T, B]) Conv2D(kernel *Tensor[T, B], stride, padding int) *Tensor[T, B] {
	return New[T, B](t.backend.Conv2D(t.raw, kernel.raw, stride, padding), t.backend)
}

// DepthToSpace moves blockSize×blockSize channel groups of an NCHW tensor
// into the spatial dimensions.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{1, 256, 24, 24}, backend)
//	y := x.DepthToSpace(2) // [1, 64, 48, 48]
func (t *Tensor[T, B]) DepthToSpace(blockSize int) *Tensor[T, B] {
	return New[T, B](t.backend.DepthToSpace(t.raw, blockSize), t.backend)
}

// Tanh applies the hyperbolic tangent. Panics if the backend lacks it.
func (t *Tensor[T, B]) Tanh() *Tensor[T, B] {
	if tb, ok := any(t.backend).(TanhBackend); ok {
		return New[T, B](tb.Tanh(t.raw), t.backend)
	}
	panic(fmt.Sprintf("tanh: backend %s does not implement Tanh", t.backend.Name()))
}

// Sigmoid applies the logistic function. Panics if the backend lacks it.
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	if sb, ok := any(t.backend).(SigmoidBackend); ok {
		return New[T, B](sb.Sigmoid(t.raw), t.backend)
	}
	panic(fmt.Sprintf("sigmoid: backend %s does not implement Sigmoid", t.backend.Name()))
}

// ReLU applies max(0, x). Panics if the backend lacks it.
func (t *Tensor[T, B]) ReLU() *Tensor[T, B] {
	if rb, ok := any(t.backend).(ReLUBackend); ok {
		return New[T, B](rb.ReLU(t.raw), t.backend)
	}
	panic(fmt.Sprintf("relu: backend %s does not implement ReLU", t.backend.Name()))
}

// LeakyReLU applies x for x >= 0 and slope*x otherwise. Panics if the
// backend lacks it.
func (t *Tensor[T, B]) LeakyReLU(slope float64) *Tensor[T, B] {
	if lb, ok := any(t.backend).(LeakyReLUBackend); ok {
		return New[T, B](lb.LeakyReLU(t.raw, slope), t.backend)
	}
	panic(fmt.Sprintf("leaky_relu: backend %s does not implement LeakyReLU", t.backend.Name()))
}

// inferShape resolves a single -1 entry in shape.
func inferShape(numElements int, shape []int) Shape {
	out := Shape(append([]int(nil), shape...))
	unknown := -1
	known := 1
	for i, d := range out {
		if d == -1 {
			if unknown >= 0 {
				panic(fmt.Sprintf("reshape: more than one -1 in %v", shape))
			}
			unknown = i
			continue
		}
		known *= d
	}
	if unknown >= 0 {
		if known <= 0 || numElements%known != 0 {
			panic(fmt.Sprintf("reshape: cannot infer -1 in %v for %d elements", shape, numElements))
		}
		out[unknown] = numElements / known
	}
	return out
}
