package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/tensor"
)

func raw32(t *testing.T, shape tensor.Shape, values ...float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat32(), values)
	return r
}

func TestNew_Threads(t *testing.T) {
	assert.Equal(t, 1, New(WithThreads(1)).Threads())
	assert.Equal(t, 6, New(WithThreads(6)).Threads())
	assert.Equal(t, "CPU", New().Name())
	assert.Equal(t, tensor.CPU, New().Device())
}

func TestBinary_Broadcast(t *testing.T) {
	backend := New()

	// [2,2,1,1] channel bias over [1,2,2,2]
	x := raw32(t, tensor.Shape{1, 2, 2, 2}, 1, 2, 3, 4, 5, 6, 7, 8)
	bias := raw32(t, tensor.Shape{1, 2, 1, 1}, 10, 100)

	sum := backend.Add(x, bias)
	assert.Equal(t, []float32{11, 12, 13, 14, 105, 106, 107, 108}, sum.AsFloat32())

	prod := backend.Mul(bias, x)
	assert.Equal(t, []float32{10, 20, 30, 40, 500, 600, 700, 800}, prod.AsFloat32())

	diff := backend.Sub(x, raw32(t, tensor.Shape{2}, 1, 2))
	assert.Equal(t, []float32{0, 0, 2, 2, 4, 4, 6, 6}, diff.AsFloat32())

	quot := backend.Div(x, raw32(t, tensor.Shape{1}, 2))
	assert.Equal(t, []float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}, quot.AsFloat32())
}

func TestBinary_IncompatibleShapesPanic(t *testing.T) {
	backend := New()

	a := raw32(t, tensor.Shape{2, 3})
	b := raw32(t, tensor.Shape{2, 4})
	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestMatMul(t *testing.T) {
	backend := New()

	a := raw32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	b := raw32(t, tensor.Shape{3, 2}, 7, 8, 9, 10, 11, 12)

	c := backend.MatMul(a, b)
	require.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, c.AsFloat32())

	assert.Panics(t, func() { backend.MatMul(a, a) })
}

func TestTranspose_NHWCToNCHW(t *testing.T) {
	backend := New()

	// [1, 2, 2, 3] NHWC: pixel p has channels (p*3, p*3+1, p*3+2)
	values := make([]float32, 12)
	for i := range values {
		values[i] = float32(i)
	}
	x := raw32(t, tensor.Shape{1, 2, 2, 3}, values...)

	y := backend.Transpose(x, 0, 3, 1, 2)
	require.Equal(t, tensor.Shape{1, 3, 2, 2}, y.Shape())
	assert.Equal(t, []float32{0, 3, 6, 9, 1, 4, 7, 10, 2, 5, 8, 11}, y.AsFloat32())

	back := backend.Transpose(y, 0, 2, 3, 1)
	assert.Equal(t, values, back.AsFloat32())

	assert.Panics(t, func() { backend.Transpose(x, 0, 0, 1, 2) })
	assert.Panics(t, func() { backend.Transpose(x, 0, 1) })
}

func TestReshape_CopiesData(t *testing.T) {
	backend := New()

	x := raw32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	y := backend.Reshape(x, tensor.Shape{3, 2})
	y.AsFloat32()[0] = 42

	assert.Equal(t, float32(1), x.AsFloat32()[0])
	assert.Panics(t, func() { backend.Reshape(x, tensor.Shape{4}) })
}

func TestReduce(t *testing.T) {
	backend := New()

	x := raw32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	assert.Equal(t, []float32{5, 7, 9}, backend.SumDim(x, 0, false).AsFloat32())
	assert.Equal(t, []float32{2, 5}, backend.MeanDim(x, -1, false).AsFloat32())

	kept := backend.SumDim(x, 1, true)
	assert.Equal(t, tensor.Shape{2, 1}, kept.Shape())
	assert.Equal(t, []float32{6, 15}, kept.AsFloat32())

	assert.Panics(t, func() { backend.SumDim(x, 2, false) })
}

func TestMath(t *testing.T) {
	backend := New()

	x := raw32(t, tensor.Shape{3}, 1, 4, 9)

	assert.Equal(t, []float32{1, 2, 3}, backend.Sqrt(x).AsFloat32())
	assert.InDeltaSlice(t, []float32{1, 0.5, 1.0 / 3}, backend.Rsqrt(x).AsFloat32(), 1e-6)
	assert.Equal(t, []float32{2, 8, 18}, backend.MulScalar(x, float32(2)).AsFloat32())
	assert.Equal(t, []float32{0, 3, 8}, backend.AddScalar(x, -1).AsFloat32())
	assert.InDelta(t, math.E, backend.Exp(x).AsFloat32()[0], 1e-5)
	assert.Panics(t, func() { backend.MulScalar(x, "2") })
}

func TestActivations(t *testing.T) {
	backend := New()

	x := raw32(t, tensor.Shape{4}, -1000, -1, 0, 1)

	sig := backend.Sigmoid(x).AsFloat32()
	assert.Equal(t, float32(0), sig[0])
	assert.InDelta(t, 0.2689414, sig[1], 1e-6)
	assert.InDelta(t, 0.5, sig[2], 1e-6)

	assert.InDeltaSlice(t, []float32{-1, -0.7615942, 0, 0.7615942}, backend.Tanh(x).AsFloat32(), 1e-6)
	assert.Equal(t, []float32{0, 0, 0, 1}, backend.ReLU(x).AsFloat32())
	assert.InDeltaSlice(t, []float32{-200, -0.2, 0, 1}, backend.LeakyReLU(x, 0.2).AsFloat32(), 1e-4)
}
