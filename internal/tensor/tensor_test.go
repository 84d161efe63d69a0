package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.Equal(t, 2, x.Rank())

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 3}, backend)
	require.Error(t, err)
}

func TestOperationsDoNotMutateOperands(t *testing.T) {
	backend := cpu.New()

	a := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	b := tensor.Full[float32](tensor.Shape{2, 2}, 3, backend)

	sum := a.Add(b)
	_ = sum.MulScalar(10)

	assert.Equal(t, []float32{1, 1, 1, 1}, a.Data())
	assert.Equal(t, []float32{4, 4, 4, 4}, sum.Data())
}

func TestReshapeInfersDimension(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{4, 3, 2, 2}, backend)
	flat := x.Reshape(4, -1)
	assert.Equal(t, tensor.Shape{4, 12}, flat.Shape())
}

func TestRandnDeterministicWithSeed(t *testing.T) {
	backend := cpu.New()

	a := tensor.Randn[float32](tensor.Shape{3, 5}, backend, rand.New(rand.NewSource(11)))
	b := tensor.Randn[float32](tensor.Shape{3, 5}, backend, rand.New(rand.NewSource(11)))
	assert.True(t, a.Equal(b))
}

func TestRandRange(t *testing.T) {
	backend := cpu.New()

	x := tensor.Rand[float64](tensor.Shape{100}, -1, 1, backend, rand.New(rand.NewSource(3)))
	lo, hi := x.MinMax()
	assert.GreaterOrEqual(t, lo, -1.0)
	assert.Less(t, hi, 1.0)
}

func TestSetAndAt(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float64](tensor.Shape{2, 3, 4}, backend)
	x.Set(7.5, 1, 2, 3)
	assert.Equal(t, 7.5, x.At(1, 2, 3))
	assert.Equal(t, 7.5, x.Data()[23])
	assert.Panics(t, func() { x.At(2, 0, 0) })
}

func TestActivationsDispatchToBackend(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{-2, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{-0.4, 0, 2}, x.LeakyReLU(0.2).Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{0, 0, 2}, x.ReLU().Data(), 1e-6)
	assert.InDelta(t, 0.5, x.Sigmoid().At(1), 1e-6)
	assert.InDelta(t, 0, x.Tanh().At(1), 1e-6)
}
