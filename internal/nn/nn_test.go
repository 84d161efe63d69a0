package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

type backendT = *cpu.CPUBackend

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func fromSlice(t *testing.T, backend backendT, shape tensor.Shape, values ...float32) *tensor.Tensor[float32, backendT] {
	t.Helper()
	x, err := tensor.FromSlice(values, shape, backend)
	require.NoError(t, err)
	return x
}

func TestGlorotUniform_Bounds(t *testing.T) {
	backend := cpu.New()

	w := nn.GlorotUniform(27, 576, tensor.Shape{64, 3, 3, 3}, backend, seeded(1))
	lo, hi := w.MinMax()
	limit := float32(0.0997509) // sqrt(6 / 603)

	assert.GreaterOrEqual(t, lo, -limit)
	assert.LessOrEqual(t, hi, limit)
	assert.Less(t, lo, float32(0))
	assert.Greater(t, hi, float32(0))
}

func TestCountParameters(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential[backendT](
		nn.NewConv2DSame(3, 8, 3, 1, backend, seeded(1)), // 8*3*9 + 8 = 224
		nn.NewBatchNorm2D(8, 0.8, 1e-3, backend),         // 4 * 8 = 32, 16 trainable
		nn.NewPReLU(8, backend),                          // 8
	)

	assert.Equal(t, 264, nn.CountParameters[backendT](model))
	assert.Equal(t, 248, nn.CountTrainable[backendT](model))
}

func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()

	dense := nn.NewLinear(3, 2, backend, seeded(1))
	assert.Equal(t, 3, dense.InFeatures())
	assert.Equal(t, 2, dense.OutFeatures())
	copy(dense.Kernel().Tensor().Data(), []float32{1, 0, 0, 1, 1, 1})
	copy(dense.Bias().Tensor().Data(), []float32{0.5, -0.5})

	x := fromSlice(t, backend, tensor.Shape{2, 3}, 1, 2, 3, 0, 0, 1)
	y := dense.Forward(x)

	require.Equal(t, tensor.Shape{2, 2}, y.Shape())
	assert.Equal(t, []float32{4.5, 4.5, 1.5, 0.5}, y.Data())
	assert.Panics(t, func() { dense.Forward(fromSlice(t, backend, tensor.Shape{1, 2}, 1, 2)) })
}

func TestPReLU_StartsAsReLU(t *testing.T) {
	backend := cpu.New()

	prelu := nn.NewPReLU(2, backend)
	x := fromSlice(t, backend, tensor.Shape{1, 2, 1, 2}, -1, 2, -3, 4)

	assert.Equal(t, []float32{0, 2, 0, 4}, prelu.Forward(x).Data())

	copy(prelu.Alpha().Tensor().Data(), []float32{0.5, 0.25})
	assert.Equal(t, []float32{-0.5, 2, -0.75, 4}, prelu.Forward(x).Data())
}

func TestActivationLayers(t *testing.T) {
	backend := cpu.New()

	x := fromSlice(t, backend, tensor.Shape{1, 3}, -5, 0, 5)

	assert.InDeltaSlice(t, []float32{-1, 0, 5}, nn.NewLeakyReLU[backendT](0.2).Forward(x).Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{-0.9999092, 0, 0.9999092}, nn.NewTanh[backendT]().Forward(x).Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{0.0066929, 0.5, 0.9933071}, nn.NewSigmoid[backendT]().Forward(x).Data(), 1e-6)
}

func TestPixelShuffle_Shape(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2, 32, 5, 7}, backend)
	y := nn.NewPixelShuffle[backendT](2).Forward(x)

	assert.Equal(t, tensor.Shape{2, 8, 10, 14}, y.Shape())
	assert.Equal(t, x.NumElements(), y.NumElements())
}

func TestFlatten_ChannelsLastOrder(t *testing.T) {
	backend := cpu.New()

	// [1, 2, 1, 2] NCHW: channel 0 = {1, 2}, channel 1 = {3, 4}
	x := fromSlice(t, backend, tensor.Shape{1, 2, 1, 2}, 1, 2, 3, 4)

	assert.Equal(t, []float32{1, 2, 3, 4}, nn.NewFlatten[backendT](false).Forward(x).Data())

	nhwc := nn.NewFlatten[backendT](true).Forward(x)
	assert.Equal(t, tensor.Shape{1, 4}, nhwc.Shape())
	assert.Equal(t, []float32{1, 3, 2, 4}, nhwc.Data())
}

func TestSequential_Modules(t *testing.T) {
	backend := cpu.New()

	seq := nn.NewSequential[backendT](nn.NewTanh[backendT]())
	seq.Add(nn.NewSigmoid[backendT]())

	assert.Equal(t, 2, seq.Len())
	assert.Len(t, seq.Modules(), 2)
	assert.Equal(t, "Sequential(Tanh(), Sigmoid())", seq.String())
	assert.Panics(t, func() { seq.Module(2) })

	x := tensor.Zeros[float32](tensor.Shape{1, 1}, backend)
	assert.InDelta(t, 0.5, seq.Forward(x).At(0, 0), 1e-6)
}
