package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

func TestResidual_PreservesShape(t *testing.T) {
	backend := cpu.New()

	for _, shape := range []tensor.Shape{{1, 4, 6, 6}, {3, 4, 5, 9}} {
		block := nn.NewResidual[backendT](nn.NewSequential[backendT](
			nn.NewConv2DSame(4, 4, 3, 1, backend, seeded(1)),
			nn.NewBatchNorm2D(4, 0.8, 1e-3, backend),
			nn.NewPReLU(4, backend),
		))
		x := tensor.Randn[float32](shape, backend, seeded(2))

		assert.Equal(t, shape, block.Forward(x).Shape())
		assert.Equal(t, shape, block.ForwardTraining(x, true).Shape())
	}
}

func TestResidual_AddsIdentity(t *testing.T) {
	backend := cpu.New()

	// PReLU with alpha 0 on a non-negative input is the identity, so the
	// residual doubles the input.
	prelu := nn.NewPReLU(1, backend)
	block := nn.NewResidual[backendT](prelu)
	assert.Same(t, prelu, block.Body())
	x := fromSlice(t, backend, tensor.Shape{1, 1, 1, 3}, 0, 1, 2)

	assert.Equal(t, []float32{0, 2, 4}, block.Forward(x).Data())
	assert.Equal(t, []float32{0, 1, 2}, x.Data(), "input must not be modified")
}

func TestResidual_ShapeChangePanics(t *testing.T) {
	backend := cpu.New()

	block := nn.NewResidual[backendT](nn.NewConv2DSame(2, 4, 3, 1, backend, seeded(1)))
	assert.Panics(t, func() { block.Forward(tensor.Zeros[float32](tensor.Shape{1, 2, 4, 4}, backend)) })
}

func TestForwardMode_ReachesNestedBatchNorm(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(1, 0.5, 1e-3, backend)
	model := nn.NewSequential[backendT](nn.NewResidual[backendT](nn.NewSequential[backendT](bn)))
	x := fromSlice(t, backend, tensor.Shape{1, 1, 1, 2}, 2, 2)

	_ = nn.ForwardMode[backendT](model, x, false)
	assert.Equal(t, float32(0), bn.MovingMean().Tensor().Data()[0])

	_ = nn.ForwardMode[backendT](model, x, true)
	require.InDelta(t, 1.0, bn.MovingMean().Tensor().Data()[0], 1e-6)
}
