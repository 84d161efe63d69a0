package nn_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

func TestBatchNorm2D_TrainingUsesBatchStatistics(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(2, 0.8, 1e-3, backend)
	x := tensor.Randn[float32](tensor.Shape{4, 2, 3, 3}, backend, seeded(7)).MulScalar(3).AddScalar(5)

	y := bn.ForwardTraining(x, true)
	require.Equal(t, x.Shape(), y.Shape())

	for c := 0; c < 2; c++ {
		var sum, sq float64
		count := 0
		for n := 0; n < 4; n++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					v := float64(y.At(n, c, i, j))
					sum += v
					sq += v * v
					count++
				}
			}
		}
		mean := sum / float64(count)
		variance := sq/float64(count) - mean*mean
		assert.InDelta(t, 0, mean, 1e-4, "channel %d mean", c)
		assert.InDelta(t, 1, variance, 1e-2, "channel %d variance", c)
	}
}

func TestBatchNorm2D_MovingStatistics(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(1, 0.8, 1e-3, backend)
	// Single channel, values {1, 3}: mean 2, biased var 1, unbiased var 2.
	x := fromSlice(t, backend, tensor.Shape{1, 1, 1, 2}, 1, 3)

	_ = bn.ForwardTraining(x, true)

	assert.InDelta(t, 0.4, bn.MovingMean().Tensor().Data()[0], 1e-6)     // 0*0.8 + 2*0.2
	assert.InDelta(t, 1.2, bn.MovingVariance().Tensor().Data()[0], 1e-6) // 1*0.8 + 2*0.2
}

func TestBatchNorm2D_InferenceUsesMovingStatistics(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(1, 0.8, 1e-3, backend)
	x := fromSlice(t, backend, tensor.Shape{1, 1, 1, 2}, 1, 3)

	// Fresh layer: mean 0, variance 1, so y = x / sqrt(1 + eps).
	y := bn.Forward(x)
	scale := 1 / math.Sqrt(1+1e-3)
	assert.InDeltaSlice(t, []float32{float32(scale), float32(3 * scale)}, y.Data(), 1e-6)

	// Inference never touches the moving statistics.
	assert.Equal(t, []float32{0}, bn.MovingMean().Tensor().Data())
	assert.Equal(t, []float32{1}, bn.MovingVariance().Tensor().Data())
}

func TestBatchNorm2D_Parameters(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(4, 0.8, 1e-3, backend)
	params := bn.Parameters()
	require.Len(t, params, 4)

	names := make([]string, len(params))
	trainable := 0
	for i, p := range params {
		names[i] = p.Name()
		if p.Trainable() {
			trainable++
		}
	}
	assert.Equal(t, []string{"gamma", "beta", "moving_mean", "moving_variance"}, names)
	assert.Equal(t, 2, trainable)
}

func TestBatchNorm2D_ConcurrentTraining(t *testing.T) {
	backend := cpu.New(cpu.WithThreads(1))

	bn := nn.NewBatchNorm2D(3, 0.9, 1e-3, backend)
	x := tensor.Randn[float32](tensor.Shape{2, 3, 4, 4}, backend, seeded(9))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(training bool) {
			defer wg.Done()
			_ = bn.ForwardTraining(x, training)
		}(i%2 == 0)
	}
	wg.Wait()

	for _, v := range bn.MovingVariance().Tensor().Data() {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestBatchNorm2D_InvalidInputPanics(t *testing.T) {
	backend := cpu.New()

	bn := nn.NewBatchNorm2D(3, 0.8, 1e-3, backend)
	assert.Panics(t, func() { bn.Forward(tensor.Zeros[float32](tensor.Shape{1, 2, 4, 4}, backend)) })
	assert.Panics(t, func() { nn.NewBatchNorm2D(3, 1.5, 1e-3, backend) })
	assert.Panics(t, func() { nn.NewBatchNorm2D(3, 0.8, 0, backend) })
}
