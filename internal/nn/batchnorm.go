package nn

import (
	"fmt"
	"sync"

	"github.com/born-ml/srgan/internal/tensor"
)

// BatchNorm2D normalises each channel of an NCHW tensor.
//
// Training mode uses the statistics of the current batch and folds them into
// the moving averages:
//
//	moving = moving*momentum + batch*(1 - momentum)
//
// Inference mode uses the moving averages. In both modes:
//
//	y = (x - mean) / sqrt(var + epsilon) * gamma + beta
//
// The moving variance tracks the unbiased batch variance, while the
// normalisation itself uses the biased one.
type BatchNorm2D[B tensor.Backend] struct {
	numFeatures int
	momentum    float64
	epsilon     float64

	gamma *Parameter[B] // [C]
	beta  *Parameter[B] // [C]

	mu         sync.RWMutex
	movingMean *Parameter[B] // [C]
	movingVar  *Parameter[B] // [C]
}

// NewBatchNorm2D creates a batch normalisation layer over numFeatures
// channels with gamma=1, beta=0, moving mean 0 and moving variance 1.
func NewBatchNorm2D[B tensor.Backend](numFeatures int, momentum, epsilon float64, backend B) *BatchNorm2D[B] {
	if numFeatures <= 0 {
		panic(fmt.Sprintf("batchnorm: invalid number of features %d", numFeatures))
	}
	if momentum < 0 || momentum > 1 {
		panic(fmt.Sprintf("batchnorm: momentum %g outside [0, 1]", momentum))
	}
	if epsilon <= 0 {
		panic(fmt.Sprintf("batchnorm: epsilon must be positive, got %g", epsilon))
	}

	shape := tensor.Shape{numFeatures}
	return &BatchNorm2D[B]{
		numFeatures: numFeatures,
		momentum:    momentum,
		epsilon:     epsilon,
		gamma:       NewParameter("gamma", Ones(shape, backend)),
		beta:        NewParameter("beta", Zeros(shape, backend)),
		movingMean:  NewBuffer("moving_mean", Zeros(shape, backend)),
		movingVar:   NewBuffer("moving_variance", Ones(shape, backend)),
	}
}

// Forward normalises with the moving statistics.
func (bn *BatchNorm2D[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return bn.ForwardTraining(input, false)
}

// ForwardTraining normalises with batch statistics when training is set and
// with the moving statistics otherwise.
func (bn *BatchNorm2D[B]) ForwardTraining(input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 4 {
		panic(fmt.Sprintf("batchnorm: expected 4D input [N,C,H,W], got %dD", len(shape)))
	}
	if shape[1] != bn.numFeatures {
		panic(fmt.Sprintf("batchnorm: input channels %d != expected %d", shape[1], bn.numFeatures))
	}

	if !training {
		mean, variance := bn.movingStats()
		return bn.normalize(input.Sub(mean), variance)
	}

	mean := channelMean(input)
	centered := input.Sub(mean)
	variance := channelMean(centered.Mul(centered))

	bn.updateMovingStats(mean, variance, shape[0]*shape[2]*shape[3])
	return bn.normalize(centered, variance)
}

func (bn *BatchNorm2D[B]) normalize(centered, variance *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	scale := variance.AddScalar(float32(bn.epsilon)).Rsqrt().Mul(bn.gamma.Tensor().Reshape(1, bn.numFeatures, 1, 1))
	return centered.Mul(scale).Add(bn.beta.Tensor().Reshape(1, bn.numFeatures, 1, 1))
}

// movingStats returns copies of the moving mean and variance as [1,C,1,1].
func (bn *BatchNorm2D[B]) movingStats() (mean, variance *tensor.Tensor[float32, B]) {
	bn.mu.RLock()
	defer bn.mu.RUnlock()
	return bn.movingMean.Tensor().Reshape(1, bn.numFeatures, 1, 1),
		bn.movingVar.Tensor().Reshape(1, bn.numFeatures, 1, 1)
}

func (bn *BatchNorm2D[B]) updateMovingStats(mean, variance *tensor.Tensor[float32, B], count int) {
	correction := 1.0
	if count > 1 {
		correction = float64(count) / float64(count-1)
	}

	batchMean, batchVar := mean.Data(), variance.Data()
	m := float32(bn.momentum)

	bn.mu.Lock()
	defer bn.mu.Unlock()
	movingMean, movingVar := bn.movingMean.Tensor().Data(), bn.movingVar.Tensor().Data()
	for c := range movingMean {
		movingMean[c] = movingMean[c]*m + batchMean[c]*(1-m)
		movingVar[c] = movingVar[c]*m + float32(float64(batchVar[c])*correction)*(1-m)
	}
}

// channelMean averages over the batch and spatial axes, keeping [1,C,1,1].
func channelMean[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return x.MeanDim(0, true).MeanDim(2, true).MeanDim(3, true)
}

// Parameters returns gamma, beta and the two moving statistics.
func (bn *BatchNorm2D[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{bn.gamma, bn.beta, bn.movingMean, bn.movingVar}
}

// MovingMean returns the running mean.
func (bn *BatchNorm2D[B]) MovingMean() *Parameter[B] {
	return bn.movingMean
}

// MovingVariance returns the running variance.
func (bn *BatchNorm2D[B]) MovingVariance() *Parameter[B] {
	return bn.movingVar
}

// String returns a string representation of the layer.
func (bn *BatchNorm2D[B]) String() string {
	return fmt.Sprintf("BatchNorm2D(num_features=%d, momentum=%g, epsilon=%g)", bn.numFeatures, bn.momentum, bn.epsilon)
}
