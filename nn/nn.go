// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/tensor"
)

// Module is the interface implemented by every layer.
type Module[B tensor.Backend] = nn.Module[B]

// TrainingModule is a Module whose output depends on the training flag.
type TrainingModule[B tensor.Backend] = nn.TrainingModule[B]

// Parameter is a named tensor owned by a layer.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// Layers.
type (
	Conv2D[B tensor.Backend]       = nn.Conv2D[B]
	Linear[B tensor.Backend]       = nn.Linear[B]
	BatchNorm2D[B tensor.Backend]  = nn.BatchNorm2D[B]
	PReLU[B tensor.Backend]        = nn.PReLU[B]
	LeakyReLU[B tensor.Backend]    = nn.LeakyReLU[B]
	Tanh[B tensor.Backend]         = nn.Tanh[B]
	Sigmoid[B tensor.Backend]      = nn.Sigmoid[B]
	PixelShuffle[B tensor.Backend] = nn.PixelShuffle[B]
	Flatten[B tensor.Backend]      = nn.Flatten[B]
	Sequential[B tensor.Backend]   = nn.Sequential[B]
	Residual[B tensor.Backend]     = nn.Residual[B]
)

// NewConv2D creates a 2D convolution with explicit padding.
func NewConv2D[B tensor.Backend](inChannels, outChannels, kernelH, kernelW, stride, padding int, useBias bool, backend B, rng *rand.Rand) *Conv2D[B] {
	return nn.NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding, useBias, backend, rng)
}

// NewConv2DSame creates a biased convolution with same padding.
func NewConv2DSame[B tensor.Backend](inChannels, outChannels, kernelSize, stride int, backend B, rng *rand.Rand) *Conv2D[B] {
	return nn.NewConv2DSame(inChannels, outChannels, kernelSize, stride, backend, rng)
}

// NewLinear creates a fully connected layer.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B, rng *rand.Rand) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend, rng)
}

// NewBatchNorm2D creates a per-channel batch normalisation layer.
func NewBatchNorm2D[B tensor.Backend](numFeatures int, momentum, epsilon float64, backend B) *BatchNorm2D[B] {
	return nn.NewBatchNorm2D(numFeatures, momentum, epsilon, backend)
}

// NewPReLU creates a PReLU with one slope per channel, initialised to zero.
func NewPReLU[B tensor.Backend](channels int, backend B) *PReLU[B] {
	return nn.NewPReLU(channels, backend)
}

// NewLeakyReLU creates a LeakyReLU with the given negative slope.
func NewLeakyReLU[B tensor.Backend](slope float64) *LeakyReLU[B] {
	return nn.NewLeakyReLU[B](slope)
}

// NewTanh creates a tanh activation.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// NewSigmoid creates a sigmoid activation.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// NewPixelShuffle creates a depth-to-space layer.
func NewPixelShuffle[B tensor.Backend](factor int) *PixelShuffle[B] {
	return nn.NewPixelShuffle[B](factor)
}

// NewFlatten creates a flatten layer. With channelsLast the features are
// ordered as in an NHWC tensor.
func NewFlatten[B tensor.Backend](channelsLast bool) *Flatten[B] {
	return nn.NewFlatten[B](channelsLast)
}

// NewSequential chains modules.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// NewResidual adds the input of body to its output.
func NewResidual[B tensor.Backend](body Module[B]) *Residual[B] {
	return nn.NewResidual(body)
}

// ForwardMode runs m in training or inference mode.
func ForwardMode[B tensor.Backend](m Module[B], input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	return nn.ForwardMode(m, input, training)
}

// CountParameters returns the number of elements across m's parameters.
func CountParameters[B tensor.Backend](m Module[B]) int {
	return nn.CountParameters(m)
}

// GlorotUniform samples a tensor from the Glorot uniform distribution.
func GlorotUniform[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B, rng *rand.Rand) *tensor.Tensor[float32, B] {
	return nn.GlorotUniform(fanIn, fanOut, shape, backend, rng)
}
