// Package nn implements the neural network layers used to build the SRGAN
// generator and discriminator.
//
// This package provides:
//   - Module interface: base interface for all layers
//   - Parameter: named weight tensors (trainable or running statistics)
//   - Layers: Conv2D, Linear, BatchNorm2D, PReLU, LeakyReLU, Tanh, Sigmoid,
//     PixelShuffle, Flatten
//   - Containers: Sequential, Residual
//
// Layers work on NCHW float32 tensors. Every forward pass allocates its
// output; modules never modify their inputs.
package nn

import (
	"github.com/born-ml/srgan/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	block := nn.NewSequential[B](
//	    nn.NewConv2DSame(64, 64, 3, 1, backend, rng),
//	    nn.NewBatchNorm2D(64, 0.8, 1e-3, backend),
//	    nn.NewPReLU(64, backend),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module in inference mode.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the module's parameters, including those of nested
	// modules. Layers without weights return nil.
	Parameters() []*Parameter[B]

	// String describes the layer configuration.
	String() string
}

// TrainingModule is implemented by modules whose forward pass depends on
// whether the network is being trained (batch normalisation, and containers
// holding such layers).
type TrainingModule[B tensor.Backend] interface {
	Module[B]
	ForwardTraining(input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B]
}

// ForwardMode runs m with the given training flag when m supports it, and
// falls back to Forward otherwise.
func ForwardMode[B tensor.Backend](m Module[B], input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	if tm, ok := m.(TrainingModule[B]); ok {
		return tm.ForwardTraining(input, training)
	}
	return m.Forward(input)
}

// CountParameters returns the total number of scalar weights in m.
func CountParameters[B tensor.Backend](m Module[B]) int {
	total := 0
	for _, p := range m.Parameters() {
		total += p.NumElements()
	}
	return total
}

// CountTrainable returns the number of scalar weights in m that a trainer
// would update. Running statistics are excluded.
func CountTrainable[B tensor.Backend](m Module[B]) int {
	total := 0
	for _, p := range m.Parameters() {
		if p.Trainable() {
			total += p.NumElements()
		}
	}
	return total
}
