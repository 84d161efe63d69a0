package nn

import (
	"github.com/born-ml/srgan/internal/tensor"
)

// Parameter is a named weight tensor owned by a layer.
//
// Trainable parameters (kernels, biases, scales) are what an external trainer
// updates; non-trainable ones hold running statistics maintained by the layer
// itself (batch normalisation moving mean and variance).
type Parameter[B tensor.Backend] struct {
	name      string
	tensor    *tensor.Tensor[float32, B]
	trainable bool
}

// NewParameter creates a trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t, trainable: true}
}

// NewBuffer creates a non-trainable parameter.
func NewBuffer[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Trainable reports whether the parameter is updated by gradient descent.
func (p *Parameter[B]) Trainable() bool {
	return p.trainable
}

// NumElements returns the number of scalars in the parameter.
func (p *Parameter[B]) NumElements() int {
	return p.tensor.NumElements()
}
