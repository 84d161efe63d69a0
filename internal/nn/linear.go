package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/srgan/internal/tensor"
)

// Linear is a fully connected (dense) layer: y = x @ W + b.
//
// The kernel is stored as [in_features, out_features] so the forward pass is
// a single MatMul with no transpose.
//
// Example:
//
//	dense := nn.NewLinear(18432, 1024, backend, rng)
//	y := dense.Forward(x) // [batch, 18432] -> [batch, 1024]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	kernel      *Parameter[B] // [in_features, out_features]
	bias        *Parameter[B] // [out_features]
}

// NewLinear creates a dense layer with a Glorot-uniform kernel and zero bias.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B, rng *rand.Rand) *Linear[B] {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}
	kernel := GlorotUniform(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, backend, rng)

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		kernel:      NewParameter("kernel", kernel),
		bias:        NewParameter("bias", Zeros(tensor.Shape{outFeatures}, backend)),
	}
}

// Forward computes x @ W + b for x of shape [batch, in_features].
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("linear: expected 2D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("linear: expected input with %d features, got %d", l.inFeatures, inputShape[1]))
	}

	output := input.MatMul(l.kernel.Tensor())
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the kernel and bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.kernel, l.bias}
}

// String returns a string representation of the layer.
func (l *Linear[B]) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d)", l.inFeatures, l.outFeatures)
}

// Kernel returns the weight matrix.
func (l *Linear[B]) Kernel() *Parameter[B] {
	return l.kernel
}

// Bias returns the bias vector.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input feature count.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
