package nn

import (
	"fmt"

	"github.com/born-ml/srgan/internal/tensor"
)

// PReLU is a parametric ReLU with one learned slope per channel, shared over
// the spatial axes:
//
//	f(x) = max(0, x) + alpha[c] * min(0, x)
//
// Alpha starts at zero, so a fresh PReLU behaves like ReLU.
type PReLU[B tensor.Backend] struct {
	channels int
	alpha    *Parameter[B] // [C]
}

// NewPReLU creates a PReLU over an NCHW tensor with the given channel count.
func NewPReLU[B tensor.Backend](channels int, backend B) *PReLU[B] {
	if channels <= 0 {
		panic(fmt.Sprintf("prelu: invalid channels %d", channels))
	}
	return &PReLU[B]{
		channels: channels,
		alpha:    NewParameter("alpha", Zeros(tensor.Shape{channels}, backend)),
	}
}

// Forward applies the per-channel parametric activation.
func (p *PReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 4 || shape[1] != p.channels {
		panic(fmt.Sprintf("prelu: expected [N,%d,H,W], got %v", p.channels, shape))
	}

	positive := input.ReLU()
	negative := input.Sub(positive)
	return positive.Add(negative.Mul(p.alpha.Tensor().Reshape(1, p.channels, 1, 1)))
}

// Parameters returns alpha.
func (p *PReLU[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{p.alpha}
}

// Alpha returns the per-channel slope.
func (p *PReLU[B]) Alpha() *Parameter[B] {
	return p.alpha
}

func (p *PReLU[B]) String() string {
	return fmt.Sprintf("PReLU(channels=%d)", p.channels)
}

// LeakyReLU applies x for x >= 0 and slope*x otherwise.
//
// Example:
//
//	leaky := nn.NewLeakyReLU[B](0.2)
//	y := leaky.Forward(x)
type LeakyReLU[B tensor.Backend] struct {
	slope float64
}

// NewLeakyReLU creates a LeakyReLU with a fixed negative slope.
func NewLeakyReLU[B tensor.Backend](slope float64) *LeakyReLU[B] {
	return &LeakyReLU[B]{slope: slope}
}

// Forward applies the leaky activation.
func (l *LeakyReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.LeakyReLU(l.slope)
}

// Parameters returns nil (LeakyReLU has no weights).
func (l *LeakyReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

func (l *LeakyReLU[B]) String() string {
	return fmt.Sprintf("LeakyReLU(slope=%g)", l.slope)
}

// Tanh squashes values into (-1, 1).
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies tanh element-wise.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Tanh()
}

// Parameters returns nil (Tanh has no weights).
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}

func (t *Tanh[B]) String() string {
	return "Tanh()"
}

// Sigmoid squashes values into (0, 1).
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies the logistic function element-wise.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Sigmoid()
}

// Parameters returns nil (Sigmoid has no weights).
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

func (s *Sigmoid[B]) String() string {
	return "Sigmoid()"
}
