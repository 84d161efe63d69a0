package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/srgan/internal/tensor"
)

// Sequential is a container that chains modules in sequence.
//
// The output of each module is passed as input to the next. When run with
// ForwardTraining the training flag reaches every nested TrainingModule.
//
// Example:
//
//	upsample := nn.NewSequential[B](
//	    nn.NewConv2DSame(64, 256, 3, 1, backend, rng),
//	    nn.NewPixelShuffle[B](2),
//	    nn.NewPReLU(64, backend),
//	)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Forward runs every module in inference mode.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return s.ForwardTraining(input, false)
}

// ForwardTraining runs every module, passing training to those that care.
func (s *Sequential[B]) ForwardTraining(input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	output := input
	for _, module := range s.modules {
		output = ForwardMode(module, output, training)
	}
	return output
}

// Parameters returns all parameters from all modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// Modules returns the contained modules in order.
func (s *Sequential[B]) Modules() []Module[B] {
	return s.modules
}

func (s *Sequential[B]) String() string {
	parts := make([]string, len(s.modules))
	for i, m := range s.modules {
		parts[i] = m.String()
	}
	return "Sequential(" + strings.Join(parts, ", ") + ")"
}

// Residual wraps a body f and computes f(x) + x.
//
// The body must preserve the input shape; Forward panics otherwise.
type Residual[B tensor.Backend] struct {
	body Module[B]
}

// NewResidual creates a residual connection around body.
func NewResidual[B tensor.Backend](body Module[B]) *Residual[B] {
	return &Residual[B]{body: body}
}

// Forward computes body(x) + x in inference mode.
func (r *Residual[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return r.ForwardTraining(input, false)
}

// ForwardTraining computes body(x) + x with the given training flag.
func (r *Residual[B]) ForwardTraining(input *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	output := ForwardMode(r.body, input, training)
	if !output.Shape().Equal(input.Shape()) {
		panic(fmt.Sprintf("residual: body changed shape %v -> %v", input.Shape(), output.Shape()))
	}
	return output.Add(input)
}

// Parameters returns the body's parameters.
func (r *Residual[B]) Parameters() []*Parameter[B] {
	return r.body.Parameters()
}

// Body returns the wrapped module.
func (r *Residual[B]) Body() Module[B] {
	return r.body
}

func (r *Residual[B]) String() string {
	return "Residual(" + r.body.String() + ")"
}
