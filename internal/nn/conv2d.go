package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/srgan/internal/tensor"
)

// Conv2D is a 2D convolutional layer.
//
// Performs convolution: output = Conv2D(input, kernel) + bias
//
// Input shape:  [batch, in_channels, height, width]
// Kernel shape: [out_channels, in_channels, kernel_h, kernel_w]
// Bias shape:   [out_channels]
// Output shape: [batch, out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + 2*padding - kernel_h) / stride + 1
//	out_w = (width + 2*padding - kernel_w) / stride + 1
//
// Example:
//
//	// 3 -> 64 channels, 9x9 kernel, spatial size preserved
//	conv := nn.NewConv2DSame(3, 64, 9, 1, backend, rng)
//	output := conv.Forward(input) // [N, 64, H, W]
type Conv2D[B tensor.Backend] struct {
	inChannels  int
	outChannels int
	kernelSize  [2]int
	stride      int
	padding     int
	useBias     bool

	kernel *Parameter[B] // [out_channels, in_channels, kernel_h, kernel_w]
	bias   *Parameter[B] // [out_channels] or nil

	backend B
}

// NewConv2D creates a new 2D convolutional layer.
//
// Parameters:
//   - inChannels: Number of input channels
//   - outChannels: Number of output channels (number of filters)
//   - kernelH, kernelW: Kernel dimensions
//   - stride: Stride for convolution (1 or 2 in this repository)
//   - padding: Zero padding applied to every border
//   - useBias: Whether to include bias term
//   - backend: Backend for computation
//   - rng: Source for weight initialization (nil = global source)
//
// Initialization:
//   - Kernel: Glorot uniform
//   - Bias: Zeros
func NewConv2D[B tensor.Backend](
	inChannels, outChannels int,
	kernelH, kernelW int,
	stride, padding int,
	useBias bool,
	backend B,
	rng *rand.Rand,
) *Conv2D[B] {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelH <= 0 || kernelW <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size h=%d, w=%d", kernelH, kernelW))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}
	if padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid padding %d", padding))
	}

	// fan_in = in_channels * receptive field, fan_out = out_channels * receptive field
	receptive := kernelH * kernelW
	kernel := GlorotUniform(inChannels*receptive, outChannels*receptive,
		tensor.Shape{outChannels, inChannels, kernelH, kernelW}, backend, rng)

	var bias *Parameter[B]
	if useBias {
		bias = NewParameter("bias", Zeros(tensor.Shape{outChannels}, backend))
	}

	return &Conv2D[B]{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  [2]int{kernelH, kernelW},
		stride:      stride,
		padding:     padding,
		useBias:     useBias,
		kernel:      NewParameter("kernel", kernel),
		bias:        bias,
		backend:     backend,
	}
}

// NewConv2DSame creates a square convolution with bias whose padding keeps
// the output at ceil(H/stride) x ceil(W/stride). Only odd kernel sizes are
// supported.
func NewConv2DSame[B tensor.Backend](inChannels, outChannels, kernelSize, stride int, backend B, rng *rand.Rand) *Conv2D[B] {
	if kernelSize%2 == 0 {
		panic(fmt.Sprintf("conv2d: same padding requires an odd kernel, got %d", kernelSize))
	}
	return NewConv2D(inChannels, outChannels, kernelSize, kernelSize, stride, kernelSize/2, true, backend, rng)
}

// Forward performs the forward pass.
//
// Input: [batch, in_channels, height, width]
// Output: [batch, out_channels, out_h, out_w].
func (c *Conv2D[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("conv2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if inputShape[1] != c.inChannels {
		panic(fmt.Sprintf("conv2d: input channels %d != expected %d", inputShape[1], c.inChannels))
	}

	output := input.Conv2D(c.kernel.Tensor(), c.stride, c.padding)
	if c.useBias {
		output = output.Add(c.bias.Tensor().Reshape(1, c.outChannels, 1, 1))
	}
	return output
}

// Parameters returns the kernel and, if present, the bias.
func (c *Conv2D[B]) Parameters() []*Parameter[B] {
	if c.useBias {
		return []*Parameter[B]{c.kernel, c.bias}
	}
	return []*Parameter[B]{c.kernel}
}

// String returns a string representation of the layer.
func (c *Conv2D[B]) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=(%d, %d), stride=%d, padding=%d, bias=%v)",
		c.inChannels, c.outChannels,
		c.kernelSize[0], c.kernelSize[1],
		c.stride, c.padding, c.useBias)
}

// Kernel returns the convolution kernel.
func (c *Conv2D[B]) Kernel() *Parameter[B] {
	return c.kernel
}

// Bias returns the bias, or nil for a layer without one.
func (c *Conv2D[B]) Bias() *Parameter[B] {
	return c.bias
}

// OutChannels returns the number of output channels.
func (c *Conv2D[B]) OutChannels() int {
	return c.outChannels
}

// InChannels returns the number of input channels.
func (c *Conv2D[B]) InChannels() int {
	return c.inChannels
}

// Stride returns the stride.
func (c *Conv2D[B]) Stride() int {
	return c.stride
}

// ComputeOutputSize computes output spatial dimensions for given input size.
//
// Returns: [out_height, out_width].
func (c *Conv2D[B]) ComputeOutputSize(inputH, inputW int) [2]int {
	outH := (inputH+2*c.padding-c.kernelSize[0])/c.stride + 1
	outW := (inputW+2*c.padding-c.kernelSize[1])/c.stride + 1
	return [2]int{outH, outW}
}
