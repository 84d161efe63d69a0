package tensor

// Backend defines the operations a compute backend must provide for the
// SRGAN networks. All operations are pure: they allocate and return a new
// RawTensor and never modify their operands.
//
// Layout conventions:
//   - Conv2D takes input [N, C_in, H, W] and kernel [C_out, C_in, K_h, K_w].
//   - DepthToSpace takes [N, C, H, W] and returns [N, C/r², H*r, W*r].
//
// Backends signal invalid shapes by panicking with an "<op>: ..." message.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Conv2D performs a 2D cross-correlation with symmetric zero padding.
	Conv2D(input, kernel *RawTensor, stride, padding int) *RawTensor

	// DepthToSpace rearranges channel blocks into spatial blocks (pixel shuffle).
	DepthToSpace(x *RawTensor, blockSize int) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations.
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Rsqrt(x *RawTensor) *RawTensor

	// Reductions.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}

// TanhBackend is implemented by backends that provide tanh.
type TanhBackend interface {
	Tanh(x *RawTensor) *RawTensor
}

// SigmoidBackend is implemented by backends that provide the logistic sigmoid.
type SigmoidBackend interface {
	Sigmoid(x *RawTensor) *RawTensor
}

// ReLUBackend is implemented by backends that provide ReLU.
type ReLUBackend interface {
	ReLU(x *RawTensor) *RawTensor
}

// LeakyReLUBackend is implemented by backends that provide a leaky ReLU with a
// fixed negative slope.
type LeakyReLUBackend interface {
	LeakyReLU(x *RawTensor, slope float64) *RawTensor
}
