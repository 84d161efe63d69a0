package nn

import (
	"fmt"

	"github.com/born-ml/srgan/internal/tensor"
)

// PixelShuffle trades channel depth for spatial resolution:
// [N, C*r², H, W] -> [N, C, H*r, W*r].
//
// Channel ordering matches TensorFlow's depth_to_space, so kernels exported
// from a Keras model produce the same image.
type PixelShuffle[B tensor.Backend] struct {
	factor int
}

// NewPixelShuffle creates a pixel shuffle with upscale factor r.
func NewPixelShuffle[B tensor.Backend](factor int) *PixelShuffle[B] {
	if factor < 1 {
		panic(fmt.Sprintf("pixel_shuffle: invalid factor %d", factor))
	}
	return &PixelShuffle[B]{factor: factor}
}

// Forward rearranges the input.
func (p *PixelShuffle[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.DepthToSpace(p.factor)
}

// Parameters returns nil.
func (p *PixelShuffle[B]) Parameters() []*Parameter[B] {
	return nil
}

func (p *PixelShuffle[B]) String() string {
	return fmt.Sprintf("PixelShuffle(factor=%d)", p.factor)
}

// Flatten reshapes [N, ...] to [N, prod(...)].
//
// With channelsLast set, a 4D NCHW input is flattened in NHWC order, which is
// the element order a channels-last framework feeds its dense layers.
type Flatten[B tensor.Backend] struct {
	channelsLast bool
}

// NewFlatten creates a Flatten layer.
func NewFlatten[B tensor.Backend](channelsLast bool) *Flatten[B] {
	return &Flatten[B]{channelsLast: channelsLast}
}

// Forward flattens all but the batch dimension.
func (f *Flatten[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("flatten: expected at least 2D input, got shape %v", shape))
	}
	if f.channelsLast && len(shape) == 4 {
		input = input.Transpose(0, 2, 3, 1)
	}
	return input.Reshape(shape[0], -1)
}

// Parameters returns nil.
func (f *Flatten[B]) Parameters() []*Parameter[B] {
	return nil
}

func (f *Flatten[B]) String() string {
	return fmt.Sprintf("Flatten(channels_last=%v)", f.channelsLast)
}
