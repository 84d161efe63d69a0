package srgan

import (
	"github.com/pkg/errors"

	"github.com/born-ml/srgan/internal/tensor"
)

// FeatureKey is the key a serving layer stores the image batch under.
const FeatureKey = "feature"

type inputKind uint8

const (
	inputEmpty inputKind = iota
	inputTensor
	inputFeatures
)

// Input is the generator's input: either a tensor passed directly or a
// serving-style feature map holding the tensor under FeatureKey.
//
// The zero value is an empty input and fails to resolve.
type Input[B tensor.Backend] struct {
	kind     inputKind
	tensor   *tensor.Tensor[float32, B]
	features map[string]*tensor.Tensor[float32, B]
}

// TensorInput wraps a tensor for direct invocation.
func TensorInput[B tensor.Backend](t *tensor.Tensor[float32, B]) Input[B] {
	return Input[B]{kind: inputTensor, tensor: t}
}

// FeatureInput wraps a serving feature map.
func FeatureInput[B tensor.Backend](features map[string]*tensor.Tensor[float32, B]) Input[B] {
	return Input[B]{kind: inputFeatures, features: features}
}

// Resolve returns the tensor carried by the input.
func (in Input[B]) Resolve() (*tensor.Tensor[float32, B], error) {
	switch in.kind {
	case inputTensor:
		if in.tensor == nil {
			return nil, errors.Wrap(ErrInvalidInputKind, "nil tensor")
		}
		return in.tensor, nil
	case inputFeatures:
		t, ok := in.features[FeatureKey]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInputKind, "feature map has no %q entry", FeatureKey)
		}
		if t == nil {
			return nil, errors.Wrapf(ErrInvalidInputKind, "feature %q is nil", FeatureKey)
		}
		return t, nil
	default:
		return nil, errors.Wrap(ErrInvalidInputKind, "empty input")
	}
}

func (in Input[B]) String() string {
	switch in.kind {
	case inputTensor:
		return "tensor"
	case inputFeatures:
		return "features"
	default:
		return "empty"
	}
}
