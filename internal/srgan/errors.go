package srgan

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

var (
	// ErrShapeMismatch is returned when an input tensor does not fit the
	// network: wrong rank, channel count or spatial size.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidInputKind is returned when an Input holds neither a tensor nor
	// a feature map with a tensor under FeatureKey.
	ErrInvalidInputKind = errors.New("invalid input kind")

	// ErrInvalidConfig is returned for unusable network configurations.
	ErrInvalidConfig = errors.New("invalid config")
)

// shapeError wraps ErrShapeMismatch with a formatted message.
func shapeError(component, format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, "[%s] %s", component, fmt.Sprintf(format, args...))
}

// recoverShape turns a panic raised by the tensor layer during a forward
// pass into an ErrShapeMismatch stored in *err. Only the "<op>: ..." string
// panics of the backend and construction errors are converted; runtime
// errors and anything else propagate.
func recoverShape(component string, err *error) {
	r := recover()
	switch v := r.(type) {
	case nil:
	case runtime.Error:
		panic(v)
	case string:
		*err = shapeError(component, "%s", v)
	case error:
		*err = shapeError(component, "%v", v)
	default:
		panic(v)
	}
}
