package srgan

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Mode tells the networks which phase of the estimator lifecycle they run in.
type Mode int

const (
	// Train selects training behaviour: batch normalisation uses and updates
	// batch statistics.
	Train Mode = iota
	// Eval runs with moving statistics for evaluation.
	Eval
	// Predict runs with moving statistics for inference.
	Predict
)

func (m Mode) String() string {
	switch m {
	case Train:
		return "train"
	case Eval:
		return "eval"
	case Predict:
		return "predict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsTraining reports whether m is Train.
func (m Mode) IsTraining() bool {
	return m == Train
}

// ParseMode parses "train", "eval", "predict" or its alias "infer".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "train":
		return Train, nil
	case "eval":
		return Eval, nil
	case "predict", "infer":
		return Predict, nil
	default:
		return 0, errors.Wrapf(ErrInvalidConfig, "unknown mode %q", s)
	}
}
