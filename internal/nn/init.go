package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/srgan/internal/tensor"
)

// GlorotUniform draws weights from U(-limit, limit) with
// limit = sqrt(6 / (fan_in + fan_out)).
//
// A nil rng uses the math/rand global source; pass a seeded *rand.Rand for
// reproducible networks.
func GlorotUniform[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B, rng *rand.Rand) *tensor.Tensor[float32, B] {
	limit := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	return tensor.Rand[float32](shape, -limit, limit, backend, rng)
}

// Zeros creates a zero-filled tensor (bias, beta, PReLU alpha, moving mean).
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}

// Ones creates a tensor filled with ones (gamma, moving variance).
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Ones[float32](shape, backend)
}
