package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from N(0, 1) using the
// Box-Muller transform. A nil rng uses the math/rand global source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(7))
//	x := tensor.Randn[float32](Shape{2, 24, 24, 3}, backend, rng)
func Randn[T DType, B Backend](shape Shape, b B, rng *rand.Rand) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	uniform := floatSource(rng)

	for i := 0; i < len(data); i += 2 {
		u1 := 1 - uniform() // (0, 1], keeps log finite
		u2 := uniform()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [lo, hi).
// A nil rng uses the math/rand global source.
func Rand[T DType, B Backend](shape Shape, lo, hi T, b B, rng *rand.Rand) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	uniform := floatSource(rng)
	for i := range data {
		data[i] = lo + T(uniform())*(hi-lo)
	}
	return t
}

func floatSource(rng *rand.Rand) func() float64 {
	if rng == nil {
		return rand.Float64 //nolint:gosec // G404: weight init and test data, not security-sensitive
	}
	return rng.Float64
}
