// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/backend/cpu"
	"github.com/born-ml/srgan/tensor"
)

// TestBackendInterface verifies that the CPU backend implements every
// interface the networks rely on.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
	var _ tensor.TanhBackend = (*cpu.Backend)(nil)
	var _ tensor.SigmoidBackend = (*cpu.Backend)(nil)
	var _ tensor.ReLUBackend = (*cpu.Backend)(nil)
	var _ tensor.LeakyReLUBackend = (*cpu.Backend)(nil)
}

func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())

	x := tensor.New[float32](raw, cpu.New())
	assert.Equal(t, 2, x.Rank())
}

func TestCreators(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, []float64{2.5, 2.5}, tensor.Full[float64](tensor.Shape{2}, 2.5, backend).Data())
	assert.Equal(t, []float32{1, 1, 1}, tensor.Ones[float32](tensor.Shape{3}, backend).Data())

	a := tensor.Randn[float32](tensor.Shape{4, 4}, backend, rand.New(rand.NewSource(1)))
	b := tensor.Randn[float32](tensor.Shape{4, 4}, backend, rand.New(rand.NewSource(1)))
	assert.True(t, a.Equal(b))

	u := tensor.Rand[float32](tensor.Shape{64}, 0, 1, backend, nil)
	lo, hi := u.MinMax()
	assert.GreaterOrEqual(t, lo, float32(0))
	assert.Less(t, hi, float32(1))
}

func TestLayoutRoundTrip(t *testing.T) {
	backend := cpu.New()

	x := tensor.Randn[float32](tensor.Shape{2, 5, 7, 3}, backend, rand.New(rand.NewSource(2)))
	y := x.Transpose(0, 3, 1, 2).Transpose(0, 2, 3, 1)
	assert.True(t, x.Equal(y))
}
