// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/srgan/backend/cpu"
	"github.com/born-ml/srgan/nn"
	"github.com/born-ml/srgan/tensor"
)

func TestResidualBlock(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	block := nn.NewResidual[*cpu.Backend](nn.NewSequential[*cpu.Backend](
		nn.NewConv2DSame(4, 4, 3, 1, backend, rng),
		nn.NewBatchNorm2D(4, 0.8, 1e-3, backend),
		nn.NewPReLU(4, backend),
	))

	x := tensor.Randn[float32](tensor.Shape{2, 4, 5, 5}, backend, rng)
	y := nn.ForwardMode[*cpu.Backend](block, x, true)
	assert.Equal(t, x.Shape(), y.Shape())

	// conv 4*4*9+4, BN 4 gamma + 4 beta + 8 buffers, PReLU 4.
	assert.Equal(t, 148+16+4, nn.CountParameters[*cpu.Backend](block))
}
