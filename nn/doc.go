// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers the SRGAN networks are assembled from.
//
// Layers take and return NCHW tensors except Linear, which works on
// [batch, features]. Parameters are Glorot-uniform initialised from a caller
// supplied *rand.Rand so that construction is reproducible.
//
// Example:
//
//	backend := cpu.New()
//	rng := rand.New(rand.NewSource(1))
//
//	block := nn.NewSequential[*cpu.Backend](
//	    nn.NewConv2DSame(64, 64, 3, 1, backend, rng),
//	    nn.NewBatchNorm2D(64, 0.8, 1e-3, backend),
//	    nn.NewPReLU(64, backend),
//	)
//	y := nn.ForwardMode[*cpu.Backend](block, x, true)
package nn
