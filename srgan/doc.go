// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package srgan provides the SRGAN super-resolution generator and
// discriminator networks.
//
// # Overview
//
// The generator maps a low-resolution NHWC image in [-1, 1] to an image
// 2^UpsampleStages times larger (4x by default) through a residual trunk and
// pixel-shuffle upsampling. The discriminator scores a fixed-size NHWC image
// with a probability in (0, 1).
//
// # Basic Usage
//
//	backend := cpu.New()
//
//	g, err := srgan.NewGenerator(srgan.DefaultGeneratorConfig(), backend)
//	if err != nil {
//	    return err
//	}
//
//	lr := tensor.Rand[float32](tensor.Shape{1, 24, 24, 3}, -1, 1, backend, nil)
//	sr, err := g.Forward(srgan.TensorInput(lr), srgan.Predict) // [1, 96, 96, 3]
//
// # Modes
//
// Train normalises with batch statistics and updates the moving averages.
// Eval and Predict use the moving averages. Forward is safe for concurrent
// use in any mode.
package srgan
