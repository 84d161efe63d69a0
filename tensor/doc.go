// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the typed tensors used by the SRGAN networks.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B]) over float32 and float64
//   - NumPy-style broadcasting for element-wise operations
//   - Pure operations that return new tensors
//   - Seeded random creators for reproducible weights and test data
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/srgan/backend/cpu"
//	    "github.com/born-ml/srgan/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{1, 24, 24, 3}, backend)
//	    y := x.AddScalar(0.5)
//	    nchw := y.Transpose(0, 3, 1, 2) // [1, 3, 24, 24]
//	}
//
// # Layout
//
// Images enter and leave the networks as NHWC ([batch, height, width,
// channels]). Convolution and pixel shuffle operate on NCHW.
package tensor
