// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Im2col + GEMM convolutions on gonum's BLAS
//   - Float32 and Float64 support
//   - Parallel kernels bounded by WithThreads
//
// # Basic Usage
//
//	backend := cpu.New(cpu.WithThreads(4))
//	x := tensor.Zeros[float32](tensor.Shape{1, 3, 96, 96}, backend)
//	k := tensor.Zeros[float32](tensor.Shape{64, 3, 9, 9}, backend)
//	y := x.Conv2D(k, 1, 4) // [1, 64, 96, 96]
package cpu
