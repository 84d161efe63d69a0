// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/srgan/internal/tensor"

// Backend defines the operations a compute backend must provide.
//
// Implementations:
//   - backend/cpu: pure Go, GEMM via gonum
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend

// Optional activation interfaces. Tensor methods such as Tanh panic when the
// backend does not implement the matching one.
type (
	TanhBackend      = tensor.TanhBackend
	SigmoidBackend   = tensor.SigmoidBackend
	ReLUBackend      = tensor.ReLUBackend
	LeakyReLUBackend = tensor.LeakyReLUBackend
)
