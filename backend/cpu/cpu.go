// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithThreads bounds the number of goroutines used by convolution kernels.
func WithThreads(n int) Option {
	return internalcpu.WithThreads(n)
}
