// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package srgan

import (
	"github.com/born-ml/srgan/internal/srgan"
	"github.com/born-ml/srgan/tensor"
)

// Generator is the SRGAN super-resolution generator.
type Generator[B tensor.Backend] = srgan.Generator[B]

// Discriminator is the SRGAN real/fake discriminator.
type Discriminator[B tensor.Backend] = srgan.Discriminator[B]

// Pair couples a generator with a discriminator sized for its output.
type Pair[B tensor.Backend] = srgan.Pair[B]

// GeneratorConfig holds generator hyperparameters.
type GeneratorConfig = srgan.GeneratorConfig

// DiscriminatorConfig holds discriminator hyperparameters.
type DiscriminatorConfig = srgan.DiscriminatorConfig

// LayerSummary describes one stage of a network.
type LayerSummary = srgan.LayerSummary

// Input is either a tensor or a feature map holding a tensor under FeatureKey.
type Input[B tensor.Backend] = srgan.Input[B]

// Mode selects training or inference behaviour.
type Mode = srgan.Mode

// Execution modes.
const (
	Train   Mode = srgan.Train
	Eval    Mode = srgan.Eval
	Predict Mode = srgan.Predict
)

// FeatureKey is the feature map key read by the generator.
const FeatureKey = srgan.FeatureKey

// Errors returned by the networks.
var (
	ErrShapeMismatch    = srgan.ErrShapeMismatch
	ErrInvalidInputKind = srgan.ErrInvalidInputKind
	ErrInvalidConfig    = srgan.ErrInvalidConfig
)

// DefaultGeneratorConfig returns the standard 4x generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return srgan.DefaultGeneratorConfig()
}

// DefaultDiscriminatorConfig returns the standard 96x96 discriminator configuration.
func DefaultDiscriminatorConfig() DiscriminatorConfig {
	return srgan.DefaultDiscriminatorConfig()
}

// NewGenerator builds a generator with seeded weights.
func NewGenerator[B tensor.Backend](cfg GeneratorConfig, backend B) (*Generator[B], error) {
	return srgan.NewGenerator(cfg, backend)
}

// NewDiscriminator builds a discriminator with seeded weights.
func NewDiscriminator[B tensor.Backend](cfg DiscriminatorConfig, backend B) (*Discriminator[B], error) {
	return srgan.NewDiscriminator(cfg, backend)
}

// NewPair checks that d accepts the output of g.
func NewPair[B tensor.Backend](g *Generator[B], d *Discriminator[B]) (*Pair[B], error) {
	return srgan.NewPair(g, d)
}

// TensorInput wraps a tensor.
func TensorInput[B tensor.Backend](t *tensor.Tensor[float32, B]) Input[B] {
	return srgan.TensorInput(t)
}

// FeatureInput wraps a feature map.
func FeatureInput[B tensor.Backend](features map[string]*tensor.Tensor[float32, B]) Input[B] {
	return srgan.FeatureInput(features)
}

// ParseMode parses "train", "eval", "predict" or "infer".
func ParseMode(s string) (Mode, error) {
	return srgan.ParseMode(s)
}

// TotalParams sums the parameter counts of summary rows.
func TotalParams(rows []LayerSummary) (total, trainable int) {
	return srgan.TotalParams(rows)
}
