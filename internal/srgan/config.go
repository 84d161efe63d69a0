package srgan

import (
	"github.com/pkg/errors"
)

// Keras BatchNormalization defaults. The BN closing the generator trunk keeps
// the default momentum.
const (
	defaultBNEpsilon    = 1e-3
	defaultSkipMomentum = 0.99
)

// GeneratorConfig configures the generator network.
type GeneratorConfig struct {
	// WeightDecay scales the L2 penalty reported by L2Penalty.
	WeightDecay float64

	// NumFilters is the channel width of the residual trunk.
	NumFilters int

	// NumResBlocks is the number of residual blocks in the trunk.
	NumResBlocks int

	// UpsampleStages is the number of 2x pixel-shuffle stages. Two stages
	// give the usual 4x super-resolution.
	UpsampleStages int

	// BNMomentum is the moving-average momentum of the residual block
	// normalisation layers. The normalisation closing the trunk keeps the
	// framework default of 0.99.
	BNMomentum float64

	// Seed drives weight initialisation.
	Seed int64

	// StrictParity keeps batch normalisation in inference mode whatever the
	// Mode, reproducing networks whose training flag never reached their
	// normalisation layers.
	StrictParity bool
}

// DefaultGeneratorConfig returns the standard SRGAN generator: 64 filters,
// 16 residual blocks, 4x upscaling.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		WeightDecay:    2.5e-5,
		NumFilters:     64,
		NumResBlocks:   16,
		UpsampleStages: 2,
		BNMomentum:     0.8,
		Seed:           1,
	}
}

// Validate checks the configuration.
func (c GeneratorConfig) Validate() error {
	switch {
	case c.WeightDecay < 0:
		return errors.Wrapf(ErrInvalidConfig, "weight decay %g is negative", c.WeightDecay)
	case c.NumFilters <= 0:
		return errors.Wrapf(ErrInvalidConfig, "num filters %d must be positive", c.NumFilters)
	case c.NumResBlocks < 0:
		return errors.Wrapf(ErrInvalidConfig, "num res blocks %d is negative", c.NumResBlocks)
	case c.UpsampleStages < 1:
		return errors.Wrapf(ErrInvalidConfig, "upsample stages %d must be at least 1", c.UpsampleStages)
	case c.BNMomentum < 0 || c.BNMomentum > 1:
		return errors.Wrapf(ErrInvalidConfig, "batch norm momentum %g outside [0, 1]", c.BNMomentum)
	}
	return nil
}

// Scale returns the upscaling factor, 2^UpsampleStages.
func (c GeneratorConfig) Scale() int {
	return 1 << c.UpsampleStages
}

// DiscriminatorConfig configures the discriminator network.
type DiscriminatorConfig struct {
	// WeightDecay scales the L2 penalty reported by L2Penalty.
	WeightDecay float64

	// NumFilters is the width of the first block; later blocks use 2x, 4x
	// and 8x this value.
	NumFilters int

	// InputHeight and InputWidth fix the image resolution. The dense head is
	// sized for it, so other resolutions are rejected.
	InputHeight int
	InputWidth  int

	// DenseUnits is the width of the hidden dense layer.
	DenseUnits int

	BNMomentum float64
	LeakySlope float64
	Seed       int64

	// StrictParity keeps batch normalisation in inference mode whatever the
	// Mode.
	StrictParity bool
}

// DefaultDiscriminatorConfig returns the standard SRGAN discriminator for
// 96x96 images.
func DefaultDiscriminatorConfig() DiscriminatorConfig {
	return DiscriminatorConfig{
		WeightDecay: 2.5e-5,
		NumFilters:  64,
		InputHeight: 96,
		InputWidth:  96,
		DenseUnits:  1024,
		BNMomentum:  0.8,
		LeakySlope:  0.2,
		Seed:        2,
	}
}

// Validate checks the configuration.
func (c DiscriminatorConfig) Validate() error {
	switch {
	case c.WeightDecay < 0:
		return errors.Wrapf(ErrInvalidConfig, "weight decay %g is negative", c.WeightDecay)
	case c.NumFilters <= 0:
		return errors.Wrapf(ErrInvalidConfig, "num filters %d must be positive", c.NumFilters)
	case c.InputHeight <= 0 || c.InputWidth <= 0:
		return errors.Wrapf(ErrInvalidConfig, "input resolution %dx%d must be positive", c.InputHeight, c.InputWidth)
	case c.DenseUnits <= 0:
		return errors.Wrapf(ErrInvalidConfig, "dense units %d must be positive", c.DenseUnits)
	case c.BNMomentum < 0 || c.BNMomentum > 1:
		return errors.Wrapf(ErrInvalidConfig, "batch norm momentum %g outside [0, 1]", c.BNMomentum)
	case c.LeakySlope < 0:
		return errors.Wrapf(ErrInvalidConfig, "leaky slope %g is negative", c.LeakySlope)
	}
	return nil
}
