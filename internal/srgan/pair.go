package srgan

import (
	"github.com/pkg/errors"

	"github.com/born-ml/srgan/internal/tensor"
)

// Pair composes a generator and a discriminator the way an adversarial
// trainer does: the generator's output is scored by the discriminator.
type Pair[B tensor.Backend] struct {
	Generator     *Generator[B]
	Discriminator *Discriminator[B]
}

// NewPair checks that the discriminator resolution is a multiple of the
// generator scale, so some low-resolution size maps onto it.
func NewPair[B tensor.Backend](g *Generator[B], d *Discriminator[B]) (*Pair[B], error) {
	if g == nil || d == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "[Pair] generator and discriminator are required")
	}
	cfg := d.Config()
	if cfg.InputHeight%g.Scale() != 0 || cfg.InputWidth%g.Scale() != 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[Pair] discriminator resolution %dx%d is not a multiple of scale %d",
			cfg.InputHeight, cfg.InputWidth, g.Scale())
	}
	return &Pair[B]{Generator: g, Discriminator: d}, nil
}

// LowResolution returns the input size whose upscaled output matches the
// discriminator.
func (p *Pair[B]) LowResolution() (height, width int) {
	cfg := p.Discriminator.Config()
	return cfg.InputHeight / p.Generator.Scale(), cfg.InputWidth / p.Generator.Scale()
}

// Score computes D(G(lr)). The super-resolved batch is returned as well so a
// caller can compute content losses on it.
func (p *Pair[B]) Score(lr Input[B], mode Mode) (score, sr *tensor.Tensor[float32, B], err error) {
	sr, err = p.Generator.Forward(lr, mode)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[Pair]")
	}
	score, err = p.Discriminator.Forward(sr, nil, mode)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[Pair]")
	}
	return score, sr, nil
}
