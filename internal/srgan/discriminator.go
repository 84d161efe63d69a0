package srgan

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

// Discriminator scores a batch [B, H, W, 3] of images with the probability
// [B, 1] that each one is a real high-resolution image.
//
// Topology: eight conv3x3 -> [BN] -> LeakyReLU blocks with widths
// F, F, 2F, 2F, 4F, 4F, 8F, 8F and strides alternating 1, 2 (no BN on the
// first block), then flatten -> dense(DenseUnits) -> LeakyReLU -> dense(1) ->
// sigmoid.
//
// The dense head is sized for cfg.InputHeight x cfg.InputWidth, so the
// resolution is fixed at construction.
type Discriminator[B tensor.Backend] struct {
	cfg     DiscriminatorConfig
	backend B
	stages  []stage[B]
}

// NewDiscriminator builds a discriminator with weights drawn from cfg.Seed.
func NewDiscriminator[B tensor.Backend](cfg DiscriminatorConfig, backend B) (*Discriminator[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Discriminator]")
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // G404: weight init, not security-sensitive
	f := cfg.NumFilters

	widths := []int{f, f, 2 * f, 2 * f, 4 * f, 4 * f, 8 * f, 8 * f}
	stages := make([]stage[B], 0, len(widths)+1)
	in, h, w := 3, cfg.InputHeight, cfg.InputWidth
	for i, out := range widths {
		stride := 1 + i%2
		desc := fmt.Sprintf("Conv2D(3x3, %d, stride %d) + BN + LeakyReLU", out, stride)
		if i == 0 {
			desc = fmt.Sprintf("Conv2D(3x3, %d, stride %d) + LeakyReLU", out, stride)
		}
		stages = append(stages, stage[B]{
			name:   fmt.Sprintf("block_%d", i+1),
			desc:   desc,
			module: discriminatorBlock(in, out, stride, i > 0, cfg, backend, rng),
		})
		in = out
		h, w = ceilDiv(h, stride), ceilDiv(w, stride)
	}

	hidden := nn.NewLinear(in*h*w, cfg.DenseUnits, backend, rng)
	score := nn.NewLinear(cfg.DenseUnits, 1, backend, rng)
	stages = append(stages, stage[B]{
		name: "head",
		desc: fmt.Sprintf("Flatten + Dense(%d->%d) + LeakyReLU + Dense(%d->%d) + Sigmoid",
			hidden.InFeatures(), hidden.OutFeatures(), score.InFeatures(), score.OutFeatures()),
		module: nn.NewSequential[B](
			nn.NewFlatten[B](true),
			hidden,
			nn.NewLeakyReLU[B](cfg.LeakySlope),
			score,
			nn.NewSigmoid[B](),
		),
	})

	d := &Discriminator[B]{cfg: cfg, backend: backend, stages: stages}
	slog.Debug("srgan: discriminator built",
		"filters", f,
		"resolution", fmt.Sprintf("%dx%d", cfg.InputHeight, cfg.InputWidth),
		"params", countParameters(d.Parameters()),
		"backend", backend.Name())
	return d, nil
}

// Forward scores x.
//
// unusedConditioning is accepted to match the two-argument discriminator
// signature of conditional GAN trainers and is ignored. x must be
// [B, InputHeight, InputWidth, 3]; anything else returns ErrShapeMismatch.
func (d *Discriminator[B]) Forward(x *tensor.Tensor[float32, B], unusedConditioning any, mode Mode) (out *tensor.Tensor[float32, B], err error) {
	_ = unusedConditioning

	if x == nil {
		return nil, errors.Wrap(ErrInvalidInputKind, "[Discriminator] nil tensor")
	}
	if err := d.validate(x.Shape()); err != nil {
		return nil, err
	}

	defer recoverShape("Discriminator", &err)

	training := mode.IsTraining() && !d.cfg.StrictParity
	return runStages(d.stages, toNCHW(x), training), nil
}

func (d *Discriminator[B]) validate(shape tensor.Shape) error {
	if len(shape) != 4 {
		return shapeError("Discriminator", "expected rank-4 input [B,H,W,3], got shape %v", shape)
	}
	if shape[3] != 3 {
		return shapeError("Discriminator", "expected 3 channels, got %d", shape[3])
	}
	if shape[0] <= 0 {
		return shapeError("Discriminator", "empty batch")
	}
	if shape[1] != d.cfg.InputHeight || shape[2] != d.cfg.InputWidth {
		return shapeError("Discriminator", "expected %dx%d images, got %dx%d",
			d.cfg.InputHeight, d.cfg.InputWidth, shape[1], shape[2])
	}
	return nil
}

// Parameters returns every weight of the network.
func (d *Discriminator[B]) Parameters() []*nn.Parameter[B] {
	var params []*nn.Parameter[B]
	for _, s := range d.stages {
		params = append(params, s.module.Parameters()...)
	}
	return params
}

// L2Penalty returns WeightDecay * Σ w² over convolution and dense kernels.
func (d *Discriminator[B]) L2Penalty() float64 {
	return d.cfg.WeightDecay * l2(d.Parameters())
}

// Backend returns the compute backend.
func (d *Discriminator[B]) Backend() B {
	return d.backend
}

// Config returns the configuration the discriminator was built with.
func (d *Discriminator[B]) Config() DiscriminatorConfig {
	return d.cfg
}

// Summary lists the discriminator stages at its fixed resolution.
func (d *Discriminator[B]) Summary() ([]LayerSummary, error) {
	return summarize("Discriminator", d.stages, tensor.Shape{1, 3, d.cfg.InputHeight, d.cfg.InputWidth}, d.backend)
}

func (d *Discriminator[B]) String() string {
	return fmt.Sprintf("Discriminator(filters=%d, resolution=%dx%d)", d.cfg.NumFilters, d.cfg.InputHeight, d.cfg.InputWidth)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
