package srgan

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

// Generator maps a low-resolution batch [B, H, W, 3] to a super-resolved
// batch [B, sH, sW, 3] with values in [-1, 1], where s = cfg.Scale().
//
// Topology:
//
//	conv9x9(F) -> PReLU                          (entry)
//	N x residual block, conv3x3(F) -> BN, + entry (trunk, long skip)
//	UpsampleStages x [conv3x3(4F) -> pixel shuffle x2 -> PReLU]
//	conv9x9(3) -> tanh
//
// A Generator holds no per-call state; Forward may be called concurrently.
// Calls in Train mode update batch normalisation moving statistics.
type Generator[B tensor.Backend] struct {
	cfg     GeneratorConfig
	backend B
	stages  []stage[B]
}

// NewGenerator builds a generator with weights drawn from cfg.Seed.
func NewGenerator[B tensor.Backend](cfg GeneratorConfig, backend B) (*Generator[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Generator]")
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // G404: weight init, not security-sensitive
	f := cfg.NumFilters

	entry := nn.NewSequential[B](
		nn.NewConv2DSame(3, f, 9, 1, backend, rng),
		nn.NewPReLU(f, backend),
	)

	trunk := nn.NewSequential[B]()
	for i := 0; i < cfg.NumResBlocks; i++ {
		trunk.Add(resBlock(f, cfg.BNMomentum, backend, rng))
	}
	trunk.Add(nn.NewConv2DSame(f, f, 3, 1, backend, rng))
	trunk.Add(nn.NewBatchNorm2D(f, defaultSkipMomentum, defaultBNEpsilon, backend))

	skip := nn.NewResidual[B](trunk)
	stages := []stage[B]{
		{name: "entry", desc: fmt.Sprintf("Conv2D(9x9, %d) + PReLU", f), module: entry},
		{name: "trunk", desc: trunkDesc(skip, f), module: skip},
	}
	for i := 0; i < cfg.UpsampleStages; i++ {
		stages = append(stages, stage[B]{
			name:   fmt.Sprintf("upsample_%d", i+1),
			desc:   fmt.Sprintf("Conv2D(3x3, %d) + PixelShuffle(2) + PReLU", 4*f),
			module: upsampleBlock(f, backend, rng),
		})
	}
	stages = append(stages, stage[B]{
		name: "output",
		desc: "Conv2D(9x9, 3) + Tanh",
		module: nn.NewSequential[B](
			nn.NewConv2DSame(f, 3, 9, 1, backend, rng),
			nn.NewTanh[B](),
		),
	})

	g := &Generator[B]{cfg: cfg, backend: backend, stages: stages}
	slog.Debug("srgan: generator built",
		"filters", f,
		"res_blocks", cfg.NumResBlocks,
		"scale", cfg.Scale(),
		"params", countParameters(g.Parameters()),
		"backend", backend.Name())
	return g, nil
}

// Forward runs the generator.
//
// The input may be a tensor or a feature map (see Input). It must be
// [B, H, W, 3] with H and W multiples of Scale(); anything else returns
// ErrShapeMismatch before any computation. Mode Train normalises with batch
// statistics unless cfg.StrictParity is set.
func (g *Generator[B]) Forward(in Input[B], mode Mode) (out *tensor.Tensor[float32, B], err error) {
	x, err := in.Resolve()
	if err != nil {
		return nil, errors.Wrap(err, "[Generator]")
	}
	if err := g.validate(x.Shape()); err != nil {
		return nil, err
	}

	defer recoverShape("Generator", &err)

	training := mode.IsTraining() && !g.cfg.StrictParity
	y := runStages(g.stages, toNCHW(x), training)
	return toNHWC(y), nil
}

func (g *Generator[B]) validate(shape tensor.Shape) error {
	if len(shape) != 4 {
		return shapeError("Generator", "expected rank-4 input [B,H,W,3], got shape %v", shape)
	}
	if shape[3] != 3 {
		return shapeError("Generator", "expected 3 channels, got %d", shape[3])
	}
	scale := g.cfg.Scale()
	if shape[0] <= 0 || shape[1] <= 0 || shape[2] <= 0 {
		return shapeError("Generator", "empty input %v", shape)
	}
	if shape[1]%scale != 0 || shape[2]%scale != 0 {
		return shapeError("Generator", "spatial size %dx%d is not a multiple of %d", shape[1], shape[2], scale)
	}
	return nil
}

// Parameters returns every weight of the network, including batch
// normalisation moving statistics.
func (g *Generator[B]) Parameters() []*nn.Parameter[B] {
	var params []*nn.Parameter[B]
	for _, s := range g.stages {
		params = append(params, s.module.Parameters()...)
	}
	return params
}

// L2Penalty returns WeightDecay * Σ w² over convolution kernels, for a
// trainer to add to its loss.
func (g *Generator[B]) L2Penalty() float64 {
	return g.cfg.WeightDecay * l2(g.Parameters())
}

// Backend returns the compute backend.
func (g *Generator[B]) Backend() B {
	return g.backend
}

// Config returns the configuration the generator was built with.
func (g *Generator[B]) Config() GeneratorConfig {
	return g.cfg
}

// Scale returns the upscaling factor.
func (g *Generator[B]) Scale() int {
	return g.cfg.Scale()
}

// Summary lists the generator stages for a height x width input.
func (g *Generator[B]) Summary(height, width int) ([]LayerSummary, error) {
	if err := g.validate(tensor.Shape{1, height, width, 3}); err != nil {
		return nil, err
	}
	return summarize("Generator", g.stages, tensor.Shape{1, 3, height, width}, g.backend)
}

// trunkDesc counts the residual blocks inside the long skip connection.
func trunkDesc[B tensor.Backend](skip *nn.Residual[B], filters int) string {
	blocks := 0
	if body, ok := skip.Body().(*nn.Sequential[B]); ok {
		for _, m := range body.Modules() {
			if _, ok := m.(*nn.Residual[B]); ok {
				blocks++
			}
		}
	}
	return fmt.Sprintf("%d x ResBlock(%d) + Conv2D(3x3) + BN, skip from entry", blocks, filters)
}

func (g *Generator[B]) String() string {
	return fmt.Sprintf("Generator(filters=%d, res_blocks=%d, scale=%d)", g.cfg.NumFilters, g.cfg.NumResBlocks, g.cfg.Scale())
}
