package srgan

import (
	"math/rand"

	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

// stage is a named top-level section of a network. Stages are what Summary
// reports on.
type stage[B tensor.Backend] struct {
	name   string
	desc   string
	module nn.Module[B]
}

// resBlock builds conv3x3 -> BN -> PReLU -> conv3x3 -> BN with an identity
// shortcut.
func resBlock[B tensor.Backend](filters int, momentum float64, backend B, rng *rand.Rand) *nn.Residual[B] {
	return nn.NewResidual[B](nn.NewSequential[B](
		nn.NewConv2DSame(filters, filters, 3, 1, backend, rng),
		nn.NewBatchNorm2D(filters, momentum, defaultBNEpsilon, backend),
		nn.NewPReLU(filters, backend),
		nn.NewConv2DSame(filters, filters, 3, 1, backend, rng),
		nn.NewBatchNorm2D(filters, momentum, defaultBNEpsilon, backend),
	))
}

// upsampleBlock builds conv3x3(4F) -> pixel shuffle x2 -> PReLU, doubling the
// spatial size at constant width F.
func upsampleBlock[B tensor.Backend](filters int, backend B, rng *rand.Rand) *nn.Sequential[B] {
	return nn.NewSequential[B](
		nn.NewConv2DSame(filters, filters*4, 3, 1, backend, rng),
		nn.NewPixelShuffle[B](2),
		nn.NewPReLU(filters, backend),
	)
}

// discriminatorBlock builds conv3x3 -> [BN] -> LeakyReLU.
func discriminatorBlock[B tensor.Backend](
	in, out, stride int,
	batchNorm bool,
	cfg DiscriminatorConfig,
	backend B,
	rng *rand.Rand,
) *nn.Sequential[B] {
	block := nn.NewSequential[B](nn.NewConv2DSame(in, out, 3, stride, backend, rng))
	if batchNorm {
		block.Add(nn.NewBatchNorm2D(out, cfg.BNMomentum, defaultBNEpsilon, backend))
	}
	block.Add(nn.NewLeakyReLU[B](cfg.LeakySlope))
	return block
}

// runStages feeds x through every stage.
func runStages[B tensor.Backend](stages []stage[B], x *tensor.Tensor[float32, B], training bool) *tensor.Tensor[float32, B] {
	for _, s := range stages {
		x = nn.ForwardMode[B](s.module, x, training)
	}
	return x
}

// toNCHW and toNHWC convert between the channels-last layout used at the
// network boundary and the channels-first layout of the layers.
func toNCHW[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return x.Transpose(0, 3, 1, 2)
}

func toNHWC[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return x.Transpose(0, 2, 3, 1)
}

// l2 sums the squares of every convolution and dense kernel.
func l2[B tensor.Backend](params []*nn.Parameter[B]) float64 {
	var sum float64
	for _, p := range params {
		if p.Name() != "kernel" {
			continue
		}
		for _, v := range p.Tensor().Data() {
			sum += float64(v) * float64(v)
		}
	}
	return sum
}

func countParameters[B tensor.Backend](params []*nn.Parameter[B]) int {
	total := 0
	for _, p := range params {
		total += p.NumElements()
	}
	return total
}
