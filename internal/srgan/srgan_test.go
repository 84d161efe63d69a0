package srgan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/tensor"
)

type backendT = *cpu.CPUBackend

func smallGeneratorConfig() GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	cfg.NumFilters = 8
	cfg.NumResBlocks = 2
	return cfg
}

func smallDiscriminatorConfig() DiscriminatorConfig {
	cfg := DefaultDiscriminatorConfig()
	cfg.NumFilters = 4
	cfg.InputHeight = 16
	cfg.InputWidth = 16
	cfg.DenseUnits = 16
	return cfg
}

func newGenerator(t *testing.T, cfg GeneratorConfig) *Generator[backendT] {
	t.Helper()
	g, err := NewGenerator(cfg, cpu.New())
	require.NoError(t, err)
	return g
}

func newDiscriminator(t *testing.T, cfg DiscriminatorConfig) *Discriminator[backendT] {
	t.Helper()
	d, err := NewDiscriminator(cfg, cpu.New())
	require.NoError(t, err)
	return d
}

// randomImages returns an NHWC batch in [-1, 1).
func randomImages(b backendT, shape tensor.Shape, seed int64) *tensor.Tensor[float32, backendT] {
	return tensor.Rand[float32](shape, -1, 1, b, rand.New(rand.NewSource(seed)))
}
