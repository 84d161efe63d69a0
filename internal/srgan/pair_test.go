package srgan

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/tensor"
)

func TestPair_Score(t *testing.T) {
	g := newGenerator(t, smallGeneratorConfig())
	d := newDiscriminator(t, smallDiscriminatorConfig())

	pair, err := NewPair(g, d)
	require.NoError(t, err)

	h, w := pair.LowResolution()
	require.Equal(t, 4, h)
	require.Equal(t, 4, w)

	lr := randomImages(cpu.New(), tensor.Shape{3, h, w, 3}, 11)
	score, sr, err := pair.Score(TensorInput(lr), Train)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 16, 16, 3}, sr.Shape())
	assert.Equal(t, tensor.Shape{3, 1}, score.Shape())

	again, srAgain, err := pair.Score(TensorInput(lr), Predict)
	require.NoError(t, err)
	direct, err := d.Forward(srAgain, nil, Predict)
	require.NoError(t, err)
	assert.True(t, direct.Equal(again))
}

func TestPair_ResolutionMismatch(t *testing.T) {
	g := newGenerator(t, smallGeneratorConfig())

	cfg := smallDiscriminatorConfig()
	cfg.InputHeight = 18
	d := newDiscriminator(t, cfg)

	_, err := NewPair(g, d)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = NewPair[backendT](nil, d)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestPair_WrongLowResolution(t *testing.T) {
	pair, err := NewPair(newGenerator(t, smallGeneratorConfig()), newDiscriminator(t, smallDiscriminatorConfig()))
	require.NoError(t, err)

	lr := randomImages(cpu.New(), tensor.Shape{1, 8, 8, 3}, 12)
	_, _, err = pair.Score(TensorInput(lr), Predict)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
