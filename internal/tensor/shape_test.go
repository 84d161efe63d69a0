package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 96, 96, 3}, 27648},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{1, 2, 3}.Validate())
	require.Error(t, Shape{1, 0, 3}.Validate())
	require.Error(t, Shape{-1}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{"equal", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{"column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"channel bias", Shape{1, 64, 1, 1}, Shape{8, 64, 24, 24}, Shape{8, 64, 24, 24}, true, false},
		{"rank extend", Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

func TestRawTensorCloneIsDeep(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float32, CPU)
	require.NoError(t, err)
	raw.AsFloat32()[0] = 1

	clone := raw.Clone()
	clone.AsFloat32()[0] = 42

	assert.Equal(t, float32(1), raw.AsFloat32()[0])
	assert.Equal(t, float32(42), clone.AsFloat32()[0])
}

func TestRawTensorWithShape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	require.NoError(t, err)

	view, err := raw.WithShape(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, view.Shape())
	assert.Equal(t, []int{2, 1}, view.Strides())

	_, err = raw.WithShape(Shape{4, 2})
	require.Error(t, err)
}

func TestRawTensorWrongDTypePanics(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { raw.AsFloat64() })
}

func TestInferShape(t *testing.T) {
	assert.Equal(t, Shape{8, 18432}, inferShape(8*512*6*6, []int{8, -1}))
	assert.Equal(t, Shape{2, 3}, inferShape(6, []int{2, 3}))
	assert.Panics(t, func() { inferShape(6, []int{-1, -1}) })
	assert.Panics(t, func() { inferShape(7, []int{2, -1}) })
}
