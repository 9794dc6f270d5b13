package output

import (
	"image/color"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneMap(t *testing.T) {
	assert.Equal(t, 0.0, ToneMap(0))
	assert.Equal(t, 0.0, ToneMap(-1))
	assert.Equal(t, 0.5, ToneMap(1))
	assert.Equal(t, 0.75, ToneMap(3))
	assert.Less(t, ToneMap(1e9), 1.0)
}

func TestLinearToGamma(t *testing.T) {
	assert.Equal(t, 0.0, LinearToGamma(-0.25))
	assert.Equal(t, 0.5, LinearToGamma(0.25))
	assert.Equal(t, 1.0, LinearToGamma(1))
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in       float64
		expected uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{0.999, 255},
		{1, 255},
		{7, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Quantize(tt.in), "Quantize(%v)", tt.in)
	}
}

func TestDisplayColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, DisplayColor(core.Vec3{}))
	// 1 -> 0.5 after tone mapping -> 0.7071 after gamma -> 181
	assert.Equal(t, color.RGBA{181, 181, 181, 255}, DisplayColor(core.NewVec3(1, 1, 1)))
}

func TestToImage_RowMajorTopFirst(t *testing.T) {
	frame := renderer.NewFrameBuffer(2, 2, false)
	frame.Color[frame.Index(1, 0)] = core.NewVec3(1, 0, 0)
	frame.Color[frame.Index(0, 1)] = core.NewVec3(0, 0, 3)

	img := ToImage(frame)
	require.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{181, 0, 0, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{0, 0, 221, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
}

func TestAuxImages(t *testing.T) {
	assert.Nil(t, AlbedoImage(renderer.NewFrameBuffer(1, 1, false)))

	frame := renderer.NewFrameBuffer(2, 1, true)
	frame.Albedo[0] = core.NewVec3(1, 0.25, 0)
	frame.Normal[0] = core.NewVec3(0, 0, 1)
	frame.Normal[1] = core.NewVec3(-1, 0, 0)
	frame.Depth[0] = 2
	frame.Depth[1] = 4

	assert.Equal(t, color.RGBA{255, 128, 0, 255}, AlbedoImage(frame).RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{128, 128, 255, 255}, NormalImage(frame).RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 128, 128, 255}, NormalImage(frame).RGBAAt(1, 0))

	depth := DepthImage(frame)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, depth.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, depth.RGBAAt(1, 0))
}
