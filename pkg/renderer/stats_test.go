package renderer

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/stretchr/testify/assert"
)

func TestPixelStats_Averages(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSurface(integrator.SurfaceSample{Hit: true, Albedo: core.NewVec3(1, 1, 1), Normal: core.NewVec3(0, 0, 1), Depth: 4})
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSurface(integrator.SurfaceSample{})

	assert.Equal(t, core.NewVec3(0.5, 0.5, 0), ps.GetColor())
	assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), ps.GetAlbedo(), "misses count as black")
	assert.Equal(t, core.NewVec3(0, 0, 0.5), ps.GetNormal())
	assert.Equal(t, 2.0, ps.GetDepth())
}

func TestPixelStats_Empty(t *testing.T) {
	var ps PixelStats
	assert.Equal(t, core.Vec3{}, ps.GetColor())
	assert.Equal(t, 0.0, ps.GetDepth())
}

func TestFrameBuffer_Store(t *testing.T) {
	frame := NewFrameBuffer(3, 2, true)
	assert.Equal(t, 5, frame.Index(2, 1))

	var ps PixelStats
	ps.AddSample(core.NewVec3(0.2, 0.4, 0.6))
	ps.AddSurface(integrator.SurfaceSample{Hit: true, Depth: 3})
	frame.store(frame.Index(1, 1), &ps)

	assert.Equal(t, core.NewVec3(0.2, 0.4, 0.6), frame.At(1, 1))
	assert.Equal(t, 3.0, frame.Depth[4])
	assert.Equal(t, core.Vec3{}, frame.At(0, 0))
}
