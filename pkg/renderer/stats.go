package renderer

import (
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Camera rays per pixel
	Workers         int           // Number of row bands rendered in parallel
	Duration        time.Duration // Wall time of the render
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	AlbedoAccum core.Vec3
	NormalAccum core.Vec3
	DepthAccum  float64
	SampleCount int // Number of samples taken
}

// AddSample adds a radiance sample
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// AddSurface adds the first-hit surface of the latest sample
func (ps *PixelStats) AddSurface(surface integrator.SurfaceSample) {
	if !surface.Hit {
		return
	}
	ps.AlbedoAccum = ps.AlbedoAccum.Add(surface.Albedo)
	ps.NormalAccum = ps.NormalAccum.Add(surface.Normal)
	ps.DepthAccum += surface.Depth
}

// GetColor returns the Monte Carlo average of the radiance samples
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.average(ps.ColorAccum)
}

// GetAlbedo returns the average first-hit albedo; misses count as black
func (ps *PixelStats) GetAlbedo() core.Vec3 {
	return ps.average(ps.AlbedoAccum)
}

// GetNormal returns the average first-hit normal; misses count as zero
func (ps *PixelStats) GetNormal() core.Vec3 {
	return ps.average(ps.NormalAccum)
}

// GetDepth returns the average first-hit distance; misses count as zero
func (ps *PixelStats) GetDepth() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return ps.DepthAccum / float64(ps.SampleCount)
}

func (ps *PixelStats) average(sum core.Vec3) core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return sum.Multiply(1.0 / float64(ps.SampleCount))
}
