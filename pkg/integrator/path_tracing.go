package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// ClipNear is the smallest accepted hit distance; it keeps scattered rays off their own surface
const ClipNear = 0.001

// PathTracer implements unidirectional path tracing with a hard bounce cap
type PathTracer struct {
	world      geometry.Shape
	background Background
	clip       core.Interval
}

// NewPathTracer creates a path tracer over world. The world must not change while tracing.
func NewPathTracer(world geometry.Shape, background Background) *PathTracer {
	return &PathTracer{
		world:      world,
		background: background,
		clip:       core.NewInterval(ClipNear, math.Inf(1)),
	}
}

// EstimateRadiance computes the color for a single ray.
// Black once the bounce budget is spent, the background on a miss, otherwise
// emission + attenuation × EstimateRadiance(scattered, maxBounces-1).
func (pt *PathTracer) EstimateRadiance(ray core.Ray, maxBounces int, random *rand.Rand) core.Vec3 {
	if maxBounces <= 0 {
		return core.Vec3{}
	}

	hit, isHit := pt.world.Hit(ray, pt.clip)
	if !isHit {
		return pt.background.Color(ray.Direction)
	}

	return pt.shade(pt.interact(ray, hit, random), maxBounces, random)
}

// Trace computes the same estimate as EstimateRadiance and also reports the first surface hit
func (pt *PathTracer) Trace(ray core.Ray, maxBounces int, random *rand.Rand) (core.Vec3, SurfaceSample) {
	if maxBounces <= 0 {
		return core.Vec3{}, SurfaceSample{}
	}

	hit, isHit := pt.world.Hit(ray, pt.clip)
	if !isHit {
		return pt.background.Color(ray.Direction), SurfaceSample{}
	}

	result := pt.interact(ray, hit, random)
	surface := SurfaceSample{
		Hit:    true,
		Albedo: material.Albedo(result),
		Normal: hit.Normal,
		Depth:  hit.Point.Subtract(ray.Origin).Length(),
	}

	return pt.shade(result, maxBounces, random), surface
}

// interact asks the hit material what happens; a missing material absorbs
func (pt *PathTracer) interact(ray core.Ray, hit *material.HitRecord, random *rand.Rand) material.ScatterResult {
	if hit.Material == nil {
		return material.Absorbed{}
	}
	return hit.Material.Interact(ray, *hit, random)
}

// shade combines the material result with the radiance gathered further along the path
func (pt *PathTracer) shade(result material.ScatterResult, maxBounces int, random *rand.Rand) core.Vec3 {
	switch r := result.(type) {
	case material.Emitted:
		return r.Color
	case material.Scattered:
		incoming := pt.EstimateRadiance(r.Ray, maxBounces-1, random)
		return r.Attenuation.MultiplyVec(incoming)
	default:
		return core.Vec3{}
	}
}
