package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// EstimateRadiance returns the radiance arriving along ray using at most maxBounces bounces
	EstimateRadiance(ray core.Ray, maxBounces int, random *rand.Rand) core.Vec3

	// Trace is EstimateRadiance plus the first surface the ray meets
	Trace(ray core.Ray, maxBounces int, random *rand.Rand) (core.Vec3, SurfaceSample)
}

// SurfaceSample describes the first surface seen along a camera ray.
// It feeds the albedo, normal and depth auxiliary passes.
type SurfaceSample struct {
	Hit    bool
	Albedo core.Vec3 // Attenuation for scattering surfaces, emission for lights, black otherwise
	Normal core.Vec3 // Unit normal facing the camera
	Depth  float64   // Distance from the ray origin to the hit point
}

// Background is the sky returned for rays that escape the scene
type Background struct {
	Top      core.Vec3 // Color for straight-up directions
	Bottom   core.Vec3 // Color for straight-down directions
	Exposure float64   // Scale applied to both colors
}

// DefaultBackground returns a white-to-blue sky at unit exposure
func DefaultBackground() Background {
	return Background{
		Top:      core.NewVec3(0.5, 0.7, 1.0),
		Bottom:   core.NewVec3(1.0, 1.0, 1.0),
		Exposure: 1.0,
	}
}

// Color returns the gradient color for a direction, keyed on its vertical component
func (b Background) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t).Multiply(b.Exposure)
}
