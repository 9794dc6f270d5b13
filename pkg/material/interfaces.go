package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Material describes how a surface responds to an incoming ray.
// Implementations are immutable after construction and may be shared across
// shapes and rendering goroutines; all randomness comes from the caller's stream.
type Material interface {
	Interact(rayIn core.Ray, hit HitRecord, random *rand.Rand) ScatterResult
}

// ScatterResult is the outcome of a material interaction: exactly one of
// Scattered, Emitted or Absorbed.
type ScatterResult interface {
	scatterResult()
}

// Scattered continues the path along Ray, scaling radiance by Attenuation
type Scattered struct {
	Attenuation core.Vec3
	Ray         core.Ray
}

// Emitted terminates the path with emitted radiance Color
type Emitted struct {
	Color core.Vec3
}

// Absorbed terminates the path with no radiance
type Absorbed struct{}

func (Scattered) scatterResult() {}
func (Emitted) scatterResult()   {}
func (Absorbed) scatterResult()  {}

// Albedo reports the surface color carried by a result, used for the auxiliary albedo pass
func Albedo(result ScatterResult) core.Vec3 {
	switch r := result.(type) {
	case Scattered:
		return r.Attenuation
	case Emitted:
		return r.Color
	default:
		return core.Vec3{}
	}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always opposing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray arrived from outside the surface
	Material  Material  // Shared, read-only
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Absorber is the default material: it neither scatters nor emits
type Absorber struct{}

// Interact implements Material
func (Absorber) Interact(core.Ray, HitRecord, *rand.Rand) ScatterResult {
	return Absorbed{}
}
